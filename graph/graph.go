// Package graph provides an in-memory RDF triple store with pattern
// matching, RDF list decoding, and subclass-aware type-instance lookup.
package graph

import (
	"fmt"

	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/rdf"
	"github.com/c360studio/semshacl/vocabulary/rdfs"
)

// Any is the pattern wildcard: it matches every term in a query position.
var Any term.Term

// Triple is a single (subject, predicate, object) fact.
type Triple struct {
	Subject   term.Term
	Predicate term.Term
	Object    term.Term
}

// String renders the triple for diagnostics.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Graph is an unordered, duplicate-free set of triples. Queries return
// triples in insertion order. Graph is not safe for concurrent mutation;
// once fully populated it is safe for concurrent reads.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}

	bySubject   map[term.Term][]int
	byPredicate map[term.Term][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		seen:        make(map[Triple]struct{}),
		bySubject:   make(map[term.Term][]int),
		byPredicate: make(map[term.Term][]int),
	}
}

// Add inserts triples, ignoring duplicates.
func (g *Graph) Add(triples ...Triple) {
	for _, t := range triples {
		if _, ok := g.seen[t]; ok {
			continue
		}
		idx := len(g.triples)
		g.triples = append(g.triples, t)
		g.seen[t] = struct{}{}
		g.bySubject[t.Subject] = append(g.bySubject[t.Subject], idx)
		g.byPredicate[t.Predicate] = append(g.byPredicate[t.Predicate], idx)
	}
}

// AddGraph inserts every triple of other.
func (g *Graph) AddGraph(other *Graph) {
	g.Add(other.triples...)
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Match returns all triples matching the pattern. The zero term (Any) in a
// position matches every term.
func (g *Graph) Match(s, p, o term.Term) []Triple {
	var out []Triple
	for _, t := range g.candidates(s, p) {
		if matches(t, s, p, o) {
			out = append(out, t)
		}
	}
	return out
}

// HasMatch reports whether at least one triple matches the pattern.
func (g *Graph) HasMatch(s, p, o term.Term) bool {
	for _, t := range g.candidates(s, p) {
		if matches(t, s, p, o) {
			return true
		}
	}
	return false
}

// One returns the first triple matching the pattern.
func (g *Graph) One(s, p, o term.Term) (Triple, bool) {
	for _, t := range g.candidates(s, p) {
		if matches(t, s, p, o) {
			return t, true
		}
	}
	return Triple{}, false
}

// Objects returns the objects of all triples matching (s, p, *).
func (g *Graph) Objects(s, p term.Term) []term.Term {
	var out []term.Term
	for _, t := range g.Match(s, p, Any) {
		out = append(out, t.Object)
	}
	return out
}

// Subjects returns the subjects of all triples matching (*, p, o).
func (g *Graph) Subjects(p, o term.Term) []term.Term {
	var out []term.Term
	for _, t := range g.Match(Any, p, o) {
		out = append(out, t.Subject)
	}
	return out
}

// List decodes the RDF collection starting at head into a sequence.
// rdf:nil decodes to an empty sequence. A cell missing rdf:first or
// rdf:rest, or a cyclic chain, is an error.
func (g *Graph) List(head term.Term) ([]term.Term, error) {
	var out []term.Term
	visited := make(map[term.Term]struct{})
	for head != term.NewIRI(rdf.Nil) {
		if _, ok := visited[head]; ok {
			return nil, fmt.Errorf("cyclic RDF list at %s", head)
		}
		visited[head] = struct{}{}

		first, ok := g.One(head, term.NewIRI(rdf.First), Any)
		if !ok {
			return nil, fmt.Errorf("malformed RDF list: %s has no rdf:first", head)
		}
		rest, ok := g.One(head, term.NewIRI(rdf.Rest), Any)
		if !ok {
			return nil, fmt.Errorf("malformed RDF list: %s has no rdf:rest", head)
		}
		out = append(out, first.Object)
		head = rest.Object
	}
	return out, nil
}

// IsList reports whether node is structurally an RDF collection: rdf:nil
// or a node bearing rdf:first.
func (g *Graph) IsList(node term.Term) bool {
	if node == term.NewIRI(rdf.Nil) {
		return true
	}
	return g.HasMatch(node, term.NewIRI(rdf.First), Any)
}

// InstancesOf returns all nodes typed as class or as one of its
// rdfs:subClassOf descendants, deduplicated. The subclass walk is
// cycle-safe.
func (g *Graph) InstancesOf(class term.Term) *NodeSet {
	instances := NewNodeSet()
	classes := NewNodeSet()
	queue := []term.Term{class}
	classes.Add(class)

	rdfType := term.NewIRI(rdf.Type)
	subClassOf := term.NewIRI(rdfs.SubClassOf)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		instances.AddAll(g.Subjects(rdfType, c))

		for _, sub := range g.Subjects(subClassOf, c) {
			if classes.Add(sub) {
				queue = append(queue, sub)
			}
		}
	}
	return instances
}

// candidates picks the cheapest index for the pattern.
func (g *Graph) candidates(s, p term.Term) []Triple {
	switch {
	case !s.IsZero():
		return g.byIndex(g.bySubject[s])
	case !p.IsZero():
		return g.byIndex(g.byPredicate[p])
	default:
		return g.triples
	}
}

func (g *Graph) byIndex(indexes []int) []Triple {
	out := make([]Triple, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, g.triples[i])
	}
	return out
}

func matches(t Triple, s, p, o term.Term) bool {
	if !s.IsZero() && t.Subject != s {
		return false
	}
	if !p.IsZero() && t.Predicate != p {
		return false
	}
	if !o.IsZero() && t.Object != o {
		return false
	}
	return true
}
