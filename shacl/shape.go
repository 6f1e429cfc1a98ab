package shacl

import (
	"fmt"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// Shape is one node of the shapes graph: its severity, deactivation flag,
// optional property path, and the constraints its outgoing predicates
// declare. Shapes are memoized per ShapesGraph and never mutated after
// construction.
type Shape struct {
	// Node is the shape's node in the shapes graph.
	Node term.Term

	// Severity is the result severity, sh:Violation unless overridden.
	Severity term.Term

	// Deactivated shapes are skipped by validation engines.
	Deactivated bool

	// Messages holds sh:message overrides declared on the shape node.
	Messages []string

	// Constraints lists the constraints in declaration encounter order.
	Constraints []*Constraint

	path     Path
	pathNode term.Term
	graph    *graph.Graph
}

// populate fills a cache-registered shape from the shapes graph. The
// parameter index is injected by the owning ShapesGraph; shapes never hold
// a back-reference to it.
func (s *Shape) populate(g *graph.Graph, index map[term.Term]*ConstraintComponent) error {
	s.graph = g
	s.Severity = term.NewIRI(sh.Violation)
	if tr, ok := g.One(s.Node, term.NewIRI(sh.Severity), graph.Any); ok {
		s.Severity = tr.Object
	}
	s.Deactivated = g.HasMatch(s.Node, term.NewIRI(sh.Deactivated), term.Bool(true))
	for _, m := range g.Objects(s.Node, term.NewIRI(sh.Message)) {
		if m.IsLiteral() {
			s.Messages = append(s.Messages, m.Value)
		}
	}

	if tr, ok := g.One(s.Node, term.NewIRI(sh.Path), graph.Any); ok {
		path, err := CompilePath(g, tr.Object)
		if err != nil {
			return fmt.Errorf("shape %s: %w", s.Node, err)
		}
		s.path = path
		s.pathNode = tr.Object
	}

	// Repeated assertions of a single-parameter component each yield a
	// constraint; multi-parameter components yield at most one per shape
	// and only when complete.
	handled := make(map[term.Term]struct{})
	for _, tr := range g.Match(s.Node, graph.Any, graph.Any) {
		component, ok := index[tr.Predicate]
		if !ok {
			continue
		}
		if len(component.Parameters) == 1 {
			s.Constraints = append(s.Constraints, newConstraint(s, component, tr.Object, g))
			continue
		}
		if _, done := handled[component.IRI]; done {
			continue
		}
		handled[component.IRI] = struct{}{}
		if component.IsComplete(s.Node, g) {
			s.Constraints = append(s.Constraints, newConstraint(s, component, term.Term{}, g))
		}
	}

	return nil
}

// IsPropertyShape reports whether the shape declared a property path.
func (s *Shape) IsPropertyShape() bool {
	return s.path != nil
}

// Path returns the compiled property path, nil for node shapes.
func (s *Shape) Path() Path {
	return s.path
}

// PathNode returns the declarative path term, zero for node shapes.
func (s *Shape) PathNode() term.Term {
	return s.pathNode
}

// TargetNodes resolves the focus nodes this shape applies to in the data
// graph: instances of the shape node used as a class, instances of every
// sh:targetClass, literal sh:targetNode terms, and subjects/objects of
// triples whose predicate is named by sh:targetSubjectsOf or
// sh:targetObjectsOf. The result is deduplicated. Generic sh:target
// declarations are not resolved here.
func (s *Shape) TargetNodes(data *graph.Graph) []term.Term {
	targets := graph.NewNodeSet()

	targets.AddSet(data.InstancesOf(s.Node))

	for _, class := range s.graph.Objects(s.Node, term.NewIRI(sh.TargetClass)) {
		targets.AddSet(data.InstancesOf(class))
	}

	targets.AddAll(s.graph.Objects(s.Node, term.NewIRI(sh.TargetNode)))

	for _, pred := range s.graph.Objects(s.Node, term.NewIRI(sh.TargetSubjectsOf)) {
		for _, tr := range data.Match(graph.Any, pred, graph.Any) {
			targets.Add(tr.Subject)
		}
	}

	for _, pred := range s.graph.Objects(s.Node, term.NewIRI(sh.TargetObjectsOf)) {
		for _, tr := range data.Match(graph.Any, pred, graph.Any) {
			targets.Add(tr.Object)
		}
	}

	return targets.Terms()
}

// ValueNodes returns the nodes a validator checks for a focus node: the
// path evaluation result for property shapes, the focus node itself for
// node shapes.
func (s *Shape) ValueNodes(focus term.Term, data *graph.Graph) []term.Term {
	if s.IsPropertyShape() {
		return ResolvePath(data, focus, s.path)
	}
	return []term.Term{focus}
}
