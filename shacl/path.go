package shacl

import (
	"fmt"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// Path is a compiled property-path expression. The concrete variants are
// Predicate, Sequence, Alternative, ZeroOrMore, OneOrMore, ZeroOrOne, and
// Inverse.
type Path interface {
	pathExpr()
}

// Predicate is a direct step along a single predicate.
type Predicate struct {
	IRI term.Term
}

// Sequence chains sub-paths left to right; each stage's outputs feed the
// next stage's inputs.
type Sequence struct {
	Paths []Path
}

// Alternative is the union of its sub-paths.
type Alternative struct {
	Paths []Path
}

// ZeroOrMore is the reflexive-transitive closure of a sub-path.
type ZeroOrMore struct {
	Path Path
}

// OneOrMore is the transitive closure of a sub-path.
type OneOrMore struct {
	Path Path
}

// ZeroOrOne is an optional step of a sub-path.
type ZeroOrOne struct {
	Path Path
}

// Inverse traverses a sub-path against edge direction.
type Inverse struct {
	Path Path
}

func (Predicate) pathExpr()   {}
func (Sequence) pathExpr()    {}
func (Alternative) pathExpr() {}
func (ZeroOrMore) pathExpr()  {}
func (OneOrMore) pathExpr()   {}
func (ZeroOrOne) pathExpr()   {}
func (Inverse) pathExpr()     {}

// CompilePath translates the declarative path term at node into a path
// expression. Compilation is structural and deterministic; a term that
// matches no known path operator is a hard error, never a partial
// interpretation.
func CompilePath(g *graph.Graph, node term.Term) (Path, error) {
	if node.IsIRI() && !g.IsList(node) {
		return Predicate{IRI: node}, nil
	}

	if g.IsList(node) {
		members, err := g.List(node)
		if err != nil {
			return nil, fmt.Errorf("compile sequence path: %w", err)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("unsupported property path: empty sequence at %s", node)
		}
		seq := Sequence{Paths: make([]Path, 0, len(members))}
		for _, m := range members {
			sub, err := CompilePath(g, m)
			if err != nil {
				return nil, err
			}
			seq.Paths = append(seq.Paths, sub)
		}
		return seq, nil
	}

	if node.IsBlankNode() {
		if alt, ok := g.One(node, term.NewIRI(sh.AlternativePath), graph.Any); ok {
			members, err := g.List(alt.Object)
			if err != nil {
				return nil, fmt.Errorf("compile alternative path: %w", err)
			}
			if len(members) == 0 {
				return nil, fmt.Errorf("unsupported property path: empty alternative at %s", node)
			}
			out := Alternative{Paths: make([]Path, 0, len(members))}
			for _, m := range members {
				sub, err := CompilePath(g, m)
				if err != nil {
					return nil, err
				}
				out.Paths = append(out.Paths, sub)
			}
			return out, nil
		}

		unary := []struct {
			predicate string
			wrap      func(Path) Path
		}{
			{sh.ZeroOrMorePath, func(p Path) Path { return ZeroOrMore{Path: p} }},
			{sh.OneOrMorePath, func(p Path) Path { return OneOrMore{Path: p} }},
			{sh.ZeroOrOnePath, func(p Path) Path { return ZeroOrOne{Path: p} }},
			{sh.InversePath, func(p Path) Path { return Inverse{Path: p} }},
		}
		for _, u := range unary {
			if tr, ok := g.One(node, term.NewIRI(u.predicate), graph.Any); ok {
				sub, err := CompilePath(g, tr.Object)
				if err != nil {
					return nil, err
				}
				return u.wrap(sub), nil
			}
		}
	}

	return nil, fmt.Errorf("unsupported property path: %s", node)
}

// ResolvePath evaluates a compiled path from focus over the data graph and
// returns the reached value nodes, deduplicated, in traversal order.
func ResolvePath(data *graph.Graph, focus term.Term, p Path) []term.Term {
	return resolveFrom(data, []term.Term{focus}, p).Terms()
}

// resolveFrom evaluates p from every node of the input frontier.
func resolveFrom(data *graph.Graph, from []term.Term, p Path) *graph.NodeSet {
	out := graph.NewNodeSet()

	switch expr := p.(type) {
	case Predicate:
		for _, f := range from {
			out.AddAll(data.Objects(f, expr.IRI))
		}

	case Sequence:
		current := from
		for _, stage := range expr.Paths {
			current = resolveFrom(data, current, stage).Terms()
		}
		out.AddAll(current)

	case Alternative:
		for _, alt := range expr.Paths {
			out.AddSet(resolveFrom(data, from, alt))
		}

	case ZeroOrMore:
		out.AddAll(from)
		closure(data, from, expr.Path, out)

	case OneOrMore:
		first := resolveFrom(data, from, expr.Path)
		out.AddSet(first)
		closure(data, first.Terms(), expr.Path, out)

	case ZeroOrOne:
		out.AddAll(from)
		out.AddSet(resolveFrom(data, from, expr.Path))

	case Inverse:
		if pred, ok := expr.Path.(Predicate); ok {
			for _, f := range from {
				out.AddAll(data.Subjects(pred.IRI, f))
			}
		} else {
			out.AddSet(resolveFrom(data, from, invert(expr.Path)))
		}
	}

	return out
}

// closure repeatedly applies step until no new nodes appear. The visited
// set doubles as the result accumulator, guaranteeing termination on
// cyclic graphs: a node already reached is never expanded again.
func closure(data *graph.Graph, start []term.Term, step Path, visited *graph.NodeSet) {
	frontier := start
	for len(frontier) > 0 {
		var next []term.Term
		for _, reached := range resolveFrom(data, frontier, step).Terms() {
			if visited.Add(reached) {
				next = append(next, reached)
			}
		}
		frontier = next
	}
}

// invert distributes inversion over a composite path so that evaluation
// only ever inverts predicate leaves. Sequences reverse stage order.
func invert(p Path) Path {
	switch expr := p.(type) {
	case Predicate:
		return Inverse{Path: expr}
	case Sequence:
		out := Sequence{Paths: make([]Path, 0, len(expr.Paths))}
		for i := len(expr.Paths) - 1; i >= 0; i-- {
			out.Paths = append(out.Paths, invert(expr.Paths[i]))
		}
		return out
	case Alternative:
		out := Alternative{Paths: make([]Path, 0, len(expr.Paths))}
		for _, alt := range expr.Paths {
			out.Paths = append(out.Paths, invert(alt))
		}
		return out
	case ZeroOrMore:
		return ZeroOrMore{Path: invert(expr.Path)}
	case OneOrMore:
		return OneOrMore{Path: invert(expr.Path)}
	case ZeroOrOne:
		return ZeroOrOne{Path: invert(expr.Path)}
	case Inverse:
		return expr.Path
	default:
		return p
	}
}
