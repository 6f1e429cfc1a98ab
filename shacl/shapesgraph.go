package shacl

import (
	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/rdfs"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// ShapesGraph is the compiled model of one shapes graph: its constraint
// components, the parameter index, and a memoized shape cache. Building it
// is the expensive step; the result is reusable across many data-graph
// validation passes. It is safe for concurrent reads once fully built;
// callers parallelizing validation should force the lazy lists first by
// calling ShapesWithTarget once.
type ShapesGraph struct {
	graph      *graph.Graph
	components []*ConstraintComponent
	paramIndex map[term.Term]*ConstraintComponent

	shapes map[term.Term]*Shape

	// Lazy caches with explicit computed state.
	withConstraints         []term.Term
	withConstraintsComputed bool
	withTarget              []*Shape
	withTargetComputed      bool
}

// New builds a ShapesGraph from a shapes graph: every node typed
// sh:ConstraintComponent becomes a component, and each of its parameters
// is recorded in the parameter index. When two components declare the same
// parameter IRI the later-built component wins.
func New(g *graph.Graph, registry ValidatorRegistry) *ShapesGraph {
	sg := &ShapesGraph{
		graph:      g,
		paramIndex: make(map[term.Term]*ConstraintComponent),
		shapes:     make(map[term.Term]*Shape),
	}

	for _, node := range g.InstancesOf(term.NewIRI(sh.ConstraintComponentClass)).Terms() {
		component := newConstraintComponent(node, g, registry)
		sg.components = append(sg.components, component)
		for _, p := range component.Parameters {
			sg.paramIndex[p.Path] = component
		}
	}

	return sg
}

// Graph returns the underlying shapes graph.
func (sg *ShapesGraph) Graph() *graph.Graph {
	return sg.graph
}

// Components returns the constraint components in discovery order.
func (sg *ShapesGraph) Components() []*ConstraintComponent {
	return sg.components
}

// ComponentWithParameter returns the component declaring the given
// parameter IRI.
func (sg *ShapesGraph) ComponentWithParameter(paramIRI term.Term) (*ConstraintComponent, bool) {
	c, ok := sg.paramIndex[paramIRI]
	return c, ok
}

// Shape returns the memoized shape for node, constructing it on first
// access. The shape enters the cache before its constraints are resolved,
// so mutually referential shapes neither loop nor double-construct: a
// cycle resolves to the identical, partially-populated instance.
func (sg *ShapesGraph) Shape(node term.Term) (*Shape, error) {
	if s, ok := sg.shapes[node]; ok {
		return s, nil
	}

	s := &Shape{Node: node}
	sg.shapes[node] = s
	if err := s.populate(sg.graph, sg.paramIndex); err != nil {
		delete(sg.shapes, node)
		return nil, err
	}
	return s, nil
}

// ShapeNodesWithConstraints returns every shapes-graph subject bearing at
// least one required parameter of at least one component: nodes that are
// structurally shapes regardless of rdf:type assertions. Computed once.
func (sg *ShapesGraph) ShapeNodesWithConstraints() []term.Term {
	if sg.withConstraintsComputed {
		return sg.withConstraints
	}

	nodes := graph.NewNodeSet()
	for _, component := range sg.components {
		for _, p := range component.RequiredParameters() {
			for _, tr := range sg.graph.Match(graph.Any, p.Path, graph.Any) {
				nodes.Add(tr.Subject)
			}
		}
	}

	sg.withConstraints = nodes.Terms()
	sg.withConstraintsComputed = true
	return sg.withConstraints
}

// ShapesWithTarget returns the validation entry points: shapes with
// constraints that are either rdfs:Class instances in the shapes graph or
// carry a target declaration. Generic sh:target declarations count for
// this filter even though Shape.TargetNodes does not resolve them.
// Computed once.
func (sg *ShapesGraph) ShapesWithTarget() ([]*Shape, error) {
	if sg.withTargetComputed {
		return sg.withTarget, nil
	}

	targetPredicates := []term.Term{
		term.NewIRI(sh.TargetClass),
		term.NewIRI(sh.TargetNode),
		term.NewIRI(sh.TargetSubjectsOf),
		term.NewIRI(sh.TargetObjectsOf),
		term.NewIRI(sh.Target),
	}
	classType := term.NewIRI(rdfs.Class)

	var shapes []*Shape
	for _, node := range sg.ShapeNodesWithConstraints() {
		if !sg.hasTarget(node, classType, targetPredicates) {
			continue
		}
		s, err := sg.Shape(node)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}

	sg.withTarget = shapes
	sg.withTargetComputed = true
	return sg.withTarget, nil
}

func (sg *ShapesGraph) hasTarget(node, classType term.Term, targetPredicates []term.Term) bool {
	if sg.graph.InstancesOf(classType).Contains(node) {
		return true
	}
	for _, p := range targetPredicates {
		if sg.graph.HasMatch(node, p, graph.Any) {
			return true
		}
	}
	return false
}
