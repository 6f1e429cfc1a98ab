package shacl

import (
	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
)

// Context gives validators access to the graphs of the running validation
// pass. Nested-shape validators use NestedConforms to recurse without a
// dependency on the hosting engine.
type Context interface {
	// Data returns the data graph of the current pass.
	Data() *graph.Graph

	// Shapes returns the shapes graph the constraints were built from.
	Shapes() *ShapesGraph

	// NestedConforms reports whether focus conforms to the shape at
	// shapeNode, without recording results.
	NestedConforms(shapeNode, focus term.Term) bool
}

// Validator checks one constraint against the value nodes of a focus node
// and returns the terms that fail it. An empty result means conformance.
// Set-level validators (cardinality) report the focus node itself.
type Validator func(ctx Context, c *Constraint, focus term.Term, values []term.Term) []term.Term

// ValidatorRef pairs a validator function with its result message
// template. Message templates may reference bound parameters as
// {$localName}.
type ValidatorRef struct {
	Validate Validator
	Message  string
}

// ValidatorSet holds the up-to-three validator slots of a constraint
// component: a node-shape validator, a property-shape validator, and a
// generic fallback shared by both.
type ValidatorSet struct {
	Node     *ValidatorRef
	Property *ValidatorRef
	Generic  *ValidatorRef
}

// ValidatorRegistry resolves the validator slots of a constraint component
// by its IRI. Implementations are consulted once, at shapes-graph build
// time.
type ValidatorRegistry interface {
	Lookup(componentIRI term.Term) (ValidatorSet, bool)
}
