package validation

import "github.com/c360studio/semshacl/term"

// Result is one validation finding: a focus node (and value node within
// it) failing one constraint of one shape.
type Result struct {
	// FocusNode is the node the shape targeted.
	FocusNode term.Term

	// Path is the declarative path term of the source shape, zero for
	// node shapes.
	Path term.Term

	// Value is the failing value node.
	Value term.Term

	// SourceShape is the shape node the constraint belongs to.
	SourceShape term.Term

	// SourceComponent is the constraint component IRI.
	SourceComponent term.Term

	// Severity is the source shape's severity.
	Severity term.Term

	// Message is the resolved human-readable message, possibly empty.
	Message string
}

// Report is the outcome of one validation pass.
type Report struct {
	// Conforms is true iff no results were produced.
	Conforms bool

	// Results lists the findings in discovery order.
	Results []Result
}
