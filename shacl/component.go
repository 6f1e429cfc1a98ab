package shacl

import (
	"strings"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// Parameter is one declared parameter of a constraint component.
type Parameter struct {
	// Path is the parameter's predicate IRI on shape nodes.
	Path term.Term

	// Optional marks parameters a shape may omit.
	Optional bool
}

// LocalName returns the parameter name without its namespace: the IRI
// fragment, or the last path segment when there is no fragment.
func (p Parameter) LocalName() string {
	iri := p.Path.Value
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// ConstraintComponent is one reusable, parameterized constraint kind,
// built once at shapes-graph construction and shared by every shape that
// uses it.
type ConstraintComponent struct {
	// IRI identifies the component.
	IRI term.Term

	// Parameters lists the declared parameters in encounter order.
	Parameters []Parameter

	nodeValidator     *ValidatorRef
	nodeGeneric       bool
	propertyValidator *ValidatorRef
	propertyGeneric   bool
}

// newConstraintComponent resolves a component declaration from the shapes
// graph: its parameters via (component, sh:parameter, ?p) + (?p, sh:path,
// ?path), each optional iff marked sh:optional true, and its validator
// slots from the registry. A missing explicit node or property slot falls
// back to the generic validator.
func newConstraintComponent(node term.Term, g *graph.Graph, registry ValidatorRegistry) *ConstraintComponent {
	c := &ConstraintComponent{IRI: node}

	shPath := term.NewIRI(sh.Path)
	shOptional := term.NewIRI(sh.Optional)
	for _, tr := range g.Match(node, term.NewIRI(sh.Parameter), graph.Any) {
		paramNode := tr.Object
		path, ok := g.One(paramNode, shPath, graph.Any)
		if !ok {
			continue
		}
		optional := g.HasMatch(paramNode, shOptional, term.Bool(true))
		c.Parameters = append(c.Parameters, Parameter{Path: path.Object, Optional: optional})
	}

	if registry != nil {
		if set, ok := registry.Lookup(node); ok {
			c.nodeValidator, c.nodeGeneric = pickSlot(set.Node, set.Generic)
			c.propertyValidator, c.propertyGeneric = pickSlot(set.Property, set.Generic)
		}
	}

	return c
}

func pickSlot(explicit, generic *ValidatorRef) (*ValidatorRef, bool) {
	if explicit != nil {
		return explicit, false
	}
	return generic, generic != nil
}

// RequiredParameters returns the non-optional parameters.
func (c *ConstraintComponent) RequiredParameters() []Parameter {
	var out []Parameter
	for _, p := range c.Parameters {
		if !p.Optional {
			out = append(out, p)
		}
	}
	return out
}

// IsComplete reports whether every required parameter has at least one
// matching triple on shapeNode. A component with no required parameters is
// complete for any node.
func (c *ConstraintComponent) IsComplete(shapeNode term.Term, g *graph.Graph) bool {
	for _, p := range c.Parameters {
		if p.Optional {
			continue
		}
		if !g.HasMatch(shapeNode, p.Path, graph.Any) {
			return false
		}
	}
	return true
}

// ValidatorFor returns the validator slot matching the shape kind and
// whether that slot fell back to the generic validator.
func (c *ConstraintComponent) ValidatorFor(shape *Shape) (*ValidatorRef, bool) {
	if shape.IsPropertyShape() {
		return c.propertyValidator, c.propertyGeneric
	}
	return c.nodeValidator, c.nodeGeneric
}

// Messages returns the message of the validator slot selected by the shape
// kind: zero or one message.
func (c *ConstraintComponent) Messages(shape *Shape) []string {
	ref, _ := c.ValidatorFor(shape)
	if ref == nil || ref.Message == "" {
		return nil
	}
	return []string{ref.Message}
}
