package shacl

import (
	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
)

// Constraint is one concrete application of a constraint component to one
// shape, with parameter values bound. Constraints are created during shape
// construction and never mutated.
type Constraint struct {
	// Shape owns this constraint.
	Shape *Shape

	// Component is the constraint kind being applied.
	Component *ConstraintComponent

	values map[string]term.Term
}

// newConstraint binds each declared parameter of the component. When an
// explicit value is supplied (single-parameter components matched against
// one triple) it wins for that parameter; otherwise the value is the first
// (shapeNode, parameterPath, ?v) solution. Unset optional parameters stay
// absent.
func newConstraint(shape *Shape, component *ConstraintComponent, explicit term.Term, g *graph.Graph) *Constraint {
	c := &Constraint{
		Shape:     shape,
		Component: component,
		values:    make(map[string]term.Term, len(component.Parameters)),
	}

	for _, p := range component.Parameters {
		if !explicit.IsZero() && len(component.Parameters) == 1 {
			c.values[p.LocalName()] = explicit
			continue
		}
		if tr, ok := g.One(shape.Node, p.Path, graph.Any); ok {
			c.values[p.LocalName()] = tr.Object
		}
	}

	return c
}

// ParameterValue returns the bound value of the parameter with the given
// local name.
func (c *Constraint) ParameterValue(name string) (term.Term, bool) {
	v, ok := c.values[name]
	return v, ok
}

// ComponentMessages returns the component messages applicable to the
// owning shape.
func (c *Constraint) ComponentMessages() []string {
	return c.Component.Messages(c.Shape)
}
