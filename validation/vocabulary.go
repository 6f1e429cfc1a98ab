package validation

import (
	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/rdf"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// componentDecl describes one built-in component declaration.
type componentDecl struct {
	iri    string
	params []paramSpec
}

type paramSpec struct {
	path     string
	optional bool
}

func required(path string) paramSpec {
	return paramSpec{path: path}
}

func optional(path string) paramSpec {
	return paramSpec{path: path, optional: true}
}

// builtinComponents declares the parameters of every built-in component.
// Declaration order is stable so parameter-index construction is
// deterministic.
var builtinComponents = []componentDecl{
	{sh.ClassConstraintComponent, []paramSpec{required(sh.ClassParam)}},
	{sh.DatatypeConstraintComponent, []paramSpec{required(sh.Datatype)}},
	{sh.NodeKindConstraintComponent, []paramSpec{required(sh.NodeKind)}},
	{sh.MinCountConstraintComponent, []paramSpec{required(sh.MinCount)}},
	{sh.MaxCountConstraintComponent, []paramSpec{required(sh.MaxCount)}},
	{sh.MinLengthConstraintComponent, []paramSpec{required(sh.MinLength)}},
	{sh.MaxLengthConstraintComponent, []paramSpec{required(sh.MaxLength)}},
	{sh.PatternConstraintComponent, []paramSpec{required(sh.Pattern), optional(sh.Flags)}},
	{sh.MinInclusiveConstraintComponent, []paramSpec{required(sh.MinInclusive)}},
	{sh.MinExclusiveConstraintComponent, []paramSpec{required(sh.MinExclusive)}},
	{sh.MaxInclusiveConstraintComponent, []paramSpec{required(sh.MaxInclusive)}},
	{sh.MaxExclusiveConstraintComponent, []paramSpec{required(sh.MaxExclusive)}},
	{sh.HasValueConstraintComponent, []paramSpec{required(sh.HasValue)}},
	{sh.InConstraintComponent, []paramSpec{required(sh.In)}},
	{sh.NodeConstraintComponent, []paramSpec{required(sh.Node)}},
	{sh.PropertyConstraintComponent, []paramSpec{required(sh.Property)}},
	{sh.NotConstraintComponent, []paramSpec{required(sh.Not)}},
	{sh.AndConstraintComponent, []paramSpec{required(sh.And)}},
	{sh.OrConstraintComponent, []paramSpec{required(sh.Or)}},
	{sh.XoneConstraintComponent, []paramSpec{required(sh.Xone)}},
}

// Vocabulary returns a graph declaring every built-in constraint component
// with its parameters, the self-describing metadata the shapes-graph build
// scans. The engine merges it with user shapes graphs; callers driving
// shacl.New directly should do the same.
func Vocabulary() *graph.Graph {
	g := graph.New()

	rdfTypeTerm := term.NewIRI(rdf.Type)
	componentClass := term.NewIRI(sh.ConstraintComponentClass)
	parameter := term.NewIRI(sh.Parameter)
	pathTerm := term.NewIRI(sh.Path)
	optionalTerm := term.NewIRI(sh.Optional)

	for _, decl := range builtinComponents {
		component := term.NewIRI(decl.iri)
		g.Add(graph.Triple{Subject: component, Predicate: rdfTypeTerm, Object: componentClass})
		for _, p := range decl.params {
			// Deterministic parameter node labels keep repeated builds
			// structurally identical.
			paramNode := term.NewBlankNodeWithLabel(decl.iri + "-param-" + p.path)
			g.Add(
				graph.Triple{Subject: component, Predicate: parameter, Object: paramNode},
				graph.Triple{Subject: paramNode, Predicate: pathTerm, Object: term.NewIRI(p.path)},
			)
			if p.optional {
				g.Add(graph.Triple{Subject: paramNode, Predicate: optionalTerm, Object: term.Bool(true)})
			}
		}
	}

	return g
}
