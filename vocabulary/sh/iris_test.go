package sh

import (
	"strings"
	"testing"
)

func TestIRIsShareNamespace(t *testing.T) {
	iris := []string{
		Shape, NodeShape, PropertyShape, ConstraintComponentClass, ValidatorClass,
		Violation, Warning, Info,
		TargetClass, TargetNode, TargetSubjectsOf, TargetObjectsOf, Target,
		Path, Severity, Deactivated, Message,
		InversePath, AlternativePath, ZeroOrMorePath, OneOrMorePath, ZeroOrOnePath,
		Parameter, Optional, NodeValidator, PropertyValidator, GenericValidator,
		IRI, BlankNode, Literal, BlankNodeOrIRI, BlankNodeOrLiteral, IRIOrLiteral,
		ClassParam, Datatype, NodeKind, MinCount, MaxCount,
		MinLength, MaxLength, Pattern, Flags,
		MinInclusive, MinExclusive, MaxInclusive, MaxExclusive,
		HasValue, In, Node, Property, Not, And, Or, Xone,
	}

	seen := make(map[string]bool)
	for _, iri := range iris {
		if !strings.HasPrefix(iri, Namespace) {
			t.Errorf("IRI %s does not start with namespace %s", iri, Namespace)
		}
		if seen[iri] {
			t.Errorf("duplicate IRI %s", iri)
		}
		seen[iri] = true
	}
}

func TestComponentIRIsDistinct(t *testing.T) {
	components := []string{
		ClassConstraintComponent, DatatypeConstraintComponent,
		NodeKindConstraintComponent, MinCountConstraintComponent,
		MaxCountConstraintComponent, MinLengthConstraintComponent,
		MaxLengthConstraintComponent, PatternConstraintComponent,
		MinInclusiveConstraintComponent, MinExclusiveConstraintComponent,
		MaxInclusiveConstraintComponent, MaxExclusiveConstraintComponent,
		HasValueConstraintComponent, InConstraintComponent,
		NodeConstraintComponent, PropertyConstraintComponent,
		NotConstraintComponent, AndConstraintComponent,
		OrConstraintComponent, XoneConstraintComponent,
	}

	seen := make(map[string]bool)
	for _, iri := range components {
		if !strings.HasPrefix(iri, Namespace) {
			t.Errorf("component IRI %s does not start with namespace %s", iri, Namespace)
		}
		if seen[iri] {
			t.Errorf("duplicate component IRI %s", iri)
		}
		seen[iri] = true
	}
}
