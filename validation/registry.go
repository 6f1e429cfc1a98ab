// Package validation provides the built-in SHACL constraint components:
// their self-describing declarations, their validator implementations, and
// an engine that walks a compiled shapes graph to produce a validation
// report.
package validation

import (
	"sync"

	"github.com/c360studio/semshacl/shacl"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// Registry maps constraint component IRIs to their validator slots. The
// built-in table is fixed at construction; additional components can be
// registered before validation starts.
type Registry struct {
	mu    sync.RWMutex
	table map[term.Term]shacl.ValidatorSet
}

// DefaultRegistry is the global registry holding the built-in components.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry populated with the built-in components.
func NewRegistry() *Registry {
	r := &Registry{table: make(map[term.Term]shacl.ValidatorSet)}
	for iri, set := range builtinValidators() {
		r.table[term.NewIRI(iri)] = set
	}
	return r
}

// Register adds or replaces the validator slots for a component IRI.
func (r *Registry) Register(componentIRI term.Term, set shacl.ValidatorSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[componentIRI] = set
}

// Lookup implements shacl.ValidatorRegistry.
func (r *Registry) Lookup(componentIRI term.Term) (shacl.ValidatorSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.table[componentIRI]
	return set, ok
}

// generic builds a ValidatorSet with a single shared validator.
func generic(v shacl.Validator, message string) shacl.ValidatorSet {
	return shacl.ValidatorSet{Generic: &shacl.ValidatorRef{Validate: v, Message: message}}
}

// builtinValidators is the fixed table wiring each built-in component to
// its implementation and message template. Cardinality components only
// make sense for property shapes and fill the property slot alone.
func builtinValidators() map[string]shacl.ValidatorSet {
	return map[string]shacl.ValidatorSet{
		sh.ClassConstraintComponent:    generic(validateClass, "Value does not have class {$class}"),
		sh.DatatypeConstraintComponent: generic(validateDatatype, "Value does not have datatype {$datatype}"),
		sh.NodeKindConstraintComponent: generic(validateNodeKind, "Value does not have node kind {$nodeKind}"),
		sh.MinCountConstraintComponent: {
			Property: &shacl.ValidatorRef{Validate: validateMinCount, Message: "Less than {$minCount} values"},
		},
		sh.MaxCountConstraintComponent: {
			Property: &shacl.ValidatorRef{Validate: validateMaxCount, Message: "More than {$maxCount} values"},
		},
		sh.MinLengthConstraintComponent:    generic(validateMinLength, "Value has less than {$minLength} characters"),
		sh.MaxLengthConstraintComponent:    generic(validateMaxLength, "Value has more than {$maxLength} characters"),
		sh.PatternConstraintComponent:      generic(validatePattern, "Value does not match pattern {$pattern}"),
		sh.MinInclusiveConstraintComponent: generic(validateMinInclusive, "Value is not greater than or equal to {$minInclusive}"),
		sh.MinExclusiveConstraintComponent: generic(validateMinExclusive, "Value is not greater than {$minExclusive}"),
		sh.MaxInclusiveConstraintComponent: generic(validateMaxInclusive, "Value is not less than or equal to {$maxInclusive}"),
		sh.MaxExclusiveConstraintComponent: generic(validateMaxExclusive, "Value is not less than {$maxExclusive}"),
		sh.HasValueConstraintComponent:     generic(validateHasValue, "Missing expected value {$hasValue}"),
		sh.InConstraintComponent:           generic(validateIn, "Value is not one of the allowed values"),
		sh.NodeConstraintComponent:         generic(validateNode, "Value does not conform to shape {$node}"),
		sh.PropertyConstraintComponent:     generic(validateProperty, ""),
		sh.NotConstraintComponent:          generic(validateNot, "Value conforms to shape {$not}"),
		sh.AndConstraintComponent:          generic(validateAnd, "Value does not conform to every shape in the sh:and list"),
		sh.OrConstraintComponent:           generic(validateOr, "Value does not conform to any shape in the sh:or list"),
		sh.XoneConstraintComponent:         generic(validateXone, "Value does not conform to exactly one shape in the sh:xone list"),
	}
}
