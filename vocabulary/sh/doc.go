// Package sh provides IRI constants for the SHACL vocabulary.
//
// The constants are grouped the way a shapes graph uses them: shape and
// component classes, target declarations, path operators, constraint
// parameters, and the metadata predicates that make constraint components
// self-describing (sh:parameter, sh:path, sh:optional, validator slots).
package sh
