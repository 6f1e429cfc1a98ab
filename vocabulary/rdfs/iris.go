// Package rdfs provides IRI constants for the RDF Schema vocabulary.
package rdfs

// Namespace is the base IRI prefix for RDFS vocabulary terms.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

// Class and property IRIs used for implicit class targeting and
// subclass-aware instance lookup.
const (
	// Class is the metatype of RDFS classes.
	Class = Namespace + "Class"

	// SubClassOf links a class to its superclass.
	SubClassOf = Namespace + "subClassOf"

	// Label is the human-readable name of a resource.
	Label = Namespace + "label"
)
