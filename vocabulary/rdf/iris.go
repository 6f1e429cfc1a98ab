// Package rdf provides IRI constants for the RDF core vocabulary.
package rdf

// Namespace is the base IRI prefix for RDF vocabulary terms.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Core property IRIs.
const (
	// Type asserts class membership of a resource.
	Type = Namespace + "type"

	// First is the head element of an RDF collection cell.
	First = Namespace + "first"

	// Rest links an RDF collection cell to its tail.
	Rest = Namespace + "rest"

	// Nil terminates an RDF collection.
	Nil = Namespace + "nil"

	// LangString is the datatype of language-tagged literals.
	LangString = Namespace + "langString"
)
