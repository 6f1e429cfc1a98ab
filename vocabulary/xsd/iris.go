// Package xsd provides IRI constants for the XML Schema datatype vocabulary.
package xsd

// Namespace is the base IRI prefix for XSD datatype terms.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs.
const (
	// String is the plain string datatype, the default for untyped literals.
	String = Namespace + "string"

	// Boolean is the true/false datatype.
	Boolean = Namespace + "boolean"

	// Integer is the arbitrary-precision integer datatype.
	Integer = Namespace + "integer"

	// Decimal is the arbitrary-precision decimal datatype.
	Decimal = Namespace + "decimal"

	// Double is the IEEE 754 double datatype.
	Double = Namespace + "double"

	// Date is the calendar date datatype.
	Date = Namespace + "date"

	// DateTime is the timestamp datatype.
	DateTime = Namespace + "dateTime"

	// AnyURI is the IRI-valued literal datatype.
	AnyURI = Namespace + "anyURI"
)
