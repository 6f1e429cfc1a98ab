// Package term provides the RDF term value type shared by the graph store
// and the shapes model.
package term

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/c360studio/semshacl/vocabulary/rdf"
	"github.com/c360studio/semshacl/vocabulary/xsd"
)

// Kind distinguishes the three RDF term kinds.
type Kind string

const (
	KindIRI       Kind = "iri"
	KindBlankNode Kind = "bnode"
	KindLiteral   Kind = "literal"
)

// Term is an immutable RDF term: an IRI, a blank node, or a literal.
// The zero Term is "no term" and doubles as the pattern wildcard in graph
// queries. Term is comparable, so it keys maps directly.
type Term struct {
	// Kind is the term kind; empty for the zero Term.
	Kind Kind

	// Value is the IRI, the blank node label, or the literal lexical form.
	Value string

	// Datatype is the datatype IRI of a literal, empty otherwise.
	Datatype string

	// Language is the language tag of a language-tagged literal.
	Language string
}

// NewIRI creates an IRI term.
func NewIRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// NewBlankNode creates a blank node with a fresh unique label.
func NewBlankNode() Term {
	return Term{Kind: KindBlankNode, Value: uuid.New().String()}
}

// NewBlankNodeWithLabel creates a blank node with an explicit label.
func NewBlankNodeWithLabel(label string) Term {
	return Term{Kind: KindBlankNode, Value: label}
}

// NewLiteral creates an xsd:string literal.
func NewLiteral(value string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: xsd.String}
}

// TypedLiteral creates a literal with an explicit datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// LangLiteral creates a language-tagged literal.
func LangLiteral(value, language string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: rdf.LangString, Language: language}
}

// Bool creates an xsd:boolean literal.
func Bool(v bool) Term {
	return TypedLiteral(strconv.FormatBool(v), xsd.Boolean)
}

// Int creates an xsd:integer literal.
func Int(v int) Term {
	return TypedLiteral(strconv.Itoa(v), xsd.Integer)
}

// IsZero reports whether t is the zero Term.
func (t Term) IsZero() bool {
	return t.Kind == ""
}

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// IsBlankNode reports whether t is a blank node.
func (t Term) IsBlankNode() bool {
	return t.Kind == KindBlankNode
}

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// Equal reports value equality: same kind, value, datatype, and language.
func (t Term) Equal(other Term) bool {
	return t == other
}

// String renders the term in an N-Triples-like form for diagnostics.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlankNode:
		return "_:" + t.Value
	case KindLiteral:
		switch {
		case t.Language != "":
			return strconv.Quote(t.Value) + "@" + t.Language
		case t.Datatype != "" && t.Datatype != xsd.String:
			return fmt.Sprintf("%s^^<%s>", strconv.Quote(t.Value), t.Datatype)
		default:
			return strconv.Quote(t.Value)
		}
	default:
		return "?"
	}
}
