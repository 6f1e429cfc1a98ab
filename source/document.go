// Package source provides the graph-document model: a compact YAML/JSON
// representation of an RDF graph used for fixtures and CLI input. It is a
// native document format, not an RDF serialization.
package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/xsd"
)

// Document is the decoded form of a graph document: a prefix table and a
// list of triple specs.
type Document struct {
	Prefixes map[string]string `yaml:"prefixes" json:"prefixes"`
	Triples  []TripleSpec      `yaml:"triples" json:"triples"`
}

// TripleSpec is one declared triple. Subject and Predicate are IRIs,
// CURIEs, or blank node labels ("_:b1"). Object additionally accepts
// literal maps {value, datatype?, lang?} and native scalars (string maps
// to an IRI/CURIE/blank node, numbers and booleans to typed literals).
type TripleSpec struct {
	Subject   string `yaml:"subject" json:"subject"`
	Predicate string `yaml:"predicate" json:"predicate"`
	Object    any    `yaml:"object" json:"object"`
}

// Graph resolves the document into a triple store. Unknown prefixes and
// unresolvable terms are errors.
func (d *Document) Graph() (*graph.Graph, error) {
	g := graph.New()
	for i, spec := range d.Triples {
		subject, err := d.resolveNode(spec.Subject)
		if err != nil {
			return nil, fmt.Errorf("triple %d subject: %w", i, err)
		}
		predicate, err := d.resolveNode(spec.Predicate)
		if err != nil {
			return nil, fmt.Errorf("triple %d predicate: %w", i, err)
		}
		object, err := d.resolveObject(spec.Object)
		if err != nil {
			return nil, fmt.Errorf("triple %d object: %w", i, err)
		}
		g.Add(graph.Triple{Subject: subject, Predicate: predicate, Object: object})
	}
	return g, nil
}

// resolveNode maps an IRI, CURIE, or blank node label to a term.
func (d *Document) resolveNode(s string) (term.Term, error) {
	if s == "" {
		return term.Term{}, fmt.Errorf("empty term")
	}
	if label, ok := strings.CutPrefix(s, "_:"); ok {
		return term.NewBlankNodeWithLabel(label), nil
	}

	iri, err := d.expand(s)
	if err != nil {
		return term.Term{}, err
	}
	return term.NewIRI(iri), nil
}

// expand resolves a CURIE against the prefix table; absolute IRIs pass
// through.
func (d *Document) expand(s string) (string, error) {
	if isAbsoluteIRI(s) {
		return s, nil
	}
	prefix, local, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("not an IRI or CURIE: %q", s)
	}
	ns, ok := d.Prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("unknown prefix %q in %q", prefix, s)
	}
	return ns + local, nil
}

func isAbsoluteIRI(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "urn:") || strings.HasPrefix(s, "mailto:")
}

// resolveObject maps an object spec to a term.
func (d *Document) resolveObject(o any) (term.Term, error) {
	switch v := o.(type) {
	case string:
		return d.resolveNode(v)
	case bool:
		return term.Bool(v), nil
	case int:
		return term.Int(v), nil
	case int64:
		return term.TypedLiteral(strconv.FormatInt(v, 10), xsd.Integer), nil
	case uint64:
		return term.TypedLiteral(strconv.FormatUint(v, 10), xsd.Integer), nil
	case float64:
		// JSON decoders hand every number over as float64.
		if v == float64(int64(v)) {
			return term.TypedLiteral(strconv.FormatInt(int64(v), 10), xsd.Integer), nil
		}
		return term.TypedLiteral(strconv.FormatFloat(v, 'g', -1, 64), xsd.Double), nil
	case map[string]any:
		return d.resolveLiteral(v)
	case map[any]any:
		// Older YAML decodings key maps with any.
		normalized := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return term.Term{}, fmt.Errorf("literal map key %v is not a string", k)
			}
			normalized[key] = val
		}
		return d.resolveLiteral(normalized)
	default:
		return term.Term{}, fmt.Errorf("unsupported object value %v (%T)", o, o)
	}
}

// resolveLiteral maps a {value, datatype?, lang?} object to a literal.
func (d *Document) resolveLiteral(m map[string]any) (term.Term, error) {
	raw, ok := m["value"]
	if !ok {
		return term.Term{}, fmt.Errorf("literal map missing value key")
	}
	value := fmt.Sprintf("%v", raw)

	if lang, ok := m["lang"].(string); ok && lang != "" {
		return term.LangLiteral(value, lang), nil
	}
	if datatype, ok := m["datatype"].(string); ok && datatype != "" {
		iri, err := d.expand(datatype)
		if err != nil {
			return term.Term{}, err
		}
		return term.TypedLiteral(value, iri), nil
	}
	return term.NewLiteral(value), nil
}
