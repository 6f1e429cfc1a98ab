package parser

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/source"
)

// JSONParser decodes JSON graph documents.
type JSONParser struct{}

// NewJSONParser creates a JSON graph-document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser.
func (p *JSONParser) Parse(filename string, content []byte) (*graph.Graph, error) {
	var doc source.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", filename, err)
	}
	return g, nil
}

// CanParse implements Parser.
func (p *JSONParser) CanParse(mimeType string) bool {
	return mimeType == "application/json" || mimeType == "text/json"
}

// MimeType implements Parser.
func (p *JSONParser) MimeType() string {
	return "application/json"
}
