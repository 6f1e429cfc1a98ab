package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/source"
)

// YAMLParser decodes YAML graph documents.
type YAMLParser struct{}

// NewYAMLParser creates a YAML graph-document parser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements Parser.
func (p *YAMLParser) Parse(filename string, content []byte) (*graph.Graph, error) {
	var doc source.Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", filename, err)
	}
	return g, nil
}

// CanParse implements Parser.
func (p *YAMLParser) CanParse(mimeType string) bool {
	return mimeType == "application/yaml" || mimeType == "text/yaml" || mimeType == "text/x-yaml"
}

// MimeType implements Parser.
func (p *YAMLParser) MimeType() string {
	return "application/yaml"
}
