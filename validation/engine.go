package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/shacl"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// Engine validates data graphs against one compiled shapes graph. Building
// the engine is the expensive step; a built engine is reusable across many
// data graphs.
type Engine struct {
	shapes        *shacl.ShapesGraph
	registry      shacl.ValidatorRegistry
	logger        *slog.Logger
	maxResults    int
	severityFloor term.Term
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger; defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the default validator registry.
func WithRegistry(registry shacl.ValidatorRegistry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithMaxResults caps the number of results collected per pass; 0 means
// unlimited.
func WithMaxResults(n int) Option {
	return func(e *Engine) {
		e.maxResults = n
	}
}

// WithSeverityFloor skips shapes whose severity ranks below floor
// (sh:Info < sh:Warning < sh:Violation; unrecognized severities rank with
// sh:Violation). The zero term disables filtering.
func WithSeverityFloor(floor term.Term) Option {
	return func(e *Engine) {
		e.severityFloor = floor
	}
}

// NewEngine compiles shapesGraph, merged with the built-in component
// vocabulary, into a reusable validation engine. Root shapes are built
// eagerly; shapes referenced only through nested constraints (sh:node,
// logic lists) resolve on first use, so callers running Validate
// concurrently should warm the cache with one sequential pass first.
func NewEngine(shapesGraph *graph.Graph, opts ...Option) (*Engine, error) {
	e := &Engine{
		registry: DefaultRegistry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	merged := graph.New()
	merged.AddGraph(Vocabulary())
	merged.AddGraph(shapesGraph)
	e.shapes = shacl.New(merged, e.registry)

	shapes, err := e.shapes.ShapesWithTarget()
	if err != nil {
		return nil, fmt.Errorf("compile shapes graph: %w", err)
	}
	e.logger.Debug("shapes graph compiled",
		slog.Int("components", len(e.shapes.Components())),
		slog.Int("shapes_with_target", len(shapes)))

	return e, nil
}

// Shapes exposes the compiled shapes graph.
func (e *Engine) Shapes() *shacl.ShapesGraph {
	return e.shapes
}

// Validate checks a data graph against every shape with a target and
// returns the report.
func (e *Engine) Validate(data *graph.Graph) (*Report, error) {
	roots, err := e.shapes.ShapesWithTarget()
	if err != nil {
		return nil, err
	}

	pass := &passContext{engine: e, data: data}
	report := &Report{Conforms: true}

	for _, shape := range roots {
		if shape.Deactivated || e.belowFloor(shape.Severity) {
			continue
		}
		for _, focus := range shape.TargetNodes(data) {
			e.validateFocus(pass, shape, focus, report)
			if e.maxResults > 0 && len(report.Results) >= e.maxResults {
				report.Conforms = false
				return report, nil
			}
		}
	}

	report.Conforms = len(report.Results) == 0
	return report, nil
}

func (e *Engine) belowFloor(severity term.Term) bool {
	if e.severityFloor.IsZero() {
		return false
	}
	return severityRank(severity) < severityRank(e.severityFloor)
}

func severityRank(severity term.Term) int {
	switch severity.Value {
	case sh.Info:
		return 0
	case sh.Warning:
		return 1
	default:
		return 2
	}
}

// validateFocus runs every constraint of shape against one focus node and
// records the findings.
func (e *Engine) validateFocus(pass *passContext, shape *shacl.Shape, focus term.Term, report *Report) {
	values := shape.ValueNodes(focus, pass.data)
	for _, constraint := range shape.Constraints {
		ref, _ := constraint.Component.ValidatorFor(shape)
		if ref == nil || ref.Validate == nil {
			continue
		}
		for _, failing := range ref.Validate(pass, constraint, focus, values) {
			report.Results = append(report.Results, Result{
				FocusNode:       focus,
				Path:            shape.PathNode(),
				Value:           failing,
				SourceShape:     shape.Node,
				SourceComponent: constraint.Component.IRI,
				Severity:        shape.Severity,
				Message:         resolveMessage(constraint),
			})
		}
	}
}

// passContext carries the per-pass data graph and implements
// shacl.Context for validators.
type passContext struct {
	engine *Engine
	data   *graph.Graph
}

func (p *passContext) Data() *graph.Graph {
	return p.data
}

func (p *passContext) Shapes() *shacl.ShapesGraph {
	return p.engine.shapes
}

// NestedConforms validates focus against the shape at shapeNode without
// recording results. A deactivated nested shape always conforms; a shape
// that fails to resolve never does.
func (p *passContext) NestedConforms(shapeNode, focus term.Term) bool {
	shape, err := p.engine.shapes.Shape(shapeNode)
	if err != nil {
		p.engine.logger.Warn("nested shape resolution failed",
			slog.String("shape", shapeNode.String()),
			slog.String("error", err.Error()))
		return false
	}
	if shape.Deactivated {
		return true
	}

	values := shape.ValueNodes(focus, p.data)
	for _, constraint := range shape.Constraints {
		ref, _ := constraint.Component.ValidatorFor(shape)
		if ref == nil || ref.Validate == nil {
			continue
		}
		if len(ref.Validate(p, constraint, focus, values)) > 0 {
			return false
		}
	}
	return true
}

// resolveMessage picks the shape's sh:message override when present, else
// the component message with {$param} placeholders substituted.
func resolveMessage(c *shacl.Constraint) string {
	if len(c.Shape.Messages) > 0 {
		return c.Shape.Messages[0]
	}
	msgs := c.ComponentMessages()
	if len(msgs) == 0 {
		return ""
	}
	return substituteParams(msgs[0], c)
}

func substituteParams(message string, c *shacl.Constraint) string {
	for _, p := range c.Component.Parameters {
		name := p.LocalName()
		v, ok := c.ParameterValue(name)
		if !ok {
			continue
		}
		rendered := v.String()
		if v.IsLiteral() {
			rendered = v.Value
		}
		message = strings.ReplaceAll(message, "{$"+name+"}", rendered)
	}
	return message
}
