package shacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/rdf"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

func rdfType() term.Term { return term.NewIRI(rdf.Type) }

func TestShape_Defaults(t *testing.T) {
	g := graph.New()
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	assert.Equal(t, term.NewIRI(sh.Violation), s.Severity)
	assert.False(t, s.Deactivated)
	assert.False(t, s.IsPropertyShape())
	assert.Empty(t, s.Constraints)
}

func TestShape_SeverityAndDeactivated(t *testing.T) {
	g := graph.New()
	g.Add(
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.Severity), Object: term.NewIRI(sh.Warning)},
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.Deactivated), Object: term.Bool(true)},
	)
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	assert.Equal(t, term.NewIRI(sh.Warning), s.Severity)
	assert.True(t, s.Deactivated)
}

func TestShape_PropertyShape(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.Path), Object: iri("name")})
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	assert.True(t, s.IsPropertyShape())
	assert.Equal(t, Predicate{IRI: iri("name")}, s.Path())
	assert.Equal(t, iri("name"), s.PathNode())
}

func TestShape_UnsupportedPathFails(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.Path), Object: term.NewLiteral("bad")})
	sg := New(g, nil)

	_, err := sg.Shape(iri("shape"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported property path")
}

func TestShape_RepeatedSingleParameterConstraint(t *testing.T) {
	g := graph.New()
	declareComponent(g, iri("ClassComponent"), paramDecl{path: iri("class")})
	g.Add(
		graph.Triple{Subject: iri("shape"), Predicate: iri("class"), Object: iri("Person")},
		graph.Triple{Subject: iri("shape"), Predicate: iri("class"), Object: iri("Agent")},
	)
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	require.Len(t, s.Constraints, 2, "one constraint per asserted value")

	v1, ok := s.Constraints[0].ParameterValue("class")
	require.True(t, ok)
	v2, ok := s.Constraints[1].ParameterValue("class")
	require.True(t, ok)
	assert.ElementsMatch(t, []term.Term{iri("Person"), iri("Agent")}, []term.Term{v1, v2})
}

func TestShape_MultiParameterConstraint(t *testing.T) {
	g := graph.New()
	declareComponent(g, iri("PatternComponent"),
		paramDecl{path: iri("pattern")},
		paramDecl{path: iri("flags"), optional: true},
	)

	t.Run("complete declaration yields one constraint", func(t *testing.T) {
		shapes := graph.New()
		shapes.AddGraph(g)
		shapes.Add(
			graph.Triple{Subject: iri("shape"), Predicate: iri("pattern"), Object: term.NewLiteral("^a")},
			graph.Triple{Subject: iri("shape"), Predicate: iri("flags"), Object: term.NewLiteral("i")},
		)
		sg := New(shapes, nil)

		s, err := sg.Shape(iri("shape"))
		require.NoError(t, err)
		require.Len(t, s.Constraints, 1, "multi-parameter component binds once per shape")

		pattern, ok := s.Constraints[0].ParameterValue("pattern")
		require.True(t, ok)
		assert.Equal(t, term.NewLiteral("^a"), pattern)
		flags, ok := s.Constraints[0].ParameterValue("flags")
		require.True(t, ok)
		assert.Equal(t, term.NewLiteral("i"), flags)
	})

	t.Run("unset optional parameter is absent", func(t *testing.T) {
		shapes := graph.New()
		shapes.AddGraph(g)
		shapes.Add(graph.Triple{Subject: iri("shape"), Predicate: iri("pattern"), Object: term.NewLiteral("^a")})
		sg := New(shapes, nil)

		s, err := sg.Shape(iri("shape"))
		require.NoError(t, err)
		require.Len(t, s.Constraints, 1)

		_, ok := s.Constraints[0].ParameterValue("flags")
		assert.False(t, ok)
	})
}

func TestShape_IncompleteMultiParameterSkipped(t *testing.T) {
	g := graph.New()
	declareComponent(g, iri("RangeComponent"),
		paramDecl{path: iri("lower")},
		paramDecl{path: iri("upper")},
	)
	g.Add(graph.Triple{Subject: iri("shape"), Predicate: iri("lower"), Object: term.Int(1)})
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	assert.Empty(t, s.Constraints, "incomplete declarations are silently skipped")
}

func TestShape_TargetNodes(t *testing.T) {
	shapes := graph.New()
	shapes.Add(
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.TargetClass), Object: iri("Person")},
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.TargetNode), Object: iri("special")},
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.TargetSubjectsOf), Object: iri("employs")},
		graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.TargetObjectsOf), Object: iri("employs")},
	)
	sg := New(shapes, nil)
	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)

	data := graph.New()
	data.Add(
		graph.Triple{Subject: iri("alice"), Predicate: rdfType(), Object: iri("Person")},
		// A second type triple must not duplicate alice.
		graph.Triple{Subject: iri("alice"), Predicate: rdfType(), Object: iri("Person")},
		graph.Triple{Subject: iri("acme"), Predicate: iri("employs"), Object: iri("bob")},
	)

	got := s.TargetNodes(data)
	assert.ElementsMatch(t, []term.Term{iri("alice"), iri("special"), iri("acme"), iri("bob")}, got)
}

func TestShape_TargetNodesImplicitClass(t *testing.T) {
	shapes := graph.New()
	sg := New(shapes, nil)
	s, err := sg.Shape(iri("Person"))
	require.NoError(t, err)

	data := graph.New()
	data.Add(
		graph.Triple{Subject: iri("alice"), Predicate: rdfType(), Object: iri("Person")},
		graph.Triple{Subject: iri("bob"), Predicate: rdfType(), Object: iri("Robot")},
	)

	assert.Equal(t, []term.Term{iri("alice")}, s.TargetNodes(data))
}

func TestShape_ValueNodes(t *testing.T) {
	shapes := graph.New()
	shapes.Add(graph.Triple{Subject: iri("propShape"), Predicate: term.NewIRI(sh.Path), Object: iri("name")})
	sg := New(shapes, nil)

	data := graph.New()
	data.Add(graph.Triple{Subject: iri("alice"), Predicate: iri("name"), Object: term.NewLiteral("Alice")})

	t.Run("property shape follows its path", func(t *testing.T) {
		s, err := sg.Shape(iri("propShape"))
		require.NoError(t, err)
		assert.Equal(t, []term.Term{term.NewLiteral("Alice")}, s.ValueNodes(iri("alice"), data))
		assert.Empty(t, s.ValueNodes(iri("bob"), data), "no path solutions means no value nodes")
	})

	t.Run("node shape values are the focus node", func(t *testing.T) {
		s, err := sg.Shape(iri("nodeShape"))
		require.NoError(t, err)
		assert.Equal(t, []term.Term{iri("alice")}, s.ValueNodes(iri("alice"), data))
	})
}

func TestShape_Messages(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{Subject: iri("shape"), Predicate: term.NewIRI(sh.Message), Object: term.NewLiteral("custom message")})
	sg := New(g, nil)

	s, err := sg.Shape(iri("shape"))
	require.NoError(t, err)
	assert.Equal(t, []string{"custom message"}, s.Messages)
}
