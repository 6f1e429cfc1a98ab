package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/rdf"
	"github.com/c360studio/semshacl/vocabulary/rdfs"
)

const ns = "http://example.com/"

func iri(local string) term.Term {
	return term.NewIRI(ns + local)
}

func TestGraph_AddDeduplicates(t *testing.T) {
	g := New()
	tr := Triple{iri("a"), iri("p"), iri("b")}
	g.Add(tr, tr, tr)
	assert.Equal(t, 1, g.Len())
}

func TestGraph_Match(t *testing.T) {
	g := New()
	g.Add(
		Triple{iri("a"), iri("p"), iri("b")},
		Triple{iri("a"), iri("q"), iri("c")},
		Triple{iri("d"), iri("p"), iri("b")},
	)

	tests := []struct {
		name    string
		s, p, o term.Term
		want    int
	}{
		{"all wildcards", Any, Any, Any, 3},
		{"by subject", iri("a"), Any, Any, 2},
		{"by predicate", Any, iri("p"), Any, 2},
		{"by object", Any, Any, iri("b"), 2},
		{"fully bound", iri("a"), iri("p"), iri("b"), 1},
		{"no match", iri("a"), iri("p"), iri("c"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, g.Match(tt.s, tt.p, tt.o), tt.want)
			assert.Equal(t, tt.want > 0, g.HasMatch(tt.s, tt.p, tt.o))
		})
	}
}

func TestGraph_One(t *testing.T) {
	g := New()
	g.Add(Triple{iri("a"), iri("p"), iri("b")})

	tr, ok := g.One(iri("a"), iri("p"), Any)
	require.True(t, ok)
	assert.Equal(t, iri("b"), tr.Object)

	_, ok = g.One(iri("z"), Any, Any)
	assert.False(t, ok)
}

func TestGraph_ObjectsSubjects(t *testing.T) {
	g := New()
	g.Add(
		Triple{iri("a"), iri("p"), iri("b")},
		Triple{iri("a"), iri("p"), iri("c")},
		Triple{iri("d"), iri("p"), iri("c")},
	)

	assert.Equal(t, []term.Term{iri("b"), iri("c")}, g.Objects(iri("a"), iri("p")))
	assert.Equal(t, []term.Term{iri("a"), iri("d")}, g.Subjects(iri("p"), iri("c")))
}

func TestGraph_List(t *testing.T) {
	g := New()
	first := term.NewIRI(rdf.First)
	rest := term.NewIRI(rdf.Rest)
	nilTerm := term.NewIRI(rdf.Nil)

	c1 := term.NewBlankNodeWithLabel("c1")
	c2 := term.NewBlankNodeWithLabel("c2")
	g.Add(
		Triple{c1, first, iri("x")},
		Triple{c1, rest, c2},
		Triple{c2, first, iri("y")},
		Triple{c2, rest, nilTerm},
	)

	items, err := g.List(c1)
	require.NoError(t, err)
	assert.Equal(t, []term.Term{iri("x"), iri("y")}, items)

	items, err = g.List(nilTerm)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.True(t, g.IsList(c1))
	assert.True(t, g.IsList(nilTerm))
	assert.False(t, g.IsList(iri("x")))
}

func TestGraph_ListMalformed(t *testing.T) {
	g := New()
	first := term.NewIRI(rdf.First)
	rest := term.NewIRI(rdf.Rest)

	broken := term.NewBlankNodeWithLabel("broken")
	g.Add(Triple{broken, first, iri("x")})
	_, err := g.List(broken)
	assert.Error(t, err)

	// Cell chain looping back on itself must not hang.
	loop := term.NewBlankNodeWithLabel("loop")
	g.Add(Triple{loop, first, iri("y")}, Triple{loop, rest, loop})
	_, err = g.List(loop)
	assert.Error(t, err)
}

func TestGraph_InstancesOf(t *testing.T) {
	g := New()
	rdfType := term.NewIRI(rdf.Type)
	subClassOf := term.NewIRI(rdfs.SubClassOf)

	g.Add(
		Triple{iri("alice"), rdfType, iri("Person")},
		Triple{iri("bob"), rdfType, iri("Employee")},
		Triple{iri("Employee"), subClassOf, iri("Person")},
		// Duplicate typing must not duplicate the instance.
		Triple{iri("alice"), rdfType, iri("Employee")},
	)

	got := g.InstancesOf(iri("Person"))
	assert.ElementsMatch(t, []term.Term{iri("alice"), iri("bob")}, got.Terms())
}

func TestGraph_InstancesOfCyclicHierarchy(t *testing.T) {
	g := New()
	rdfType := term.NewIRI(rdf.Type)
	subClassOf := term.NewIRI(rdfs.SubClassOf)

	g.Add(
		Triple{iri("A"), subClassOf, iri("B")},
		Triple{iri("B"), subClassOf, iri("A")},
		Triple{iri("x"), rdfType, iri("A")},
	)

	got := g.InstancesOf(iri("B"))
	assert.Equal(t, []term.Term{iri("x")}, got.Terms())
}
