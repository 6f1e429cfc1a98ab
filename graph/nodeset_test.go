package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/semshacl/term"
)

func TestNodeSet_AddDedup(t *testing.T) {
	s := NewNodeSet()
	assert.True(t, s.Add(iri("a")))
	assert.False(t, s.Add(iri("a")))
	assert.True(t, s.Add(iri("b")))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(iri("a")))
	assert.False(t, s.Contains(iri("c")))
}

func TestNodeSet_InsertionOrder(t *testing.T) {
	s := NewNodeSet(iri("c"), iri("a"), iri("b"), iri("a"))
	assert.Equal(t, []term.Term{iri("c"), iri("a"), iri("b")}, s.Terms())
}

func TestNodeSet_Union(t *testing.T) {
	a := NewNodeSet(iri("1"), iri("2"))
	b := NewNodeSet(iri("2"), iri("3"))
	a.AddSet(b)
	assert.Equal(t, []term.Term{iri("1"), iri("2"), iri("3")}, a.Terms())

	a.AddSet(nil)
	assert.Equal(t, 3, a.Len())
}
