package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/xsd"
)

func TestDocument_Graph(t *testing.T) {
	doc := Document{
		Prefixes: map[string]string{
			"ex":  "http://example.com/",
			"xsd": xsd.Namespace,
		},
		Triples: []TripleSpec{
			{Subject: "ex:alice", Predicate: "ex:knows", Object: "ex:bob"},
			{Subject: "ex:alice", Predicate: "ex:name", Object: map[string]any{"value": "Alice"}},
			{Subject: "ex:alice", Predicate: "ex:age", Object: 30},
			{Subject: "ex:alice", Predicate: "ex:active", Object: true},
			{Subject: "_:b1", Predicate: "ex:label", Object: map[string]any{"value": "chat", "lang": "fr"}},
			{Subject: "ex:alice", Predicate: "ex:height", Object: map[string]any{"value": "1.8", "datatype": "xsd:decimal"}},
			{Subject: "http://example.com/carol", Predicate: "ex:knows", Object: "_:b1"},
		},
	}

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 7, g.Len())

	alice := term.NewIRI("http://example.com/alice")
	assert.True(t, g.HasMatch(alice, term.NewIRI("http://example.com/knows"), term.NewIRI("http://example.com/bob")))
	assert.True(t, g.HasMatch(alice, term.NewIRI("http://example.com/name"), term.NewLiteral("Alice")))
	assert.True(t, g.HasMatch(alice, term.NewIRI("http://example.com/age"), term.Int(30)))
	assert.True(t, g.HasMatch(alice, term.NewIRI("http://example.com/active"), term.Bool(true)))
	assert.True(t, g.HasMatch(term.NewBlankNodeWithLabel("b1"), term.NewIRI("http://example.com/label"), term.LangLiteral("chat", "fr")))
	assert.True(t, g.HasMatch(alice, term.NewIRI("http://example.com/height"), term.TypedLiteral("1.8", xsd.Decimal)))
	assert.True(t, g.HasMatch(term.NewIRI("http://example.com/carol"), graph.Any, term.NewBlankNodeWithLabel("b1")))
}

func TestDocument_FloatObjects(t *testing.T) {
	doc := Document{
		Prefixes: map[string]string{"ex": "http://example.com/"},
		Triples: []TripleSpec{
			{Subject: "ex:a", Predicate: "ex:whole", Object: float64(3)},
			{Subject: "ex:a", Predicate: "ex:fraction", Object: 3.5},
		},
	}

	g, err := doc.Graph()
	require.NoError(t, err)

	ex := func(l string) term.Term { return term.NewIRI("http://example.com/" + l) }
	assert.True(t, g.HasMatch(ex("a"), ex("whole"), term.TypedLiteral("3", xsd.Integer)))
	assert.True(t, g.HasMatch(ex("a"), ex("fraction"), term.TypedLiteral("3.5", xsd.Double)))
}

func TestDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "unknown prefix",
			doc: Document{
				Triples: []TripleSpec{{Subject: "ex:a", Predicate: "ex:p", Object: "ex:b"}},
			},
			want: "unknown prefix",
		},
		{
			name: "bare string is not a term",
			doc: Document{
				Prefixes: map[string]string{"ex": "http://example.com/"},
				Triples:  []TripleSpec{{Subject: "alice", Predicate: "ex:p", Object: "ex:b"}},
			},
			want: "not an IRI or CURIE",
		},
		{
			name: "literal map without value",
			doc: Document{
				Prefixes: map[string]string{"ex": "http://example.com/"},
				Triples:  []TripleSpec{{Subject: "ex:a", Predicate: "ex:p", Object: map[string]any{"lang": "fr"}}},
			},
			want: "missing value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Graph()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
