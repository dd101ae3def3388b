package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

func TestNTriplesParser(t *testing.T) {
	input := `<http://example.org/data#product1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/schema#Product> .
<http://example.org/data#product1> <http://example.org/schema#price> "29.99"^^<http://www.w3.org/2001/XMLSchema#decimal> .
<http://example.org/data#product1> <http://example.org/schema#productName> "Laptop" .
`
	doc, err := Parse(input, FormatNTriples)
	require.NoError(t, err)
	require.Len(t, doc.Triples, 3)

	byPredicate := make(map[string]Value)
	for _, triple := range doc.Triples {
		assert.Equal(t, "http://example.org/data#product1", triple.Subject)
		byPredicate[triple.Predicate] = triple.Object
	}

	assert.Equal(t, Resource{URI: "http://example.org/schema#Product"}, byPredicate[vocab.Type])
	assert.Equal(t, Literal{Lexical: "29.99", Datatype: vocab.XSDDecimal}, byPredicate["http://example.org/schema#price"])
	assert.Equal(t, Literal{Lexical: "Laptop"}, byPredicate["http://example.org/schema#productName"])
}

func TestNTriplesParser_Empty(t *testing.T) {
	doc, err := Parse("", FormatNTriples)
	require.NoError(t, err)
	assert.Empty(t, doc.Triples)
}

func TestNTriplesParser_Garbled(t *testing.T) {
	_, err := Parse("this is not ntriples at all", FormatNTriples)
	assert.Error(t, err)
}
