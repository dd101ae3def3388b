package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

const jsonldSchema = `{
  "@context": {
    "ex": "http://example.org/schema#",
    "rdfs": "http://www.w3.org/2000/01/rdf-schema#",
    "xsd": {"@id": "http://www.w3.org/2001/XMLSchema#"}
  },
  "@graph": [
    {
      "@id": "ex:Category",
      "@type": "rdfs:Class",
      "rdfs:label": "Category"
    },
    {
      "@id": "http://example.org/data#product1",
      "@type": "ex:Product",
      "ex:productName": "Laptop",
      "ex:price": 999.5,
      "ex:inStock": true,
      "ex:quantity": 12,
      "ex:belongsToCategory": {"@id": "http://example.org/data#electronics"}
    }
  ]
}`

func TestJSONLDParser_Graph(t *testing.T) {
	doc, err := Parse(jsonldSchema, FormatJSONLD)
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/schema#", doc.Namespaces["ex"])
	assert.Equal(t, vocab.XSDNamespace, doc.Namespaces["xsd"])

	byPredicate := make(map[string]Triple)
	for _, triple := range doc.Triples {
		byPredicate[triple.Predicate] = triple
	}

	name := byPredicate["http://example.org/schema#productName"]
	assert.Equal(t, Literal{Lexical: "Laptop"}, name.Object)

	price := byPredicate["http://example.org/schema#price"]
	assert.Equal(t, Literal{Lexical: "999.5", Datatype: vocab.XSDDecimal}, price.Object)

	quantity := byPredicate["http://example.org/schema#quantity"]
	assert.Equal(t, Literal{Lexical: "12", Datatype: vocab.XSDInteger}, quantity.Object)

	stock := byPredicate["http://example.org/schema#inStock"]
	assert.Equal(t, Literal{Lexical: "true", Datatype: vocab.XSDBoolean}, stock.Object)

	cat := byPredicate["http://example.org/schema#belongsToCategory"]
	assert.Equal(t, Resource{URI: "http://example.org/data#electronics"}, cat.Object)
}

func TestJSONLDParser_DeterministicTripleOrder(t *testing.T) {
	// Entity keys live in a Go map; emission must not follow its random
	// iteration order.
	doc, err := Parse(jsonldSchema, FormatJSONLD)
	require.NoError(t, err)

	var product1 []string
	for _, triple := range doc.Triples {
		if triple.Subject == "http://example.org/data#product1" && triple.Predicate != vocab.Type {
			product1 = append(product1, triple.Predicate)
		}
	}

	assert.Equal(t, []string{
		"http://example.org/schema#belongsToCategory",
		"http://example.org/schema#inStock",
		"http://example.org/schema#price",
		"http://example.org/schema#productName",
		"http://example.org/schema#quantity",
	}, product1)
}

func TestJSONLDParser_TypeAssertions(t *testing.T) {
	doc, err := Parse(jsonldSchema, FormatJSONLD)
	require.NoError(t, err)

	var types []Triple
	for _, triple := range doc.Triples {
		if triple.Predicate == vocab.Type {
			types = append(types, triple)
		}
	}
	require.Len(t, types, 2)

	found := make(map[string]string)
	for _, triple := range types {
		found[triple.Subject] = triple.Object.(Resource).URI
	}
	assert.Equal(t, vocab.Class, found["http://example.org/schema#Category"])
	assert.Equal(t, "http://example.org/schema#Product", found["http://example.org/data#product1"])
}

func TestJSONLDParser_SingleObject(t *testing.T) {
	input := `{
  "@context": {"ex": "http://ex.org/"},
  "@id": "ex:thing",
  "@type": "ex:Widget",
  "ex:name": "solo"
}`
	doc, err := Parse(input, FormatJSONLD)
	require.NoError(t, err)
	assert.Len(t, doc.Triples, 2)
}

func TestJSONLDParser_ValueWrapper(t *testing.T) {
	input := `{
  "@context": {"ex": "http://ex.org/", "xsd": "http://www.w3.org/2001/XMLSchema#"},
  "@id": "ex:order1",
  "ex:placedAt": {"@value": "2024-01-15T10:30:00", "@type": "xsd:dateTime"}
}`
	doc, err := Parse(input, FormatJSONLD)
	require.NoError(t, err)
	require.Len(t, doc.Triples, 1)

	lit := doc.Triples[0].Object.(Literal)
	assert.Equal(t, "2024-01-15T10:30:00", lit.Lexical)
	assert.Equal(t, vocab.XSDDateTime, lit.Datatype)
}

func TestJSONLDParser_Garbled(t *testing.T) {
	_, err := Parse("{not json", FormatJSONLD)
	assert.Error(t, err)
}

func TestJSONLDParser_Empty(t *testing.T) {
	doc, err := Parse("", FormatJSONLD)
	require.NoError(t, err)
	assert.Empty(t, doc.Triples)
}
