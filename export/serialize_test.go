package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semview/rdf"
	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

func sampleDocument() *rdf.Document {
	doc := rdf.NewDocument()
	doc.Namespaces["ex"] = "http://example.org/shop#"
	doc.Triples = []rdf.Triple{
		{Subject: "http://example.org/shop#widget1", Predicate: vocab.Type, Object: rdf.Resource{URI: "http://example.org/shop#Product"}},
		{Subject: "http://example.org/shop#widget1", Predicate: "http://example.org/shop#price", Object: rdf.Literal{Lexical: "29.99", Datatype: vocab.XSDDecimal}},
		{Subject: "http://example.org/shop#widget1", Predicate: vocab.Label, Object: rdf.Literal{Lexical: "Widget", Language: "en"}},
		{Subject: "http://example.org/shop#widget1", Predicate: "http://example.org/shop#belongsToCategory", Object: rdf.Resource{URI: "http://example.org/shop#tools"}},
	}
	return doc
}

func TestSerializeTurtle(t *testing.T) {
	out, err := Serialize(sampleDocument(), rdf.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix ex: <http://example.org/shop#> .")
	assert.Contains(t, out, "<http://example.org/shop#widget1>")
	assert.Contains(t, out, "a <http://example.org/shop#Product> ;")
	assert.Contains(t, out, `"29.99"^^<http://www.w3.org/2001/XMLSchema#decimal>`)
	assert.Contains(t, out, `"Widget"@en`)
	assert.Contains(t, out, "<http://example.org/shop#tools> .")
}

func TestSerializeTurtleRoundTrip(t *testing.T) {
	out, err := Serialize(sampleDocument(), rdf.FormatTurtle)
	require.NoError(t, err)

	doc, err := rdf.Parse(out, rdf.FormatTurtle)
	require.NoError(t, err)
	assert.Len(t, doc.Triples, 4)
}

func TestSerializeNTriples(t *testing.T) {
	out, err := Serialize(sampleDocument(), rdf.FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out,
		"<http://example.org/shop#widget1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/shop#Product> .")
	assert.Contains(t, out,
		`<http://example.org/shop#widget1> <http://example.org/shop#price> "29.99"^^<http://www.w3.org/2001/XMLSchema#decimal> .`)
}

func TestSerializeJSONLD(t *testing.T) {
	out, err := Serialize(sampleDocument(), rdf.FormatJSONLD)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	graph, ok := payload["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graph, 1)

	node := graph[0].(map[string]any)
	assert.Equal(t, "http://example.org/shop#widget1", node["@id"])
	assert.Equal(t, []any{"http://example.org/shop#Product"}, node["@type"])

	price := node["http://example.org/shop#price"].(map[string]any)
	assert.Equal(t, "29.99", price["@value"])
}

func TestSerializeJSONLDRepeatedPredicate(t *testing.T) {
	doc := rdf.NewDocument()
	doc.Triples = []rdf.Triple{
		{Subject: "http://example.org/s", Predicate: "http://example.org/p", Object: rdf.Literal{Lexical: "one"}},
		{Subject: "http://example.org/s", Predicate: "http://example.org/p", Object: rdf.Literal{Lexical: "two"}},
	}

	out, err := Serialize(doc, rdf.FormatJSONLD)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	node := payload["@graph"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"one", "two"}, node["http://example.org/p"])
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	_, err := Serialize(sampleDocument(), rdf.FormatRDFXML)
	assert.Error(t, err)
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `"say \"hi\""`, quoteLiteral(`say "hi"`))
	assert.Equal(t, `"a\nb"`, quoteLiteral("a\nb"))
	assert.Equal(t, `"back\\slash"`, quoteLiteral(`back\slash`))
}

func TestFormatRegistry(t *testing.T) {
	info, err := Info(rdf.FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, "text/turtle", info.MIMEType)
	assert.Equal(t, ".ttl", info.Extension)

	_, err = Info(rdf.FormatRDFXML)
	assert.Error(t, err)

	assert.Equal(t, []string{"jsonld", "ntriples", "turtle"}, SupportedFormats())
}
