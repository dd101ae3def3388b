package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semview/rdf"
	"github.com/c360studio/semview/relational"
)

const catalogSchema = `@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.org/schema#> .

ex:Product a rdfs:Class ; rdfs:label "Product" .
ex:Category a rdfs:Class ; rdfs:label "Category" .
ex:Customer a rdfs:Class ; rdfs:label "Customer" .

ex:productName a rdf:Property ; rdfs:domain ex:Product ; rdfs:range xsd:string .
ex:price a rdf:Property ; rdfs:domain ex:Product ; rdfs:range xsd:decimal .
ex:belongsToCategory a rdf:Property ; rdfs:domain ex:Product ; rdfs:range ex:Category .
`

func newPipeline() *Pipeline {
	return New(relational.DefaultTarget())
}

func TestConvertSchema_EndToEnd(t *testing.T) {
	res := newPipeline().ConvertSchema(catalogSchema, rdf.FormatTurtle)

	require.True(t, res.Success)
	assert.Empty(t, res.Error)

	// Three entity tables plus RELATIONSHIPS, in dependency order.
	require.Len(t, res.DDL, 4)
	assert.Contains(t, res.DDL[0], "PRODUCT")
	assert.Contains(t, res.DDL[3], "RELATIONSHIPS")

	assert.Equal(t, 4, res.Summary.TableCount)
	assert.Equal(t, 1, res.Summary.RelationshipCount)
	assert.Equal(t, 9, res.Summary.MetricCount)
	assert.NotEmpty(t, res.ViewDDL)
}

func TestConvertSchema_EmptyDocument(t *testing.T) {
	res := newPipeline().ConvertSchema("", rdf.FormatTurtle)

	// An empty document is a success with near-empty output, not an error.
	require.True(t, res.Success)
	assert.True(t, res.Model.IsEmpty())
	assert.Equal(t, 0, res.Model.Stats.TripleCount)
	require.Len(t, res.Tables, 1) // RELATIONSHIPS only
	assert.Len(t, res.Overlay.Relationships, 2)
}

func TestConvertSchema_ParseFailureEnvelope(t *testing.T) {
	res := newPipeline().ConvertSchema("{broken", rdf.FormatJSONLD)

	require.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	// The envelope keeps the success shape: empty, not omitted.
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ddl":[]`)
	assert.Contains(t, string(data), `"tables":[]`)
	assert.Contains(t, string(data), `"view_ddl":""`)
	assert.Contains(t, string(data), `"dimensions":[]`)

	// Success and error envelopes expose identical key sets.
	var errKeys, okKeys map[string]any
	require.NoError(t, json.Unmarshal(data, &errKeys))
	okData, err := json.Marshal(newPipeline().ConvertSchema(catalogSchema, rdf.FormatTurtle))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(okData, &okKeys))
	for key := range okKeys {
		assert.Contains(t, errKeys, key)
	}
}

func TestConvertSchema_Deterministic(t *testing.T) {
	a := newPipeline().ConvertSchema(catalogSchema, rdf.FormatTurtle)
	b := newPipeline().ConvertSchema(catalogSchema, rdf.FormatTurtle)
	assert.Equal(t, strings.Join(a.DDL, "\n"), strings.Join(b.DDL, "\n"))
	assert.Equal(t, a.ViewDDL, b.ViewDDL)
}

func TestLoadInstances(t *testing.T) {
	input := `@prefix ex: <http://example.org/schema#> .
@prefix inst: <http://example.org/data#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
inst:product1 a ex:Product ; ex:price "29.99"^^xsd:decimal ; ex:belongsToCategory inst:electronics .
`
	res := newPipeline().LoadInstances(input, rdf.FormatTurtle)

	require.True(t, res.Success)
	require.Len(t, res.Batches, 1)
	assert.Equal(t, "29.99", res.Batches[0].Rows[0].Columns["PRICE"])
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "belongsToCategory", res.Edges[0].RelationshipType)
}

func TestLoadInstances_Garbled(t *testing.T) {
	res := newPipeline().LoadInstances("<bad", rdf.FormatRDFXML)
	require.False(t, res.Success)
	assert.NotNil(t, res.Batches)
	assert.NotNil(t, res.Edges)
}

func TestConvertGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.ttl"), []byte(catalogSchema), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jsonld"), []byte("{nope"), 0o644))

	results, err := newPipeline().ConvertGlob(filepath.Join(dir, "*.*"))
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := make(map[string]FileResult)
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	// One bad file does not abort the batch.
	assert.True(t, byName["good.ttl"].Schema.Success)
	assert.False(t, byName["bad.jsonld"].Schema.Success)
	assert.Equal(t, rdf.FormatTurtle, byName["good.ttl"].Format)
	assert.Equal(t, rdf.FormatJSONLD, byName["bad.jsonld"].Format)
}
