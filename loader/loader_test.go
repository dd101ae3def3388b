package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semview/rdf"
)

const instanceData = `@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.org/schema#> .
@prefix inst: <http://example.org/data#> .

inst:product1 a ex:Product ;
    ex:productName "Laptop" ;
    ex:price "29.99"^^xsd:decimal ;
    ex:belongsToCategory inst:electronics .

inst:electronics a ex:Category ;
    ex:categoryName "Electronics" .
`

func parse(t *testing.T, input string) *rdf.Document {
	t.Helper()
	doc, err := rdf.Parse(input, rdf.FormatTurtle)
	require.NoError(t, err)
	return doc
}

func TestLoad_RowsAndEdges(t *testing.T) {
	res := Load(parse(t, instanceData))

	require.Len(t, res.Batches, 2)

	products := res.Batches[0]
	assert.Equal(t, "http://example.org/schema#Product", products.ClassURI)
	assert.Equal(t, "PRODUCT", products.Table)
	require.Len(t, products.Rows, 1)

	row := products.Rows[0]
	assert.Equal(t, "PRODUCT1", row.ID)
	assert.Equal(t, "http://example.org/data#product1", row.SourceURI)

	// Literal predicates become column values in lexical form.
	assert.Equal(t, "29.99", row.Columns["PRICE"])
	assert.Equal(t, "Laptop", row.Columns["PRODUCTNAME"])

	// The object-property triple produced an edge, not a column.
	assert.NotContains(t, row.Columns, "BELONGSTOCATEGORY")
	require.Len(t, res.Edges, 1)
	edge := res.Edges[0]
	assert.Equal(t, "http://example.org/data#product1", edge.SubjectURI)
	assert.Equal(t, "http://example.org/schema#belongsToCategory", edge.PredicateURI)
	assert.Equal(t, "http://example.org/data#electronics", edge.ObjectURI)
	assert.Equal(t, "belongsToCategory", edge.RelationshipType)
	assert.NotEmpty(t, edge.ID)
}

func TestLoad_LiteralNeverBecomesEdge(t *testing.T) {
	res := Load(parse(t, instanceData))

	// Every literal triple is exactly one column value, every resource
	// triple exactly one edge, never both.
	total := 0
	for _, b := range res.Batches {
		for _, r := range b.Rows {
			total += len(r.Columns)
		}
	}
	assert.Equal(t, 3, total) // productName, price, categoryName
	assert.Len(t, res.Edges, 1)
}

func TestLoad_SystemTypedSubjectsExcluded(t *testing.T) {
	input := `@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <http://example.org/schema#> .
@prefix inst: <http://example.org/data#> .

ex:Product a rdfs:Class .
ex:name a rdf:Property .
inst:p1 a ex:Product ; ex:name "real" .
`
	res := Load(parse(t, input))

	// Schema declarations (typed rdfs:Class / rdf:Property) are not rows.
	require.Len(t, res.Batches, 1)
	assert.Equal(t, "http://example.org/schema#Product", res.Batches[0].ClassURI)
	require.Len(t, res.Batches[0].Rows, 1)
	assert.Equal(t, "P1", res.Batches[0].Rows[0].ID)
}

func TestLoad_MultiTypedSubject(t *testing.T) {
	input := `@prefix ex: <http://ex.org/> .
@prefix inst: <http://inst.org/> .
inst:x a ex:A ; a ex:B ; ex:v "1" .
`
	res := Load(parse(t, input))

	// One row per declared type, each carrying the column values.
	require.Len(t, res.Batches, 2)
	assert.Equal(t, "1", res.Batches[0].Rows[0].Columns["V"])
	assert.Equal(t, "1", res.Batches[1].Rows[0].Columns["V"])
	assert.Equal(t, 1, res.Stats.EntityCount)
	assert.Equal(t, 2, res.Stats.RowCount)
}

func TestLoad_Empty(t *testing.T) {
	res := Load(parse(t, ""))
	assert.Empty(t, res.Batches)
	assert.Empty(t, res.Edges)
	assert.Equal(t, Stats{}, res.Stats)
}

func TestEntityID(t *testing.T) {
	assert.Equal(t, "PRODUCT1", EntityID("http://example.org/data#product1"))
	assert.Equal(t, "WIDGET", EntityID("http://example.org/data/widget"))

	// Empty local name falls back to a random short identifier.
	id := EntityID("http://example.org/data#")
	assert.Len(t, id, 8)
	assert.NotEqual(t, EntityID("http://example.org/data#"), id)
}
