// Package loader turns RDF instance triples into insert-ready row batches
// and relationship edges. Values stay in their original lexical form; type
// coercion belongs to the load step, not the in-memory model.
package loader

import (
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/semview/rdf"
	"github.com/c360studio/semview/relational"
	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// Row is one entity instance: a synthetic identifier, the original subject
// URI, and the literal-valued predicates as named column values.
type Row struct {
	ID        string            `json:"id"`
	SourceURI string            `json:"source_uri"`
	ClassURI  string            `json:"class_uri"`
	Columns   map[string]string `json:"columns"`
}

// RowBatch groups the rows of one entity type for bulk insertion.
type RowBatch struct {
	ClassURI string `json:"class_uri"`
	Table    string `json:"table"`
	Rows     []*Row `json:"rows"`
}

// Edge is one relationship record destined for the RELATIONSHIPS table.
type Edge struct {
	ID               string `json:"id"`
	SubjectURI       string `json:"subject_uri"`
	PredicateURI     string `json:"predicate_uri"`
	ObjectURI        string `json:"object_uri"`
	RelationshipType string `json:"relationship_type"`
}

// Stats counts what the load pass produced.
type Stats struct {
	EntityCount int `json:"entity_count"`
	RowCount    int `json:"row_count"`
	EdgeCount   int `json:"edge_count"`
}

// Result is the loader's output: one batch per detected entity type, in
// first-encounter order, plus one global edge list.
type Result struct {
	Batches []*RowBatch
	Edges   []Edge
	Stats   Stats
}

// Load groups instance subjects by their declared types and splits each
// subject's predicates into column values (literal objects) and
// relationship edges (resource objects). Subjects typed only with
// RDF/RDFS/OWL system vocabulary are schema declarations and are skipped.
func Load(doc *rdf.Document) *Result {
	res := &Result{}
	if doc == nil {
		return res
	}

	// Pass 1: subject -> declared user types, in encounter order.
	type entity struct {
		uri   string
		types []string
	}
	var order []string
	entities := make(map[string]*entity)
	for _, t := range doc.Triples {
		if t.Predicate != vocab.Type {
			continue
		}
		res, ok := t.Object.(rdf.Resource)
		if !ok || vocab.IsSystemClass(res.URI) {
			continue
		}
		e, seen := entities[t.Subject]
		if !seen {
			e = &entity{uri: t.Subject}
			entities[t.Subject] = e
			order = append(order, t.Subject)
		}
		e.types = append(e.types, res.URI)
	}

	// Pass 2: build one row per (entity, type) and collect edges.
	batches := make(map[string]*RowBatch)
	rowIndex := make(map[string]map[string]*Row) // class URI -> subject -> row

	ensureRow := func(classURI, subject string) *Row {
		batch, ok := batches[classURI]
		if !ok {
			batch = &RowBatch{
				ClassURI: classURI,
				Table:    relational.SanitizeIdentifier(vocab.LocalName(classURI)),
			}
			batches[classURI] = batch
			rowIndex[classURI] = make(map[string]*Row)
			res.Batches = append(res.Batches, batch)
		}
		if row, ok := rowIndex[classURI][subject]; ok {
			return row
		}
		row := &Row{
			ID:        EntityID(subject),
			SourceURI: subject,
			ClassURI:  classURI,
			Columns:   make(map[string]string),
		}
		batch.Rows = append(batch.Rows, row)
		rowIndex[classURI][subject] = row
		return row
	}

	for _, subject := range order {
		e := entities[subject]
		for _, classURI := range e.types {
			ensureRow(classURI, subject)
		}
	}

	for _, t := range doc.Triples {
		e, ok := entities[t.Subject]
		if !ok || t.Predicate == vocab.Type {
			continue
		}
		switch obj := t.Object.(type) {
		case rdf.Literal:
			column := relational.SanitizeIdentifier(vocab.LocalName(t.Predicate))
			for _, classURI := range e.types {
				rowIndex[classURI][t.Subject].Columns[column] = obj.Lexical
			}
		case rdf.Resource:
			res.Edges = append(res.Edges, Edge{
				ID:               strings.ToUpper(uuid.NewString()[:8]),
				SubjectURI:       t.Subject,
				PredicateURI:     t.Predicate,
				ObjectURI:        obj.URI,
				RelationshipType: vocab.LocalName(t.Predicate),
			})
		}
	}

	for _, b := range res.Batches {
		res.Stats.RowCount += len(b.Rows)
	}
	res.Stats.EntityCount = len(order)
	res.Stats.EdgeCount = len(res.Edges)
	return res
}

// EntityID derives a stable synthetic identifier from the subject URI's
// local name, upper-cased. A subject with an empty local name falls back
// to a random short identifier.
func EntityID(subjectURI string) string {
	local := vocab.LocalName(subjectURI)
	if local == "" {
		return strings.ToUpper(uuid.NewString()[:8])
	}
	return strings.ToUpper(local)
}
