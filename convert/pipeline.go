// Package convert orchestrates the conversion pipeline: parse an RDF
// document, extract its schema, and generate relational DDL plus the
// semantic overlay; independently, load instance documents into row and
// edge batches.
//
// Pipelines are pure values with no shared state: any number of documents
// may be converted in parallel by independent calls. Every public entry
// point returns a result envelope rather than raising: on failure the
// envelope carries the error message and the same-shaped, empty
// collections, so callers serialize success and failure uniformly.
package convert

import (
	"github.com/c360studio/semview/loader"
	"github.com/c360studio/semview/rdf"
	"github.com/c360studio/semview/relational"
	"github.com/c360studio/semview/schema"
	"github.com/c360studio/semview/semantic"
)

// Summary is the metadata block reported alongside generated DDL.
type Summary struct {
	TableCount        int `yaml:"table_count" json:"table_count"`
	RelationshipCount int `yaml:"relationship_count" json:"relationship_count"`
	DimensionCount    int `yaml:"dimension_count" json:"dimension_count"`
	FactCount         int `yaml:"fact_count" json:"fact_count"`
	MetricCount       int `yaml:"metric_count" json:"metric_count"`
}

// SchemaResult is the envelope for a schema conversion run.
type SchemaResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Model   *schema.Model      `json:"-"`
	Tables  []relational.Table `json:"tables"`
	DDL     []string           `json:"ddl"`
	ViewDDL string             `json:"view_ddl"`
	Overlay *semantic.Overlay  `json:"overlay"`
	Summary Summary            `json:"summary"`
}

// LoadResult is the envelope for an instance load run.
type LoadResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Batches []*loader.RowBatch `json:"batches"`
	Edges   []loader.Edge      `json:"edges"`
	Stats   loader.Stats       `json:"stats"`
}

// Pipeline converts documents for one naming context. The zero value is
// not usable; construct with New.
type Pipeline struct {
	target  relational.Target
	catalog []semantic.Metric
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCatalog overrides the default metrics catalog.
func WithCatalog(catalog []semantic.Metric) Option {
	return func(p *Pipeline) { p.catalog = catalog }
}

// New creates a pipeline for the given naming context.
func New(target relational.Target, opts ...Option) *Pipeline {
	p := &Pipeline{target: target}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ConvertSchema runs parse, extract, generate for one schema document.
// A parse failure yields an error envelope; an empty document is a
// legitimate degenerate case and yields a near-empty success envelope.
func (p *Pipeline) ConvertSchema(content string, format rdf.Format) *SchemaResult {
	doc, err := rdf.Parse(content, format)
	if err != nil {
		return errorSchemaResult(err)
	}

	model := schema.Extract(doc)
	rg := relational.NewGenerator(p.target)
	tables := rg.Tables(model)
	ddl := rg.DDL(tables)

	sg := semantic.NewGenerator(p.catalog)
	overlay := sg.Generate(model, tables, p.target.SemanticView)

	return &SchemaResult{
		Success: true,
		Model:   model,
		Tables:  tables,
		DDL:     ddl,
		ViewDDL: semantic.ViewDDL(overlay, p.target),
		Overlay: overlay,
		Summary: Summary{
			TableCount:        len(tables),
			RelationshipCount: len(overlay.Relationships),
			DimensionCount:    len(overlay.Dimensions),
			FactCount:         len(overlay.Facts),
			MetricCount:       len(overlay.Metrics),
		},
	}
}

// LoadInstances parses an instance document and groups it into row and
// edge batches. Subjects typed only with system vocabulary never become
// rows.
func (p *Pipeline) LoadInstances(content string, format rdf.Format) *LoadResult {
	doc, err := rdf.Parse(content, format)
	if err != nil {
		return errorLoadResult(err)
	}

	res := loader.Load(doc)
	return &LoadResult{
		Success: true,
		Batches: res.Batches,
		Edges:   res.Edges,
		Stats:   res.Stats,
	}
}

// errorSchemaResult builds a failure envelope whose collections are empty
// but present, so serialized output keeps the success shape key for key.
func errorSchemaResult(err error) *SchemaResult {
	return &SchemaResult{
		Error:  err.Error(),
		Tables: []relational.Table{},
		DDL:    []string{},
		Overlay: &semantic.Overlay{
			Tables:        []semantic.TableSemantics{},
			Dimensions:    []semantic.Dimension{},
			Facts:         []semantic.Fact{},
			Metrics:       []semantic.Metric{},
			Relationships: []semantic.JoinRule{},
		},
	}
}

func errorLoadResult(err error) *LoadResult {
	return &LoadResult{
		Error:   err.Error(),
		Batches: []*loader.RowBatch{},
		Edges:   []loader.Edge{},
	}
}
