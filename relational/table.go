package relational

// System column names present on every entity table.
const (
	ColumnID        = "ID"
	ColumnSourceURI = "SOURCE_URI"
	ColumnClassURI  = "CLASS_URI"
	ColumnCreatedAt = "CREATED_AT"
	ColumnUpdatedAt = "UPDATED_AT"
)

// RelationshipsTableName is the fixed universal join table. Exactly one is
// emitted per schema regardless of how many object properties exist.
const RelationshipsTableName = "RELATIONSHIPS"

// Column names of the relationships table.
const (
	ColumnSubjectURI       = "SUBJECT_URI"
	ColumnPredicateURI     = "PREDICATE_URI"
	ColumnObjectURI        = "OBJECT_URI"
	ColumnRelationshipType = "RELATIONSHIP_TYPE"
)

// Column is one column of a derived table.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// SourceProperty is the URI of the RDF property the column derives
	// from; empty for system and audit columns.
	SourceProperty string `json:"source_property,omitempty"`

	Comment string `json:"comment,omitempty"`
}

// Table is one derived relational table.
type Table struct {
	Name       string   `json:"name"`
	ClassURI   string   `json:"class_uri,omitempty"`
	Comment    string   `json:"comment,omitempty"`
	Columns    []Column `json:"columns"`
	PrimaryKey string   `json:"primary_key"`
}

// Column returns the column with the given name, if present.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Target is the naming context interpolated into generated DDL. Its fields
// are sanitized like any other identifier; beyond that they are opaque.
type Target struct {
	Database     string
	Schema       string
	SemanticView string
}

// DefaultTarget returns the demo naming context.
func DefaultTarget() Target {
	return Target{
		Database:     "RDF_SEMANTIC_DB",
		Schema:       "SEMANTIC_VIEWS",
		SemanticView: "RDF_SEMANTIC_VIEW",
	}
}

// Qualify returns the fully qualified name of an object in this target.
func (t Target) Qualify(name string) string {
	return SanitizeIdentifier(t.Database) + "." + SanitizeIdentifier(t.Schema) + "." + name
}
