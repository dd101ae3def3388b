package relational

import (
	"fmt"
	"strings"

	"github.com/c360studio/semview/schema"
)

// Generator derives table definitions and DDL from a schema model. The
// same model always yields byte-identical DDL: tables follow class
// extraction order, columns follow data-property extraction order.
type Generator struct {
	target Target
}

// NewGenerator creates a generator for the given naming context.
func NewGenerator(target Target) *Generator {
	return &Generator{target: target}
}

// Target returns the generator's naming context.
func (g *Generator) Target() Target { return g.target }

// Tables derives one table per class plus the fixed RELATIONSHIPS table,
// which is always last so entity tables are created before it.
func (g *Generator) Tables(m *schema.Model) []Table {
	tables := make([]Table, 0, len(m.Classes)+1)
	namer := NewNamer()
	// The fixed join table owns its name; a class that sanitizes to
	// RELATIONSHIPS gets a suffix instead.
	namer.Unique(RelationshipsTableName)

	for _, class := range m.Classes {
		tables = append(tables, g.entityTable(namer, class, m))
	}
	tables = append(tables, relationshipsTable())
	return tables
}

func (g *Generator) entityTable(namer *Namer, class *schema.ClassDescriptor, m *schema.Model) Table {
	comment := class.Comment
	if comment == "" {
		comment = "Table for RDF class: " + class.URI
	}

	table := Table{
		Name:       namer.Unique(class.LocalName),
		ClassURI:   class.URI,
		Comment:    comment,
		PrimaryKey: ColumnID,
		Columns: []Column{
			{Name: ColumnID, Type: TypeText, Comment: "Internal record identifier"},
			{Name: ColumnSourceURI, Type: TypeText, Comment: "Original RDF subject URI"},
			{Name: ColumnClassURI, Type: TypeText, Comment: "RDF class URI"},
		},
	}

	cols := NewNamer()
	cols.Unique(ColumnID)
	cols.Unique(ColumnSourceURI)
	cols.Unique(ColumnClassURI)
	cols.Unique(ColumnCreatedAt)
	cols.Unique(ColumnUpdatedAt)

	for _, prop := range m.DataProperties {
		if !containsURI(prop.Domains, class.URI) {
			continue
		}
		table.Columns = append(table.Columns, Column{
			Name:           cols.Unique(prop.LocalName),
			Type:           PropertyColumnType(prop),
			SourceProperty: prop.URI,
			Comment:        propertyComment(prop),
		})
	}

	table.Columns = append(table.Columns,
		Column{Name: ColumnCreatedAt, Type: TypeTimestamp, Comment: "Row creation time"},
		Column{Name: ColumnUpdatedAt, Type: TypeTimestamp, Comment: "Row update time"},
	)
	return table
}

// PropertyColumnType computes a property's column type once, globally,
// from its range list: the first datatype range wins, and a property with
// no datatype range gets the wide text default. Domains spanning multiple
// classes fan out into per-class columns sharing this one type.
func PropertyColumnType(prop *schema.PropertyDescriptor) string {
	for _, r := range prop.Ranges {
		if t, ok := columnTypes[r]; ok {
			return t
		}
	}
	return TypeText
}

func propertyComment(prop *schema.PropertyDescriptor) string {
	if prop.Comment != "" {
		return prop.Comment
	}
	if prop.Label != "" {
		return prop.Label
	}
	return "From RDF property: " + prop.URI
}

func relationshipsTable() Table {
	return Table{
		Name:       RelationshipsTableName,
		Comment:    "Generic relationship edges for all object properties",
		PrimaryKey: ColumnID,
		Columns: []Column{
			{Name: ColumnID, Type: TypeText, Comment: "Internal edge identifier"},
			{Name: ColumnSubjectURI, Type: TypeText, Comment: "Subject resource URI"},
			{Name: ColumnPredicateURI, Type: TypeText, Comment: "Predicate URI"},
			{Name: ColumnObjectURI, Type: TypeText, Comment: "Object resource URI"},
			{Name: ColumnRelationshipType, Type: TypeText, Comment: "Predicate local name"},
			{Name: ColumnCreatedAt, Type: TypeTimestamp, Comment: "Row creation time"},
		},
	}
}

// DDL renders CREATE TABLE statements in dependency order: entity tables
// first, the relationships table after them.
func (g *Generator) DDL(tables []Table) []string {
	stmts := make([]string, 0, len(tables))
	for _, table := range tables {
		stmts = append(stmts, g.createTable(table))
	}
	return stmts
}

func (g *Generator) createTable(table Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE OR REPLACE TABLE %s (\n", g.target.Qualify(table.Name))

	for i, col := range table.Columns {
		fmt.Fprintf(&sb, "    %s %s", col.Name, col.Type)
		if col.Name == table.PrimaryKey {
			sb.WriteString(" PRIMARY KEY")
		}
		if col.Name == ColumnCreatedAt || col.Name == ColumnUpdatedAt {
			sb.WriteString(" DEFAULT CURRENT_TIMESTAMP()")
		}
		if col.Comment != "" {
			fmt.Fprintf(&sb, " COMMENT = '%s'", escapeComment(col.Comment))
		}
		if i < len(table.Columns)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, ") COMMENT = '%s';", escapeComment(table.Comment))
	return sb.String()
}

func containsURI(uris []string, uri string) bool {
	for _, u := range uris {
		if u == uri {
			return true
		}
	}
	return false
}
