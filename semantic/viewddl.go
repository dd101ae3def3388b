package semantic

import (
	"fmt"
	"strings"

	"github.com/c360studio/semview/relational"
)

// ViewDDL renders the overlay as a CREATE SEMANTIC VIEW statement in the
// target engine's dialect. Output is deterministic: sections follow the
// overlay's own ordering.
func ViewDDL(o *Overlay, target relational.Target) string {
	var sb strings.Builder

	name := relational.SanitizeIdentifier(o.SemanticView)
	if name == "_" {
		name = relational.SanitizeIdentifier(target.SemanticView)
	}
	fmt.Fprintf(&sb, "CREATE OR REPLACE SEMANTIC VIEW %s\n", target.Qualify(name))

	sb.WriteString("  TABLES (\n")
	for i, t := range o.Tables {
		fmt.Fprintf(&sb, "    %s PRIMARY KEY (%s) WITH SYNONYMS (%s)",
			t.Table, relational.ColumnID, quoteList(t.Synonyms))
		writeSep(&sb, i, len(o.Tables))
	}
	sb.WriteString("  )\n")

	if len(o.Relationships) > 0 {
		sb.WriteString("  RELATIONSHIPS (\n")
		for i, r := range o.Relationships {
			fmt.Fprintf(&sb, "    %s AS %s(%s) REFERENCES %s",
				r.Name, r.FromTable, relational.ColumnID, r.ToTable)
			writeSep(&sb, i, len(o.Relationships))
		}
		sb.WriteString("  )\n")
	}

	if len(o.Facts) > 0 {
		sb.WriteString("  FACTS (\n")
		for i, f := range o.Facts {
			fmt.Fprintf(&sb, "    %s.%s AS %s", f.Table, f.Column, f.Name)
			writeSep(&sb, i, len(o.Facts))
		}
		sb.WriteString("  )\n")
	}

	if len(o.Dimensions) > 0 {
		sb.WriteString("  DIMENSIONS (\n")
		for i, d := range o.Dimensions {
			expr := d.Expression
			if expr == "" {
				expr = d.Table + "." + d.Column
			}
			fmt.Fprintf(&sb, "    %s AS %s", d.Name, expr)
			if len(d.Synonyms) > 0 {
				fmt.Fprintf(&sb, " WITH SYNONYMS (%s)", quoteList(d.Synonyms))
			}
			writeSep(&sb, i, len(o.Dimensions))
		}
		sb.WriteString("  )\n")
	}

	if len(o.Metrics) > 0 {
		sb.WriteString("  METRICS (\n")
		for i, m := range o.Metrics {
			fmt.Fprintf(&sb, "    %s AS %s WITH SYNONYMS (%s) COMMENT = '%s'",
				m.Name, m.Expression, quoteList(m.Synonyms),
				strings.ReplaceAll(m.Description, "'", "''"))
			writeSep(&sb, i, len(o.Metrics))
		}
		sb.WriteString("  )\n")
	}

	sb.WriteString("  COMMENT = 'Semantic view generated from RDF schema';")
	return sb.String()
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}

func writeSep(sb *strings.Builder, i, n int) {
	if i < n-1 {
		sb.WriteString(",\n")
	} else {
		sb.WriteString("\n")
	}
}
