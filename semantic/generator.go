package semantic

import (
	"fmt"
	"strings"

	"github.com/c360studio/semview/relational"
	"github.com/c360studio/semview/schema"
	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// Bucketing thresholds for derived categorical dimensions. These are
// implementation constants, not schema-derived.
const (
	priceTierLow  = 25
	priceTierHigh = 100

	stockLowMax    = 10
	stockMediumMax = 50
)

// Generator derives the semantic overlay from a schema model and the
// tables already generated for it.
type Generator struct {
	catalog []Metric
}

// NewGenerator creates a generator with the given metrics catalog; nil
// selects the default e-commerce catalog.
func NewGenerator(catalog []Metric) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Generator{catalog: catalog}
}

// Generate builds the overlay. Iteration follows table and column order,
// so repeated runs over the same model produce identical overlays.
func (g *Generator) Generate(m *schema.Model, tables []relational.Table, viewName string) *Overlay {
	o := &Overlay{
		SemanticView: viewName,
		Metrics:      g.catalog,
	}

	tableByClass := make(map[string]relational.Table)
	classByURI := make(map[string]*schema.ClassDescriptor)
	for _, t := range tables {
		if t.ClassURI != "" {
			tableByClass[t.ClassURI] = t
		}
	}
	for _, c := range m.Classes {
		classByURI[c.URI] = c
	}

	for _, t := range tables {
		if t.ClassURI == "" {
			continue
		}
		class := classByURI[t.ClassURI]
		o.Tables = append(o.Tables, TableSemantics{
			Table:    t.Name,
			ClassURI: t.ClassURI,
			Synonyms: tableSynonyms(class, t),
		})
		g.addDimensionsAndFacts(o, t)
	}

	o.Relationships = joinRules(m, tableByClass)
	return o
}

// tableSynonyms seeds from the class label and local name, then augments
// from column-name heuristics. Deduplication is case-insensitive.
func tableSynonyms(class *schema.ClassDescriptor, t relational.Table) []string {
	var seeds []string
	label := ""
	if class != nil {
		label = class.Label
		seeds = append(seeds, class.Label, class.LocalName)
	}
	seeds = append(seeds, strings.ToLower(t.Name))
	if label == "" {
		label = strings.ToLower(t.Name)
	}

	for _, col := range t.Columns {
		if col.SourceProperty == "" {
			continue
		}
		lower := strings.ToLower(vocab.LocalName(col.SourceProperty))
		switch {
		case strings.Contains(lower, "name"):
			seeds = append(seeds, label+" name", "title")
		case strings.Contains(lower, "date"):
			seeds = append(seeds, "date", "time", "when")
		case strings.Contains(lower, "category"):
			seeds = append(seeds, "type", "kind", "classification")
		}
	}
	return dedupeFold(seeds)
}

// addDimensionsAndFacts emits one dimension per data-property column,
// derived time dimensions for temporal columns, tier buckets for
// price-like facts, availability buckets for stock-like facts, and one
// fact per numeric column.
func (g *Generator) addDimensionsAndFacts(o *Overlay, t relational.Table) {
	for _, col := range t.Columns {
		if col.SourceProperty == "" {
			continue
		}
		base := strings.ToLower(t.Name) + "_" + strings.ToLower(col.Name)
		qualified := t.Name + "." + col.Name

		o.Dimensions = append(o.Dimensions, Dimension{
			Name:   base,
			Table:  t.Name,
			Column: col.Name,
		})

		if relational.IsTemporalType(col.Type) {
			o.Dimensions = append(o.Dimensions,
				Dimension{
					Name:       base + "_year",
					Table:      t.Name,
					Expression: fmt.Sprintf("YEAR(%s)", qualified),
					Synonyms:   []string{"year"},
				},
				Dimension{
					Name:       base + "_month",
					Table:      t.Name,
					Expression: fmt.Sprintf("MONTH(%s)", qualified),
					Synonyms:   []string{"month"},
				},
				Dimension{
					Name:       base + "_day_of_week",
					Table:      t.Name,
					Expression: fmt.Sprintf("DAYOFWEEK(%s)", qualified),
					Synonyms:   []string{"day of week", "weekday"},
				},
			)
		}

		if relational.IsNumericType(col.Type) {
			o.Facts = append(o.Facts, Fact{
				Name:   base,
				Table:  t.Name,
				Column: col.Name,
				Type:   col.Type,
			})

			lower := strings.ToLower(col.Name)
			if strings.Contains(lower, "price") {
				o.Dimensions = append(o.Dimensions, Dimension{
					Name:  base + "_tier",
					Table: t.Name,
					Expression: fmt.Sprintf(
						"CASE WHEN %[1]s < %[2]d THEN 'low' WHEN %[1]s < %[3]d THEN 'mid' ELSE 'high' END",
						qualified, priceTierLow, priceTierHigh),
					Synonyms: []string{"price tier", "price range"},
				})
			}
			if strings.Contains(lower, "stock") || strings.Contains(lower, "quantity") || strings.Contains(lower, "inventory") {
				o.Dimensions = append(o.Dimensions, Dimension{
					Name:  base + "_availability",
					Table: t.Name,
					Expression: fmt.Sprintf(
						"CASE WHEN %[1]s = 0 THEN 'out' WHEN %[1]s <= %[2]d THEN 'low' WHEN %[1]s <= %[3]d THEN 'medium' ELSE 'high' END",
						qualified, stockLowMax, stockMediumMax),
					Synonyms: []string{"availability", "stock level"},
				})
			}
		}
	}
}

// joinRules emits one rule per (domain class, range class) pair of every
// object property. When the schema has no object properties at all, two
// demonstration rules are emitted so the semantic view is still queryable.
func joinRules(m *schema.Model, tableByClass map[string]relational.Table) []JoinRule {
	var rules []JoinRule
	for _, prop := range m.ObjectProperties {
		for _, domain := range prop.Domains {
			from, ok := tableByClass[domain]
			if !ok {
				continue
			}
			for _, r := range prop.Ranges {
				to, ok := tableByClass[r]
				if !ok {
					continue
				}
				rules = append(rules, JoinRule{
					Name:             strings.ToLower(from.Name) + "_" + strings.ToLower(prop.LocalName),
					FromTable:        from.Name,
					ToTable:          to.Name,
					RelationshipType: prop.LocalName,
					Description: fmt.Sprintf("%s joins %s through %s where %s = '%s'",
						from.Name, to.Name, relational.RelationshipsTableName,
						relational.ColumnRelationshipType, prop.LocalName),
				})
			}
		}
	}

	// The fallback is for schemas with no object properties at all. Object
	// properties whose classes resolved to no table yield no rules, not
	// demo rules.
	if len(m.ObjectProperties) == 0 {
		return defaultJoinRules()
	}
	if rules == nil {
		rules = []JoinRule{}
	}
	return rules
}

// defaultJoinRules is the degenerate-input fallback for schemas without
// object properties.
func defaultJoinRules() []JoinRule {
	return []JoinRule{
		{
			Name:             "product_category",
			FromTable:        "PRODUCT",
			ToTable:          "CATEGORY",
			RelationshipType: "belongsToCategory",
			Description:      "PRODUCT joins CATEGORY through RELATIONSHIPS where RELATIONSHIP_TYPE = 'belongsToCategory'",
		},
		{
			Name:             "order_customer",
			FromTable:        "ORDERS",
			ToTable:          "CUSTOMER",
			RelationshipType: "placedBy",
			Description:      "ORDERS joins CUSTOMER through RELATIONSHIPS where RELATIONSHIP_TYPE = 'placedBy'",
		},
	}
}

// dedupeFold removes duplicates case-insensitively, keeping first
// occurrences and dropping empties.
func dedupeFold(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
