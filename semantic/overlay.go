// Package semantic derives the business-facing overlay from an extracted
// schema: synonyms, dimensions, facts, a metrics catalog, and join rules
// over the RELATIONSHIPS table. The overlay is structured data; callers
// serialize it into whatever semantic-modeling syntax their engine expects.
package semantic

import "gopkg.in/yaml.v3"

// TableSemantics carries the synonym set for one table.
type TableSemantics struct {
	Table    string   `yaml:"table" json:"table"`
	ClassURI string   `yaml:"class_uri,omitempty" json:"class_uri,omitempty"`
	Synonyms []string `yaml:"synonyms" json:"synonyms"`
}

// Dimension is a sliceable attribute: a raw data-property column or a
// derived expression over one.
type Dimension struct {
	Name       string   `yaml:"name" json:"name"`
	Table      string   `yaml:"table" json:"table"`
	Column     string   `yaml:"column,omitempty" json:"column,omitempty"`
	Expression string   `yaml:"expression,omitempty" json:"expression,omitempty"`
	Synonyms   []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// Fact is a numeric data-property column exposed as an aggregable value.
type Fact struct {
	Name   string `yaml:"name" json:"name"`
	Table  string `yaml:"table" json:"table"`
	Column string `yaml:"column" json:"column"`
	Type   string `yaml:"type" json:"type"`
}

// Metric is one business metric over facts and dimensions.
type Metric struct {
	Name        string   `yaml:"name" json:"name"`
	Expression  string   `yaml:"expression" json:"expression"`
	Synonyms    []string `yaml:"synonyms" json:"synonyms"`
	Description string   `yaml:"description" json:"description"`
}

// JoinRule declares how two entity tables join through the RELATIONSHIPS
// table.
type JoinRule struct {
	Name             string `yaml:"name" json:"name"`
	FromTable        string `yaml:"from_table" json:"from_table"`
	ToTable          string `yaml:"to_table" json:"to_table"`
	RelationshipType string `yaml:"relationship_type" json:"relationship_type"`
	Description      string `yaml:"description" json:"description"`
}

// Overlay is the complete semantic layer for one schema.
type Overlay struct {
	SemanticView  string           `yaml:"semantic_view" json:"semantic_view"`
	Tables        []TableSemantics `yaml:"tables" json:"tables"`
	Dimensions    []Dimension      `yaml:"dimensions" json:"dimensions"`
	Facts         []Fact           `yaml:"facts" json:"facts"`
	Metrics       []Metric         `yaml:"metrics" json:"metrics"`
	Relationships []JoinRule       `yaml:"relationships" json:"relationships"`
}

// ToYAML serializes the overlay as a semantic view definition document.
func (o *Overlay) ToYAML() (string, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
