// Package schema extracts a relational-ready schema model from RDF triples:
// classes, properties with their domains and ranges, class hierarchies, and
// summary statistics.
package schema

// ClassDescriptor describes one declared RDF class.
type ClassDescriptor struct {
	URI          string
	LocalName    string
	Label        string
	Comment      string
	SuperClasses []string
}

// Kind classifies a property by what its range resolves to.
type Kind string

const (
	// DataProperty ranges over literal datatypes and becomes a table column.
	DataProperty Kind = "data"

	// ObjectProperty ranges over other classes and becomes a relationship
	// edge through the RELATIONSHIPS table.
	ObjectProperty Kind = "object"
)

// PropertyDescriptor describes one declared RDF property. Domains and
// Ranges are fan-out lists: a property may belong to several classes and
// may be both a data and an object property under mixed ranges.
type PropertyDescriptor struct {
	URI       string
	LocalName string
	Label     string
	Comment   string
	Domains   []string
	Ranges    []string

	// Kind is the primary classification: DataProperty when any range is a
	// literal datatype (or no range resolves at all), ObjectProperty when
	// the only resolvable ranges are classes. Fixed once computed.
	Kind Kind
}

// Hierarchy is one subclass edge between two classes.
type Hierarchy struct {
	Child            string
	Parent           string
	RelationshipType string
}

// Statistics are plain counts over the successfully parsed input.
type Statistics struct {
	TripleCount   int
	ClassCount    int
	PropertyCount int
}

// Model is the extracted schema. Classes and Properties preserve
// first-encounter order so downstream generation is deterministic.
// DataProperties and ObjectProperties are classification views over
// Properties; a mixed-range property appears in both.
type Model struct {
	Classes          []*ClassDescriptor
	Properties       []*PropertyDescriptor
	DataProperties   []*PropertyDescriptor
	ObjectProperties []*PropertyDescriptor
	Hierarchies      []Hierarchy
	Stats            Statistics

	classByURI map[string]*ClassDescriptor
	propByURI  map[string]*PropertyDescriptor
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		classByURI: make(map[string]*ClassDescriptor),
		propByURI:  make(map[string]*PropertyDescriptor),
	}
}

// ClassByURI looks up a class descriptor.
func (m *Model) ClassByURI(uri string) (*ClassDescriptor, bool) {
	c, ok := m.classByURI[uri]
	return c, ok
}

// PropertyByURI looks up a property descriptor.
func (m *Model) PropertyByURI(uri string) (*PropertyDescriptor, bool) {
	p, ok := m.propByURI[uri]
	return p, ok
}

// IsEmpty reports whether extraction found no schema at all. An empty
// schema is a legitimate degenerate case, not an error.
func (m *Model) IsEmpty() bool {
	return len(m.Classes) == 0 && len(m.Properties) == 0
}
