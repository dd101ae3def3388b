package schema

import (
	"github.com/c360studio/semview/rdf"
	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// Extract walks a parsed document and builds the schema model. Extraction
// is best-effort; triples it cannot interpret are skipped individually.
//
// A resource is a class when it is the object of an rdf:type triple whose
// object is a class marker (rdfs:Class or owl:Class). A resource is a
// property when it is typed rdf:Property / owl:DatatypeProperty /
// owl:ObjectProperty, or when a domain or range is attached to it.
func Extract(doc *rdf.Document) *Model {
	m := NewModel()
	if doc == nil {
		return m
	}

	// First pass: declare classes and properties so range classification
	// can resolve class references regardless of statement order.
	for _, t := range doc.Triples {
		if t.Predicate == vocab.Type {
			res, ok := t.Object.(rdf.Resource)
			if !ok {
				continue
			}
			switch {
			case vocab.IsClassMarker(res.URI):
				m.ensureClass(t.Subject)
			case vocab.IsPropertyMarker(res.URI):
				m.ensureProperty(t.Subject)
			}
		}
		if t.Predicate == vocab.Domain || t.Predicate == vocab.Range {
			m.ensureProperty(t.Subject)
		}
	}

	// Second pass: attach domains, ranges, labels, comments, hierarchies.
	for _, t := range doc.Triples {
		switch t.Predicate {
		case vocab.Domain:
			if res, ok := t.Object.(rdf.Resource); ok {
				p := m.ensureProperty(t.Subject)
				p.Domains = append(p.Domains, res.URI)
			}
		case vocab.Range:
			if res, ok := t.Object.(rdf.Resource); ok {
				p := m.ensureProperty(t.Subject)
				p.Ranges = append(p.Ranges, res.URI)
			}
		case vocab.SubClassOf:
			if res, ok := t.Object.(rdf.Resource); ok {
				if c, exists := m.classByURI[t.Subject]; exists {
					c.SuperClasses = append(c.SuperClasses, res.URI)
				}
				m.Hierarchies = append(m.Hierarchies, Hierarchy{
					Child:            t.Subject,
					Parent:           res.URI,
					RelationshipType: "subClassOf",
				})
			}
		case vocab.Label:
			if lit, ok := t.Object.(rdf.Literal); ok {
				m.setLabel(t.Subject, lit.Lexical)
			}
		case vocab.Comment:
			if lit, ok := t.Object.(rdf.Literal); ok {
				m.setComment(t.Subject, lit.Lexical)
			}
		}
	}

	m.classify()

	m.Stats = Statistics{
		TripleCount:   len(doc.Triples),
		ClassCount:    len(m.Classes),
		PropertyCount: len(m.Properties),
	}
	return m
}

// classify assigns each property to the data and/or object lists. Each
// range value is judged independently: an XSD range marks the property as
// data-valued, a range resolving to a known class marks it object-valued,
// and a property may carry both under mixed ranges. A property with no
// resolvable range defaults to a data property with a generic text type.
func (m *Model) classify() {
	for _, p := range m.Properties {
		var isData, isObject bool
		for _, r := range p.Ranges {
			switch {
			case vocab.IsXSDType(r):
				isData = true
			case m.isKnownClass(r):
				isObject = true
			default:
				// Unknown range: neither datatype nor declared class.
				// Treated as data-valued with the generic text default.
				isData = true
			}
		}
		if !isData && !isObject {
			isData = true
		}

		if isData {
			m.DataProperties = append(m.DataProperties, p)
		}
		if isObject {
			m.ObjectProperties = append(m.ObjectProperties, p)
		}

		if isData {
			p.Kind = DataProperty
		} else {
			p.Kind = ObjectProperty
		}
	}
}

func (m *Model) isKnownClass(uri string) bool {
	_, ok := m.classByURI[uri]
	return ok
}

func (m *Model) ensureClass(uri string) *ClassDescriptor {
	if c, ok := m.classByURI[uri]; ok {
		return c
	}
	c := &ClassDescriptor{URI: uri, LocalName: vocab.LocalName(uri)}
	m.classByURI[uri] = c
	m.Classes = append(m.Classes, c)
	return c
}

func (m *Model) ensureProperty(uri string) *PropertyDescriptor {
	if p, ok := m.propByURI[uri]; ok {
		return p
	}
	p := &PropertyDescriptor{URI: uri, LocalName: vocab.LocalName(uri)}
	m.propByURI[uri] = p
	m.Properties = append(m.Properties, p)
	return p
}

func (m *Model) setLabel(uri, label string) {
	if c, ok := m.classByURI[uri]; ok && c.Label == "" {
		c.Label = label
	}
	if p, ok := m.propByURI[uri]; ok && p.Label == "" {
		p.Label = label
	}
}

func (m *Model) setComment(uri, comment string) {
	if c, ok := m.classByURI[uri]; ok && c.Comment == "" {
		c.Comment = comment
	}
	if p, ok := m.propByURI[uri]; ok && p.Comment == "" {
		p.Comment = comment
	}
}
