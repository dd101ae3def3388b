package rdf

import (
	"fmt"
	"strings"

	"github.com/piprate/json-gold/ld"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// ntriplesParser parses N-Triples (and N-Quads; graph labels are ignored)
// using the json-gold N-Quads reader.
type ntriplesParser struct{}

func (p *ntriplesParser) Format() Format { return FormatNTriples }

func (p *ntriplesParser) Parse(content string) (*Document, error) {
	doc := NewDocument()
	if strings.TrimSpace(content) == "" {
		return doc, nil
	}

	dataset, err := ld.ParseNQuads(content)
	if err != nil {
		return nil, fmt.Errorf("invalid N-Triples: %w", err)
	}

	for _, quads := range dataset.Graphs {
		for _, quad := range quads {
			triple, ok := quadToTriple(quad)
			if !ok {
				continue
			}
			doc.Triples = append(doc.Triples, triple)
		}
	}
	return doc, nil
}

// quadToTriple converts a json-gold quad into the internal triple shape.
// Blank-node subjects and objects are carried by their label.
func quadToTriple(quad *ld.Quad) (Triple, bool) {
	subject := nodeValue(quad.Subject)
	predicate := nodeValue(quad.Predicate)
	if subject == "" || predicate == "" {
		return Triple{}, false
	}

	var object Value
	switch o := quad.Object.(type) {
	case *ld.Literal:
		lit := Literal{Lexical: o.Value, Language: o.Language}
		// json-gold stamps plain literals with xsd:string; keep explicit
		// datatypes only.
		if o.Datatype != "" && o.Datatype != vocab.XSDString {
			lit.Datatype = o.Datatype
		}
		object = lit
	case *ld.IRI:
		object = Resource{URI: o.Value}
	case *ld.BlankNode:
		object = Resource{URI: o.Attribute}
	default:
		return Triple{}, false
	}

	return Triple{Subject: subject, Predicate: predicate, Object: object}, true
}

func nodeValue(node ld.Node) string {
	switch n := node.(type) {
	case *ld.IRI:
		return n.Value
	case *ld.BlankNode:
		return n.Attribute
	default:
		return ""
	}
}
