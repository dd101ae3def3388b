package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// rdfxmlParser parses RDF/XML documents. Node elements (rdf:Description or
// typed nodes) carry rdf:about subjects; property elements carry either an
// rdf:resource reference or literal text with an optional rdf:datatype.
// encoding/xml resolves namespace prefixes, so Name.Space is already the
// full namespace IRI by the time tokens arrive here.
type rdfxmlParser struct{}

func (p *rdfxmlParser) Format() Format { return FormatRDFXML }

func (p *rdfxmlParser) Parse(content string) (*Document, error) {
	doc := NewDocument()
	if strings.TrimSpace(content) == "" {
		return doc, nil
	}

	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space == vocab.RDFNamespace && start.Name.Local == "RDF" {
			collectXMLNamespaces(start, doc.Namespaces)
			if err := p.parseNodeList(dec, doc); err != nil {
				return nil, err
			}
			continue
		}
		// A document without an rdf:RDF wrapper: the root is a node.
		if err := p.parseNode(dec, start, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// parseNodeList consumes the children of rdf:RDF until its end element.
func (p *rdfxmlParser) parseNodeList(dec *xml.Decoder, doc *Document) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.parseNode(dec, t, doc); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseNode parses one node element and returns after consuming its end
// element. It returns the subject via emitted triples only.
func (p *rdfxmlParser) parseNode(dec *xml.Decoder, start xml.StartElement, doc *Document) error {
	subject := xmlAttr(start, "about")
	if subject == "" {
		if id := xmlAttr(start, "ID"); id != "" {
			subject = "#" + id
		}
	}
	if subject == "" {
		// Anonymous node: skip it and its subtree.
		return dec.Skip()
	}

	// A typed node element asserts its own type.
	if !(start.Name.Space == vocab.RDFNamespace && start.Name.Local == "Description") {
		doc.Triples = append(doc.Triples, Triple{
			Subject:   subject,
			Predicate: vocab.Type,
			Object:    Resource{URI: start.Name.Space + start.Name.Local},
		})
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.parseProperty(dec, t, subject, doc); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseProperty parses one property element of a node.
func (p *rdfxmlParser) parseProperty(dec *xml.Decoder, start xml.StartElement, subject string, doc *Document) error {
	predicate := start.Name.Space + start.Name.Local

	if res := xmlAttr(start, "resource"); res != "" {
		doc.Triples = append(doc.Triples, Triple{
			Subject:   subject,
			Predicate: predicate,
			Object:    Resource{URI: res},
		})
		return dec.Skip()
	}

	datatype := xmlAttr(start, "datatype")
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			// An embedded node: record the reference and descend.
			if about := xmlAttr(t, "about"); about != "" {
				doc.Triples = append(doc.Triples, Triple{
					Subject:   subject,
					Predicate: predicate,
					Object:    Resource{URI: about},
				})
			}
			if err := p.parseNode(dec, t, doc); err != nil {
				return err
			}
		case xml.EndElement:
			if lex := strings.TrimSpace(text.String()); lex != "" {
				doc.Triples = append(doc.Triples, Triple{
					Subject:   subject,
					Predicate: predicate,
					Object:    Literal{Lexical: lex, Datatype: datatype},
				})
			}
			return nil
		}
	}
}

// collectXMLNamespaces records xmlns declarations from the root element
// into the document's prefix table.
func collectXMLNamespaces(start xml.StartElement, ns Namespaces) {
	for _, attr := range start.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			ns[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			ns[""] = attr.Value
		}
	}
}

// xmlAttr returns the value of an rdf:-namespaced attribute, accepting the
// unprefixed form some producers emit.
func xmlAttr(start xml.StartElement, local string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local != local {
			continue
		}
		if attr.Name.Space == vocab.RDFNamespace || attr.Name.Space == "" {
			return attr.Value
		}
	}
	return ""
}
