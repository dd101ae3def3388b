package rdf

import "fmt"

// Parser parses one serialization format into a Document.
type Parser interface {
	// Parse parses document content. Individual malformed statements are
	// skipped; an error is returned only when the document as a whole
	// cannot be read.
	Parse(content string) (*Document, error)

	// Format returns the serialization this parser handles.
	Format() Format
}

// parsers dispatches by normalized format. The table is fixed at init; all
// parsers are stateless and safe for concurrent use.
var parsers = map[Format]Parser{
	FormatTurtle:   &turtleParser{},
	FormatJSONLD:   &jsonldParser{},
	FormatRDFXML:   &rdfxmlParser{},
	FormatNTriples: &ntriplesParser{},
}

// Parse parses content in the given format. Unrecognized formats have
// already been normalized to Turtle by ParseFormat.
func Parse(content string, format Format) (*Document, error) {
	p, ok := parsers[format]
	if !ok {
		p = parsers[FormatTurtle]
	}
	doc, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Format(), err)
	}
	return doc, nil
}
