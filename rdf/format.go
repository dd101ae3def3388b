package rdf

import "strings"

// Format identifies a supported RDF serialization.
type Format string

const (
	// FormatTurtle is the Turtle (.ttl) serialization.
	FormatTurtle Format = "turtle"

	// FormatJSONLD is the JSON-LD (.jsonld) serialization.
	FormatJSONLD Format = "jsonld"

	// FormatRDFXML is the RDF/XML (.rdf) serialization.
	FormatRDFXML Format = "rdfxml"

	// FormatNTriples is the N-Triples (.nt) serialization.
	FormatNTriples Format = "ntriples"
)

// ParseFormat normalizes a caller-supplied format name. Matching is
// case-insensitive; an unrecognized value falls back to Turtle.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl":
		return FormatTurtle
	case "json-ld", "jsonld", "json":
		return FormatJSONLD
	case "xml", "rdf/xml", "rdf-xml", "rdfxml":
		return FormatRDFXML
	case "n3", "n-triples", "ntriples", "nt", "nquads", "n-quads":
		return FormatNTriples
	default:
		return FormatTurtle
	}
}

// FormatFromExtension guesses the format from a file extension.
func FormatFromExtension(ext string) Format {
	switch strings.ToLower(ext) {
	case ".ttl", ".turtle":
		return FormatTurtle
	case ".jsonld", ".json":
		return FormatJSONLD
	case ".rdf", ".xml", ".owl":
		return FormatRDFXML
	case ".nt", ".nq", ".n3":
		return FormatNTriples
	default:
		return FormatTurtle
	}
}
