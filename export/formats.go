package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semview/rdf"
)

// FormatInfo provides metadata about a serialization format.
type FormatInfo struct {
	// Name is the format identifier.
	Name rdf.Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported output formats.
var FormatRegistry = map[rdf.Format]FormatInfo{
	rdf.FormatTurtle: {
		Name:        rdf.FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	rdf.FormatNTriples: {
		Name:        rdf.FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - line-based RDF serialization",
	},
	rdf.FormatJSONLD: {
		Name:        rdf.FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON-based RDF serialization",
	},
}

// Info returns the metadata for a format, or an error for formats that
// cannot be written.
func Info(format rdf.Format) (FormatInfo, error) {
	info, ok := FormatRegistry[format]
	if !ok {
		return FormatInfo{}, fmt.Errorf("unsupported output format: %s", format)
	}
	return info, nil
}

// SupportedFormats returns the writable format names, sorted.
func SupportedFormats() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// FormatList returns a human-readable list of writable formats.
func FormatList() string {
	return strings.Join(SupportedFormats(), ", ")
}
