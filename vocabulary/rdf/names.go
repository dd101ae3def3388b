package rdf

import "strings"

// LocalName extracts the local part of an IRI: the substring after the last
// "#", else after the last "/", else the whole string.
func LocalName(uri string) string {
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		return uri[i+1:]
	}
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// Namespace returns the namespace part of an IRI, the complement of
// LocalName. An IRI with no separator has an empty namespace.
func Namespace(uri string) string {
	return uri[:len(uri)-len(LocalName(uri))]
}

// IsXSDType reports whether the IRI is an XML Schema datatype.
func IsXSDType(uri string) bool {
	return strings.HasPrefix(uri, XSDNamespace)
}

// IsSystemClass reports whether the IRI belongs to the RDF, RDFS, or OWL
// vocabularies. Subjects typed only with system classes are schema
// declarations, not loadable instances.
func IsSystemClass(uri string) bool {
	return strings.HasPrefix(uri, RDFNamespace) ||
		strings.HasPrefix(uri, RDFSNamespace) ||
		strings.HasPrefix(uri, OWLNamespace)
}

// IsClassMarker reports whether the IRI declares its subject to be a class.
func IsClassMarker(uri string) bool {
	return uri == Class || uri == OWLClass
}

// IsPropertyMarker reports whether the IRI declares its subject to be a
// property.
func IsPropertyMarker(uri string) bool {
	return uri == Property || uri == DatatypeProperty || uri == ObjectProperty
}
