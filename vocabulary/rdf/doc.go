// Package rdf provides IRI constants and helpers for the core RDF, RDFS,
// OWL, and XML Schema vocabularies.
//
// These are the system vocabularies: resources typed exclusively with them
// are schema machinery, not user data, and are excluded from instance
// loading. The XSD namespace additionally drives data-property
// classification and relational type mapping.
package rdf
