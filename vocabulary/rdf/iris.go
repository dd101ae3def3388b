package rdf

// Base namespace IRIs for the standard vocabularies.
const (
	// RDFNamespace is the RDF syntax vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema vocabulary.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language vocabulary.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatype namespace. A property range
	// in this namespace marks the property as literal-valued.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// Core predicate and class IRIs.
const (
	// Type is the rdf:type predicate, also written "a" in Turtle.
	Type = RDFNamespace + "type"

	// Property is the rdf:Property class marker.
	Property = RDFNamespace + "Property"

	// Class is the rdfs:Class class marker.
	Class = RDFSNamespace + "Class"

	// SubClassOf declares a class hierarchy edge.
	SubClassOf = RDFSNamespace + "subClassOf"

	// Domain declares the subject class of a property.
	Domain = RDFSNamespace + "domain"

	// Range declares the value class or datatype of a property.
	Range = RDFSNamespace + "range"

	// Label is the human-readable name of a resource.
	Label = RDFSNamespace + "label"

	// Comment is the human-readable description of a resource.
	Comment = RDFSNamespace + "comment"

	// OWLClass is the owl:Class class marker.
	OWLClass = OWLNamespace + "Class"

	// DatatypeProperty is the owl:DatatypeProperty class marker.
	DatatypeProperty = OWLNamespace + "DatatypeProperty"

	// ObjectProperty is the owl:ObjectProperty class marker.
	ObjectProperty = OWLNamespace + "ObjectProperty"
)

// Common XSD datatype IRIs.
const (
	XSDString   = XSDNamespace + "string"
	XSDInteger  = XSDNamespace + "integer"
	XSDInt      = XSDNamespace + "int"
	XSDLong     = XSDNamespace + "long"
	XSDShort    = XSDNamespace + "short"
	XSDDecimal  = XSDNamespace + "decimal"
	XSDFloat    = XSDNamespace + "float"
	XSDDouble   = XSDNamespace + "double"
	XSDBoolean  = XSDNamespace + "boolean"
	XSDDate     = XSDNamespace + "date"
	XSDDateTime = XSDNamespace + "dateTime"
	XSDTime     = XSDNamespace + "time"
)
