package rdf

import (
	"fmt"
	"strings"
)

// Value is the object position of a triple: either a Resource reference or
// a Literal. The two concrete types are the only implementations.
type Value interface {
	isValue()
	String() string
}

// Resource is a reference to another resource by IRI.
type Resource struct {
	URI string
}

func (Resource) isValue() {}

func (r Resource) String() string { return "<" + r.URI + ">" }

// Literal is a literal value with its original lexical form. Datatype and
// Language are optional. The lexical form is never coerced at parse time;
// type conversion is the load step's responsibility.
type Literal struct {
	Lexical  string
	Datatype string
	Language string
}

func (Literal) isValue() {}

func (l Literal) String() string {
	s := fmt.Sprintf("%q", l.Lexical)
	if l.Datatype != "" {
		s += "^^<" + l.Datatype + ">"
	} else if l.Language != "" {
		s += "@" + l.Language
	}
	return s
}

// Triple is one RDF statement.
type Triple struct {
	Subject   string
	Predicate string
	Object    Value
}

func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> %s .", t.Subject, t.Predicate, t.Object)
}

// Namespaces maps declared prefixes to base IRIs. Each parse call builds
// its own table; it is read-only after parsing.
type Namespaces map[string]string

// Expand resolves a prefixed name ("ex:Product") against the table. A full
// IRI, or a name whose prefix is not declared, is returned unchanged:
// unresolved references are carried as opaque strings rather than failing
// the run.
func (ns Namespaces) Expand(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "urn:") {
		return name
	}
	i := strings.Index(name, ":")
	if i < 0 {
		return name
	}
	base, ok := ns[name[:i]]
	if !ok {
		return name
	}
	return base + name[i+1:]
}

// Document is the result of one parse: the triples that parsed successfully
// and the prefix table the document declared.
type Document struct {
	Triples    []Triple
	Namespaces Namespaces
}

// NewDocument returns an empty document with an initialized prefix table.
func NewDocument() *Document {
	return &Document{Namespaces: make(Namespaces)}
}
