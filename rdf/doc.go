// Package rdf parses RDF documents into triples.
//
// A document in any supported serialization (Turtle, JSON-LD, RDF/XML,
// N-Triples) is parsed into a flat sequence of subject-predicate-object
// triples plus the prefix table declared by the document. Objects are a
// tagged variant: either a Resource reference or a Literal, and every
// consumer switches exhaustively on that shape.
//
// Parsers are best-effort: a malformed statement is skipped and parsing
// continues; only a document that cannot be read at all yields an error.
// Each parse call owns its own namespace table, so concurrent parses never
// share state.
package rdf
