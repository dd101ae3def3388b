// Package export serializes parsed RDF documents back out, so semview can
// normalize between serializations (e.g. RDF/XML in, Turtle out).
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semview/rdf"
	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// Serialize writes the document in the given format. Turtle, N-Triples,
// and JSON-LD are writable; RDF/XML is parse-only.
func Serialize(doc *rdf.Document, format rdf.Format) (string, error) {
	switch format {
	case rdf.FormatTurtle:
		return toTurtle(doc), nil
	case rdf.FormatNTriples:
		return toNTriples(doc), nil
	case rdf.FormatJSONLD:
		return toJSONLD(doc)
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: %s)", format, FormatList())
	}
}

// subjectGroup keeps one subject's triples in document order.
type subjectGroup struct {
	subject string
	triples []rdf.Triple
}

// groupBySubject preserves first-encounter subject order so output is
// deterministic for a given input.
func groupBySubject(doc *rdf.Document) []subjectGroup {
	index := make(map[string]int)
	groups := make([]subjectGroup, 0)
	for _, t := range doc.Triples {
		i, ok := index[t.Subject]
		if !ok {
			i = len(groups)
			index[t.Subject] = i
			groups = append(groups, subjectGroup{subject: t.Subject})
		}
		groups[i].triples = append(groups[i].triples, t)
	}
	return groups
}

func toTurtle(doc *rdf.Document) string {
	var sb strings.Builder

	prefixes := make([]string, 0, len(doc.Namespaces))
	for prefix := range doc.Namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, doc.Namespaces[prefix])
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}

	for _, group := range groupBySubject(doc) {
		fmt.Fprintf(&sb, "<%s>\n", group.subject)
		for i, t := range group.triples {
			predicate := "<" + t.Predicate + ">"
			if t.Predicate == vocab.Type {
				predicate = "a"
			}
			fmt.Fprintf(&sb, "    %s %s", predicate, turtleObject(t.Object))
			if i < len(group.triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func turtleObject(v rdf.Value) string {
	switch o := v.(type) {
	case rdf.Resource:
		return "<" + o.URI + ">"
	case rdf.Literal:
		s := quoteLiteral(o.Lexical)
		if o.Datatype != "" && o.Datatype != vocab.XSDString {
			s += "^^<" + o.Datatype + ">"
		} else if o.Language != "" {
			s += "@" + o.Language
		}
		return s
	default:
		return quoteLiteral(v.String())
	}
}

func toNTriples(doc *rdf.Document) string {
	var sb strings.Builder
	for _, t := range doc.Triples {
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n", t.Subject, t.Predicate, turtleObject(t.Object))
	}
	return sb.String()
}

func toJSONLD(doc *rdf.Document) (string, error) {
	context := make(map[string]any, len(doc.Namespaces))
	for prefix, iri := range doc.Namespaces {
		context[prefix] = iri
	}

	graph := make([]map[string]any, 0)
	for _, group := range groupBySubject(doc) {
		node := map[string]any{"@id": group.subject}
		var types []string
		for _, t := range group.triples {
			if t.Predicate == vocab.Type {
				if r, ok := t.Object.(rdf.Resource); ok {
					types = append(types, r.URI)
					continue
				}
			}
			appendJSONLDValue(node, t.Predicate, t.Object)
		}
		if len(types) > 0 {
			node["@type"] = types
		}
		graph = append(graph, node)
	}

	payload := map[string]any{"@graph": graph}
	if len(context) > 0 {
		payload["@context"] = context
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(data) + "\n", nil
}

// appendJSONLDValue sets or extends a predicate entry, promoting repeated
// predicates to arrays.
func appendJSONLDValue(node map[string]any, predicate string, v rdf.Value) {
	value := jsonldObject(v)
	existing, ok := node[predicate]
	if !ok {
		node[predicate] = value
		return
	}
	if list, isList := existing.([]any); isList {
		node[predicate] = append(list, value)
		return
	}
	node[predicate] = []any{existing, value}
}

func jsonldObject(v rdf.Value) any {
	switch o := v.(type) {
	case rdf.Resource:
		return map[string]any{"@id": o.URI}
	case rdf.Literal:
		if o.Language != "" {
			return map[string]any{"@value": o.Lexical, "@language": o.Language}
		}
		if o.Datatype != "" && o.Datatype != vocab.XSDString {
			return map[string]any{"@value": o.Lexical, "@type": o.Datatype}
		}
		return o.Lexical
	default:
		return v.String()
	}
}

func quoteLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
