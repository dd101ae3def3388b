package rdf

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// jsonldParser parses JSON-LD documents structurally: @context supplies the
// prefix table, @graph (or the single top-level object) supplies the entity
// list, and each entity's keys become predicate-object pairs. Objects
// carrying @id are resource references; bare scalars and @value wrappers
// are literals.
type jsonldParser struct{}

func (p *jsonldParser) Format() Format { return FormatJSONLD }

func (p *jsonldParser) Parse(content string) (*Document, error) {
	doc := NewDocument()
	if strings.TrimSpace(content) == "" {
		return doc, nil
	}

	var root any
	if err := json.Unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	switch v := root.(type) {
	case map[string]any:
		p.parseContext(v["@context"], doc.Namespaces)
		if graph, ok := v["@graph"].([]any); ok {
			for _, node := range graph {
				if entity, ok := node.(map[string]any); ok {
					p.parseEntity(entity, doc)
				}
			}
		} else if _, ok := v["@id"]; ok {
			p.parseEntity(v, doc)
		}
	case []any:
		for _, node := range v {
			if entity, ok := node.(map[string]any); ok {
				p.parseContext(entity["@context"], doc.Namespaces)
				p.parseEntity(entity, doc)
			}
		}
	}

	return doc, nil
}

// parseContext populates the namespace table from @context. Values are
// either base IRI strings or nested objects carrying @id.
func (p *jsonldParser) parseContext(ctx any, ns Namespaces) {
	m, ok := ctx.(map[string]any)
	if !ok {
		return
	}
	for key, val := range m {
		if strings.HasPrefix(key, "@") {
			continue
		}
		switch v := val.(type) {
		case string:
			ns[key] = v
		case map[string]any:
			if id, ok := v["@id"].(string); ok {
				ns[key] = id
			}
		}
	}
}

// parseEntity emits triples for one node object. Nested node objects that
// carry keys beyond @id are processed as entities in their own right.
func (p *jsonldParser) parseEntity(entity map[string]any, doc *Document) {
	id, _ := entity["@id"].(string)
	if id == "" {
		return
	}
	subject := doc.Namespaces.Expand(id)

	for _, t := range typeList(entity["@type"]) {
		doc.Triples = append(doc.Triples, Triple{
			Subject:   subject,
			Predicate: vocab.Type,
			Object:    Resource{URI: doc.Namespaces.Expand(t)},
		})
	}

	// Map iteration order is random; sort keys so triple order is stable
	// for a given input.
	keys := make([]string, 0, len(entity))
	for key := range entity {
		if strings.HasPrefix(key, "@") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		predicate := doc.Namespaces.Expand(key)
		for _, item := range asList(entity[key]) {
			p.parseObjectValue(subject, predicate, item, doc)
		}
	}
}

func (p *jsonldParser) parseObjectValue(subject, predicate string, val any, doc *Document) {
	switch v := val.(type) {
	case map[string]any:
		if id, ok := v["@id"].(string); ok {
			doc.Triples = append(doc.Triples, Triple{
				Subject:   subject,
				Predicate: predicate,
				Object:    Resource{URI: doc.Namespaces.Expand(id)},
			})
			// An embedded node with its own properties is an entity too.
			if len(v) > 1 {
				p.parseEntity(v, doc)
			}
			return
		}
		if raw, ok := v["@value"]; ok {
			lit := scalarLiteral(raw)
			if dt, ok := v["@type"].(string); ok {
				lit.Datatype = doc.Namespaces.Expand(dt)
			}
			if lang, ok := v["@language"].(string); ok {
				lit.Language = lang
			}
			doc.Triples = append(doc.Triples, Triple{Subject: subject, Predicate: predicate, Object: lit})
		}
	case nil:
		// Null values carry no fact.
	default:
		doc.Triples = append(doc.Triples, Triple{Subject: subject, Predicate: predicate, Object: scalarLiteral(v)})
	}
}

// scalarLiteral converts a JSON scalar to a Literal, preserving a lexical
// form and inferring an XSD datatype for non-strings.
func scalarLiteral(v any) Literal {
	switch s := v.(type) {
	case string:
		return Literal{Lexical: s}
	case bool:
		return Literal{Lexical: strconv.FormatBool(s), Datatype: vocab.XSDBoolean}
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return Literal{Lexical: strconv.FormatInt(int64(s), 10), Datatype: vocab.XSDInteger}
		}
		return Literal{Lexical: strconv.FormatFloat(s, 'f', -1, 64), Datatype: vocab.XSDDecimal}
	case json.Number:
		return Literal{Lexical: s.String(), Datatype: vocab.XSDDecimal}
	default:
		return Literal{Lexical: fmt.Sprintf("%v", s)}
	}
}

func typeList(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}
