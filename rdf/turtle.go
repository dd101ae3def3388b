package rdf

import (
	"strings"

	vocab "github.com/c360studio/semview/vocabulary/rdf"
)

// turtleParser parses Turtle documents. It handles the subset the schema
// mapper needs: @prefix declarations, predicate-object lists with ";"
// continuation and "," object lists, the "a" type shorthand, and quoted
// literals with optional datatype or language suffix. Statements that do
// not parse are skipped.
type turtleParser struct{}

func (p *turtleParser) Format() Format { return FormatTurtle }

func (p *turtleParser) Parse(content string) (*Document, error) {
	doc := NewDocument()

	for _, stmt := range splitStatements(stripComments(content)) {
		tokens := tokenizeTurtle(stmt)
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "@prefix" || tokens[0] == "PREFIX" {
			p.parsePrefix(tokens, doc.Namespaces)
			continue
		}
		p.parseStatement(tokens, doc)
	}

	return doc, nil
}

// parsePrefix handles "@prefix ex: <http://...> .".
func (p *turtleParser) parsePrefix(tokens []string, ns Namespaces) {
	if len(tokens) < 3 {
		return
	}
	prefix := strings.TrimSuffix(tokens[1], ":")
	uri := tokens[2]
	if !strings.HasPrefix(uri, "<") || !strings.HasSuffix(uri, ">") {
		return
	}
	ns[prefix] = uri[1 : len(uri)-1]
}

// parseStatement handles "subject pred obj ; pred obj , obj .". The tokens
// exclude the terminating dot. Malformed groups are skipped individually.
func (p *turtleParser) parseStatement(tokens []string, doc *Document) {
	subject := expandTerm(tokens[0], doc.Namespaces)
	if subject == "" {
		return
	}

	rest := tokens[1:]
	for _, group := range splitTokens(rest, ";") {
		if len(group) < 2 {
			continue
		}
		predicate := group[0]
		if predicate == "a" {
			predicate = vocab.Type
		} else {
			predicate = expandTerm(predicate, doc.Namespaces)
		}
		for _, objGroup := range splitTokens(group[1:], ",") {
			if len(objGroup) == 0 {
				continue
			}
			// A well-formed object is one token; surplus tokens mean the
			// statement is garbled, so take the first and move on.
			obj, ok := parseObject(objGroup[0], doc.Namespaces)
			if !ok {
				continue
			}
			doc.Triples = append(doc.Triples, Triple{
				Subject:   subject,
				Predicate: predicate,
				Object:    obj,
			})
		}
	}
}

// stripComments removes "#" comments line by line, respecting quoted
// strings and IRI brackets so fragment separators inside <...> survive.
// Quote tracking resets at line boundaries; literals here are single-line.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return strings.Join(lines, "\n")
}

func stripLineComment(line string) string {
	inQuote, inIRI, escaped := false, false, false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case !inQuote && r == '<':
			inIRI = true
		case !inQuote && r == '>':
			inIRI = false
		case !inQuote && !inIRI && r == '#':
			return line[:i]
		}
	}
	return line
}

// splitStatements splits Turtle text into statements on terminating dots
// outside quotes and IRI brackets. The dot itself is dropped.
func splitStatements(content string) []string {
	var stmts []string
	var sb strings.Builder
	inQuote, inIRI, escaped := false, false, false

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case escaped:
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case !inQuote && r == '<':
			inIRI = true
		case !inQuote && r == '>':
			inIRI = false
		case !inQuote && !inIRI && r == '.':
			// A terminator dot is followed by whitespace or end of input,
			// which keeps decimals in prefixed names intact.
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n' || runes[i+1] == '\r' {
				if s := strings.TrimSpace(sb.String()); s != "" {
					stmts = append(stmts, s)
				}
				sb.Reset()
				continue
			}
		}
		sb.WriteRune(r)
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

// tokenizeTurtle splits a statement into terms. IRIs and literals are kept
// as single tokens, with any ^^datatype or @lang suffix attached to the
// literal token. ";" and "," are their own tokens.
func tokenizeTurtle(stmt string) []string {
	var tokens []string
	runes := []rune(stmt)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++
		case r == ';' || r == ',':
			tokens = append(tokens, string(r))
			i++
		case r == '<':
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j >= len(runes) {
				return tokens // unterminated IRI, drop the rest
			}
			tokens = append(tokens, string(runes[i:j+1]))
			i = j + 1
		case r == '"':
			j := i + 1
			for j < len(runes) {
				if runes[j] == '\\' {
					j += 2
					continue
				}
				if runes[j] == '"' {
					break
				}
				j++
			}
			if j >= len(runes) {
				return tokens // unterminated literal
			}
			j++ // past closing quote
			// Attach ^^datatype or @lang suffix.
			if j+1 < len(runes) && runes[j] == '^' && runes[j+1] == '^' {
				j += 2
				if j < len(runes) && runes[j] == '<' {
					for j < len(runes) && runes[j] != '>' {
						j++
					}
					if j < len(runes) {
						j++
					}
				} else {
					for j < len(runes) && !isTermBreak(runes[j]) {
						j++
					}
				}
			} else if j < len(runes) && runes[j] == '@' {
				for j < len(runes) && !isTermBreak(runes[j]) {
					j++
				}
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		default:
			j := i
			for j < len(runes) && !isTermBreak(runes[j]) {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		}
	}
	return tokens
}

func isTermBreak(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';' || r == ','
}

// splitTokens splits a token slice on a separator token.
func splitTokens(tokens []string, sep string) [][]string {
	var groups [][]string
	start := 0
	for i, tok := range tokens {
		if tok == sep {
			if i > start {
				groups = append(groups, tokens[start:i])
			}
			start = i + 1
		}
	}
	if start < len(tokens) {
		groups = append(groups, tokens[start:])
	}
	return groups
}

// expandTerm resolves an IRI or prefixed-name token to a full IRI string.
// Unresolvable prefixes pass through opaquely.
func expandTerm(token string, ns Namespaces) string {
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return token[1 : len(token)-1]
	}
	return ns.Expand(token)
}

// parseObject turns an object token into a Value. Quoted tokens become
// Literals (with optional datatype or language); everything else is a
// Resource reference.
func parseObject(token string, ns Namespaces) (Value, bool) {
	if token == "" {
		return nil, false
	}
	if token[0] != '"' {
		return Resource{URI: expandTerm(token, ns)}, true
	}

	// Find the closing quote, honoring escapes.
	runes := []rune(token)
	end := -1
	for j := 1; j < len(runes); j++ {
		if runes[j] == '\\' {
			j++
			continue
		}
		if runes[j] == '"' {
			end = j
			break
		}
	}
	if end < 0 {
		return nil, false
	}

	lit := Literal{Lexical: unescapeLiteral(string(runes[1:end]))}
	suffix := string(runes[end+1:])
	switch {
	case strings.HasPrefix(suffix, "^^"):
		lit.Datatype = expandTerm(suffix[2:], ns)
	case strings.HasPrefix(suffix, "@"):
		lit.Language = suffix[1:]
	}
	return lit, true
}

func unescapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
