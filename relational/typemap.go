package relational

import vocab "github.com/c360studio/semview/vocabulary/rdf"

// Column type names in the target engine's dialect.
const (
	// TypeText is the wide text default every unmapped datatype falls
	// through to; type mapping is total by construction.
	TypeText = "VARCHAR(16777216)"

	TypeInteger   = "NUMBER(38,0)"
	TypeDecimal   = "NUMBER(38,2)"
	TypeFloat     = "FLOAT"
	TypeBoolean   = "BOOLEAN"
	TypeDate      = "DATE"
	TypeTimestamp = "TIMESTAMP_NTZ"
	TypeTime      = "TIME"
)

// columnTypes maps XSD datatype IRIs to column types.
var columnTypes = map[string]string{
	vocab.XSDString:   TypeText,
	vocab.XSDInteger:  TypeInteger,
	vocab.XSDInt:      TypeInteger,
	vocab.XSDLong:     TypeInteger,
	vocab.XSDShort:    TypeInteger,
	vocab.XSDDecimal:  TypeDecimal,
	vocab.XSDFloat:    TypeFloat,
	vocab.XSDDouble:   TypeFloat,
	vocab.XSDBoolean:  TypeBoolean,
	vocab.XSDDate:     TypeDate,
	vocab.XSDDateTime: TypeTimestamp,
	vocab.XSDTime:     TypeTime,
}

// ColumnTypeFor returns the column type for an RDF datatype IRI. Unknown
// datatypes map to the wide text default, never an error.
func ColumnTypeFor(datatypeURI string) string {
	if t, ok := columnTypes[datatypeURI]; ok {
		return t
	}
	return TypeText
}

// IsNumericType reports whether a column type is aggregable as a fact.
func IsNumericType(columnType string) bool {
	return columnType == TypeInteger || columnType == TypeDecimal || columnType == TypeFloat
}

// IsTemporalType reports whether a column type carries a date component.
func IsTemporalType(columnType string) bool {
	return columnType == TypeDate || columnType == TypeTimestamp
}
