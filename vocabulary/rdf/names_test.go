package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"fragment", "http://example.org/schema#Product", "Product"},
		{"path", "http://example.org/schema/Product", "Product"},
		{"fragment wins over path", "http://example.org/a/b#c", "c"},
		{"no separator", "Product", "Product"},
		{"empty local name", "http://example.org/schema#", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalName(tt.uri))
		})
	}
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "http://example.org/schema#", Namespace("http://example.org/schema#Product"))
	assert.Equal(t, "http://example.org/schema/", Namespace("http://example.org/schema/Product"))
	assert.Equal(t, "", Namespace("Product"))
}

func TestIsXSDType(t *testing.T) {
	assert.True(t, IsXSDType(XSDString))
	assert.True(t, IsXSDType(XSDDecimal))
	assert.False(t, IsXSDType("http://example.com/custom#weirdType"))
	assert.False(t, IsXSDType(""))
}

func TestIsSystemClass(t *testing.T) {
	assert.True(t, IsSystemClass(Class))
	assert.True(t, IsSystemClass(OWLClass))
	assert.True(t, IsSystemClass(Property))
	assert.False(t, IsSystemClass("http://example.org/schema#Product"))
}

func TestMarkers(t *testing.T) {
	assert.True(t, IsClassMarker(Class))
	assert.True(t, IsClassMarker(OWLClass))
	assert.False(t, IsClassMarker(Property))

	assert.True(t, IsPropertyMarker(Property))
	assert.True(t, IsPropertyMarker(DatatypeProperty))
	assert.True(t, IsPropertyMarker(ObjectProperty))
	assert.False(t, IsPropertyMarker(Class))
}
