package relational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "productName", "PRODUCTNAME"},
		{"hyphen", "order-item", "ORDER_ITEM"},
		{"dots and spaces", "a.b c", "A_B_C"},
		{"leading digit", "3dModel", "_3DMODEL"},
		{"already valid", "PRICE", "PRICE"},
		{"empty", "", "_"},
		{"unicode", "prix€", "PRIX_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeIdentifier(tt.input))
		})
	}
}

func TestSanitizeIdentifier_Idempotent(t *testing.T) {
	inputs := []string{"productName", "order-item", "3dModel", "_X9", "weird~!name"}
	for _, in := range inputs {
		once := SanitizeIdentifier(in)
		assert.Equal(t, once, SanitizeIdentifier(once), "input %q", in)
	}
}

func TestNamer_DisambiguatesCollisions(t *testing.T) {
	n := NewNamer()

	assert.Equal(t, "ORDER_ITEM", n.Unique("order-item"))
	assert.Equal(t, "ORDER_ITEM_2", n.Unique("order item"))
	assert.Equal(t, "ORDER_ITEM_3", n.Unique("order.item"))
	assert.Equal(t, "OTHER", n.Unique("other"))
}

func TestNamer_SuffixNeverReissued(t *testing.T) {
	// A name that sanitizes directly to a suffixed form must block that
	// suffix for later collisions.
	n := NewNamer()

	assert.Equal(t, "FOO_2", n.Unique("Foo_2"))
	assert.Equal(t, "FOO", n.Unique("Foo"))
	assert.Equal(t, "FOO_3", n.Unique("Foo"))
	assert.Equal(t, "FOO_4", n.Unique("Foo"))
}

func TestNamer_CollisionThenLiteralSuffix(t *testing.T) {
	// The reverse order: the suffix is issued by disambiguation first,
	// then a name sanitizing to it directly arrives.
	n := NewNamer()

	assert.Equal(t, "FOO", n.Unique("Foo"))
	assert.Equal(t, "FOO_2", n.Unique("foo"))
	assert.Equal(t, "FOO_2_2", n.Unique("Foo_2"))
}

func TestNamer_ScopesAreIndependent(t *testing.T) {
	a, b := NewNamer(), NewNamer()
	assert.Equal(t, "X", a.Unique("x"))
	assert.Equal(t, "X", b.Unique("x"))
}
