package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/semview/rdf"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		formatName string
		want       rdf.Format
	}{
		{"explicit format wins", "schema.ttl", "jsonld", rdf.FormatJSONLD},
		{"turtle extension", "schema.ttl", "", rdf.FormatTurtle},
		{"jsonld extension", "data.jsonld", "", rdf.FormatJSONLD},
		{"rdfxml extension", "onto.rdf", "", rdf.FormatRDFXML},
		{"ntriples extension", "dump.nt", "", rdf.FormatNTriples},
		{"no extension defaults to turtle", "schema", "", rdf.FormatTurtle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFormat(tt.path, tt.formatName))
		})
	}
}

func TestDDLPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("schemas", "shop.sql"),
		ddlPath(filepath.Join("schemas", "shop.ttl"), ""))

	assert.Equal(t,
		filepath.Join("out", "shop.sql"),
		ddlPath(filepath.Join("schemas", "shop.ttl"), "out"))
}

func TestRootCmd(t *testing.T) {
	cmd := rootCmd()
	assert.Equal(t, "semview", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"convert", "load", "watch", "export", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
