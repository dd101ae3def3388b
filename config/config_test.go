package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "RDF_SEMANTIC_DB", cfg.Target.Database)
	assert.Equal(t, "SEMANTIC_VIEWS", cfg.Target.Schema)
	assert.Equal(t, "semview", cfg.Publish.SubjectPrefix)
	assert.Equal(t, 400*time.Millisecond, cfg.Watch.Debounce)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target.Database = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Metrics = []MetricConfig{{Name: "x"}}
	assert.Error(t, cfg.Validate(), "metric without expression")

	cfg = DefaultConfig()
	cfg.Metrics = []MetricConfig{{Name: "x", Expression: "COUNT(X.ID)"}}
	assert.NoError(t, cfg.Validate())
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Target:  TargetConfig{Database: "OTHER_DB"},
		Publish: PublishConfig{URL: "nats://localhost:4222"},
	})

	assert.Equal(t, "OTHER_DB", base.Target.Database)
	assert.Equal(t, "SEMANTIC_VIEWS", base.Target.Schema, "unset fields keep defaults")
	assert.Equal(t, "nats://localhost:4222", base.Publish.URL)

	base.Merge(nil) // no-op
	assert.Equal(t, "OTHER_DB", base.Target.Database)
}

func TestMetricsCatalog(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.MetricsCatalog(), "empty config selects the default catalog")

	cfg.Metrics = []MetricConfig{{
		Name:        "widget_count",
		Expression:  "COUNT(WIDGET.ID)",
		Synonyms:    []string{"widgets"},
		Description: "Number of widgets",
	}}
	catalog := cfg.MetricsCatalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, "widget_count", catalog[0].Name)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "semview.yaml")

	cfg := DefaultConfig()
	cfg.Target.Database = "ROUND_TRIP_DB"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ROUND_TRIP_DB", loaded.Target.Database)
	assert.Equal(t, cfg.Watch.Extensions, loaded.Watch.Extensions)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRelationalTarget(t *testing.T) {
	cfg := DefaultConfig()
	target := cfg.RelationalTarget()
	assert.Equal(t, "RDF_SEMANTIC_DB", target.Database)
	assert.Equal(t, "RDF_SEMANTIC_VIEW", target.SemanticView)
}
