package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	require.NotNil(t, m.Registry())

	// Two instances must not share a registry
	other := NewMetrics()
	assert.NotSame(t, m.Registry(), other.Registry())
}

func TestRecorders(t *testing.T) {
	m := NewMetrics()

	m.RecordConversion("turtle", "success")
	m.RecordConversion("turtle", "success")
	m.RecordConversion("jsonld", "error")
	m.RecordParseFailure("jsonld")
	m.RecordTriples(9)
	m.RecordTables(4)
	m.RecordLoad(12, 3)
	m.RecordDuration("schema", 50*time.Millisecond)
	m.RecordPublish("semview.ddl")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DocumentsConverted.WithLabelValues("turtle", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsConverted.WithLabelValues("jsonld", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParseFailures.WithLabelValues("jsonld")))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.TriplesParsed))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.TablesGenerated))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.RowsLoaded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EdgesLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactsPublished.WithLabelValues("semview.ddl")))
}
