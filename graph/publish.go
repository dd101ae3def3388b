// Package graph publishes conversion artifacts to NATS so downstream
// consumers (warehouse loaders, catalog indexers) can react to schema
// and instance changes.
package graph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/semview/convert"
	"github.com/c360studio/semview/metric"
)

// Publisher publishes artifacts on subjects under a configured prefix:
//
//	<prefix>.ddl           DDL statements and view DDL for a document
//	<prefix>.rows.<table>  one row batch per generated table
//	<prefix>.edges         relationship edges of a load run
//
// A nil Publisher or one without a connection degrades gracefully:
// publishing becomes a no-op.
type Publisher struct {
	nc      *nats.Conn
	prefix  string
	logger  *slog.Logger
	metrics *metric.Metrics
}

// Connect dials NATS and returns a Publisher. An empty URL returns a
// nil Publisher, which all methods accept.
func Connect(url, prefix string, logger *slog.Logger, metrics *metric.Metrics) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	if prefix == "" {
		prefix = "semview"
	}
	if logger == nil {
		logger = slog.Default()
	}

	nc, err := nats.Connect(url,
		nats.Name("semview"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	return &Publisher{nc: nc, prefix: prefix, logger: logger, metrics: metrics}, nil
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("drain NATS connection", "error", err)
	}
}

// PublishSchema publishes the DDL artifact of a successful conversion.
// Failed conversions are skipped.
func (p *Publisher) PublishSchema(sourceURI string, result *convert.SchemaResult) error {
	if p == nil || p.nc == nil {
		return nil
	}
	if result == nil || !result.Success {
		return nil
	}

	artifact := &DDLArtifact{
		SourceURI:  sourceURI,
		Statements: result.DDL,
		ViewDDL:    result.ViewDDL,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := artifact.Validate(); err != nil {
		return nil
	}
	return p.publish(p.prefix+".ddl", artifact)
}

// PublishLoad publishes one row batch per table plus an edge batch.
// Failed loads are skipped.
func (p *Publisher) PublishLoad(result *convert.LoadResult) error {
	if p == nil || p.nc == nil {
		return nil
	}
	if result == nil || !result.Success {
		return nil
	}

	now := time.Now().UTC()
	for _, batch := range result.Batches {
		artifact := &RowBatchArtifact{
			Table:     batch.Table,
			ClassURI:  batch.ClassURI,
			Rows:      batch.Rows,
			UpdatedAt: now,
		}
		if err := artifact.Validate(); err != nil {
			continue
		}
		subject := fmt.Sprintf("%s.rows.%s", p.prefix, batch.Table)
		if err := p.publish(subject, artifact); err != nil {
			return err
		}
	}

	edges := &EdgeBatchArtifact{Edges: result.Edges, UpdatedAt: now}
	if err := edges.Validate(); err != nil {
		return nil
	}
	return p.publish(p.prefix+".edges", edges)
}

func (p *Publisher) publish(subject string, artifact any) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("marshal artifact for %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	if p.metrics != nil {
		p.metrics.RecordPublish(subject)
	}
	p.logger.Debug("published artifact", "subject", subject, "bytes", len(data))
	return nil
}
