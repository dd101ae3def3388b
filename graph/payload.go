package graph

import (
	"errors"
	"time"

	"github.com/c360studio/semview/loader"
)

// DDLArtifact carries the generated DDL statements for one document.
type DDLArtifact struct {
	SourceURI  string    `json:"source_uri,omitempty"`
	Statements []string  `json:"statements"`
	ViewDDL    string    `json:"view_ddl,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks that the artifact is publishable.
func (a *DDLArtifact) Validate() error {
	if len(a.Statements) == 0 {
		return errors.New("ddl artifact has no statements")
	}
	return nil
}

// RowBatchArtifact carries loaded rows for one table.
type RowBatchArtifact struct {
	Table     string        `json:"table"`
	ClassURI  string        `json:"class_uri"`
	Rows      []*loader.Row `json:"rows"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks that the artifact is publishable.
func (a *RowBatchArtifact) Validate() error {
	if a.Table == "" {
		return errors.New("row batch artifact requires a table name")
	}
	return nil
}

// EdgeBatchArtifact carries the relationship edges of one load run.
type EdgeBatchArtifact struct {
	Edges     []loader.Edge `json:"edges"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks that the artifact is publishable.
func (a *EdgeBatchArtifact) Validate() error {
	if len(a.Edges) == 0 {
		return errors.New("edge batch artifact has no edges")
	}
	return nil
}
