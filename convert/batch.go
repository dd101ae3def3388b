package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/semview/rdf"
)

// FileResult pairs one input file with its conversion envelope. A file
// that fails to read or parse carries an error envelope; it never aborts
// the rest of the batch.
type FileResult struct {
	Path   string
	Format rdf.Format
	Schema *SchemaResult
	Load   *LoadResult
}

// ConvertGlob converts every schema file matching the doublestar pattern,
// inferring each file's format from its extension. The match list is
// sorted, so batch output order is stable.
func (p *Pipeline) ConvertGlob(pattern string) ([]FileResult, error) {
	paths, err := globFiles(pattern)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		format := rdf.FormatFromExtension(filepath.Ext(path))
		fr := FileResult{Path: path, Format: format}
		content, err := os.ReadFile(path)
		if err != nil {
			fr.Schema = errorSchemaResult(err)
		} else {
			fr.Schema = p.ConvertSchema(string(content), format)
		}
		results = append(results, fr)
	}
	return results, nil
}

// LoadGlob loads every instance file matching the doublestar pattern.
func (p *Pipeline) LoadGlob(pattern string) ([]FileResult, error) {
	paths, err := globFiles(pattern)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		format := rdf.FormatFromExtension(filepath.Ext(path))
		fr := FileResult{Path: path, Format: format}
		content, err := os.ReadFile(path)
		if err != nil {
			fr.Load = errorLoadResult(err)
		} else {
			fr.Load = p.LoadInstances(string(content), format)
		}
		results = append(results, fr)
	}
	return results, nil
}

func globFiles(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return paths, nil
}
