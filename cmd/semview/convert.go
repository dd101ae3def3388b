package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semview/convert"
	"github.com/c360studio/semview/graph"
	"github.com/c360studio/semview/rdf"
)

func convertCmd(configPath *string) *cobra.Command {
	var (
		formatName string
		outputPath string
		emitJSON   bool
		emitYAML   bool
		publish    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file-or-glob>",
		Short: "Convert RDF schemas to relational DDL and a semantic overlay",
		Long: `Convert parses one or more RDF schema documents, extracts classes and
properties, and emits CREATE TABLE statements plus the semantic view
definition.

The argument is a file path or a doublestar glob (e.g. 'schemas/**/*.ttl').
For globs the format is inferred per file from its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			pipeline := newPipeline(cfg)

			var publisher *graph.Publisher
			if publish {
				publisher, err = graph.Connect(cfg.Publish.URL, cfg.Publish.SubjectPrefix, slog.Default(), nil)
				if err != nil {
					return err
				}
				defer publisher.Close()
			}

			results, err := convertInputs(pipeline, args[0], formatName)
			if err != nil {
				return err
			}

			for _, fr := range results {
				if !fr.Schema.Success {
					slog.Warn("conversion failed", "path", fr.Path, "error", fr.Schema.Error)
					continue
				}
				slog.Info("converted document",
					"path", fr.Path,
					"tables", fr.Schema.Summary.TableCount,
					"relationships", fr.Schema.Summary.RelationshipCount)
				if err := publisher.PublishSchema(fr.Path, fr.Schema); err != nil {
					slog.Warn("publish failed", "path", fr.Path, "error", err)
				}
			}

			return writeSchemaOutput(results, outputPath, emitJSON, emitYAML)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "RDF format (turtle, jsonld, rdfxml, ntriples); inferred from extension when unset")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&emitJSON, "json", false, "Emit the full result envelope as JSON")
	cmd.Flags().BoolVar(&emitYAML, "yaml", false, "Emit the semantic overlay as YAML instead of DDL")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish DDL artifacts to NATS")

	return cmd
}

// convertInputs runs the pipeline over a single file or a glob. An
// explicit format forces single-file mode.
func convertInputs(pipeline *convert.Pipeline, arg, formatName string) ([]convert.FileResult, error) {
	if formatName != "" || !strings.ContainsAny(arg, "*?[{") {
		content, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		format := resolveFormat(arg, formatName)
		return []convert.FileResult{{
			Path:   arg,
			Format: format,
			Schema: pipeline.ConvertSchema(string(content), format),
		}}, nil
	}
	return pipeline.ConvertGlob(arg)
}

func resolveFormat(path, formatName string) rdf.Format {
	if formatName != "" {
		return rdf.ParseFormat(formatName)
	}
	dot := strings.LastIndex(path, ".")
	if dot < 0 {
		return rdf.FormatTurtle
	}
	return rdf.FormatFromExtension(path[dot:])
}

func writeSchemaOutput(results []convert.FileResult, outputPath string, emitJSON, emitYAML bool) error {
	var sb strings.Builder

	switch {
	case emitJSON:
		envelopes := make([]*convert.SchemaResult, 0, len(results))
		for _, fr := range results {
			envelopes = append(envelopes, fr.Schema)
		}
		data, err := json.MarshalIndent(envelopes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		sb.Write(data)
		sb.WriteByte('\n')

	case emitYAML:
		for _, fr := range results {
			if fr.Schema.Overlay == nil {
				continue
			}
			doc, err := fr.Schema.Overlay.ToYAML()
			if err != nil {
				return fmt.Errorf("marshal overlay for %s: %w", fr.Path, err)
			}
			sb.WriteString(doc)
		}

	default:
		for _, fr := range results {
			for _, stmt := range fr.Schema.DDL {
				sb.WriteString(stmt)
				sb.WriteString("\n\n")
			}
			if fr.Schema.ViewDDL != "" {
				sb.WriteString(fr.Schema.ViewDDL)
				sb.WriteString("\n")
			}
		}
	}

	if outputPath == "" {
		_, err := fmt.Print(sb.String())
		return err
	}
	return os.WriteFile(outputPath, []byte(sb.String()), 0644)
}
