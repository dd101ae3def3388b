package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/semview/config"
	"github.com/c360studio/semview/convert"
	"github.com/c360studio/semview/graph"
	"github.com/c360studio/semview/metric"
	"github.com/c360studio/semview/rdf"
	"github.com/c360studio/semview/watch"
)

func watchCmd(configPath *string) *cobra.Command {
	var (
		outputDir   string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Watch directories and reconvert changed RDF documents",
		Long: `Watch monitors directories for RDF document changes and reruns the
conversion pipeline on every change. Generated DDL is written next to
each source document (or under --output-dir) and optionally published
to NATS.

Paths default to the watch.paths config entry, or the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			paths := args
			if len(paths) == 0 {
				paths = cfg.Watch.Paths
			}
			if len(paths) == 0 {
				paths = []string{"."}
			}

			if metricsAddr == "" {
				metricsAddr = cfg.Watch.MetricsAddr
			}

			return runWatch(cfg, paths, outputDir, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for generated DDL files (default: next to each source)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func runWatch(cfg *config.Config, paths []string, outputDir, metricsAddr string) error {
	logger := slog.Default()
	metrics := metric.NewMetrics()
	pipeline := newPipeline(cfg)

	publisher, err := graph.Connect(cfg.Publish.URL, cfg.Publish.SubjectPrefix, logger, metrics)
	if err != nil {
		return err
	}
	defer publisher.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if metricsAddr != "" {
		server := metric.NewServer(metricsAddr, metrics)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Stop(shutdownCtx)
		}()
		logger.Info("metrics server listening", "addr", metricsAddr)
	}

	watcher, err := watch.New(paths, cfg.Watch.Extensions, cfg.Watch.Debounce, logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	logger.Info("watching for RDF changes", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if event.Operation == watch.OpDelete {
				continue
			}
			convertChanged(pipeline, publisher, metrics, logger, event.Path, outputDir)
		}
	}
}

func convertChanged(pipeline *convert.Pipeline, publisher *graph.Publisher, metrics *metric.Metrics, logger *slog.Logger, path, outputDir string) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("read changed file", "path", path, "error", err)
		return
	}

	format := rdf.FormatFromExtension(filepath.Ext(path))
	start := time.Now()
	result := pipeline.ConvertSchema(string(content), format)
	metrics.RecordDuration("schema", time.Since(start))

	if !result.Success {
		metrics.RecordConversion(string(format), "error")
		metrics.RecordParseFailure(string(format))
		logger.Warn("conversion failed", "path", path, "error", result.Error)
		return
	}
	metrics.RecordConversion(string(format), "success")
	metrics.RecordTables(result.Summary.TableCount)
	if result.Model != nil {
		metrics.RecordTriples(result.Model.Stats.TripleCount)
	}

	outPath := ddlPath(path, outputDir)
	if err := writeDDL(outPath, result.DDL, result.ViewDDL); err != nil {
		logger.Warn("write DDL", "path", outPath, "error", err)
		return
	}

	if err := publisher.PublishSchema(path, result); err != nil {
		logger.Warn("publish DDL", "path", path, "error", err)
	}

	// A document may carry instance data alongside (or instead of) schema
	// declarations; pick up its rows and edges too.
	loadResult := pipeline.LoadInstances(string(content), format)
	if loadResult.Success && loadResult.Stats.EntityCount > 0 {
		metrics.RecordLoad(loadResult.Stats.RowCount, loadResult.Stats.EdgeCount)
		if err := publisher.PublishLoad(loadResult); err != nil {
			logger.Warn("publish instance batches", "path", path, "error", err)
		}
	}

	logger.Info("reconverted document",
		"path", path,
		"output", outPath,
		"tables", result.Summary.TableCount)
}

func ddlPath(sourcePath, outputDir string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)] + ".sql"
	if outputDir == "" {
		return filepath.Join(filepath.Dir(sourcePath), name)
	}
	return filepath.Join(outputDir, name)
}

func writeDDL(path string, statements []string, viewDDL string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, stmt := range statements {
		if _, err := fmt.Fprintf(f, "%s\n\n", stmt); err != nil {
			return err
		}
	}
	if viewDDL != "" {
		if _, err := fmt.Fprintln(f, viewDDL); err != nil {
			return err
		}
	}
	return nil
}
