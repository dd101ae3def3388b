// Package main provides the semview binary entry point.
// Semview converts RDF schemas into relational DDL with a semantic
// overlay, and loads RDF instance data into row and edge batches.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semview/config"
	"github.com/c360studio/semview/convert"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semview"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "semview",
		Short: "RDF to relational semantic view converter",
		Long: `Semview converts RDF schemas (Turtle, JSON-LD, RDF/XML, N-Triples)
into relational DDL plus a semantic overlay: per-class entity tables, a
universal RELATIONSHIPS join table, synonyms, dimensions, facts, a
business metrics catalog, and join rules.

It also loads RDF instance documents into row and edge batches aligned
with the generated tables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(convertCmd(&configPath))
	cmd.AddCommand(loadCmd(&configPath))
	cmd.AddCommand(watchCmd(&configPath))
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(configInitCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig resolves the effective configuration: an explicit file when
// given, otherwise the layered defaults, user, and project configs.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		merged := config.DefaultConfig()
		merged.Merge(cfg)
		if err := merged.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return merged, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// newPipeline builds a conversion pipeline from the effective config.
func newPipeline(cfg *config.Config) *convert.Pipeline {
	var opts []convert.Option
	if catalog := cfg.MetricsCatalog(); catalog != nil {
		opts = append(opts, convert.WithCatalog(catalog))
	}
	return convert.New(cfg.RelationalTarget(), opts...)
}
