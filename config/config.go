// Package config provides configuration loading and management for Semview.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semview/relational"
	"github.com/c360studio/semview/semantic"
)

// Config represents the complete Semview configuration
type Config struct {
	Target  TargetConfig   `yaml:"target"`
	Metrics []MetricConfig `yaml:"metrics"`
	Publish PublishConfig  `yaml:"publish"`
	Watch   WatchConfig    `yaml:"watch"`
}

// TargetConfig names the database objects DDL is generated for
type TargetConfig struct {
	// Database is the target database name
	Database string `yaml:"database"`
	// Schema is the target schema name
	Schema string `yaml:"schema"`
	// SemanticView is the name of the generated semantic view
	SemanticView string `yaml:"semantic_view"`
}

// MetricConfig is one entry of the injectable business metrics catalog.
// When the list is empty the built-in e-commerce catalog is used.
type MetricConfig struct {
	Name        string   `yaml:"name"`
	Expression  string   `yaml:"expression"`
	Synonyms    []string `yaml:"synonyms"`
	Description string   `yaml:"description"`
}

// PublishConfig configures NATS artifact publication
type PublishConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// SubjectPrefix prefixes all published subjects (default: semview)
	SubjectPrefix string `yaml:"subject_prefix"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Paths are the directories to watch for RDF documents
	Paths []string `yaml:"paths"`
	// Extensions filters watched files (default: RDF extensions)
	Extensions []string `yaml:"extensions"`
	// Debounce is the quiet period before reconverting a changed file
	Debounce time.Duration `yaml:"debounce"`
	// MetricsAddr serves Prometheus metrics when set (e.g. ":9090")
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			Database:     "RDF_SEMANTIC_DB",
			Schema:       "SEMANTIC_VIEWS",
			SemanticView: "RDF_SEMANTIC_VIEW",
		},
		Publish: PublishConfig{
			SubjectPrefix: "semview",
		},
		Watch: WatchConfig{
			Extensions: []string{".ttl", ".turtle", ".jsonld", ".json", ".rdf", ".xml", ".owl", ".nt"},
			Debounce:   400 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Target.Database == "" {
		return fmt.Errorf("target.database is required")
	}
	if c.Target.Schema == "" {
		return fmt.Errorf("target.schema is required")
	}
	if c.Target.SemanticView == "" {
		return fmt.Errorf("target.semantic_view is required")
	}
	for i, m := range c.Metrics {
		if m.Name == "" {
			return fmt.Errorf("metrics[%d].name is required", i)
		}
		if m.Expression == "" {
			return fmt.Errorf("metrics[%d].expression is required", i)
		}
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// RelationalTarget converts the target section for the generator.
func (c *Config) RelationalTarget() relational.Target {
	return relational.Target{
		Database:     c.Target.Database,
		Schema:       c.Target.Schema,
		SemanticView: c.Target.SemanticView,
	}
}

// MetricsCatalog converts configured metrics for the semantic generator,
// or nil to select the default catalog.
func (c *Config) MetricsCatalog() []semantic.Metric {
	if len(c.Metrics) == 0 {
		return nil
	}
	catalog := make([]semantic.Metric, len(c.Metrics))
	for i, m := range c.Metrics {
		catalog[i] = semantic.Metric{
			Name:        m.Name,
			Expression:  m.Expression,
			Synonyms:    m.Synonyms,
			Description: m.Description,
		}
	}
	return catalog
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Target.Database != "" {
		c.Target.Database = other.Target.Database
	}
	if other.Target.Schema != "" {
		c.Target.Schema = other.Target.Schema
	}
	if other.Target.SemanticView != "" {
		c.Target.SemanticView = other.Target.SemanticView
	}

	if len(other.Metrics) > 0 {
		c.Metrics = other.Metrics
	}

	if other.Publish.URL != "" {
		c.Publish.URL = other.Publish.URL
	}
	if other.Publish.SubjectPrefix != "" {
		c.Publish.SubjectPrefix = other.Publish.SubjectPrefix
	}

	if len(other.Watch.Paths) > 0 {
		c.Watch.Paths = other.Watch.Paths
	}
	if len(other.Watch.Extensions) > 0 {
		c.Watch.Extensions = other.Watch.Extensions
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Watch.MetricsAddr != "" {
		c.Watch.MetricsAddr = other.Watch.MetricsAddr
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
