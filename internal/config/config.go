// Package config provides configuration management for the NARS server.
//
// Configuration can be loaded from multiple sources (in order of precedence):
// 1. Environment variables (highest priority)
// 2. Configuration file (YAML)
// 3. Default values (lowest priority)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete server configuration.
type Config struct {
	// Server settings
	Server ServerConfig `yaml:"server"`

	// Reasoning engine settings
	Engine EngineConfig `yaml:"engine"`

	// Persistence settings
	Persistence PersistenceConfig `yaml:"persistence"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains server-level configuration.
type ServerConfig struct {
	// Name of the server (for logging/identification)
	Name string `yaml:"name"`

	// Version of the server
	Version string `yaml:"version"`

	// Environment (development, staging, production)
	Environment string `yaml:"environment"`
}

// EngineConfig contains the NARS reasoning core's tunables (spec.md §4.2,
// §4.5, §4.6).
type EngineConfig struct {
	// K is the system evidential constant used by Revision and every
	// evidence-based truth function.
	K float64 `yaml:"k"`

	// DecisionThreshold is the expectation threshold the Decision rule
	// compares a desire's expectation against.
	DecisionThreshold float64 `yaml:"decision_threshold"`

	// ExperienceCapacity bounds the Task bag driving the control cycle.
	ExperienceCapacity int `yaml:"experience_capacity"`

	// ConceptCapacity bounds the number of concepts memory retains.
	ConceptCapacity int `yaml:"concept_capacity"`

	// BeliefCapacity and DesireCapacity bound each concept's belief and
	// desire tables.
	BeliefCapacity int `yaml:"belief_capacity"`
	DesireCapacity int `yaml:"desire_capacity"`

	// WeightFunction names a bag sampling weight curve: "identity" or
	// "squared" (internal/bag.IdentityWeight / SquaredWeight). It is
	// validated but not passed to the engine: every bag samples with
	// IdentityWeight whatever this is set to.
	WeightFunction string `yaml:"weight_function"`

	// EnableSemanticFallback turns on the chromem-go backed concept
	// neighbour search (SPEC_FULL.md §4.6 DOMAIN expansion).
	EnableSemanticFallback bool `yaml:"enable_semantic_fallback"`

	// EnableGraphMirror turns on the Neo4j-backed term-link graph mirror
	// (SPEC_FULL.md §6 DOMAIN expansion), connecting using the NEO4J_*
	// environment variables (internal/graphmirror.DefaultConfig).
	EnableGraphMirror bool `yaml:"enable_graph_mirror"`
}

// PersistenceConfig selects and configures the SaveMemory/LoadMemory
// backend.
type PersistenceConfig struct {
	// Type is "none" or "sqlite".
	Type string `yaml:"type"`

	// SQLitePath must be non-empty when Type is "sqlite", but it is not
	// passed to the store: each save/load call names its own database file.
	SQLitePath string `yaml:"sqlite_path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level sets the logging level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format sets the log format (text, json).
	Format string `yaml:"format"`

	// EnableTimestamps adds timestamps to log entries.
	EnableTimestamps bool `yaml:"enable_timestamps"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:        "nars",
			Version:     "1.0.0",
			Environment: "development",
		},
		Engine: EngineConfig{
			K:                      1.0,
			DecisionThreshold:      0.5,
			ExperienceCapacity:     1000,
			ConceptCapacity:        10000,
			BeliefCapacity:         7,
			DesireCapacity:         7,
			WeightFunction:         "identity",
			EnableSemanticFallback: false,
			EnableGraphMirror:      false,
		},
		Persistence: PersistenceConfig{
			Type:       "none",
			SQLitePath: "nars.db",
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			EnableTimestamps: true,
		},
	}
}

// Load loads configuration from environment variables and applies defaults.
func Load() (*Config, error) {
	cfg := Default()

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file, then overlays
// environment variables on top.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
// Environment variables follow the pattern: NARS_<SECTION>_<KEY>
// Example: NARS_SERVER_NAME, NARS_ENGINE_K.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("NARS_SERVER_NAME"); v != "" {
		c.Server.Name = v
	}
	if v := os.Getenv("NARS_SERVER_VERSION"); v != "" {
		c.Server.Version = v
	}
	if v := os.Getenv("NARS_SERVER_ENVIRONMENT"); v != "" {
		c.Server.Environment = v
	}

	if v := os.Getenv("NARS_ENGINE_K"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_K: %w", err)
		}
		c.Engine.K = f
	}
	if v := os.Getenv("NARS_ENGINE_DECISION_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_DECISION_THRESHOLD: %w", err)
		}
		c.Engine.DecisionThreshold = f
	}
	if v := os.Getenv("NARS_ENGINE_EXPERIENCE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.ExperienceCapacity = n
		}
	}
	if v := os.Getenv("NARS_ENGINE_CONCEPT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.ConceptCapacity = n
		}
	}
	if v := os.Getenv("NARS_ENGINE_BELIEF_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.BeliefCapacity = n
		}
	}
	if v := os.Getenv("NARS_ENGINE_DESIRE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.DesireCapacity = n
		}
	}
	if v := os.Getenv("NARS_ENGINE_WEIGHT_FUNCTION"); v != "" {
		c.Engine.WeightFunction = strings.ToLower(v)
	}
	if v := os.Getenv("NARS_ENGINE_ENABLE_SEMANTIC_FALLBACK"); v != "" {
		c.Engine.EnableSemanticFallback = parseBool(v)
	}
	if v := os.Getenv("NARS_ENGINE_ENABLE_GRAPH_MIRROR"); v != "" {
		c.Engine.EnableGraphMirror = parseBool(v)
	}

	if v := os.Getenv("NARS_PERSISTENCE_TYPE"); v != "" {
		c.Persistence.Type = strings.ToLower(v)
	}
	if v := os.Getenv("NARS_PERSISTENCE_SQLITE_PATH"); v != "" {
		c.Persistence.SQLitePath = v
	}

	if v := os.Getenv("NARS_LOGGING_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("NARS_LOGGING_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("NARS_LOGGING_ENABLE_TIMESTAMPS"); v != "" {
		c.Logging.EnableTimestamps = parseBool(v)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name cannot be empty")
	}
	if c.Server.Environment != "development" && c.Server.Environment != "staging" && c.Server.Environment != "production" {
		return fmt.Errorf("server.environment must be one of: development, staging, production")
	}

	if c.Engine.K <= 0 {
		return fmt.Errorf("engine.k must be > 0")
	}
	if c.Engine.DecisionThreshold < 0 || c.Engine.DecisionThreshold > 0.5 {
		return fmt.Errorf("engine.decision_threshold must be in [0, 0.5]")
	}
	if c.Engine.ExperienceCapacity < 1 {
		return fmt.Errorf("engine.experience_capacity must be >= 1")
	}
	if c.Engine.ConceptCapacity < 1 {
		return fmt.Errorf("engine.concept_capacity must be >= 1")
	}
	if c.Engine.BeliefCapacity < 1 {
		return fmt.Errorf("engine.belief_capacity must be >= 1")
	}
	if c.Engine.DesireCapacity < 1 {
		return fmt.Errorf("engine.desire_capacity must be >= 1")
	}
	if c.Engine.WeightFunction != "identity" && c.Engine.WeightFunction != "squared" {
		return fmt.Errorf("engine.weight_function must be 'identity' or 'squared'")
	}

	if c.Persistence.Type != "none" && c.Persistence.Type != "sqlite" {
		return fmt.Errorf("persistence.type must be 'none' or 'sqlite'")
	}
	if c.Persistence.Type == "sqlite" && c.Persistence.SQLitePath == "" {
		return fmt.Errorf("persistence.sqlite_path required when persistence.type is 'sqlite'")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json'")
	}

	return nil
}

// parseBool parses a boolean from string (handles various formats).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on" || s == "enabled"
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
