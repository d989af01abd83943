package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// DefaultMaxArticleAgeDays is the retention window applied when nothing else
// is configured
const DefaultMaxArticleAgeDays = 3

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:lectern.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		UpdateInterval int `yaml:"update_interval" json:"update_interval" jsonschema:"default=30,description=Feed refresh interval in minutes"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-content extraction configuration"`

	Ingest IngestConfig `yaml:"ingest" json:"ingest" jsonschema:"description=Ingestion configuration"`
}

// ExtractionConfig holds full-content extraction settings
type ExtractionConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Extraction timeout per article"`
	Delay     time.Duration `yaml:"delay" json:"delay" jsonschema:"default=500ms,description=Pause between consecutive extractions"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Lectern/1.0,description=User agent for HTTP requests"`
}

// IngestConfig holds ingestion settings
type IngestConfig struct {
	MaxArticleAgeDays int `yaml:"max_article_age_days" json:"max_article_age_days" jsonschema:"default=3,description=Articles older than this many days are rejected and purged"`
}

// Load reads configuration from a YAML file. An empty path yields a config of
// defaults, so the application runs without any file present.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:lectern.db?cache=shared&mode=rwc"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 15 * time.Second
	}
	if c.Extraction.Delay == 0 {
		c.Extraction.Delay = 500 * time.Millisecond
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Lectern/1.0"
	}

	if c.Ingest.MaxArticleAgeDays == 0 {
		c.Ingest.MaxArticleAgeDays = DefaultMaxArticleAgeDays
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Schedule.UpdateInterval < 1 {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction.timeout must be at least 1 second")
	}
	if cfg.Extraction.Delay < 0 {
		return fmt.Errorf("extraction.delay must be non-negative")
	}
	if cfg.Ingest.MaxArticleAgeDays < 1 {
		return fmt.Errorf("ingest.max_article_age_days must be at least 1")
	}
	return nil
}

// MaxArticleAgeDays resolves the retention window in days. The environment
// variable MAX_ARTICLE_AGE_DAYS wins over the file value and is read on every
// call: ingestion-time rejection and the periodic purge both go through this
// getter, so they always share one window.
func (c *Config) MaxArticleAgeDays() int {
	if env := os.Getenv("MAX_ARTICLE_AGE_DAYS"); env != "" {
		if days, err := strconv.Atoi(env); err == nil && days > 0 {
			return days
		}
	}
	if c.Ingest.MaxArticleAgeDays > 0 {
		return c.Ingest.MaxArticleAgeDays
	}
	return DefaultMaxArticleAgeDays
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// UpdateInterval returns the feed refresh cadence
func (c *Config) UpdateInterval() time.Duration {
	return time.Duration(c.Schedule.UpdateInterval) * time.Minute
}
