// Package config loads the optional tpctools YAML file. Every value has a
// default and every value can be overridden by a command-line flag.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tpctools/internal/domain"
)

// EnvConfigPath names the config file used when --config is not given.
const EnvConfigPath = "TPCTOOLS_CONFIG"

// Config models the YAML file.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
	Convert  ConvertConfig  `yaml:"convert"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Events   EventsConfig   `yaml:"events"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

type GenerateConfig struct {
	GeneratorPath string `yaml:"generator_path,omitempty"`
	UsePTY        bool   `yaml:"pty"`
}

type ConvertConfig struct {
	Format         string `yaml:"format"`
	Compression    string `yaml:"compression"`
	BatchSize      int    `yaml:"batch_size"`
	Concurrency    int    `yaml:"concurrency"`
	MaxRowsPerFile int64  `yaml:"max_rows_per_file,omitempty"`
}

// LedgerConfig selects where run records go. An empty DSN disables the ledger.
type LedgerConfig struct {
	DSN string `yaml:"dsn,omitempty"`
}

// EventsConfig selects an AMQP broker for pipeline events. Empty disables it.
type EventsConfig struct {
	AMQPURL  string `yaml:"amqp_url,omitempty"`
	Exchange string `yaml:"exchange"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Convert: ConvertConfig{
			Format:      string(domain.FormatColumnar),
			Compression: "snappy",
			BatchSize:   domain.DefaultBatchSize,
			Concurrency: domain.DefaultConcurrency,
		},
		Events: EventsConfig{Exchange: "tpctools.events"},
	}
}

// Load reads path, or $TPCTOOLS_CONFIG when path is empty. A missing file
// yields the defaults; an unreadable or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Convert.BatchSize <= 0 {
		c.Convert.BatchSize = def.Convert.BatchSize
	}
	if c.Convert.Concurrency <= 0 {
		c.Convert.Concurrency = def.Convert.Concurrency
	}
	if strings.TrimSpace(c.Convert.Format) == "" {
		c.Convert.Format = def.Convert.Format
	}
	if strings.TrimSpace(c.Convert.Compression) == "" {
		c.Convert.Compression = def.Convert.Compression
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = def.Events.Exchange
	}
}

func (c *Config) validate() error {
	if _, err := domain.ParseFormat(c.Convert.Format); err != nil {
		return fmt.Errorf("convert.format: %w", err)
	}
	if _, err := domain.ParseCodec(c.Convert.Compression); err != nil {
		return fmt.Errorf("convert.compression: %w", err)
	}
	if c.Convert.MaxRowsPerFile < 0 {
		return fmt.Errorf("convert.max_rows_per_file must be >= 0")
	}
	return nil
}
