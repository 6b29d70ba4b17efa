// Package logger builds configured zerolog loggers for client embedding.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logger: invalid level %q", c.Level)
	}
	switch c.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logger: format must be console or json (got: %s)", c.Format)
	}
}

// New creates a configured logger tagged with a component name.
func New(cfg Config, component string) zerolog.Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := outputWriter(cfg.Output)
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor}
	}

	zc := zerolog.New(out).Level(level).With()
	if component != "" {
		zc = zc.Str("component", component)
	}
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	if cfg.Caller {
		zc = zc.Caller()
	}
	return zc.Logger()
}

// NewDefault creates a logger with default configuration.
func NewDefault(component string) zerolog.Logger {
	return New(Config{}, component)
}

func outputWriter(output string) io.Writer {
	switch output {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
