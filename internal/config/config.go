package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Output formats of the minimization report.
const (
	OutputText = "text"
	OutputJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the dfamin command.
type Config struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`

	// Delimiter separates the cells of input and example tables; exactly one character.
	Delimiter string `yaml:"delimiter"`

	// Output is either OutputText or OutputJSON.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Delimiter: ";",
		Output:    OutputText,
	}
}

// Load reads a YAML file over the defaults. Keys missing in the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the log settings, output format and delimiter are usable.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalidConfig, c.Delimiter)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
