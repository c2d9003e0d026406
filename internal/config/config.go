// Package config loads defaults for the strhelp command from YAML or TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/strhelp"
	"github.com/Lzww0608/strhelp/internal/logging"
)

// Config holds the command defaults
type Config struct {
	Random     RandomConfig     `yaml:"random" toml:"random"`
	UID        UIDConfig        `yaml:"uid" toml:"uid"`
	Case       CaseConfig       `yaml:"case" toml:"case"`
	Complexity ComplexityConfig `yaml:"complexity" toml:"complexity"`
	Log        LogConfig        `yaml:"log" toml:"log"`
}

// RandomConfig holds defaults for the random subcommand
type RandomConfig struct {
	Length  int             `yaml:"length" toml:"length"`
	Charset strhelp.Charset `yaml:"charset" toml:"charset"`
}

// UIDConfig holds defaults for the uid subcommand
type UIDConfig struct {
	Length int `yaml:"length" toml:"length"`
}

// CaseConfig holds defaults for the case subcommand
type CaseConfig struct {
	Encoding string `yaml:"encoding" toml:"encoding"`
}

// ComplexityConfig mirrors strhelp.ComplexityRules
type ComplexityConfig struct {
	MinLength  int `yaml:"min_length" toml:"min_length"`
	MaxLength  int `yaml:"max_length" toml:"max_length"`
	MinLower   int `yaml:"min_lower" toml:"min_lower"`
	MinUpper   int `yaml:"min_upper" toml:"min_upper"`
	MinDigits  int `yaml:"min_digits" toml:"min_digits"`
	MinSpecial int `yaml:"min_special" toml:"min_special"`
}

// Rules converts the section into the rule set CheckComplexity takes.
func (c ComplexityConfig) Rules() strhelp.ComplexityRules {
	return strhelp.ComplexityRules{
		MinLength:  c.MinLength,
		MaxLength:  c.MaxLength,
		MinLower:   c.MinLower,
		MinUpper:   c.MinUpper,
		MinDigits:  c.MinDigits,
		MinSpecial: c.MinSpecial,
	}
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Random:     RandomConfig{Length: 16, Charset: strhelp.CharsetAlphanumeric},
		UID:        UIDConfig{Length: 32},
		Case:       CaseConfig{Encoding: "UTF-8"},
		Complexity: ComplexityConfig{MinLength: 8, MinLower: 1, MinUpper: 1, MinDigits: 1, MinSpecial: 1},
		Log:        LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads path over the defaults. The format is chosen by extension:
// .yaml/.yml or .toml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse toml config %s: unknown keys %v", path, undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Random.Length < 0 {
		result = multierror.Append(result, fmt.Errorf("random.length must not be negative, got %d", c.Random.Length))
	}
	if c.UID.Length < 0 {
		result = multierror.Append(result, fmt.Errorf("uid.length must not be negative, got %d", c.UID.Length))
	}
	if !strhelp.SupportedEncoding(c.Case.Encoding) {
		result = multierror.Append(result, fmt.Errorf("case.encoding %q is not supported", c.Case.Encoding))
	}
	cx := c.Complexity
	for name, v := range map[string]int{
		"min_length":  cx.MinLength,
		"max_length":  cx.MaxLength,
		"min_lower":   cx.MinLower,
		"min_upper":   cx.MinUpper,
		"min_digits":  cx.MinDigits,
		"min_special": cx.MinSpecial,
	} {
		if v < 0 {
			result = multierror.Append(result, fmt.Errorf("complexity.%s must not be negative, got %d", name, v))
		}
	}
	if cx.MaxLength > 0 && cx.MaxLength < cx.MinLength {
		result = multierror.Append(result, fmt.Errorf("complexity.max_length %d is below min_length %d", cx.MaxLength, cx.MinLength))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		result = multierror.Append(result, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
