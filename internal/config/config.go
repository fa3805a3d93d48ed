package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by applyEnvOverrides.
const (
	EnvLogLevel  = "IDIOMS_LOG_LEVEL"
	EnvLogFormat = "IDIOMS_LOG_FORMAT"
	EnvNoStyle   = "IDIOMS_NO_STYLE"
)

// Config holds all idioms configuration.
type Config struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version"`

	// Logging
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Console output shape
	Output OutputConfig `yaml:"output" toml:"output"`

	// Sample values fed to the demo scenarios
	Inputs InputsConfig `yaml:"inputs" toml:"inputs"`
}

// OutputConfig configures how scenarios render to the console.
type OutputConfig struct {
	Indent string `yaml:"indent" toml:"indent"`
	Footer string `yaml:"footer" toml:"footer"` // empty disables the closing line
	Styled bool   `yaml:"styled" toml:"styled"` // lipgloss section headers
}

// InputsConfig carries the values each scenario starts from.
type InputsConfig struct {
	Scalar         int32   `yaml:"scalar" toml:"scalar"`
	Growable       []int32 `yaml:"growable" toml:"growable"`
	ByteArray      [5]int  `yaml:"byte_array" toml:"byte_array"` // each 0..255
	ByteSlice      []int   `yaml:"byte_slice" toml:"byte_slice"` // each 0..255
	RecordName     string  `yaml:"record_name" toml:"record_name"`
	PullString     string  `yaml:"pull_string" toml:"pull_string"`
	RangeString    string  `yaml:"range_string" toml:"range_string"`
	WideString     string  `yaml:"wide_string" toml:"wide_string"`
	LookupIndex    int     `yaml:"lookup_index" toml:"lookup_index"`
	Token          string  `yaml:"token" toml:"token"`
	SliceMin       int     `yaml:"slice_min" toml:"slice_min"`
	SliceMax       int     `yaml:"slice_max" toml:"slice_max"`
	WorkIterations int     `yaml:"work_iterations" toml:"work_iterations"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "idioms",
		Version: "0.3.0",

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},

		Output: OutputConfig{
			Indent: "  ",
			Footer: "That's all Folks!",
			Styled: true,
		},

		Inputs: InputsConfig{
			Scalar:         42,
			Growable:       []int32{1, 2, 4},
			ByteArray:      [5]int{1, 2, 3, 4, 5},
			ByteSlice:      []int{5, 4, 3, 2, 1},
			RecordName:     "Frank",
			PullString:     "a test string",
			RangeString:    "another test string",
			WideString:     "héllo wörld 👋🏽",
			LookupIndex:    1,
			Token:          "abc123",
			SliceMin:       2,
			SliceMax:       4,
			WorkIterations: 200,
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML or TOML file, chosen by extension.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks settings the scenarios cannot recover from.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q (supported: text, json)", c.Logging.Format)
	}
	if len(c.Inputs.Growable) == 0 {
		return fmt.Errorf("inputs.growable must not be empty")
	}
	if len(c.Inputs.ByteSlice) == 0 {
		return fmt.Errorf("inputs.byte_slice must not be empty")
	}
	for _, b := range c.Inputs.ByteArray {
		if b < 0 || b > 255 {
			return fmt.Errorf("inputs.byte_array value %d out of byte range", b)
		}
	}
	for _, b := range c.Inputs.ByteSlice {
		if b < 0 || b > 255 {
			return fmt.Errorf("inputs.byte_slice value %d out of byte range", b)
		}
	}
	if c.Inputs.WorkIterations < 0 {
		return fmt.Errorf("inputs.work_iterations must not be negative")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		c.Logging.Level = lvl
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		c.Logging.Format = format
	}
	if raw := strings.TrimSpace(os.Getenv(EnvNoStyle)); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			c.Output.Styled = !v
		}
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
