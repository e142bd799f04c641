package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all tally configuration.
type Config struct {
	// Word count report settings
	Report ReportConfig `yaml:"report"`

	// CSV column statistics settings
	CSV CSVConfig `yaml:"csv"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig configures how word counts are ordered and printed.
type ReportConfig struct {
	Top    int    `yaml:"top"`    // 0 = all entries
	Sort   string `yaml:"sort"`   // count, alpha
	Format string `yaml:"format"` // text, json, yaml, markdown, table
	Style  string `yaml:"style"`  // glamour style for markdown output
	Theme  string `yaml:"theme"`  // light, dark (table output)
}

// CSVConfig configures the csvstats command.
type CSVConfig struct {
	Comma     string `yaml:"comma"`
	Precision int    `yaml:"precision"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Top:    0,
			Sort:   SortByCount,
			Format: FormatText,
			Theme:  "light",
		},
		CSV: CSVConfig{
			Comma:     ",",
			Precision: 2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Sort orders.
const (
	SortByCount = "count"
	SortByAlpha = "alpha"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatTable    = "table"
)

// ValidSorts lists all supported sort orders.
var ValidSorts = []string{SortByCount, SortByAlpha}

// ValidFormats lists all supported report formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatTable}

// ValidThemes lists the table color themes.
var ValidThemes = []string{"light", "dark"}

// ValidLogLevels lists all supported logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Report.Top < 0 {
		return fmt.Errorf("invalid report top: %d (must be >= 0)", c.Report.Top)
	}
	if !contains(ValidSorts, c.Report.Sort) {
		return fmt.Errorf("invalid report sort: %s (valid: %v)", c.Report.Sort, ValidSorts)
	}
	if !contains(ValidFormats, c.Report.Format) {
		return fmt.Errorf("invalid report format: %s (valid: %v)", c.Report.Format, ValidFormats)
	}
	if c.Report.Theme != "" && !contains(ValidThemes, c.Report.Theme) {
		return fmt.Errorf("invalid report theme: %s (valid: %v)", c.Report.Theme, ValidThemes)
	}
	if len([]rune(c.CSV.Comma)) != 1 {
		return fmt.Errorf("invalid csv comma: %q (must be a single character)", c.CSV.Comma)
	}
	if c.CSV.Precision < 0 {
		return fmt.Errorf("invalid csv precision: %d (must be >= 0)", c.CSV.Precision)
	}
	if c.Logging.Level != "" && !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

// CommaRune returns the CSV field delimiter.
func (c *Config) CommaRune() rune {
	for _, r := range c.CSV.Comma {
		return r
	}
	return ','
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
