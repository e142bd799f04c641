package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// IsJSON reports whether log lines should be JSON encoded.
func (c *LoggingConfig) IsJSON() bool {
	return c.Format == "json"
}
