package app

import "fmt"

// Config holds everything an App needs to start.
type Config struct {
	// OptionsPath points at an option manifest file or directory. Empty
	// means the table embedded in the binary.
	OptionsPath string

	LogFormat string
	LogLevel  string

	// Sets are startup assignments of the form "Name=Value", applied in
	// order after every option is declared.
	Sets []string
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
