package types

import "errors"

// Config holds the settings the masthead CLI reads from config.yaml, the
// environment and flags.
type Config struct {
	SeedFile string `json:"seed_file" yaml:"seed_file" mapstructure:"seed_file"`
	Output   string `json:"output" yaml:"output" mapstructure:"output"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrOutputUnknown   = errors.New("unknown output format")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// WithDefaults returns a copy of c with empty Output and LogLevel replaced
// by OutputText and LogLevelInfo.
func (c Config) WithDefaults() Config {
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.LogLevel == "" {
		c.LogLevel = LogLevelInfo
	}
	return c
}

// Validate checks that the Config is well-formed after defaults are applied.
// An empty SeedFile is valid and selects the built-in demonstration seed.
func (c Config) Validate() error {
	c = c.WithDefaults()
	if !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
