package config

import "github.com/rshade/solarfocus/internal/logging"

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is json or console.
	Format string `yaml:"format"`
	// File, when set, sends logs to this path instead of stderr.
	File string `yaml:"file,omitempty"`
	// Caller adds file:line to every record.
	Caller bool `yaml:"caller,omitempty"`
}

// ToLoggingConfig converts the config section into a logging.Config.
//
// If File is set, Output becomes "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}

// GetLoggingConfig returns a copy of the global logging section. Callers
// apply flag overrides (such as --debug) to the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
