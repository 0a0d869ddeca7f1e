package config

import (
	"github.com/rshade/footprint/internal/logging"
)

// ToLoggingConfig converts the file settings to logging.Config. Level and
// Format are copied; a configured File takes precedence over the console.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}
