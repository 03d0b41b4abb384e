// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Debug and trace
// both map to the debug level, quiet limits output to errors.
func CreateLogger(debug, trace, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug || trace {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
