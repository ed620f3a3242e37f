// Package logging provides the bridge's stderr logging helpers.
//
// Stdout is reserved for the JSON result, so all human-readable output goes
// through the standard logger configured for stderr. Debug logging is gated
// by TEXBRIDGE_LOG_LEVEL=debug.
package logging

import (
	"log"
	"os"
)

// Setup configures the standard logger for stderr output with timestamps and
// source locations. Call once at process start, before anything logs.
func Setup() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// DebugEnabled reports whether debug logging was requested via the
// TEXBRIDGE_LOG_LEVEL environment variable.
func DebugEnabled() bool {
	return os.Getenv("TEXBRIDGE_LOG_LEVEL") == "debug"
}

// Debugf logs a formatted message when debug logging is enabled.
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf(format, args...)
	}
}
