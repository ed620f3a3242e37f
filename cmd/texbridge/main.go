package main

import (
	"os"

	"github.com/specbug/texbridge/internal/logging"
	"github.com/specbug/texbridge/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Stdout carries the JSON result; everything human-readable goes to
	// stderr.
	logging.Setup()
	if logging.DebugEnabled() {
		// Guarded so the engine is only touched when someone is watching.
		logging.Debugf("texbridge %s (built %s, commit %s), tesseract %s",
			Version, BuildTime, GitCommit, ocr.Version())
	}

	// Failures are always signaled through the JSON error field, never
	// through the exit code, so the calling application has a single code
	// path for reading outcomes.
	Execute(os.Stdout, os.Args[1:])
}
