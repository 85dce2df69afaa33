// Package util provides common utilities including logging helpers,
// calendar-date arithmetic, data directories and passphrase handling.
package util

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose toggles Debugf output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Debugf logs only when verbose output is enabled.
func Debugf(format string, args ...any) {
	if verbose.Load() {
		log.Printf(format, args...)
	}
}
