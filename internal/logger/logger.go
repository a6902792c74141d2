// Package logger provides the oposearch CLI's verbose diagnostics.
// Output goes to stderr and is silent unless --verbose is set, so the
// commands' stdout stays parseable. Levels are cosmetic prefixes, not
// filters: verbose shows everything, quiet shows nothing.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables diagnostic output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostic output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects diagnostic output, for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug logs fine-grained pipeline detail (per-query, per-file).
func Debug(format string, args ...any) {
	logf("[debug] ", format, args...)
}

// Info logs milestones: catalog loaded, build finished.
func Info(format string, args ...any) {
	logf("[info] ", format, args...)
}

// Warn logs recoverable problems, like a skipped document.
func Warn(format string, args ...any) {
	logf("[warn] ", format, args...)
}

// Section marks the start of a named phase in the output.
func Section(name string) {
	logf("", "\n-- %s --", name)
}
