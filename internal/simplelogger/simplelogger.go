package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

var (
	mu          sync.Mutex
	override    string
	hasOverride bool
)

// SetFile overrides the destination file for Log, taking precedence over the
// WORDDIFF_LOG_FILE environment variable. Passing "" clears the override and
// falls back to the environment variable again.
func SetFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	override = path
	hasOverride = path != ""
}

// Log is a minimal printf-style logger. It appends formatted output to the file
// set by SetFile, or else the file named by the WORDDIFF_LOG_FILE environment
// variable.
//
// If no destination is configured, or the path can't be opened as a file, Log
// is a no-op.
func Log(format string, args ...any) {
	mu.Lock()
	path := override
	useOverride := hasOverride
	mu.Unlock()

	if !useOverride {
		path = os.Getenv("WORDDIFF_LOG_FILE")
	}
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
