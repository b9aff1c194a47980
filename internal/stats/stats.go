// Package stats accumulates optional wall-clock timing for the diff/normalize
// pipeline and prints a summary table when enabled.
package stats

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Stats accumulates elapsed time across hunks. The zero value has timing
// disabled (Enabled == false); Start must be called once to enable it.
type Stats struct {
	Enabled bool

	TotalMS  int64
	DiffMS   int64 // tokenization + Myers diff, wall time for the whole diff-core call
	LCSMS    int64 // Myers diff only, nested within DiffMS
	OptLCSMS int64 // optimize_partition (LCS normalization), both sides

	programStart time.Time
}

// Start marks timing as enabled and records the program start time.
func (s *Stats) Start() {
	s.Enabled = true
	s.programStart = time.Now()
}

// Timer measures one phase; call Stop to add its elapsed time to dst.
// Negative durations (a non-monotonic clock) contribute 0.
type Timer struct {
	dst   *int64
	start time.Time
}

// Time begins timing a phase, adding its elapsed milliseconds to dst when
// the returned Timer is stopped. If s is disabled, the returned Timer is a
// no-op.
func (s *Stats) Time(dst *int64) Timer {
	if !s.Enabled {
		return Timer{}
	}
	return Timer{dst: dst, start: time.Now()}
}

// Stop records the elapsed time. Safe to call on a no-op Timer.
func (t Timer) Stop() {
	if t.dst == nil {
		return
	}
	elapsed := time.Since(t.start).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	*t.dst += elapsed
}

// Print writes a right-aligned summary table to w. It is a no-op if timing
// was never enabled.
func (s *Stats) Print(w io.Writer) error {
	if !s.Enabled {
		return nil
	}
	rows := []struct {
		label string
		ms    int64
	}{
		{"total", s.TotalMS},
		{"diff", s.DiffMS},
		{"lcs", s.LCSMS},
		{"optimize_partition", s.OptLCSMS},
	}
	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}
	if rule := terminalRule(w); rule != "" {
		if _, err := fmt.Fprintln(w, rule); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s %8d ms\n", width, r.label, r.ms); err != nil {
			return err
		}
	}
	return nil
}

// terminalRule returns a rule line sized to w's terminal width (at most 80
// columns), or "" if w
// isn't a terminal (the common case: stats are printed to a redirected or
// piped standard error).
func terminalRule(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok {
		return ""
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return ""
	}
	if width > 80 {
		width = 80
	}
	return strings.Repeat("-", width)
}
