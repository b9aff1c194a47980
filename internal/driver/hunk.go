package driver

import (
	"github.com/codalotl/worddiff/internal/diff"
	"github.com/codalotl/worddiff/internal/linestore"
	"github.com/codalotl/worddiff/internal/normalize"
	"github.com/codalotl/worddiff/internal/paint"
	"github.com/codalotl/worddiff/internal/stats"
	"github.com/codalotl/worddiff/internal/tokenize"
)

type lineKind int

const (
	kindContext lineKind = iota
	kindAdded
	kindRemoved
)

// hunkLine records one line of the hunk in arrival order. Context lines keep
// their original bytes verbatim (ANSI escapes and all) for exact passthrough;
// added/removed lines instead hold their range in the ANSI-stripped arena,
// since those are the lines the refinement pipeline rewrites.
type hunkLine struct {
	kind lineKind
	raw  []byte
	rng  linestore.Range
}

// HunkBuffer aggregates one hunk's lines and runs the diff/normalize/paint
// pipeline over them at the hunk boundary. It is created once by the driver
// and reused across hunks; Clear resets it without releasing its backing
// storage, so peak memory is bounded by the largest hunk seen.
type HunkBuffer struct {
	store *linestore.Store
	lines []hunkLine
	cfg   paint.AppConfig
	stats *stats.Stats
}

// NewHunkBuffer constructs an empty HunkBuffer. st accumulates timing when
// enabled; cfg supplies the faces used to paint added/removed lines.
func NewHunkBuffer(cfg paint.AppConfig, st *stats.Stats) *HunkBuffer {
	return &HunkBuffer{store: linestore.New(), cfg: cfg, stats: st}
}

// Empty reports whether any line has been pushed since the last Clear.
func (hb *HunkBuffer) Empty() bool { return len(hb.lines) == 0 }

// Len returns the number of lines pushed since the last Clear.
func (hb *HunkBuffer) Len() int { return len(hb.lines) }

// PushContext records a context (' ') line, preserved byte-for-byte.
func (hb *HunkBuffer) PushContext(line []byte) {
	cp := append([]byte(nil), line...)
	hb.lines = append(hb.lines, hunkLine{kind: kindContext, raw: cp})
}

// PushAdded records an added ('+') line, ANSI-stripped into the arena.
func (hb *HunkBuffer) PushAdded(line []byte) {
	rng := hb.store.AppendLine(line)
	hb.lines = append(hb.lines, hunkLine{kind: kindAdded, rng: rng})
}

// PushRemoved records a removed ('-') line, ANSI-stripped into the arena.
func (hb *HunkBuffer) PushRemoved(line []byte) {
	rng := hb.store.AppendLine(line)
	hb.lines = append(hb.lines, hunkLine{kind: kindRemoved, rng: rng})
}

// Clear resets the hunk buffer for the next hunk without releasing its
// backing arrays.
func (hb *HunkBuffer) Clear() {
	hb.store.Clear()
	hb.lines = hb.lines[:0]
}

// Process runs the refinement pipeline: tokenize each side's added/removed
// lines, diff the token sequences into snakes, normalize each side's shared
// intervals independently, then paint every line (in its original arrival
// order) to sink. Context lines are written through unstyled.
func (hb *HunkBuffer) Process(sink *paint.Sink) error {
	totalTimer := hb.stats.Time(&hb.stats.TotalMS)
	defer totalTimer.Stop()

	data := hb.store.Data()

	diffTimer := hb.stats.Time(&hb.stats.DiffMS)
	var addedSpans, removedSpans []tokenize.HashedSpan
	for _, ln := range hb.lines {
		switch ln.kind {
		case kindAdded:
			start := tokenize.SkipMarkerAndIndent(data, ln.rng.Start, ln.rng.End)
			addedSpans = append(addedSpans, tokenize.Tokens(data, start, ln.rng.End)...)
		case kindRemoved:
			start := tokenize.SkipMarkerAndIndent(data, ln.rng.Start, ln.rng.End)
			removedSpans = append(removedSpans, tokenize.Tokens(data, start, ln.rng.End)...)
		}
	}

	lcsTimer := hb.stats.Time(&hb.stats.LCSMS)
	snakes := diff.Snakes(removedSpans, addedSpans, data, data)
	lcsTimer.Stop()
	diffTimer.Stop()

	removedRuns := make([]normalize.Run, len(snakes))
	addedRuns := make([]normalize.Run, len(snakes))
	for i, sn := range snakes {
		removedRuns[i] = normalize.Run{TokStart: sn.X0, TokLen: sn.Length}
		addedRuns[i] = normalize.Run{TokStart: sn.Y0, TokLen: sn.Length}
	}

	optTimer := hb.stats.Time(&hb.stats.OptLCSMS)
	removedIntervals := normalize.Shift(data, removedSpans, removedRuns)
	addedIntervals := normalize.Shift(data, addedSpans, addedRuns)
	optTimer.Stop()

	removedCursor := paint.NewCursor(removedIntervals)
	addedCursor := paint.NewCursor(addedIntervals)

	for _, ln := range hb.lines {
		switch ln.kind {
		case kindContext:
			if err := sink.WriteRaw(ln.raw); err != nil {
				return err
			}
		case kindRemoved:
			if err := removedCursor.Line(data, ln.rng.Start, ln.rng.End, hb.cfg.Removed, hb.cfg.RefineRemoved, sink); err != nil {
				return err
			}
		case kindAdded:
			if err := addedCursor.Line(data, ln.rng.Start, ln.rng.End, hb.cfg.Added, hb.cfg.RefineAdded, sink); err != nil {
				return err
			}
		}
	}
	return nil
}
