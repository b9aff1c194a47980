package paint

import (
	"github.com/codalotl/worddiff/internal/normalize"
	"github.com/codalotl/worddiff/internal/tokenize"
)

// Cursor walks one side's normalized shared intervals across a sequence of
// lines. Lines must be painted in increasing byte-offset order; the cursor
// only advances past an interval once that interval's upper bound falls
// within the line just painted, so an interval spanning two original lines
// (a snake whose matched tokens cross a line boundary) is correctly applied
// to both.
type Cursor struct {
	intervals []normalize.Interval
	idx       int
}

// NewCursor wraps a side's normalized shared intervals, which must be
// ordered and non-overlapping (as Shift produces them).
func NewCursor(intervals []normalize.Interval) *Cursor {
	return &Cursor{intervals: intervals}
}

// Writer is the painter's output capability: render a styled span, or pass
// one through unstyled. *Sink implements Writer against a real terminal
// stream; tests substitute an in-memory recorder.
type Writer interface {
	Paint(face Face, b []byte) error
	WriteRaw(b []byte) error
}

// Line paints data[lineStart:lineEnd) (one removed or added line, trailing
// newline included if present) to w. The leading marker byte and any
// immediately following ASCII indentation are emitted under noHighlight;
// bytes covered by a shared interval, together with any whitespace directly
// following it, are emitted under noHighlight, and all other bytes under
// highlight.
func (c *Cursor) Line(data []byte, lineStart, lineEnd int, noHighlight, highlight Face, w Writer) error {
	if lineStart >= lineEnd {
		return nil
	}

	indentEnd := tokenize.SkipMarkerAndIndent(data, lineStart, lineEnd)
	if indentEnd > lineStart {
		if err := w.Paint(noHighlight, data[lineStart:indentEnd]); err != nil {
			return err
		}
	}

	y := indentEnd
	for c.idx < len(c.intervals) {
		iv := c.intervals[c.idx]
		if iv.Hi <= y {
			c.idx++
			continue
		}
		if iv.Lo >= lineEnd {
			break // belongs to a later line
		}

		lo := clamp(iv.Lo, y, lineEnd)
		hi := clamp(iv.Hi, y, lineEnd)
		if lo > y {
			if err := w.Paint(highlight, data[y:lo]); err != nil {
				return err
			}
		}
		if hi > lo {
			// Shared-interval bounds land on token edges; whitespace is
			// never a token (§4.3), so a trailing run of it here belongs
			// with the shared span, not with whatever comes after it.
			absorbed := hi
			for absorbed < lineEnd && tokenize.ClassOf(data[absorbed]) == tokenize.ClassWhitespace {
				absorbed++
			}
			if err := w.Paint(noHighlight, data[lo:absorbed]); err != nil {
				return err
			}
			hi = absorbed
		}
		y = hi

		if iv.Hi <= lineEnd {
			c.idx++
			continue
		}
		break // interval continues past this line; keep it for the next
	}

	if y < lineEnd {
		if err := w.Paint(highlight, data[y:lineEnd]); err != nil {
			return err
		}
	}
	return nil
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
