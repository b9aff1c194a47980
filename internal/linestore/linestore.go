// Package linestore provides an append-only byte arena for one diff hunk's
// worth of lines. Appended lines have any ANSI SGR escape sequences stripped;
// the arena and the recorded (start, end) ranges are stable until Clear is
// called, which is done once per hunk boundary rather than reallocating.
package linestore

import "github.com/codalotl/worddiff/internal/ansiscan"

// Range is a byte range [Start, End) within a Store's Data.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int { return r.End - r.Start }

// Store is an append-only buffer of escape-stripped line bytes, plus the
// per-line ranges recorded as they were appended.
type Store struct {
	buf   []byte
	lines []Range
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Data returns the full backing buffer. The slice aliases the Store's
// internal storage and is invalidated by the next AppendLine or Clear call.
func (s *Store) Data() []byte {
	return s.buf
}

// Lines returns the ranges of all appended lines, in append order. The slice
// aliases the Store's internal storage.
func (s *Store) Lines() []Range {
	return s.lines
}

// Len returns the number of lines appended since the last Clear.
func (s *Store) Len() int {
	return len(s.lines)
}

// Clear empties the store without releasing its backing arrays, so the next
// hunk reuses the same capacity.
func (s *Store) Clear() {
	s.buf = s.buf[:0]
	s.lines = s.lines[:0]
}

// AppendLine strips all ANSI SGR sequences from line and appends the
// remaining bytes as one new line, returning its range. Newline bytes in
// line, if present, are preserved.
func (s *Store) AppendLine(line []byte) Range {
	start := len(s.buf)
	i := 0
	for i < len(line) {
		i += ansiscan.SkipAll(line[i:])
		tokLen := skipToEscape(line[i:])
		if tokLen == 0 && i < len(line) {
			// An ESC that does not start a complete SGR sequence is kept as
			// an ordinary byte.
			tokLen = 1 + skipToEscape(line[i+1:])
		}
		s.buf = append(s.buf, line[i:i+tokLen]...)
		i += tokLen
	}
	r := Range{Start: start, End: len(s.buf)}
	s.lines = append(s.lines, r)
	return r
}

// skipToEscape returns the number of bytes until the next ESC byte, or the
// full length of buf if none is present.
func skipToEscape(buf []byte) int {
	for i, b := range buf {
		if b == 0x1b {
			return i
		}
	}
	return len(buf)
}
