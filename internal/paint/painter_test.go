package paint

import (
	"testing"

	"github.com/codalotl/worddiff/internal/normalize"
	"github.com/stretchr/testify/require"
)

type span struct {
	face string // "no-highlight", "highlight", or "raw"
	text string
}

type recorder struct {
	noHighlight, highlight Face
	spans                  []span
}

func (r *recorder) Paint(face Face, b []byte) error {
	name := "highlight"
	if face == r.noHighlight {
		name = "no-highlight"
	}
	r.spans = append(r.spans, span{face: name, text: string(b)})
	return nil
}

func (r *recorder) WriteRaw(b []byte) error {
	r.spans = append(r.spans, span{face: "raw", text: string(b)})
	return nil
}

func TestCursor_Line_ScenarioFooBarFooBaz(t *testing.T) {
	// "-foo bar\n" with "foo " shared (LCS), "bar" refined.
	data := []byte("-foo bar\n")
	noH := Face{}
	hi := Face{Bold: true}
	rec := &recorder{noHighlight: noH, highlight: hi}

	// The "foo" token itself is bytes [1,4) (after the '-' marker);
	// normalize.Shift reports shared runs at their token boundary, not
	// including the trailing space, which Cursor.Line absorbs at render
	// time (see painter.go's Line).
	intervals := []normalize.Interval{{Lo: 1, Hi: 4}}
	c := NewCursor(intervals)
	require.NoError(t, c.Line(data, 0, len(data), noH, hi, rec))

	require.Equal(t, []span{
		{face: "no-highlight", text: "-"},
		{face: "no-highlight", text: "foo "},
		{face: "highlight", text: "bar\n"},
	}, rec.spans)
}

func TestCursor_Line_EntireLineIsLCS(t *testing.T) {
	data := []byte("-aaa\n")
	noH := Face{}
	hi := Face{Bold: true}
	rec := &recorder{noHighlight: noH, highlight: hi}

	intervals := []normalize.Interval{{Lo: 1, Hi: 4}}
	c := NewCursor(intervals)
	require.NoError(t, c.Line(data, 0, len(data), noH, hi, rec))

	require.Equal(t, []span{
		{face: "no-highlight", text: "-"},
		{face: "no-highlight", text: "aaa\n"},
	}, rec.spans)
}

func TestCursor_Line_EmptyBodyAfterMarker(t *testing.T) {
	data := []byte("+\n")
	noH := Face{}
	hi := Face{Bold: true}
	rec := &recorder{noHighlight: noH, highlight: hi}

	c := NewCursor(nil)
	require.NoError(t, c.Line(data, 0, len(data), noH, hi, rec))

	require.Equal(t, []span{
		{face: "no-highlight", text: "+\n"},
	}, rec.spans)
}

func TestCursor_Line_IntervalSpansTwoLines(t *testing.T) {
	// Simulates a snake whose matched tokens cross a line boundary: one
	// shared interval covering bytes from line 1 into line 2.
	data := []byte("-foo\n-bar\n")
	line1 := [2]int{0, 5}
	line2 := [2]int{5, 10}
	noH := Face{}
	hi := Face{Bold: true}
	rec := &recorder{noHighlight: noH, highlight: hi}

	intervals := []normalize.Interval{{Lo: 1, Hi: 8}} // "foo\n-ba" shared
	c := NewCursor(intervals)
	require.NoError(t, c.Line(data, line1[0], line1[1], noH, hi, rec))
	require.NoError(t, c.Line(data, line2[0], line2[1], noH, hi, rec))

	require.Equal(t, []span{
		{face: "no-highlight", text: "-"},
		{face: "no-highlight", text: "foo\n"},
		{face: "no-highlight", text: "-"},
		{face: "no-highlight", text: "ba"},
		{face: "highlight", text: "r\n"},
	}, rec.spans)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	green, _ := NamedColor("green")
	require.True(t, cfg.Added.HasFG)
	require.Equal(t, green, cfg.Added.FG)
	require.True(t, cfg.RefineAdded.Bold)
	require.True(t, cfg.RefineAdded.HasBG)
}
