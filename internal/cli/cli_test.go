package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codalotl/worddiff/internal/paint"
)

func TestRun_FiltersSimpleHunk(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := strings.NewReader("@@ -1,1 +1,1 @@\n-foo bar\n+foo baz\n")
	code, err := Run([]string{"worddiff"}, &RunOptions{In: in, Out: &out, Err: &errBuf})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "bar")
	require.Contains(t, out.String(), "baz")
}

func TestRun_DebugPrintsStatsTable(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := strings.NewReader("@@ -1,1 +1,1 @@\n-foo bar\n+foo baz\n")
	code, err := Run([]string{"worddiff", "--debug"}, &RunOptions{In: in, Out: &out, Err: &errBuf})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, errBuf.String(), "total")
}

func TestRun_UnknownFlagExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	code, err := Run([]string{"worddiff", "--not-a-real-flag"}, &RunOptions{In: strings.NewReader(""), Out: &out, Err: &errBuf})
	require.Error(t, err)
	require.Equal(t, 2, code)
}

func TestApplyColorSpecs_OverridesOnlyNamedFaces(t *testing.T) {
	cfg := paint.DefaultConfig()
	defaultRemoved := cfg.Removed
	err := applyColorSpecs(&cfg, []string{"added:foreground=blue", "refine-added:foreground=white:background=blue:bold"})
	require.NoError(t, err)

	blue, _ := paint.NamedColor("blue")
	white, _ := paint.NamedColor("white")
	require.Equal(t, blue, cfg.Added.FG)
	require.Equal(t, white, cfg.RefineAdded.FG)
	require.Equal(t, blue, cfg.RefineAdded.BG)
	require.True(t, cfg.RefineAdded.Bold)
	require.Equal(t, defaultRemoved, cfg.Removed)
}

func TestRun_ColorsFlagAppliesOverride(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := strings.NewReader("@@ -1,1 +1,1 @@\n-foo bar\n+foo baz\n")
	code, err := Run([]string{"worddiff", "--colors", "added:foreground=blue,refine-added:foreground=white:background=blue:bold"},
		&RunOptions{In: in, Out: &out, Err: &errBuf})
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestApplyColorSpecs_UnknownFaceIsError(t *testing.T) {
	cfg := paint.DefaultConfig()
	err := applyColorSpecs(&cfg, []string{"nonexistent:foreground=blue"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "nonexistent")
}

func TestApplyColorSpecs_UnknownColorIsError(t *testing.T) {
	cfg := paint.DefaultConfig()
	err := applyColorSpecs(&cfg, []string{"added:foreground=chartreuse"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "chartreuse")
}

func TestRun_BadColorsFlagExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	code, err := Run([]string{"worddiff", "--colors", "nonexistent:foreground=blue"}, &RunOptions{In: strings.NewReader(""), Out: &out, Err: &errBuf})
	require.Error(t, err)
	require.Equal(t, 2, code)
	require.Contains(t, errBuf.String(), "nonexistent")
}
