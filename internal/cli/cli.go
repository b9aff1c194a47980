// Package cli implements worddiff's command-line entry point: kong-based
// flag parsing, --colors spec parsing into paint.AppConfig overrides, and
// the RunOptions/Run testable-entrypoint pattern.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/codalotl/worddiff/internal/driver"
	"github.com/codalotl/worddiff/internal/paint"
	"github.com/codalotl/worddiff/internal/simplelogger"
	"github.com/codalotl/worddiff/internal/stats"
)

// Version is the worddiff version. It is a var (not a const) so build
// tooling can override it via -ldflags.
var Version = "0.1.0"

// RunOptions overrides standard I/O. If nil fields, os.Stdin/Stdout/Stderr
// are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI is the root flag structure parsed by kong.
type CLI struct {
	Debug   bool        `help:"print timing stats to standard error after the last hunk."`
	Colors  []string    `help:"override color faces (FACE[:attr=val]...), comma-separated." sep:","`
	LogFile string      `name:"log-file" help:"append driver diagnostics to this file." env:"WORDDIFF_LOG_FILE"`
	Version VersionFlag `help:"print version and exit."`
}

// VersionFlag is a custom flag type that prints the version and exits,
// matching the corpus's own kong VersionFlag convention.
type VersionFlag bool

// BeforeApply prints the version and exits via the parser's own Exit hook,
// so tests can override it (kong.Exit(func(int){})) without invoking
// os.Exit.
func (v VersionFlag) BeforeApply(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "worddiff", Version)
	app.Exit(0)
	return nil
}

// Run parses args and runs the filter. It returns a recommended exit code
// and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, an I/O error or a terminal-on-stdin refusal
//   - 2 -> err != nil, a flag or --colors parse error
//
// In all non-zero cases, Run has already written a diagnostic to opts.Err
// (or standard error). Callers may use os.Exit with the returned code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	var parsed CLI
	exitCode := -1
	parser, err := kong.New(&parsed,
		kong.Name("worddiff"),
		kong.Description("word-level highlighting filter for unified diff output"),
		kong.Writers(out, errW),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(errW, err)
		return 2, err
	}
	if _, err := parser.Parse(argv); err != nil {
		fmt.Fprintln(errW, err)
		return 2, err
	}
	if exitCode >= 0 {
		return exitCode, nil
	}

	if f, ok := in.(*os.File); ok {
		if err := driver.RefuseTerminalStdin(f); err != nil {
			fmt.Fprintln(errW, err)
			return 1, err
		}
	}

	if parsed.LogFile != "" {
		simplelogger.SetFile(parsed.LogFile)
	}

	cfg := paint.DefaultConfig()
	cfg.Debug = parsed.Debug
	if err := applyColorSpecs(&cfg, parsed.Colors); err != nil {
		fmt.Fprintln(errW, err)
		return 2, err
	}

	st := &stats.Stats{}
	if parsed.Debug {
		st.Start()
	}

	d := driver.New(in, out, cfg, st)
	if err := d.Run(); err != nil {
		fmt.Fprintln(errW, err)
		return 1, err
	}
	return 0, nil
}

// applyColorSpecs parses and applies each comma-split --colors entry in
// order, so a later SPEC for the same face overrides an earlier one.
func applyColorSpecs(cfg *paint.AppConfig, specs []string) error {
	for _, spec := range specs {
		if spec == "" {
			continue
		}
		if err := applyOneColorSpec(cfg, spec); err != nil {
			return err
		}
	}
	return nil
}

func applyOneColorSpec(cfg *paint.AppConfig, spec string) error {
	parts := strings.Split(spec, ":")
	face, err := faceByName(cfg, parts[0])
	if err != nil {
		return fmt.Errorf("--colors: %q: %w", spec, err)
	}
	for _, attr := range parts[1:] {
		if err := applyAttr(face, attr); err != nil {
			return fmt.Errorf("--colors: %q: %w", spec, err)
		}
	}
	return nil
}

func faceByName(cfg *paint.AppConfig, name string) (*paint.Face, error) {
	switch name {
	case "added":
		return &cfg.Added, nil
	case "removed":
		return &cfg.Removed, nil
	case "refine-added":
		return &cfg.RefineAdded, nil
	case "refine-removed":
		return &cfg.RefineRemoved, nil
	default:
		return nil, fmt.Errorf("unknown face %q", name)
	}
}

func applyAttr(face *paint.Face, attr string) error {
	switch attr {
	case "bold":
		face.Bold = true
		return nil
	case "italic":
		face.Italic = true
		return nil
	case "underline":
		face.Underline = true
		return nil
	}

	k, v, ok := strings.Cut(attr, "=")
	if !ok {
		return fmt.Errorf("malformed attribute %q", attr)
	}

	if v == "none" {
		switch k {
		case "foreground":
			face.HasFG = false
			return nil
		case "background":
			face.HasBG = false
			return nil
		default:
			return fmt.Errorf("unknown attribute %q", k)
		}
	}

	c, ok := paint.NamedColor(v)
	if !ok {
		return fmt.Errorf("unknown color %q", v)
	}
	switch k {
	case "foreground":
		face.HasFG, face.FG = true, c
		return nil
	case "background":
		face.HasBG, face.BG = true, c
		return nil
	default:
		return fmt.Errorf("unknown attribute %q", k)
	}
}
