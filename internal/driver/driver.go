// Package driver implements the line-oriented state machine that reads a
// unified-diff byte stream, delimits hunks, and runs the hunk refinement
// pipeline (tokenize -> diff -> normalize -> paint) at each hunk boundary
// while echoing everything else verbatim.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/codalotl/worddiff/internal/ansiscan"
	"github.com/codalotl/worddiff/internal/paint"
	"github.com/codalotl/worddiff/internal/simplelogger"
	"github.com/codalotl/worddiff/internal/stats"
)

type state int

const (
	stateOutside state = iota
	stateInHunk
)

// Driver owns the one input stream, one output stream, and one reused hunk
// buffer described by the concurrency model: there is no concurrency here,
// everything runs synchronously on the line-read loop.
type Driver struct {
	in    *bufio.Reader
	sink  *paint.Sink
	stats *stats.Stats
	hunk  *HunkBuffer
	state state
}

// New constructs a Driver reading from in and writing styled output to out.
// st may be a disabled (zero-value) *stats.Stats; its Print is always called
// at EOF but is a no-op unless timing was started.
func New(in io.Reader, out io.Writer, cfg paint.AppConfig, st *stats.Stats) *Driver {
	return &Driver{
		in:    bufio.NewReader(in),
		sink:  paint.NewSink(out),
		stats: st,
		hunk:  NewHunkBuffer(cfg, st),
		state: stateOutside,
	}
}

// RefuseTerminalStdin reports a usage error if f is attached to a terminal.
// This tool expects to filter a diff byte stream; run interactively with no
// redirected input, it has nothing to read.
func RefuseTerminalStdin(f *os.File) error {
	if term.IsTerminal(int(f.Fd())) {
		return errors.New("usage: worddiff < diff-output (refusing to read from a terminal)")
	}
	return nil
}

// Run reads its input to EOF, writing colorized hunk lines and verbatim
// passthrough lines to its output. A write failure caused by a closed
// downstream pipe (broken pipe) is treated as a clean, successful exit
// rather than an error, per the resource model's broken-pipe tolerance.
func (d *Driver) Run() error {
	for {
		line, readErr := d.in.ReadBytes('\n')
		if len(line) > 0 {
			if err := d.processLine(line); err != nil {
				if isBrokenPipe(err) {
					return nil
				}
				return fmt.Errorf("io error: %w", err)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return fmt.Errorf("io error: %w", readErr)
		}
	}

	if err := d.flush(); err != nil {
		if isBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("io error: %w", err)
	}

	if err := d.stats.Print(os.Stderr); err != nil && !isBrokenPipe(err) {
		return fmt.Errorf("io error: %w", err)
	}
	return nil
}

func (d *Driver) processLine(line []byte) error {
	first, ok := ansiscan.FirstAfter(line)
	isHeader := ok && first == '@'

	if isHeader {
		if d.state == stateInHunk {
			if err := d.flush(); err != nil {
				return err
			}
		}
		d.state = stateInHunk
		simplelogger.Log("driver: hunk header")
		return d.sink.WriteRaw(line)
	}

	if d.state == stateOutside {
		return d.sink.WriteRaw(line)
	}

	switch {
	case ok && first == '+':
		d.hunk.PushAdded(line)
		return nil
	case ok && first == '-':
		d.hunk.PushRemoved(line)
		return nil
	case ok && first == ' ':
		d.hunk.PushContext(line)
		return nil
	default:
		if err := d.flush(); err != nil {
			return err
		}
		d.state = stateOutside
		return d.sink.WriteRaw(line)
	}
}

func (d *Driver) flush() error {
	if d.hunk.Empty() {
		return nil
	}
	simplelogger.Log("driver: flushing hunk (%d lines)", d.hunk.Len())
	err := d.hunk.Process(d.sink)
	d.hunk.Clear()
	return err
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
