package paint

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Sink is the painter's output primitive: it renders a byte span under a
// Face, then (if the span ends in a newline) resets styling before writing
// the newline, so background color never bleeds across the line wrap.
//
// Sink always renders through a lipgloss Renderer forced to the ANSI color
// profile, regardless of whether the underlying writer is a terminal: this
// tool is commonly piped into a pager or into version control tooling that
// itself re-colors, and the caller (not Sink) is responsible for deciding
// whether color should be emitted at all.
type Sink struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewSink wraps w for colored output.
func NewSink(w io.Writer) *Sink {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI))
	return &Sink{w: w, renderer: r}
}

// Paint writes b styled under face. A trailing '\n' in b, if present, is
// written unstyled after the rest of the span's styling has been reset.
func (s *Sink) Paint(face Face, b []byte) error {
	nl := len(b) > 0 && b[len(b)-1] == '\n'
	body := b
	if nl {
		body = b[:len(b)-1]
	}
	if len(body) > 0 {
		if _, err := io.WriteString(s.w, style(s.renderer, face).Render(string(body))); err != nil {
			return err
		}
	}
	if nl {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw writes b with no styling applied, for passthrough content.
func (s *Sink) WriteRaw(b []byte) error {
	_, err := s.w.Write(b)
	return err
}

func style(r *lipgloss.Renderer, f Face) lipgloss.Style {
	st := r.NewStyle()
	if f.HasFG {
		st = st.Foreground(f.FG)
	}
	if f.HasBG {
		st = st.Background(f.BG)
	}
	if f.Bold {
		st = st.Bold(true)
	}
	if f.Italic {
		st = st.Italic(true)
	}
	if f.Underline {
		st = st.Underline(true)
	}
	return st
}
