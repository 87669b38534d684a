package notify

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorSink decorates another Sink with severity styling: informational
// messages in cyan, warnings in yellow. The styling carries no meaning
// beyond emphasis; the wrapped sink receives the styled text as an ordinary
// message. Color output honors the NO_COLOR convention through the color
// package's global switch.
type ColorSink struct {
	next Sink
	info *color.Color
	warn *color.Color
}

// WithColor wraps next so messages arrive styled by severity.
func WithColor(next Sink) *ColorSink {
	return &ColorSink{
		next: next,
		info: color.New(color.FgCyan),
		warn: color.New(color.FgYellow),
	}
}

// Info forwards msg in the informational style.
func (s *ColorSink) Info(msg string) {
	s.next.Info(s.info.Sprint(msg))
}

// Warn forwards msg in the warning style.
func (s *ColorSink) Warn(msg string) {
	s.next.Warn(s.warn.Sprint(msg))
}

// NewConsoleSink builds the sink used for interactive output: level-tagged
// lines on w, color-decorated when w is the process's own terminal.
func NewConsoleSink(w io.Writer) Sink {
	base := NewWriterSink(w)
	if isTerminal(w) {
		return WithColor(base)
	}
	return base
}

// isTerminal checks if the writer is a terminal that supports colors.
// Only the process's own stdout and stderr ever qualify.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || (f != os.Stdout && f != os.Stderr) {
		return false
	}

	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}
