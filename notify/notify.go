// Package notify delivers resolver notifications.
//
// The resolver reports which environment file it selected through a Sink;
// implementations decide where messages go and how they look. Styling is a
// decorator over a Sink, never a Sink responsibility.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives resolution notifications at two severities.
type Sink interface {
	// Info reports a routine resolution outcome.
	Info(msg string)

	// Warn reports an outcome that deserves attention, such as falling
	// back to a less specific file than the pattern asked for.
	Warn(msg string)
}

// WriterSink writes level-tagged notification lines to an io.Writer. It is
// safe for concurrent use. A nil writer silently discards messages.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Info writes "[INFO] <msg>".
func (s *WriterSink) Info(msg string) {
	s.write("INFO", msg)
}

// Warn writes "[WARN] <msg>".
func (s *WriterSink) Warn(msg string) {
	s.write("WARN", msg)
}

func (s *WriterSink) write(level, msg string) {
	if s.w == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "[%s] %s\n", level, msg)
}

// NopSink discards all notifications. Useful for callers that want
// resolution without any reporting.
type NopSink struct{}

// NewNopSink creates a NopSink instance.
func NewNopSink() *NopSink {
	return &NopSink{}
}

// Info is a no-op implementation.
func (n *NopSink) Info(msg string) {
}

// Warn is a no-op implementation.
func (n *NopSink) Warn(msg string) {
}
