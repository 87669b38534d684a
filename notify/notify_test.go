package notify

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestWriterSinkInfo(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Info("using environment file \".env.production\"")

	got := buf.String()
	if !strings.HasPrefix(got, "[INFO] ") {
		t.Errorf("Expected info level tag, got %q", got)
	}
	if !strings.Contains(got, ".env.production") {
		t.Errorf("Expected message content, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Expected trailing newline, got %q", got)
	}
}

func TestWriterSinkWarn(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Warn("falling back")

	if got := buf.String(); got != "[WARN] falling back\n" {
		t.Errorf("Unexpected warn output: %q", got)
	}
}

func TestWriterSinkNilWriter(t *testing.T) {
	sink := NewWriterSink(nil)

	// Must not panic.
	sink.Info("dropped")
	sink.Warn("dropped")
}

func TestWriterSinkConcurrent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	const writers = 8
	const messages = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < messages; j++ {
				sink.Info("message")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != writers*messages {
		t.Errorf("Expected %d lines, got %d", writers*messages, len(lines))
	}
	for _, line := range lines {
		if line != "[INFO] message" {
			t.Errorf("Interleaved write detected: %q", line)
			break
		}
	}
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()

	// Must not panic and must accept any message.
	sink.Info("ignored")
	sink.Warn("ignored")
}
