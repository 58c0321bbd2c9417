// Package sink implements the event-sink destinations: console, file,
// and a fan-out of both. Modeled on a small-interface-at-the-edge
// pattern plus compile-time interface-assertion idiom.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/corrigan-b/ossched/internal/model"
)

// Monitor writes every event line to an underlying writer, typically
// os.Stdout. It never closes the writer it was given.
type Monitor struct {
	w io.Writer
}

var _ model.Sink = (*Monitor)(nil)

// NewMonitor returns a Sink that writes to w.
func NewMonitor(w io.Writer) *Monitor {
	return &Monitor{w: w}
}

func (m *Monitor) Write(e model.Event) error {
	_, err := fmt.Fprintln(m.w, model.FormatLine(e))
	return err
}

// Close is a no-op: Monitor does not own its writer's lifecycle.
func (m *Monitor) Close() error { return nil }

// File appends LF-terminated, UTF-8 event lines to a path on disk, opening
// it (creating it if necessary) once at construction time.
type File struct {
	f *os.File
	w *bufio.Writer
}

var _ model.Sink = (*File)(nil)

// NewFile opens path in append mode, creating it if it does not exist.
// Failure to open is reported as a LogOpenFailure.
func NewFile(path string) (*File, *model.Error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, model.WrapError("sink.NewFile", model.ErrCodeLogOpenFailure, err)
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *File) Write(e model.Event) error {
	if _, err := s.w.WriteString(model.FormatLine(e)); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered output and closes the underlying file.
func (s *File) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// Multi fans a single event out to every wrapped Sink, in order, so
// `Both` produces identical content and order on each destination per
// the logging destinations.
type Multi struct {
	sinks []model.Sink
}

var _ model.Sink = (*Multi)(nil)

// NewMulti returns a Sink that forwards every Write/Close to each of
// sinks, in order, stopping at the first error.
func NewMulti(sinks ...model.Sink) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Write(e model.Event) error {
	for _, s := range m.sinks {
		if err := s.Write(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Close() error {
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			return err
		}
	}
	return nil
}
