package gothread

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink serializes line-oriented output from concurrent writers. One WriteLine
// or Printf call holds the lock for the whole composed line, so lines from
// different goroutines never interleave character-by-character in the
// destination.
//
// The lock is not exposed: there is deliberately no way to acquire it for
// part of a message.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// Stdout is the process-wide sink over standard output. Demo programs and
// concurrent workers share it freely.
var Stdout = NewSink(os.Stdout)

// NewSink returns a sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteLine emits text plus a trailing newline as one atomic unit. An I/O
// failure of the destination is unrecoverable at this layer and ignored.
func (s *Sink) WriteLine(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.w, text+"\n")
}

// Printf composes a line with fmt.Sprintf and emits it like WriteLine.
func (s *Sink) Printf(format string, args ...any) {
	s.WriteLine(fmt.Sprintf(format, args...))
}

// Write implements io.Writer so the sink can back loggers and other
// line-at-a-time writers. Each call is one atomic emission; no newline is
// appended.
func (s *Sink) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
