package sink

import (
	"io"
	"sync"
)

// WriterSink renders triples to an io.Writer with [Render]. Writes are
// unbuffered and serialized, so output appears in call order.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewWriterSink returns a sink writing to w. Close on the returned sink does
// not close w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes prefix + element + suffix.
func (s *WriterSink) Emit(prefix string, element any, suffix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, Render(prefix, element, suffix))
	return err
}

// Close releases the underlying file when the sink opened it itself.
func (s *WriterSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
