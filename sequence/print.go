package sequence

import (
	"fmt"

	"github.com/hasbyte1/go-stream-utils/sink"
)

// Emit sends one (prefix, element, suffix) triple per element to dst, in
// order. It stops at and returns the first error.
func (s *Sequence[T]) Emit(dst sink.Sink, prefix, suffix string) error {
	for i, item := range s.buf() {
		if err := dst.Emit(prefix, item, suffix); err != nil {
			return fmt.Errorf("sequence: emit element %d: %w", i, err)
		}
	}
	return nil
}

// Print writes every element to sink.Default() with no separator.
func (s *Sequence[T]) Print() error { return s.Emit(sink.Default(), "", "") }

// Println writes every element on its own line.
func (s *Sequence[T]) Println() error { return s.Emit(sink.Default(), "", "\n") }

// PrintWith writes prefix + element + suffix for every element.
func (s *Sequence[T]) PrintWith(prefix, suffix string) error {
	return s.Emit(sink.Default(), prefix, suffix)
}

// PrintlnWith writes prefix + element + suffix + "\n" for every element.
func (s *Sequence[T]) PrintlnWith(prefix, suffix string) error {
	return s.Emit(sink.Default(), prefix, suffix+"\n")
}

// Prepend writes prefix + element for every element.
func (s *Sequence[T]) Prepend(prefix string) error {
	return s.Emit(sink.Default(), prefix, "")
}

// Prependln writes prefix + element + "\n" for every element.
func (s *Sequence[T]) Prependln(prefix string) error {
	return s.Emit(sink.Default(), prefix, "\n")
}

// Append writes element + suffix for every element.
func (s *Sequence[T]) Append(suffix string) error {
	return s.Emit(sink.Default(), "", suffix)
}

// Appendln writes element + suffix + "\n" for every element.
func (s *Sequence[T]) Appendln(suffix string) error {
	return s.Emit(sink.Default(), "", suffix+"\n")
}
