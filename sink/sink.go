package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Sink consumes (prefix, element, suffix) triples. Implementations emit
// each triple before Emit returns, so calls are observed in call order.
type Sink interface {
	Emit(prefix string, element any, suffix string) error
}

// Closer is a Sink that holds a resource, such as an opened file.
type Closer interface {
	Sink
	io.Closer
}

// Func adapts an ordinary function to the [Sink] interface.
type Func func(prefix string, element any, suffix string) error

// Emit calls f(prefix, element, suffix).
func (f Func) Emit(prefix string, element any, suffix string) error {
	return f(prefix, element, suffix)
}

// Render returns the text form of a triple: prefix, the element formatted
// with fmt.Sprint, then suffix.
func Render(prefix string, element any, suffix string) string {
	return prefix + fmt.Sprint(element) + suffix
}

var defaultSink struct {
	mu   sync.RWMutex
	sink Sink
}

func init() {
	defaultSink.sink = NewWriterSink(os.Stdout)
}

// Default returns the process-wide sink. Unless replaced with [SetDefault]
// it writes to standard output.
func Default() Sink {
	defaultSink.mu.RLock()
	defer defaultSink.mu.RUnlock()
	return defaultSink.sink
}

// SetDefault replaces the process-wide sink and returns the previous one.
// A nil s restores the standard output sink.
func SetDefault(s Sink) Sink {
	if s == nil {
		s = NewWriterSink(os.Stdout)
	}
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	prev := defaultSink.sink
	defaultSink.sink = s
	return prev
}

// affixed decorates every triple with an outer prefix and suffix. The outer
// suffix goes before any trailing newlines of the triple's own suffix, so
// line-oriented output stays one element per line.
type affixed struct {
	Closer
	prefix string
	suffix string
}

func (a *affixed) Emit(prefix string, element any, suffix string) error {
	body := strings.TrimRight(suffix, "\n")
	return a.Closer.Emit(a.prefix+prefix, element, body+a.suffix+suffix[len(body):])
}
