package sink

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// LogSink emits every triple as a single zerolog event. The rendered text,
// without its trailing newline, becomes the event message and the raw
// element is attached as the "element" field.
type LogSink struct {
	logger zerolog.Logger
	level  zerolog.Level
	closer io.Closer
}

// NewLogSink returns a sink logging at level through logger.
func NewLogSink(logger zerolog.Logger, level zerolog.Level) *LogSink {
	return &LogSink{logger: logger, level: level}
}

// Emit logs one event for the triple.
func (s *LogSink) Emit(prefix string, element any, suffix string) error {
	s.logger.WithLevel(s.level).
		Interface("element", element).
		Msg(strings.TrimRight(Render(prefix, element, suffix), "\n"))
	return nil
}

// Close releases the underlying file when the sink opened it itself.
func (s *LogSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
