// Package sink provides the output side of a sequence pipeline: consumers
// of (prefix, element, suffix) triples.
//
// # Sinks
//
// A [Sink] receives one triple per element, in sequence order, and must
// emit it before returning. Two implementations ship with this package:
//
//   - [WriterSink]: renders prefix + element + suffix to an io.Writer
//     (standard output by default)
//   - [LogSink]: emits every triple as one zerolog event
//
// [Func] adapts a plain function. [Default] returns the process-wide sink
// used by the sequence print family; [SetDefault] replaces it.
//
// # Configuration
//
// [LoadConfig] reads a [Config] from an optional YAML file, an optional
// .env file and SEQUENCE_SINK_* environment variables, then [New] builds
// the matching sink:
//
//	cfg, err := sink.LoadConfig(sink.WithConfigFile("sink.yml"))
//	if err != nil { return err }
//	out, err := sink.New(cfg)
//	if err != nil { return err }
//	defer out.Close()
//	sink.SetDefault(out)
package sink
