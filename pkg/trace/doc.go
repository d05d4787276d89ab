// Package trace records the traffic flowing through a combiner.
//
// Every upstream notification (content loaded/removed, device changed/removed)
// and every merged emission is captured as an Event. Tracing is separate from
// operational logging (slog): a trace is a complete, machine-readable record
// of what the combiner saw and what it delivered.
//
// # Basic Usage
//
//	// Development: print events through slog
//	c.SetTraceLogger(trace.NewSlogAdapter(slog.Default()))
//
//	// Capture to a file for later inspection with mediactl-trace
//	fl, _ := trace.NewFileLogger("/tmp/session.mtrace")
//	defer fl.Close() // flushes buffered events
//	c.SetTraceLogger(fl)
//
//	// Both
//	c.SetTraceLogger(trace.NewMultiLogger(trace.NewSlogAdapter(slog.Default()), fl))
//
// # Event Shape
//
// Each event has a Direction (IN for upstream notifications, OUT for merged
// emissions), a Stream (content, device, merged) and a Kind (loaded,
// removed). Loaded events carry content and/or device summaries; artwork and
// icons are never recorded. An inbound load that leaves the session with
// only one half carries a Note naming the missing half.
//
// # File Format
//
// Trace files are a concatenation of CBOR-encoded events with integer keys
// (.mtrace extension). Reader streams them back with optional filtering.
package trace
