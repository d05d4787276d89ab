// Command mediactl-console is an interactive console for exploring the media
// combiner. Content and device notifications are typed at the prompt and the
// merged notifications are printed as they are emitted.
//
// Usage:
//
//	mediactl-console [flags]
//
// Flags:
//
//	-trace string       File path for combiner event tracing (CBOR format)
//	-log-level string   Operational log level: debug, info, warn, error (default "info")
//
// Example session:
//
//	media> content A title="Song" artist=Band
//	media> device A name=Speaker
//	<< loaded A: "Song" on "Speaker"
//	media> content B old=A title="Song"
//	<< loaded B (from A): "Song" on "Speaker"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediactl/mediactl-go/cmd/mediactl-console/interactive"
	"github.com/mediactl/mediactl-go/pkg/combiner"
	"github.com/mediactl/mediactl-go/pkg/source"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

var (
	traceFile = flag.String("trace", "", "File path for combiner event tracing (CBOR format)")
	logLevel  = flag.String("log-level", "info", "Operational log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", *logLevel)
		os.Exit(1)
	}

	content := source.NewContentNotifier()
	device := source.NewDeviceNotifier()
	c := combiner.New(content, device)

	con := interactive.New(content, device, c, os.Stdout)

	// Log through the console writer so records do not garble the prompt.
	logger := slog.New(slog.NewTextHandler(writerFunc(func(p []byte) (int, error) {
		return con.Stdout().Write(p)
	}), &slog.HandlerOptions{Level: level}))
	c.SetLogger(logger)

	var fileLogger *trace.FileLogger
	if *traceFile != "" {
		var err error
		fileLogger, err = trace.NewFileLogger(*traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create trace file: %v\n", err)
			os.Exit(1)
		}
		c.SetTraceLogger(fileLogger)
		logger.Info("tracing enabled", "file", *traceFile, "session", c.SessionID())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	runErr := con.Run(ctx, cancel)
	cancel()

	if fileLogger != nil {
		if err := fileLogger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stats := fileLogger.Stats()
		fmt.Fprintf(os.Stderr, "Trace: %d inbound, %d outbound events written to %s\n", stats.Inbound, stats.Outbound, fileLogger.Path())
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
