// Command mediactl-replay replays YAML scenarios through the media combiner
// and checks that every step produces exactly the expected merged emissions.
//
// Usage:
//
//	mediactl-replay [flags] <file|dir>...
//
// Flags:
//
//	-trace string       File path for combiner event tracing (CBOR format)
//	-json               Output results as JSON
//	-junit              Output results as JUnit XML
//	-verbose            Show per-step emissions
//	-log-level string   Operational log level: debug, info, warn, error (default "warn")
//	-stop-on-fail       Stop after the first failing scenario
//
// Examples:
//
//	# Replay the bundled scenarios
//	mediactl-replay ./internal/replay/testdata/scenarios
//
//	# Replay one file and keep a trace for mediactl-trace
//	mediactl-replay -trace replay.mtrace -verbose migrate.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mediactl/mediactl-go/internal/replay/loader"
	"github.com/mediactl/mediactl-go/internal/replay/reporter"
	"github.com/mediactl/mediactl-go/internal/replay/runner"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

var (
	traceFile  = flag.String("trace", "", "File path for combiner event tracing (CBOR format)")
	jsonOut    = flag.Bool("json", false, "Output results as JSON")
	junitOut   = flag.Bool("junit", false, "Output results as JUnit XML")
	verbose    = flag.Bool("verbose", false, "Show per-step emissions")
	logLevel   = flag.String("log-level", "warn", "Operational log level: debug, info, warn, error")
	stopOnFail = flag.Bool("stop-on-fail", false, "Stop after the first failing scenario")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one scenario file or directory is required")
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(flag.Args()))
}

func run(paths []string) int {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", *logLevel)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var scenarios []*loader.Scenario
	for _, path := range paths {
		loaded, err := loader.LoadPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		scenarios = append(scenarios, loaded...)
	}
	logger.Info("loaded scenarios", "count", len(scenarios))

	config := &runner.Config{
		Logger:             logger,
		StopOnFirstFailure: *stopOnFail,
	}

	var traces []trace.Logger
	if *traceFile != "" {
		fileLogger, err := trace.NewFileLogger(*traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create trace file: %v\n", err)
			return 1
		}
		defer func() {
			if err := fileLogger.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}()
		traces = append(traces, fileLogger)
	}
	if level <= slog.LevelDebug {
		traces = append(traces, trace.NewSlogAdapter(logger))
	}
	if len(traces) > 0 {
		config.Trace = trace.NewMultiLogger(traces...)
	}

	var rep reporter.Reporter
	switch {
	case *jsonOut:
		rep = reporter.NewJSONReporter(os.Stdout, true)
	case *junitOut:
		rep = reporter.NewJUnitReporter(os.Stdout)
	default:
		rep = reporter.NewTextReporter(os.Stdout, *verbose)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := runner.New(config).RunSuite(ctx, strings.Join(paths, " "), scenarios)
	rep.ReportSuite(result)

	if result.FailCount > 0 {
		return 1
	}
	return 0
}
