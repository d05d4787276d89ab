package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/mediactl/mediactl-go/pkg/trace"
)

// FilterOptions specifies filtering criteria shared by the commands.
// Empty fields match everything.
type FilterOptions struct {
	SessionID string
	Key       string
	TimeStart string
	TimeEnd   string
	Direction string
	Stream    string
	Kind      string
}

// BuildFilter converts command-line options to a trace.Filter.
func BuildFilter(opts FilterOptions) (trace.Filter, error) {
	filter := trace.Filter{
		SessionID: opts.SessionID,
		Key:       opts.Key,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Direction != "" {
		d, err := trace.ParseDirection(opts.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}

	if opts.Stream != "" {
		s, err := trace.ParseStream(opts.Stream)
		if err != nil {
			return filter, err
		}
		filter.Stream = &s
	}

	if opts.Kind != "" {
		k, err := trace.ParseKind(opts.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &k
	}

	return filter, nil
}

// RunFilter copies the events of path that match opts into a new trace file
// at output and returns the number of events written.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	filter, err := BuildFilter(opts)
	if err != nil {
		return 0, err
	}

	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := trace.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output trace: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return logger.Stats().Total(), fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
	}

	if err := logger.Close(); err != nil {
		return logger.Stats().Total(), fmt.Errorf("failed to write output trace: %w", err)
	}
	return logger.Stats().Total(), nil
}
