// Package commands implements the mediactl-trace CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/mediactl/mediactl-go/pkg/trace"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	// Header line: timestamp [session] DIRECTION STREAM KIND key
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	fmt.Fprintf(w, "%s [%s] %-3s %-7s %-7s %s", ts, trace.ShortID(event.SessionID),
		event.Direction, event.Stream, event.Kind, event.Key)
	if event.OldKey != "" {
		fmt.Fprintf(w, " (from %s)", event.OldKey)
	}
	fmt.Fprintln(w)

	if c := event.Content; c != nil {
		fmt.Fprintf(w, "  Content: %q by %q", c.Title, c.Artist)
		if c.App != "" {
			fmt.Fprintf(w, " in %s", c.App)
		}
		if c.Active {
			fmt.Fprint(w, " [active]")
		}
		fmt.Fprintln(w)
	}

	if d := event.Device; d != nil {
		state := "disabled"
		if d.Enabled {
			state = "enabled"
		}
		fmt.Fprintf(w, "  Device: %q (%s)\n", d.Name, state)
	} else if event.Direction == trace.DirectionIn && event.Stream == trace.StreamDevice && event.Kind == trace.KindLoaded {
		fmt.Fprintln(w, "  Device: none")
	}

	if event.Note != "" {
		fmt.Fprintf(w, "  Note: %s\n", event.Note)
	}

	fmt.Fprintln(w)
}

// RunView prints the events of path that match filter.
func RunView(path string, filter trace.Filter, output io.Writer) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
