package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mediactl/mediactl-go/pkg/trace"
)

// jsonEvent is the JSONL export form of a trace event.
type jsonEvent struct {
	Timestamp string                `json:"timestamp"`
	SessionID string                `json:"session_id"`
	Direction string                `json:"direction"`
	Stream    string                `json:"stream"`
	Kind      string                `json:"kind"`
	Key       string                `json:"key"`
	OldKey    string                `json:"old_key,omitempty"`
	Content   *trace.ContentSummary `json:"content,omitempty"`
	Device    *trace.DeviceSummary  `json:"device,omitempty"`
	Note      string                `json:"note,omitempty"`
}

// RunExport exports the trace file to the specified format. An empty output
// writes to stdout.
func RunExport(path, format, output string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *trace.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := jsonEvent{
			Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			SessionID: event.SessionID,
			Direction: event.Direction.String(),
			Stream:    event.Stream.String(),
			Kind:      event.Kind.String(),
			Key:       event.Key,
			OldKey:    event.OldKey,
			Content:   event.Content,
			Device:    event.Device,
			Note:      event.Note,
		}
		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *trace.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "direction", "stream", "kind", "key", "old_key", "title", "device", "device_enabled"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var title, device, enabled string
		if event.Content != nil {
			title = event.Content.Title
		}
		if event.Device != nil {
			device = event.Device.Name
			enabled = strconv.FormatBool(event.Device.Enabled)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Direction.String(),
			event.Stream.String(),
			event.Kind.String(),
			event.Key,
			event.OldKey,
			title,
			device,
			enabled,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
