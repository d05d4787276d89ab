package commands

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/mediactl/mediactl-go/pkg/trace"
)

const (
	sessionA = "aaaaaaaa-0000-4000-8000-000000000001"
	sessionB = "bbbbbbbb-0000-4000-8000-000000000002"
)

func createTestTraceFile(t *testing.T, events []trace.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mtrace")

	logger, err := trace.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readTraceFile(t *testing.T, path string) []trace.Event {
	t.Helper()
	reader, err := trace.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open trace: %v", err)
	}
	defer reader.Close()

	var events []trace.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		events = append(events, event)
	}
}

// sampleEvents is a content load, a device change that merges, a migration
// and a removal, all in session A, plus one input from session B.
func sampleEvents() []trace.Event {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	content := &trace.ContentSummary{App: "APP", Title: "TITLE", Artist: "ARTIST"}
	device := &trace.DeviceSummary{Name: "DEVICE_NAME", Enabled: true}

	return []trace.Event{
		{Timestamp: base, SessionID: sessionA, Direction: trace.DirectionIn, Stream: trace.StreamContent, Kind: trace.KindLoaded, Key: "KEY", Content: content},
		{Timestamp: base.Add(time.Second), SessionID: sessionA, Direction: trace.DirectionIn, Stream: trace.StreamDevice, Kind: trace.KindLoaded, Key: "KEY", Device: device},
		{Timestamp: base.Add(time.Second), SessionID: sessionA, Direction: trace.DirectionOut, Stream: trace.StreamMerged, Kind: trace.KindLoaded, Key: "KEY", Content: content, Device: device},
		{Timestamp: base.Add(2 * time.Second), SessionID: sessionA, Direction: trace.DirectionIn, Stream: trace.StreamContent, Kind: trace.KindLoaded, Key: "NEW_KEY", OldKey: "KEY", Content: content},
		{Timestamp: base.Add(2 * time.Second), SessionID: sessionA, Direction: trace.DirectionOut, Stream: trace.StreamMerged, Kind: trace.KindLoaded, Key: "NEW_KEY", OldKey: "KEY", Content: content, Device: device},
		{Timestamp: base.Add(3 * time.Second), SessionID: sessionA, Direction: trace.DirectionIn, Stream: trace.StreamDevice, Kind: trace.KindRemoved, Key: "NEW_KEY"},
		{Timestamp: base.Add(3 * time.Second), SessionID: sessionA, Direction: trace.DirectionOut, Stream: trace.StreamMerged, Kind: trace.KindRemoved, Key: "NEW_KEY"},
		{Timestamp: base.Add(4 * time.Second), SessionID: sessionB, Direction: trace.DirectionIn, Stream: trace.StreamDevice, Kind: trace.KindLoaded, Key: "OTHER"},
	}
}
