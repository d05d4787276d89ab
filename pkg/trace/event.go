package trace

import (
	"fmt"
	"strings"
	"time"

	"github.com/mediactl/mediactl-go/pkg/media"
)

// Event is a single traced notification.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the combiner instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether the event entered or left the combiner.
	Direction Direction `cbor:"3,keyasint"`

	// Stream is the stream the event belongs to.
	Stream Stream `cbor:"4,keyasint"`

	// Kind distinguishes loads from removals.
	Kind Kind `cbor:"5,keyasint"`

	// Key is the session key.
	Key string `cbor:"6,keyasint"`

	// OldKey is the previous session key, if one was reported.
	OldKey string `cbor:"7,keyasint,omitempty"`

	// Content summarizes the content half (loaded events only).
	Content *ContentSummary `cbor:"8,keyasint,omitempty"`

	// Device summarizes the device half (loaded events only).
	Device *DeviceSummary `cbor:"9,keyasint,omitempty"`

	// Note is a short free-form annotation (e.g. why nothing was emitted).
	Note string `cbor:"10,keyasint,omitempty"`
}

// Direction indicates the direction of event flow relative to the combiner.
type Direction uint8

const (
	// DirectionIn is an upstream notification received by the combiner.
	DirectionIn Direction = 0
	// DirectionOut is a merged emission delivered to listeners.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Stream identifies which stream an event belongs to.
type Stream uint8

const (
	// StreamContent is the content source.
	StreamContent Stream = 0
	// StreamDevice is the device source.
	StreamDevice Stream = 1
	// StreamMerged is the combiner output.
	StreamMerged Stream = 2
)

// String returns the stream name.
func (s Stream) String() string {
	switch s {
	case StreamContent:
		return "CONTENT"
	case StreamDevice:
		return "DEVICE"
	case StreamMerged:
		return "MERGED"
	default:
		return "UNKNOWN"
	}
}

// Kind distinguishes loads from removals.
type Kind uint8

const (
	// KindLoaded covers content loads, device changes and merged loads.
	KindLoaded Kind = 0
	// KindRemoved covers all removals.
	KindRemoved Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLoaded:
		return "LOADED"
	case KindRemoved:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// ContentSummary is the traced subset of a media.ContentRecord.
type ContentSummary struct {
	App         string `cbor:"1,keyasint,omitempty" json:"app,omitempty"`
	Title       string `cbor:"2,keyasint,omitempty" json:"title,omitempty"`
	Artist      string `cbor:"3,keyasint,omitempty" json:"artist,omitempty"`
	PackageName string `cbor:"4,keyasint,omitempty" json:"package,omitempty"`
	Active      bool   `cbor:"5,keyasint,omitempty" json:"active,omitempty"`
}

// DeviceSummary is the traced subset of a media.DeviceRecord.
type DeviceSummary struct {
	Name    string `cbor:"1,keyasint,omitempty" json:"name,omitempty"`
	Enabled bool   `cbor:"2,keyasint" json:"enabled"`
}

// SummarizeContent extracts the traced fields of c.
func SummarizeContent(c media.ContentRecord) *ContentSummary {
	return &ContentSummary{
		App:         c.App,
		Title:       c.Title,
		Artist:      c.Artist,
		PackageName: c.PackageName,
		Active:      c.Active,
	}
}

// SummarizeDevice extracts the traced fields of d. It returns nil for a nil device.
func SummarizeDevice(d *media.DeviceRecord) *DeviceSummary {
	if d == nil {
		return nil
	}
	return &DeviceSummary{Name: d.Name, Enabled: d.Enabled}
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return DirectionIn, nil
	case "out":
		return DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction %q: must be in or out", s)
	}
}

// ParseStream parses a stream name (case-insensitive).
func ParseStream(s string) (Stream, error) {
	switch strings.ToLower(s) {
	case "content":
		return StreamContent, nil
	case "device":
		return StreamDevice, nil
	case "merged":
		return StreamMerged, nil
	default:
		return 0, fmt.Errorf("invalid stream %q: must be content, device, or merged", s)
	}
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "loaded":
		return KindLoaded, nil
	case "removed":
		return KindRemoved, nil
	default:
		return 0, fmt.Errorf("invalid kind %q: must be loaded or removed", s)
	}
}
