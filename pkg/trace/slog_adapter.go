package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", ShortID(event.SessionID)),
		slog.String("direction", event.Direction.String()),
		slog.String("stream", event.Stream.String()),
		slog.String("kind", event.Kind.String()),
		slog.String("key", event.Key),
	}

	if event.OldKey != "" {
		attrs = append(attrs, slog.String("old_key", event.OldKey))
	}
	if event.Content != nil {
		attrs = append(attrs,
			slog.String("app", event.Content.App),
			slog.String("title", event.Content.Title),
			slog.String("artist", event.Content.Artist),
		)
	}
	if event.Device != nil {
		attrs = append(attrs,
			slog.String("device", event.Device.Name),
			slog.Bool("device_enabled", event.Device.Enabled),
		)
	}
	if event.Note != "" {
		attrs = append(attrs, slog.String("note", event.Note))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
