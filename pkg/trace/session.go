package trace

import "github.com/google/uuid"

// NewSessionID returns a random identifier used to correlate all events
// produced by one combiner instance.
func NewSessionID() string {
	return uuid.NewString()
}

// ShortID returns the first 8 characters of a session ID.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
