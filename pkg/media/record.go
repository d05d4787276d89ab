package media

import "slices"

// Action is a playback control exposed by the media session.
type Action struct {
	// Name identifies the action (e.g. "play", "pause", "skip_next").
	Name string

	// Icon is the encoded action icon, if any.
	Icon []byte
}

// ContentRecord describes the content a media session is playing.
// It carries no output-device information.
type ContentRecord struct {
	// UserID is the user the session belongs to.
	UserID int

	// Initialized reports whether the record was fully populated.
	Initialized bool

	// BackgroundColor is the ARGB color extracted from the artwork.
	BackgroundColor uint32

	// App is the display name of the owning application.
	App string

	// AppIcon is the encoded application icon.
	AppIcon []byte

	// Artist is the track artist.
	Artist string

	// Title is the track title.
	Title string

	// Artwork is the encoded album artwork.
	Artwork []byte

	// Actions are the controls available for this session.
	Actions []Action

	// CompactActions are indices into Actions shown in the compact view.
	CompactActions []int

	// PackageName identifies the owning application package.
	PackageName string

	// Active reports whether the session is currently active.
	Active bool

	// Resumable reports whether playback can be resumed after the session ends.
	Resumable bool

	// IsLocalSession reports whether playback happens on this device.
	IsLocalSession bool

	// NotificationKey is the key of the notification backing the session.
	NotificationKey string
}

// Clone returns a deep copy of the record.
func (c ContentRecord) Clone() ContentRecord {
	out := c
	out.AppIcon = slices.Clone(c.AppIcon)
	out.Artwork = slices.Clone(c.Artwork)
	out.CompactActions = slices.Clone(c.CompactActions)
	if c.Actions != nil {
		out.Actions = make([]Action, len(c.Actions))
		for i, a := range c.Actions {
			out.Actions[i] = Action{Name: a.Name, Icon: slices.Clone(a.Icon)}
		}
	}
	return out
}

// DeviceRecord describes the output device a session is routed to.
type DeviceRecord struct {
	// Enabled reports whether the device is connected and usable.
	Enabled bool

	// Icon is the encoded device icon, if any.
	Icon []byte

	// Name is the user-visible device name.
	Name string
}

// Clone returns a deep copy of the record. Clone of nil is nil.
func (d *DeviceRecord) Clone() *DeviceRecord {
	if d == nil {
		return nil
	}
	out := *d
	out.Icon = slices.Clone(d.Icon)
	return &out
}

// MergedRecord is a ContentRecord combined with its associated device.
type MergedRecord struct {
	ContentRecord

	// Device is the output device associated with the content.
	Device *DeviceRecord
}

// HasDevice reports whether a device is associated with the record.
func (m MergedRecord) HasDevice() bool {
	return m.Device != nil
}

// Merge combines content with a private copy of device.
func Merge(content ContentRecord, device *DeviceRecord) MergedRecord {
	return MergedRecord{
		ContentRecord: content,
		Device:        device.Clone(),
	}
}
