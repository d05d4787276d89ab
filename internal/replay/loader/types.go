// Package loader provides YAML scenario loading for the replay tool.
package loader

import "github.com/mediactl/mediactl-go/pkg/media"

// Step actions.
const (
	ActionContentLoaded  = "content_loaded"
	ActionContentRemoved = "content_removed"
	ActionDeviceChanged  = "device_changed"
	ActionDeviceRemoved  = "device_removed"
)

// Emission event names.
const (
	EventLoaded  = "loaded"
	EventRemoved = "removed"
)

// Scenario is a replayable sequence of upstream notifications.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "SC-MIGRATE-001").
	ID string `yaml:"id"`

	// Name is a human-readable name.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description"`

	// Tags for categorizing scenarios.
	Tags []string `yaml:"tags,omitempty"`

	// Steps are the notifications to replay, in order.
	Steps []Step `yaml:"steps"`
}

// Step is one upstream notification and the emissions it must produce.
type Step struct {
	// Action is one of the Action* constants.
	Action string `yaml:"action"`

	// Key is the session key.
	Key string `yaml:"key"`

	// OldKey is the previous session key for migrations.
	OldKey string `yaml:"old_key,omitempty"`

	// Content is the content record for content_loaded.
	Content *Content `yaml:"content,omitempty"`

	// Device is the device record for device_changed. Omitted means nil.
	Device *Device `yaml:"device,omitempty"`

	// Expect is the exact list of emissions the step must produce.
	// An empty list means the step must not emit anything.
	Expect []Emission `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// Content is the YAML form of a media.ContentRecord.
type Content struct {
	UserID          int      `yaml:"user_id,omitempty"`
	App             string   `yaml:"app,omitempty"`
	Title           string   `yaml:"title,omitempty"`
	Artist          string   `yaml:"artist,omitempty"`
	PackageName     string   `yaml:"package,omitempty"`
	BackgroundColor uint32   `yaml:"background_color,omitempty"`
	Actions         []string `yaml:"actions,omitempty"`
	Active          bool     `yaml:"active,omitempty"`
	Resumable       bool     `yaml:"resumable,omitempty"`
	Local           bool     `yaml:"local,omitempty"`
}

// Record converts c to a media.ContentRecord.
func (c *Content) Record() media.ContentRecord {
	if c == nil {
		return media.ContentRecord{}
	}
	rec := media.ContentRecord{
		UserID:          c.UserID,
		Initialized:     true,
		BackgroundColor: c.BackgroundColor,
		App:             c.App,
		Artist:          c.Artist,
		Title:           c.Title,
		PackageName:     c.PackageName,
		Active:          c.Active,
		Resumable:       c.Resumable,
		IsLocalSession:  c.Local,
	}
	for _, name := range c.Actions {
		rec.Actions = append(rec.Actions, media.Action{Name: name})
	}
	return rec
}

// Device is the YAML form of a media.DeviceRecord.
type Device struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// Record converts d to a media.DeviceRecord. Nil stays nil.
func (d *Device) Record() *media.DeviceRecord {
	if d == nil {
		return nil
	}
	return &media.DeviceRecord{Name: d.Name, Enabled: d.Enabled}
}

// Emission describes one merged notification.
// Zero-valued optional fields are not compared.
type Emission struct {
	// Event is "loaded" or "removed".
	Event string `yaml:"event" json:"event"`

	// Key is the reported session key.
	Key string `yaml:"key" json:"key"`

	// OldKey is the reported previous key ("" when none was reported).
	OldKey string `yaml:"old_key,omitempty" json:"old_key,omitempty"`

	// HasDevice, if set, must match whether a device was attached.
	HasDevice *bool `yaml:"has_device,omitempty" json:"has_device,omitempty"`

	// Title, if set, must match the merged title.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// DeviceName, if set, must match the merged device name.
	DeviceName string `yaml:"device_name,omitempty" json:"device_name,omitempty"`
}

// Suite is a collection of scenarios in a single file.
type Suite struct {
	// Name of the suite.
	Name string `yaml:"name"`

	// Description of what this suite covers.
	Description string `yaml:"description"`

	// Scenarios are the scenarios in this suite.
	Scenarios []*Scenario `yaml:"scenarios"`
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
