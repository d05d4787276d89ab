package media

// ContentListener receives notifications from a content source.
type ContentListener interface {
	// OnContentLoaded is called when content for key is loaded or updated.
	// oldKey is non-empty when the session was previously tracked under oldKey.
	OnContentLoaded(key, oldKey string, content ContentRecord)

	// OnContentRemoved is called when the session for key goes away.
	OnContentRemoved(key string)
}

// DeviceListener receives notifications from a device source.
type DeviceListener interface {
	// OnDeviceChanged is called when the output device for key changes.
	// A nil device means the device is no longer known.
	OnDeviceChanged(key, oldKey string, device *DeviceRecord)

	// OnDeviceRemoved is called when the device source stops tracking key.
	OnDeviceRemoved(key string)
}

// MergedListener receives merged content and device notifications.
type MergedListener interface {
	// OnMergedLoaded is called when both halves are known for key.
	OnMergedLoaded(key, oldKey string, merged MergedRecord)

	// OnMergedRemoved is called when a previously merged session goes away.
	OnMergedRemoved(key string)
}

// ContentSource publishes content notifications.
type ContentSource interface {
	// AddListener registers l. It returns false if l was already registered.
	AddListener(l ContentListener) bool

	// RemoveListener deregisters l. It returns false if l was not registered.
	RemoveListener(l ContentListener) bool
}

// DeviceSource publishes device notifications.
type DeviceSource interface {
	// AddListener registers l. It returns false if l was already registered.
	AddListener(l DeviceListener) bool

	// RemoveListener deregisters l. It returns false if l was not registered.
	RemoveListener(l DeviceListener) bool
}
