package source

import (
	"slices"

	"github.com/mediactl/mediactl-go/pkg/media"
)

// registry is an ordered set of listeners.
type registry[L comparable] struct {
	listeners []L
}

func (r *registry[L]) add(l L) bool {
	if slices.Contains(r.listeners, l) {
		return false
	}
	r.listeners = append(r.listeners, l)
	return true
}

func (r *registry[L]) remove(l L) bool {
	i := slices.Index(r.listeners, l)
	if i < 0 {
		return false
	}
	r.listeners = slices.Delete(r.listeners, i, i+1)
	return true
}

// snapshot returns a copy so listeners may deregister during delivery.
func (r *registry[L]) snapshot() []L {
	return slices.Clone(r.listeners)
}

// ContentNotifier is an in-memory media.ContentSource.
type ContentNotifier struct {
	reg registry[media.ContentListener]
}

// NewContentNotifier creates an empty ContentNotifier.
func NewContentNotifier() *ContentNotifier {
	return &ContentNotifier{}
}

// AddListener registers l. It returns false if l was already registered.
func (n *ContentNotifier) AddListener(l media.ContentListener) bool {
	return n.reg.add(l)
}

// RemoveListener deregisters l. It returns false if l was not registered.
func (n *ContentNotifier) RemoveListener(l media.ContentListener) bool {
	return n.reg.remove(l)
}

// Load announces content for key, optionally migrated from oldKey.
func (n *ContentNotifier) Load(key, oldKey string, content media.ContentRecord) {
	for _, l := range n.reg.snapshot() {
		l.OnContentLoaded(key, oldKey, content)
	}
}

// Remove announces that the session for key is gone.
func (n *ContentNotifier) Remove(key string) {
	for _, l := range n.reg.snapshot() {
		l.OnContentRemoved(key)
	}
}

// DeviceNotifier is an in-memory media.DeviceSource.
type DeviceNotifier struct {
	reg registry[media.DeviceListener]
}

// NewDeviceNotifier creates an empty DeviceNotifier.
func NewDeviceNotifier() *DeviceNotifier {
	return &DeviceNotifier{}
}

// AddListener registers l. It returns false if l was already registered.
func (n *DeviceNotifier) AddListener(l media.DeviceListener) bool {
	return n.reg.add(l)
}

// RemoveListener deregisters l. It returns false if l was not registered.
func (n *DeviceNotifier) RemoveListener(l media.DeviceListener) bool {
	return n.reg.remove(l)
}

// Change announces the device for key, optionally migrated from oldKey.
func (n *DeviceNotifier) Change(key, oldKey string, device *media.DeviceRecord) {
	for _, l := range n.reg.snapshot() {
		l.OnDeviceChanged(key, oldKey, device)
	}
}

// RemoveKey announces that the device source no longer tracks key.
func (n *DeviceNotifier) RemoveKey(key string) {
	for _, l := range n.reg.snapshot() {
		l.OnDeviceRemoved(key)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ media.ContentSource = (*ContentNotifier)(nil)
	_ media.DeviceSource  = (*DeviceNotifier)(nil)
)
