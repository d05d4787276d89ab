// Package media defines the records and listener contracts shared by the
// media session pipeline.
//
// # Records
//
// Two upstream streams feed the pipeline:
//   - Content: what is playing (app, title, artist, artwork, actions).
//   - Device: where it is playing (output device name, connectivity, icon).
//
// Both are keyed by a session key. A MergedRecord is a ContentRecord extended
// with the DeviceRecord currently associated with the same key:
//
//	ContentRecord ─┐
//	               ├─> Merge(content, device) ─> MergedRecord
//	DeviceRecord  ─┘
//
// Records are values. Slices inside them must not be mutated after a record
// is handed to a listener; use Clone when a private copy is needed.
//
// # Keys
//
// A key is an opaque string. Sources may rename a session by reporting the
// previous key alongside the new one (a migration). The empty string means
// "no previous key".
//
// # Listeners
//
// ContentListener and DeviceListener are implemented by consumers of the two
// upstream sources. MergedListener is implemented by consumers of the merged
// stream. All callbacks are synchronous.
package media
