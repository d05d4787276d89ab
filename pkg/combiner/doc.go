// Package combiner merges the content and device streams of media sessions.
//
// A Combiner subscribes to a media.ContentSource and a media.DeviceSource and
// keeps, per session key, the latest content and device it has seen. It emits
// OnMergedLoaded to its own listeners only once both halves are known for a
// key:
//
//	content(A)              -> nothing
//	device(A)               -> OnMergedLoaded("A", "", merged)
//	content("B", old: "A")  -> OnMergedLoaded("B", "A", merged)
//
// # Key Migration
//
// Either source may rename a session by reporting the previous key. The state
// held under the old key moves to the new key, overwriting anything already
// there, and the old key is forgotten. When the other source later reports the
// same rename, the move has already happened; the emission then reports the
// new key as both key and old key.
//
// # Removal
//
// A removal from either source discards everything known about the key.
// OnMergedRemoved is emitted only when a device was known for the key or a
// merged load was delivered for it. Removing content that never met a device
// is silent.
//
// A migration carries that state with the key downstream knows. An entry that
// moves onto an existing key inherits whether a merged load was delivered for
// that key. If a merged entry moves but is not re-emitted under its new key
// (its device was cleared on the way), OnMergedRemoved is emitted for the old
// key.
//
// # Threading
//
// A Combiner is not safe for concurrent use. All notifications must arrive on
// one goroutine (the sources' dispatch goroutine); listeners are called
// synchronously, in registration order, on that goroutine.
package combiner
