// Package source provides in-memory content and device sources.
//
// ContentNotifier and DeviceNotifier implement media.ContentSource and
// media.DeviceSource. They hold no state beyond their listeners: each call to
// Load, Remove, Change or RemoveKey is forwarded synchronously to every
// registered listener in registration order. Tools and tests use them to
// drive a combiner.Combiner by hand.
package source
