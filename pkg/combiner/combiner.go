package combiner

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mediactl/mediactl-go/pkg/media"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

// Notes attached to inbound trace events that leave a session half known.
const (
	noteWaitingForContent = "waiting for content"
	noteWaitingForDevice  = "waiting for device"
)

// entry holds what is known about one session key.
type entry struct {
	content *media.ContentRecord
	device  *media.DeviceRecord

	// emitted is set once a merged load has been delivered for the entry.
	emitted bool
}

// waiting names the missing half, or returns "" if there is none.
func (e *entry) waiting() string {
	switch {
	case e.content == nil && e.device != nil:
		return noteWaitingForContent
	case e.content != nil && e.device == nil:
		return noteWaitingForDevice
	}
	return ""
}

// Combiner merges content and device notifications per session key.
type Combiner struct {
	entries   map[string]*entry
	listeners []media.MergedListener

	logger      *slog.Logger
	traceLogger trace.Logger
	sessionID   string
	now         func() time.Time
}

// New creates a Combiner and registers it with both sources.
func New(content media.ContentSource, device media.DeviceSource) *Combiner {
	c := &Combiner{
		entries:     make(map[string]*entry),
		logger:      slog.New(slog.DiscardHandler),
		traceLogger: trace.NoopLogger{},
		sessionID:   trace.NewSessionID(),
		now:         time.Now,
	}

	content.AddListener(&contentObserver{c: c})
	device.AddListener(&deviceObserver{c: c})

	return c
}

// SetLogger sets the operational logger. Nil disables logging.
func (c *Combiner) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.logger = logger
}

// SetTraceLogger sets the trace logger. Nil disables tracing.
func (c *Combiner) SetTraceLogger(logger trace.Logger) {
	if logger == nil {
		logger = trace.NoopLogger{}
	}
	c.traceLogger = logger
}

// SessionID returns the ID stamped on every trace event of this combiner.
func (c *Combiner) SessionID() string {
	return c.sessionID
}

// AddListener registers l for merged notifications.
// It returns false if l is already registered.
func (c *Combiner) AddListener(l media.MergedListener) bool {
	if slices.Contains(c.listeners, l) {
		return false
	}
	c.listeners = append(c.listeners, l)
	return true
}

// RemoveListener deregisters l. It returns false if l was not registered.
func (c *Combiner) RemoveListener(l media.MergedListener) bool {
	i := slices.Index(c.listeners, l)
	if i < 0 {
		return false
	}
	c.listeners = slices.Delete(c.listeners, i, i+1)
	return true
}

// Merged returns the merged record for key, if both halves are known.
func (c *Combiner) Merged(key string) (media.MergedRecord, bool) {
	e, ok := c.entries[key]
	if !ok || e.content == nil || e.device == nil {
		return media.MergedRecord{}, false
	}
	return media.Merge(e.content.Clone(), e.device), true
}

// Keys returns the tracked session keys in sorted order.
func (c *Combiner) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of tracked session keys.
func (c *Combiner) Len() int {
	return len(c.entries)
}

func (c *Combiner) onContentLoaded(key, oldKey string, content media.ContentRecord) {
	e, reportedOld, stranded := c.migrate(key, oldKey)
	stored := content.Clone()
	e.content = &stored

	c.traceIn(trace.StreamContent, trace.KindLoaded, key, oldKey, trace.SummarizeContent(content), nil, e.waiting())
	c.settle(key, reportedOld, stranded)
}

func (c *Combiner) onDeviceChanged(key, oldKey string, device *media.DeviceRecord) {
	e, reportedOld, stranded := c.migrate(key, oldKey)
	e.device = device.Clone()

	c.traceIn(trace.StreamDevice, trace.KindLoaded, key, oldKey, nil, trace.SummarizeDevice(device), e.waiting())
	c.settle(key, reportedOld, stranded)
}

func (c *Combiner) onContentRemoved(key string) {
	c.traceIn(trace.StreamContent, trace.KindRemoved, key, "", nil, nil, "")
	c.remove(key)
}

func (c *Combiner) onDeviceRemoved(key string) {
	c.traceIn(trace.StreamDevice, trace.KindRemoved, key, "", nil, nil, "")
	c.remove(key)
}

// migrate returns the entry for key, moving the entry of oldKey over first if
// there is one. The second result is the old key to report downstream: oldKey
// if a move happened, key if oldKey was given but already moved, "" otherwise.
//
// A moved entry takes over the emitted state of the entry it overwrites, since
// that is what downstream has seen under key. If the moved entry had itself
// been emitted, oldKey is returned as the third result: downstream still holds
// a load for oldKey until it is re-emitted under key or removed.
func (c *Combiner) migrate(key, oldKey string) (*entry, string, string) {
	if oldKey != "" && oldKey != key {
		if prev, ok := c.entries[oldKey]; ok {
			delete(c.entries, oldKey)

			var stranded string
			if prev.emitted {
				stranded = oldKey
			}
			prev.emitted = false
			if clobbered, ok := c.entries[key]; ok {
				c.logger.Debug("migration overwrites existing entry", "key", key, "old_key", oldKey)
				prev.emitted = clobbered.emitted
			}

			c.entries[key] = prev
			c.logger.Debug("migrated session", "key", key, "old_key", oldKey)
			return prev, oldKey, stranded
		}
	}

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	if oldKey == "" {
		return e, "", ""
	}
	return e, key, ""
}

// settle emits for key after a load and retires stranded, the old key of a
// migration, if the moved state was not re-emitted under key.
func (c *Combiner) settle(key, reportedOld, stranded string) {
	if c.update(key, reportedOld) || stranded == "" {
		return
	}
	c.logger.Debug("migrated session no longer merged", "key", key, "old_key", stranded)
	c.emitRemoved(stranded)
}

// update emits a merged load for key if both halves are known and reports
// whether it did.
func (c *Combiner) update(key, oldKey string) bool {
	e := c.entries[key]
	switch {
	case e.content == nil && e.device == nil:
		delete(c.entries, key)
		if e.emitted {
			c.emitRemoved(key)
		}
		return false
	case e.content == nil:
		c.logger.Debug("waiting for content", "key", key)
		return false
	case e.device == nil:
		c.logger.Debug("waiting for device", "key", key)
		return false
	}

	e.emitted = true
	c.traceOut(trace.KindLoaded, key, oldKey, trace.SummarizeContent(*e.content), trace.SummarizeDevice(e.device))

	for _, l := range slices.Clone(c.listeners) {
		l.OnMergedLoaded(key, oldKey, media.Merge(e.content.Clone(), e.device))
	}
	return true
}

// remove forgets key and emits a merged removal if a device was known for it
// or a merged load was delivered for it.
func (c *Combiner) remove(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)

	if e.device == nil && !e.emitted {
		c.logger.Debug("removed session that was never merged", "key", key)
		return
	}

	c.emitRemoved(key)
}

func (c *Combiner) emitRemoved(key string) {
	c.traceOut(trace.KindRemoved, key, "", nil, nil)

	for _, l := range slices.Clone(c.listeners) {
		l.OnMergedRemoved(key)
	}
}

func (c *Combiner) traceIn(stream trace.Stream, kind trace.Kind, key, oldKey string, content *trace.ContentSummary, device *trace.DeviceSummary, note string) {
	c.traceLogger.Log(trace.Event{
		Timestamp: c.now(),
		SessionID: c.sessionID,
		Direction: trace.DirectionIn,
		Stream:    stream,
		Kind:      kind,
		Key:       key,
		OldKey:    oldKey,
		Content:   content,
		Device:    device,
		Note:      note,
	})
}

func (c *Combiner) traceOut(kind trace.Kind, key, oldKey string, content *trace.ContentSummary, device *trace.DeviceSummary) {
	c.traceLogger.Log(trace.Event{
		Timestamp: c.now(),
		SessionID: c.sessionID,
		Direction: trace.DirectionOut,
		Stream:    trace.StreamMerged,
		Kind:      kind,
		Key:       key,
		OldKey:    oldKey,
		Content:   content,
		Device:    device,
	})
}

// contentObserver adapts the Combiner to media.ContentListener.
type contentObserver struct {
	c *Combiner
}

func (o *contentObserver) OnContentLoaded(key, oldKey string, content media.ContentRecord) {
	o.c.onContentLoaded(key, oldKey, content)
}

func (o *contentObserver) OnContentRemoved(key string) {
	o.c.onContentRemoved(key)
}

// deviceObserver adapts the Combiner to media.DeviceListener.
type deviceObserver struct {
	c *Combiner
}

func (o *deviceObserver) OnDeviceChanged(key, oldKey string, device *media.DeviceRecord) {
	o.c.onDeviceChanged(key, oldKey, device)
}

func (o *deviceObserver) OnDeviceRemoved(key string) {
	o.c.onDeviceRemoved(key)
}

// Compile-time interface satisfaction checks.
var (
	_ media.ContentListener = (*contentObserver)(nil)
	_ media.DeviceListener  = (*deviceObserver)(nil)
)
