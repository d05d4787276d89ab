package combiner

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mediactl/mediactl-go/pkg/media"
	"github.com/mediactl/mediactl-go/pkg/media/mocks"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

const (
	testKey    = "TEST_KEY"
	testOldKey = "TEST_KEY_OLD"
	testApp    = "APP"
	testPkg    = "PKG"
	testArtist = "ARTIST"
	testTitle  = "TITLE"
	testDevice = "DEVICE_NAME"
	testBG     = 0xFFFF0000
)

type fixture struct {
	combiner *Combiner

	// Listeners the combiner registered with the mocked sources.
	contentListener media.ContentListener
	deviceListener  media.DeviceListener

	listener *mocks.MockMergedListener

	content media.ContentRecord
	device  *media.DeviceRecord
}

func setUp(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}

	contentSource := mocks.NewMockContentSource(t)
	contentSource.EXPECT().AddListener(mock.Anything).
		Run(func(l media.ContentListener) { f.contentListener = l }).
		Return(true).Once()

	deviceSource := mocks.NewMockDeviceSource(t)
	deviceSource.EXPECT().AddListener(mock.Anything).
		Run(func(l media.DeviceListener) { f.deviceListener = l }).
		Return(true).Once()

	f.combiner = New(contentSource, deviceSource)
	require.NotNil(t, f.contentListener, "combiner did not register a content listener")
	require.NotNil(t, f.deviceListener, "combiner did not register a device listener")

	f.listener = mocks.NewMockMergedListener(t)
	f.combiner.AddListener(f.listener)

	f.content = media.ContentRecord{
		Initialized:     true,
		BackgroundColor: testBG,
		App:             testApp,
		Artist:          testArtist,
		Title:           testTitle,
		PackageName:     testPkg,
		Active:          true,
		NotificationKey: testKey,
	}
	f.device = &media.DeviceRecord{Enabled: true, Name: testDevice}

	return f
}

// resetListener swaps in a fresh mock listener, discarding earlier expectations.
func (f *fixture) resetListener(t *testing.T) {
	t.Helper()
	f.combiner.RemoveListener(f.listener)
	f.listener = mocks.NewMockMergedListener(t)
	f.combiner.AddListener(f.listener)
}

// expectLoaded expects exactly one merged load and returns a pointer that
// receives the delivered record.
func (f *fixture) expectLoaded(key, oldKey any) *media.MergedRecord {
	var captured media.MergedRecord
	f.listener.EXPECT().OnMergedLoaded(key, oldKey, mock.Anything).
		Run(func(_ string, _ string, merged media.MergedRecord) { captured = merged }).
		Once()
	return &captured
}

// givenMerged loads content and device under key, absorbing the resulting emission.
func (f *fixture) givenMerged(t *testing.T, key string) {
	t.Helper()
	f.contentListener.OnContentLoaded(key, "", f.content)
	f.expectLoaded(key, "")
	f.deviceListener.OnDeviceChanged(key, "", f.device)
	f.resetListener(t)
}

func TestEventNotEmittedWithoutDevice(t *testing.T) {
	f := setUp(t)

	f.contentListener.OnContentLoaded(testKey, "", f.content)

	f.listener.AssertNotCalled(t, "OnMergedLoaded", testKey, mock.Anything, mock.Anything)
}

func TestEventNotEmittedWithoutContent(t *testing.T) {
	f := setUp(t)

	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	f.listener.AssertNotCalled(t, "OnMergedLoaded", testKey, mock.Anything, mock.Anything)
}

func TestEmitEventAfterDeviceFirst(t *testing.T) {
	f := setUp(t)
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	merged := f.expectLoaded(testKey, "")
	f.contentListener.OnContentLoaded(testKey, "", f.content)

	require.True(t, merged.HasDevice())
	assert.Equal(t, testDevice, merged.Device.Name)
	assert.Equal(t, testTitle, merged.Title)
}

func TestEmitEventAfterContentFirst(t *testing.T) {
	f := setUp(t)
	f.contentListener.OnContentLoaded(testKey, "", f.content)

	merged := f.expectLoaded(testKey, "")
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	require.True(t, merged.HasDevice())
	assert.Equal(t, testArtist, merged.Artist)
}

func TestMigrateKeyContentFirst(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)

	merged := f.expectLoaded(testKey, testOldKey)
	f.contentListener.OnContentLoaded(testKey, testOldKey, f.content)

	assert.True(t, merged.HasDevice())
	assert.Equal(t, []string{testKey}, f.combiner.Keys())
}

func TestMigrateKeyDeviceFirst(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)

	merged := f.expectLoaded(testKey, testOldKey)
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, f.device)

	assert.True(t, merged.HasDevice())
	assert.Equal(t, []string{testKey}, f.combiner.Keys())
}

func TestMigrateKeyContentAfter(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)
	f.expectLoaded(testKey, testOldKey)
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, f.device)
	f.resetListener(t)

	// The device side already moved the key; the content side must not
	// report the stale key again.
	merged := f.expectLoaded(testKey, testKey)
	f.contentListener.OnContentLoaded(testKey, testOldKey, f.content)

	assert.True(t, merged.HasDevice())
}

func TestMigrateKeyDeviceAfter(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)
	f.expectLoaded(testKey, testOldKey)
	f.contentListener.OnContentLoaded(testKey, testOldKey, f.content)
	f.resetListener(t)

	merged := f.expectLoaded(testKey, testKey)
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, f.device)

	assert.True(t, merged.HasDevice())
}

func TestMigrationOrderIsCommutative(t *testing.T) {
	viaContent := setUp(t)
	viaContent.givenMerged(t, testOldKey)
	gotContent := viaContent.expectLoaded(testKey, testOldKey)
	viaContent.contentListener.OnContentLoaded(testKey, testOldKey, viaContent.content)

	viaDevice := setUp(t)
	viaDevice.givenMerged(t, testOldKey)
	gotDevice := viaDevice.expectLoaded(testKey, testOldKey)
	viaDevice.deviceListener.OnDeviceChanged(testKey, testOldKey, viaDevice.device)

	assert.Equal(t, *gotContent, *gotDevice)
}

func TestMigrationOverwritesExistingKey(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)

	stale := f.content
	stale.Title = "STALE"
	f.contentListener.OnContentLoaded(testKey, "", stale)

	merged := f.expectLoaded(testKey, testOldKey)
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, f.device)

	// The content that moved from the old key wins over what the new key held.
	assert.Equal(t, testTitle, merged.Title)
	assert.Equal(t, 1, f.combiner.Len())
}

func TestMigrationOntoMergedKeyKeepsRemoval(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)

	// Content-only entry moves onto a key downstream already holds.
	f.contentListener.OnContentLoaded(testOldKey, "", f.content)
	f.contentListener.OnContentLoaded(testKey, testOldKey, f.content)
	f.listener.AssertNotCalled(t, "OnMergedLoaded", mock.Anything, mock.Anything, mock.Anything)

	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.contentListener.OnContentRemoved(testKey)
	assert.Zero(t, f.combiner.Len())
}

func TestMigrationWithoutDeviceRemovesOldKey(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)

	// The merged entry moves but loses its device, so it is not re-emitted
	// under the new key and downstream must drop the old one.
	f.listener.EXPECT().OnMergedRemoved(testOldKey).Once()
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, nil)
	assert.Equal(t, []string{testKey}, f.combiner.Keys())

	f.contentListener.OnContentRemoved(testKey)
	f.listener.AssertNotCalled(t, "OnMergedRemoved", testKey)
	f.listener.AssertNumberOfCalls(t, "OnMergedRemoved", 1)
	assert.Zero(t, f.combiner.Len())
}

func TestMigrationReemitDoesNotRemoveOldKey(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testOldKey)

	f.expectLoaded(testKey, testOldKey)
	f.contentListener.OnContentLoaded(testKey, testOldKey, f.content)

	f.listener.AssertNotCalled(t, "OnMergedRemoved", testOldKey)
}

func TestMigratedDeviceClearedOntoMergedKeyRemoves(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)
	f.deviceListener.OnDeviceChanged(testOldKey, "", f.device)

	// A device-only entry lands on the merged key and is cleared on the way,
	// leaving nothing for the key downstream still holds.
	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.deviceListener.OnDeviceChanged(testKey, testOldKey, nil)

	f.listener.AssertNotCalled(t, "OnMergedRemoved", testOldKey)
	assert.Zero(t, f.combiner.Len())
}

func TestContentRemovedWithoutEvents(t *testing.T) {
	f := setUp(t)

	f.contentListener.OnContentRemoved(testKey)

	f.listener.AssertNotCalled(t, "OnMergedRemoved", testKey)
}

func TestContentRemovedAfterContentOnly(t *testing.T) {
	f := setUp(t)
	f.contentListener.OnContentLoaded(testKey, "", f.content)

	f.contentListener.OnContentRemoved(testKey)

	f.listener.AssertNotCalled(t, "OnMergedRemoved", testKey)
	assert.Zero(t, f.combiner.Len())
}

func TestContentRemovedAfterDeviceEvent(t *testing.T) {
	f := setUp(t)
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.contentListener.OnContentRemoved(testKey)
}

func TestContentRemovedAfterMerge(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)

	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.contentListener.OnContentRemoved(testKey)

	assert.Zero(t, f.combiner.Len())

	// A second removal for the same key is silent.
	f.contentListener.OnContentRemoved(testKey)
}

func TestDeviceRemovedAfterMerge(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)

	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.deviceListener.OnDeviceRemoved(testKey)

	_, ok := f.combiner.Merged(testKey)
	assert.False(t, ok)
}

func TestRemovalAfterDeviceClearedStillEmitted(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)

	// Clearing the device alone never emits.
	f.deviceListener.OnDeviceChanged(testKey, "", nil)

	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.contentListener.OnContentRemoved(testKey)
}

func TestContentKeyUpdated(t *testing.T) {
	f := setUp(t)
	f.contentListener.OnContentLoaded(testKey, "", f.content)
	f.expectLoaded(testKey, "")
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	f.expectLoaded("NEW_KEY", testKey)
	f.contentListener.OnContentLoaded("NEW_KEY", testKey, f.content)
}

func TestDeviceUpdateReemits(t *testing.T) {
	f := setUp(t)
	f.givenMerged(t, testKey)

	merged := f.expectLoaded(testKey, "")
	f.deviceListener.OnDeviceChanged(testKey, "", &media.DeviceRecord{Enabled: false, Name: "SPEAKER"})

	assert.Equal(t, "SPEAKER", merged.Device.Name)
	assert.False(t, merged.Device.Enabled)
}

func TestListenersNotifiedInRegistrationOrder(t *testing.T) {
	f := setUp(t)

	var order []string
	second := mocks.NewMockMergedListener(t)
	f.combiner.AddListener(second)

	f.listener.EXPECT().OnMergedLoaded(testKey, "", mock.Anything).
		Run(func(string, string, media.MergedRecord) { order = append(order, "first") }).Once()
	second.EXPECT().OnMergedLoaded(testKey, "", mock.Anything).
		Run(func(string, string, media.MergedRecord) { order = append(order, "second") }).Once()

	f.contentListener.OnContentLoaded(testKey, "", f.content)
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAddRemoveListener(t *testing.T) {
	f := setUp(t)

	assert.False(t, f.combiner.AddListener(f.listener), "duplicate registration")
	assert.True(t, f.combiner.RemoveListener(f.listener))
	assert.False(t, f.combiner.RemoveListener(f.listener))

	f.contentListener.OnContentLoaded(testKey, "", f.content)
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	f.listener.AssertNotCalled(t, "OnMergedLoaded", mock.Anything, mock.Anything, mock.Anything)
}

func TestListenerMayRemoveItselfDuringDelivery(t *testing.T) {
	f := setUp(t)
	second := mocks.NewMockMergedListener(t)
	f.combiner.AddListener(second)

	f.listener.EXPECT().OnMergedLoaded(testKey, "", mock.Anything).
		Run(func(string, string, media.MergedRecord) { f.combiner.RemoveListener(f.listener) }).Once()
	second.EXPECT().OnMergedLoaded(testKey, "", mock.Anything).Once()

	f.contentListener.OnContentLoaded(testKey, "", f.content)
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)
}

func TestDeliveredRecordsAreCopies(t *testing.T) {
	f := setUp(t)
	f.content.Artwork = []byte{1, 2, 3}
	f.contentListener.OnContentLoaded(testKey, "", f.content)

	f.listener.EXPECT().OnMergedLoaded(testKey, "", mock.Anything).
		Run(func(_ string, _ string, merged media.MergedRecord) {
			merged.Device.Name = "mutated"
			merged.Artwork[0] = 9
		}).Once()
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	merged, ok := f.combiner.Merged(testKey)
	require.True(t, ok)
	assert.Equal(t, testDevice, merged.Device.Name)
	assert.Equal(t, byte(1), merged.Artwork[0])
	assert.Equal(t, testDevice, f.device.Name)
}

func TestInspection(t *testing.T) {
	f := setUp(t)
	f.contentListener.OnContentLoaded("b", "", f.content)
	f.deviceListener.OnDeviceChanged("a", "", f.device)

	assert.Equal(t, []string{"a", "b"}, f.combiner.Keys())
	assert.Equal(t, 2, f.combiner.Len())

	_, ok := f.combiner.Merged("a")
	assert.False(t, ok, "device-only key is not merged")
}

func TestNilDeviceForUnknownKeyLeavesNoState(t *testing.T) {
	f := setUp(t)

	f.deviceListener.OnDeviceChanged(testKey, "", nil)

	assert.Zero(t, f.combiner.Len())
}

// recordingTrace records trace events for testing.
type recordingTrace struct {
	events []trace.Event
}

func (r *recordingTrace) Log(e trace.Event) {
	r.events = append(r.events, e)
}

func TestTraceRecordsInboundAndOutbound(t *testing.T) {
	f := setUp(t)
	rec := &recordingTrace{}
	f.combiner.SetTraceLogger(rec)

	f.givenMerged(t, testKey)
	f.listener.EXPECT().OnMergedRemoved(testKey).Once()
	f.contentListener.OnContentRemoved(testKey)

	require.Len(t, rec.events, 5)

	want := []struct {
		dir    trace.Direction
		stream trace.Stream
		kind   trace.Kind
	}{
		{trace.DirectionIn, trace.StreamContent, trace.KindLoaded},
		{trace.DirectionIn, trace.StreamDevice, trace.KindLoaded},
		{trace.DirectionOut, trace.StreamMerged, trace.KindLoaded},
		{trace.DirectionIn, trace.StreamContent, trace.KindRemoved},
		{trace.DirectionOut, trace.StreamMerged, trace.KindRemoved},
	}
	for i, w := range want {
		e := rec.events[i]
		assert.Equal(t, w.dir, e.Direction, "event %d direction", i)
		assert.Equal(t, w.stream, e.Stream, "event %d stream", i)
		assert.Equal(t, w.kind, e.Kind, "event %d kind", i)
		assert.Equal(t, f.combiner.SessionID(), e.SessionID)
	}
	require.NotNil(t, rec.events[2].Device)
	assert.Equal(t, testDevice, rec.events[2].Device.Name)
}

func TestTraceNotesMissingHalf(t *testing.T) {
	f := setUp(t)
	rec := &recordingTrace{}
	f.combiner.SetTraceLogger(rec)

	f.contentListener.OnContentLoaded(testKey, "", f.content)
	f.deviceListener.OnDeviceChanged(testOldKey, "", f.device)
	f.expectLoaded(testKey, "")
	f.deviceListener.OnDeviceChanged(testKey, "", f.device)

	require.Len(t, rec.events, 4)
	assert.Equal(t, "waiting for device", rec.events[0].Note)
	assert.Equal(t, "waiting for content", rec.events[1].Note)
	assert.Empty(t, rec.events[2].Note)
	assert.Empty(t, rec.events[3].Note)
}

func TestSetLoggerReceivesDebugRecords(t *testing.T) {
	f := setUp(t)
	var buf bytes.Buffer
	f.combiner.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	f.contentListener.OnContentLoaded(testKey, "", f.content)

	assert.Contains(t, buf.String(), "waiting for device")

	f.combiner.SetLogger(nil)
	f.combiner.SetTraceLogger(nil)
	f.contentListener.OnContentRemoved(testKey)
}
