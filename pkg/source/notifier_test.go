package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mediactl/mediactl-go/pkg/combiner"
	"github.com/mediactl/mediactl-go/pkg/media"
	"github.com/mediactl/mediactl-go/pkg/media/mocks"
	"github.com/mediactl/mediactl-go/pkg/source"
)

type contentRecorder struct {
	name  string
	calls *[]string
}

func (r *contentRecorder) OnContentLoaded(key, oldKey string, _ media.ContentRecord) {
	*r.calls = append(*r.calls, r.name+":loaded:"+key+":"+oldKey)
}

func (r *contentRecorder) OnContentRemoved(key string) {
	*r.calls = append(*r.calls, r.name+":removed:"+key)
}

type deviceRecorder struct {
	calls []string
}

func (r *deviceRecorder) OnDeviceChanged(key, oldKey string, device *media.DeviceRecord) {
	name := "<nil>"
	if device != nil {
		name = device.Name
	}
	r.calls = append(r.calls, "changed:"+key+":"+oldKey+":"+name)
}

func (r *deviceRecorder) OnDeviceRemoved(key string) {
	r.calls = append(r.calls, "removed:"+key)
}

func TestContentNotifierFanOutOrder(t *testing.T) {
	var calls []string
	n := source.NewContentNotifier()
	a := &contentRecorder{name: "a", calls: &calls}
	b := &contentRecorder{name: "b", calls: &calls}

	require.True(t, n.AddListener(a))
	require.True(t, n.AddListener(b))
	assert.False(t, n.AddListener(a))

	n.Load("k2", "k1", media.ContentRecord{Title: "t"})
	n.Remove("k2")

	assert.Equal(t, []string{
		"a:loaded:k2:k1", "b:loaded:k2:k1",
		"a:removed:k2", "b:removed:k2",
	}, calls)

	assert.True(t, n.RemoveListener(a))
	assert.False(t, n.RemoveListener(a))
	calls = nil
	n.Remove("k2")
	assert.Equal(t, []string{"b:removed:k2"}, calls)
}

func TestDeviceNotifierForwardsNilDevice(t *testing.T) {
	n := source.NewDeviceNotifier()
	r := &deviceRecorder{}
	n.AddListener(r)

	n.Change("k", "", &media.DeviceRecord{Name: "speaker"})
	n.Change("k", "", nil)
	n.RemoveKey("k")

	assert.Equal(t, []string{"changed:k::speaker", "changed:k::<nil>", "removed:k"}, r.calls)
}

func TestNotifiersDriveCombiner(t *testing.T) {
	content := source.NewContentNotifier()
	device := source.NewDeviceNotifier()
	c := combiner.New(content, device)

	listener := mocks.NewMockMergedListener(t)
	c.AddListener(listener)

	content.Load("A", "", media.ContentRecord{Title: "TITLE"})

	listener.EXPECT().OnMergedLoaded("A", "", mock.Anything).Once()
	device.Change("A", "", &media.DeviceRecord{Enabled: true, Name: "DEVICE_NAME"})

	listener.EXPECT().OnMergedLoaded("B", "A", mock.Anything).Once()
	content.Load("B", "A", media.ContentRecord{Title: "TITLE"})

	listener.EXPECT().OnMergedRemoved("B").Once()
	device.RemoveKey("B")
}
