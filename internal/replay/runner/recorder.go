package runner

import (
	"github.com/mediactl/mediactl-go/internal/replay/loader"
	"github.com/mediactl/mediactl-go/pkg/media"
)

// recorder collects merged emissions in delivery order.
type recorder struct {
	got []loader.Emission
}

func (r *recorder) OnMergedLoaded(key, oldKey string, merged media.MergedRecord) {
	hasDevice := merged.HasDevice()
	e := loader.Emission{
		Event:     loader.EventLoaded,
		Key:       key,
		OldKey:    oldKey,
		HasDevice: &hasDevice,
		Title:     merged.Title,
	}
	if hasDevice {
		e.DeviceName = merged.Device.Name
	}
	r.got = append(r.got, e)
}

func (r *recorder) OnMergedRemoved(key string) {
	r.got = append(r.got, loader.Emission{Event: loader.EventRemoved, Key: key})
}

// take returns the recorded emissions and resets the recorder.
func (r *recorder) take() []loader.Emission {
	got := r.got
	r.got = nil
	return got
}

var _ media.MergedListener = (*recorder)(nil)
