package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mediactl/mediactl-go/internal/replay/loader"
	"github.com/mediactl/mediactl-go/pkg/combiner"
	"github.com/mediactl/mediactl-go/pkg/source"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

// Runner replays scenarios.
type Runner struct {
	config Config
}

// New creates a Runner. A nil config uses discard logging and no tracing.
func New(config *Config) *Runner {
	r := &Runner{}
	if config != nil {
		r.config = *config
	}
	if r.config.Logger == nil {
		r.config.Logger = slog.New(slog.DiscardHandler)
	}
	if r.config.Trace == nil {
		r.config.Trace = trace.NoopLogger{}
	}
	return r
}

// Run replays a single scenario against a fresh combiner.
func (r *Runner) Run(sc *loader.Scenario) *ScenarioResult {
	result := &ScenarioResult{
		Scenario:  sc,
		StartTime: time.Now(),
	}

	content := source.NewContentNotifier()
	device := source.NewDeviceNotifier()
	c := combiner.New(content, device)
	c.SetLogger(r.config.Logger.With("scenario", sc.ID))
	c.SetTraceLogger(r.config.Trace)
	result.SessionID = c.SessionID()

	rec := &recorder{}
	c.AddListener(rec)

	r.config.Logger.Debug("replaying scenario", "scenario", sc.ID, "steps", len(sc.Steps), "session", trace.ShortID(c.SessionID()))

	result.Passed = true
	for i := range sc.Steps {
		step := &sc.Steps[i]

		switch step.Action {
		case loader.ActionContentLoaded:
			content.Load(step.Key, step.OldKey, step.Content.Record())
		case loader.ActionContentRemoved:
			content.Remove(step.Key)
		case loader.ActionDeviceChanged:
			device.Change(step.Key, step.OldKey, step.Device.Record())
		case loader.ActionDeviceRemoved:
			device.RemoveKey(step.Key)
		}

		sr := &StepResult{
			Step:      step,
			StepIndex: i,
			Got:       rec.take(),
		}
		sr.Mismatches = compare(step.Expect, sr.Got)
		sr.Passed = len(sr.Mismatches) == 0
		result.StepResults = append(result.StepResults, sr)

		if !sr.Passed && result.Passed {
			result.Passed = false
			result.Error = fmt.Errorf("step %d (%s %s): %s", i+1, step.Action, step.Key, sr.Mismatches[0])
		}
	}

	result.Duration = time.Since(result.StartTime)
	return result
}

// RunSuite replays scenarios in order until done or ctx is cancelled.
func (r *Runner) RunSuite(ctx context.Context, name string, scenarios []*loader.Scenario) *SuiteResult {
	result := &SuiteResult{SuiteName: name}

	startTime := time.Now()
	defer func() { result.Duration = time.Since(startTime) }()

	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			return result
		default:
		}

		sr := r.Run(sc)
		result.Results = append(result.Results, sr)

		if sr.Passed {
			result.PassCount++
		} else {
			result.FailCount++
			r.config.Logger.Info("scenario failed", "scenario", sc.ID, "error", sr.Error)
		}

		if r.config.OnScenarioComplete != nil {
			r.config.OnScenarioComplete(sr)
		}

		if !sr.Passed && r.config.StopOnFirstFailure {
			break
		}
	}

	return result
}

// compare checks got against want position by position. Optional fields of
// want that are zero are not compared.
func compare(want, got []loader.Emission) []string {
	var mismatches []string

	if len(want) != len(got) {
		mismatches = append(mismatches, fmt.Sprintf("expected %d emissions, got %d", len(want), len(got)))
	}

	for i := range min(len(want), len(got)) {
		w, g := want[i], got[i]
		if w.Event != g.Event {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: event = %s, want %s", i+1, g.Event, w.Event))
			continue
		}
		if w.Key != g.Key {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: key = %q, want %q", i+1, g.Key, w.Key))
		}
		if w.OldKey != g.OldKey {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: old_key = %q, want %q", i+1, g.OldKey, w.OldKey))
		}
		if w.HasDevice != nil && (g.HasDevice == nil || *w.HasDevice != *g.HasDevice) {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: has_device = %v, want %v", i+1, g.HasDevice != nil && *g.HasDevice, *w.HasDevice))
		}
		if w.Title != "" && w.Title != g.Title {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: title = %q, want %q", i+1, g.Title, w.Title))
		}
		if w.DeviceName != "" && w.DeviceName != g.DeviceName {
			mismatches = append(mismatches, fmt.Sprintf("emission %d: device_name = %q, want %q", i+1, g.DeviceName, w.DeviceName))
		}
	}

	return mismatches
}
