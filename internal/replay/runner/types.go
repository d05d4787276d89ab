// Package runner replays loaded scenarios through a combiner and checks the
// merged emissions each step produces.
package runner

import (
	"log/slog"
	"time"

	"github.com/mediactl/mediactl-go/internal/replay/loader"
	"github.com/mediactl/mediactl-go/pkg/trace"
)

// ScenarioResult represents the outcome of a single scenario.
type ScenarioResult struct {
	// Scenario is the scenario that was replayed.
	Scenario *loader.Scenario

	// Passed indicates if every step produced exactly its expected emissions.
	Passed bool

	// Error is the first step failure, if any.
	Error error

	// StepResults contains results for each replayed step.
	StepResults []*StepResult

	// Duration is how long the replay took.
	Duration time.Duration

	// StartTime when the replay started.
	StartTime time.Time

	// SessionID is the trace session of the combiner used for the replay.
	SessionID string
}

// StepResult represents the outcome of a single step.
type StepResult struct {
	// Step is the step that was replayed.
	Step *loader.Step

	// StepIndex is the index of this step (0-based).
	StepIndex int

	// Passed indicates if the emissions matched.
	Passed bool

	// Got is what the combiner emitted for the step.
	Got []loader.Emission

	// Mismatches describes each difference from the expectation.
	Mismatches []string
}

// SuiteResult represents the outcome of replaying a set of scenarios.
type SuiteResult struct {
	// SuiteName identifies the run.
	SuiteName string

	// Results contains results for each scenario.
	Results []*ScenarioResult

	// PassCount is the number of passed scenarios.
	PassCount int

	// FailCount is the number of failed scenarios.
	FailCount int

	// Duration is the total time for all scenarios.
	Duration time.Duration
}

// Config configures a Runner.
type Config struct {
	// Logger receives operational logs from the runner and its combiners.
	Logger *slog.Logger

	// Trace receives a trace of every replayed notification and emission.
	Trace trace.Logger

	// StopOnFirstFailure stops the suite after the first failed scenario.
	StopOnFirstFailure bool

	// OnScenarioComplete, if set, is called after each scenario.
	OnScenarioComplete func(*ScenarioResult)
}
