// Package reporter formats replay results.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mediactl/mediactl-go/internal/replay/loader"
	"github.com/mediactl/mediactl-go/internal/replay/runner"
)

// Reporter formats and outputs replay results.
type Reporter interface {
	// ReportSuite reports results for a replay run.
	ReportSuite(result *runner.SuiteResult)

	// ReportScenario reports results for a single scenario.
	ReportScenario(result *runner.ScenarioResult)
}

// TextReporter outputs human-readable text reports.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{writer: w, verbose: verbose}
}

// ReportSuite reports suite results in text format.
func (r *TextReporter) ReportSuite(result *runner.SuiteResult) {
	fmt.Fprintf(r.writer, "\n=== Replay: %s ===\n", result.SuiteName)
	fmt.Fprintf(r.writer, "Duration: %s\n\n", result.Duration.Round(time.Microsecond))

	for _, sr := range result.Results {
		r.ReportScenario(sr)
	}

	fmt.Fprintf(r.writer, "\n--- Summary ---\n")
	fmt.Fprintf(r.writer, "Total:   %d\n", len(result.Results))
	fmt.Fprintf(r.writer, "Passed:  %d\n", result.PassCount)
	fmt.Fprintf(r.writer, "Failed:  %d\n", result.FailCount)
}

// ReportScenario reports a single scenario result in text format.
func (r *TextReporter) ReportScenario(result *runner.ScenarioResult) {
	sc := result.Scenario

	status := "PASS"
	if !result.Passed {
		status = "FAIL"
	}

	name := sc.Name
	if name == "" {
		name = sc.Description
	}
	fmt.Fprintf(r.writer, "[%s] %s - %s\n", status, sc.ID, firstLine(name))

	if !result.Passed && result.Error != nil {
		fmt.Fprintf(r.writer, "       Error: %v\n", result.Error)
	}

	if !r.verbose {
		return
	}

	for _, st := range result.StepResults {
		stepStatus := "PASS"
		if !st.Passed {
			stepStatus = "FAIL"
		}
		fmt.Fprintf(r.writer, "    [%s] Step %d: %s %s", stepStatus, st.StepIndex+1, st.Step.Action, st.Step.Key)
		if st.Step.OldKey != "" {
			fmt.Fprintf(r.writer, " (from %s)", st.Step.OldKey)
		}
		fmt.Fprintln(r.writer)

		for _, e := range st.Got {
			fmt.Fprintf(r.writer, "           -> %s\n", formatEmission(e))
		}
		for _, m := range st.Mismatches {
			fmt.Fprintf(r.writer, "           [MISMATCH] %s\n", m)
		}
	}
}

func formatEmission(e loader.Emission) string {
	var b strings.Builder
	b.WriteString(e.Event)
	b.WriteString(" ")
	b.WriteString(e.Key)
	if e.OldKey != "" {
		fmt.Fprintf(&b, " old=%s", e.OldKey)
	}
	if e.Title != "" {
		fmt.Fprintf(&b, " title=%q", e.Title)
	}
	if e.DeviceName != "" {
		fmt.Fprintf(&b, " device=%q", e.DeviceName)
	}
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// JSONReporter outputs JSON-formatted reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{writer: w, pretty: pretty}
}

// JSONSuiteResult is the JSON representation of suite results.
type JSONSuiteResult struct {
	SuiteName string               `json:"suite_name"`
	Duration  string               `json:"duration"`
	Total     int                  `json:"total"`
	Passed    int                  `json:"passed"`
	Failed    int                  `json:"failed"`
	Scenarios []JSONScenarioResult `json:"scenarios"`
}

// JSONScenarioResult is the JSON representation of a scenario result.
type JSONScenarioResult struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	SessionID string           `json:"session_id,omitempty"`
	Duration  string           `json:"duration"`
	Error     string           `json:"error,omitempty"`
	Steps     []JSONStepResult `json:"steps,omitempty"`
}

// JSONStepResult is the JSON representation of a step result.
type JSONStepResult struct {
	Index      int               `json:"index"`
	Action     string            `json:"action"`
	Key        string            `json:"key"`
	OldKey     string            `json:"old_key,omitempty"`
	Status     string            `json:"status"`
	Emissions  []loader.Emission `json:"emissions,omitempty"`
	Mismatches []string          `json:"mismatches,omitempty"`
}

// ReportSuite reports suite results in JSON format.
func (r *JSONReporter) ReportSuite(result *runner.SuiteResult) {
	jr := JSONSuiteResult{
		SuiteName: result.SuiteName,
		Duration:  result.Duration.Round(time.Microsecond).String(),
		Total:     len(result.Results),
		Passed:    result.PassCount,
		Failed:    result.FailCount,
		Scenarios: make([]JSONScenarioResult, 0, len(result.Results)),
	}

	for _, sr := range result.Results {
		jr.Scenarios = append(jr.Scenarios, scenarioToJSON(sr))
	}

	r.writeJSON(jr)
}

// ReportScenario reports a single scenario result in JSON format.
func (r *JSONReporter) ReportScenario(result *runner.ScenarioResult) {
	r.writeJSON(scenarioToJSON(result))
}

func scenarioToJSON(result *runner.ScenarioResult) JSONScenarioResult {
	status := "passed"
	if !result.Passed {
		status = "failed"
	}

	jr := JSONScenarioResult{
		ID:        result.Scenario.ID,
		Name:      result.Scenario.Name,
		Status:    status,
		SessionID: result.SessionID,
		Duration:  result.Duration.Round(time.Microsecond).String(),
	}
	if result.Error != nil {
		jr.Error = result.Error.Error()
	}

	for _, st := range result.StepResults {
		stepStatus := "passed"
		if !st.Passed {
			stepStatus = "failed"
		}
		jr.Steps = append(jr.Steps, JSONStepResult{
			Index:      st.StepIndex,
			Action:     st.Step.Action,
			Key:        st.Step.Key,
			OldKey:     st.Step.OldKey,
			Status:     stepStatus,
			Emissions:  st.Got,
			Mismatches: st.Mismatches,
		})
	}

	return jr
}

func (r *JSONReporter) writeJSON(v any) {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		fmt.Fprintf(r.writer, `{"error": "failed to marshal: %s"}`, err)
		return
	}

	fmt.Fprintln(r.writer, string(data))
}

// JUnitReporter outputs JUnit XML for CI integration.
type JUnitReporter struct {
	writer io.Writer
}

// NewJUnitReporter creates a new JUnit reporter.
func NewJUnitReporter(w io.Writer) *JUnitReporter {
	return &JUnitReporter{writer: w}
}

// ReportSuite reports suite results in JUnit XML format.
func (r *JUnitReporter) ReportSuite(result *runner.SuiteResult) {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<testsuite name="%s" tests="%d" failures="%d" time="%.6f">`+"\n",
		escapeXML(result.SuiteName), len(result.Results), result.FailCount, result.Duration.Seconds())

	for _, sr := range result.Results {
		fmt.Fprintf(&b, `  <testcase name="%s" classname="%s" time="%.6f">`+"\n",
			escapeXML(sr.Scenario.Name), escapeXML(sr.Scenario.ID), sr.Duration.Seconds())

		if !sr.Passed && sr.Error != nil {
			fmt.Fprintf(&b, `    <failure message="%s">`+"\n", escapeXML(sr.Error.Error()))
			b.WriteString("      <![CDATA[")
			for _, st := range sr.StepResults {
				for _, m := range st.Mismatches {
					fmt.Fprintf(&b, "Step %d (%s %s): %s\n", st.StepIndex+1, st.Step.Action, st.Step.Key, m)
				}
			}
			b.WriteString("]]>\n    </failure>\n")
		}

		b.WriteString("  </testcase>\n")
	}

	b.WriteString("</testsuite>\n")
	fmt.Fprint(r.writer, b.String())
}

// ReportScenario reports a single scenario wrapped in a one-case suite.
func (r *JUnitReporter) ReportScenario(result *runner.ScenarioResult) {
	suite := &runner.SuiteResult{
		SuiteName: result.Scenario.ID,
		Results:   []*runner.ScenarioResult{result},
		Duration:  result.Duration,
	}
	if result.Passed {
		suite.PassCount = 1
	} else {
		suite.FailCount = 1
	}
	r.ReportSuite(suite)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// Compile-time interface satisfaction checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*JUnitReporter)(nil)
)
