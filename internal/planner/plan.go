// Package planner turns a natural-language change request into a structured
// execution plan and applies that plan to the workspace.
package planner

import (
	"encoding/json"
	"strings"
)

// PlanStep is one atomic unit of a plan. Steps are immutable once parsed.
type PlanStep struct {
	Step        int      `json:"step"`
	Action      string   `json:"action"`
	Description string   `json:"description"`
	Files       []string `json:"files,omitempty"`
	Reasoning   string   `json:"reasoning"`
}

// Complexity levels the model is allowed to report.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// ExecutionPlan is produced once per request and only ever read afterwards.
type ExecutionPlan struct {
	Summary             string     `json:"summary"`
	Steps               []PlanStep `json:"steps"`
	EstimatedComplexity string     `json:"estimatedComplexity"`
	Prerequisites       []string   `json:"prerequisites"`
	Risks               []string   `json:"risks"`
}

// PromptPair is a system/user prompt combination, built fresh per call.
type PromptPair struct {
	System string
	User   string
}

// ExecutionResult aggregates the outcome of walking a plan. FailedSteps
// holds the plan's own step numbers, not slice indices.
type ExecutionResult struct {
	TotalSteps   int
	SuccessCount int
	FailedSteps  []int
}

// ParsePlan extracts a plan from free-form model output. The span between
// the first '{' and the last '}' is treated as the candidate document,
// which tolerates surrounding prose and code-fence markers. Returns nil
// when no plan can be recovered: the generator is untrusted, and callers
// fall back to showing the raw text. Do not tighten this into strict JSON
// parsing: upstream output is known to include fences.
//
// Only summary and steps are validated here. Steps may be partially
// shaped; downstream consumers must tolerate that.
func ParsePlan(raw string) *ExecutionPlan {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil
	}

	var plan ExecutionPlan
	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		return nil
	}

	if plan.Summary == "" || plan.Steps == nil {
		return nil
	}
	return &plan
}
