package store

import "time"

// PlanRecord is one stored plan, with the latest execution outcome joined
// in when present.
type PlanRecord struct {
	ID         string
	CreatedAt  time.Time
	Request    string
	Intent     string
	Summary    string
	Complexity string
	StepCount  int
	PlanJSON   string

	// Latest execution, if any.
	Executed     bool
	TotalSteps   int
	SuccessCount int
	FailedSteps  []int
}
