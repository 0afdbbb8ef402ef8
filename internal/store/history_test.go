package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishant/yojana/internal/planner"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	h, err := NewHistoryStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func samplePlan(summary string) *planner.ExecutionPlan {
	return &planner.ExecutionPlan{
		Summary: summary,
		Steps: []planner.PlanStep{
			{Step: 1, Action: "Create handler", Files: []string{"api/greet.go"}},
			{Step: 2, Action: "Wire route", Files: []string{"api/routes.go"}},
		},
		EstimatedComplexity: planner.ComplexityLow,
	}
}

func TestSavePlanAndGetPlan(t *testing.T) {
	h := newTestStore(t)

	id, err := h.SavePlan("add a greeting endpoint", "Create/Add new functionality", samplePlan("add endpoint"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := h.GetPlan(id)
	require.NoError(t, err)
	assert.Equal(t, "add endpoint", got.Summary)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, []string{"api/greet.go"}, got.Steps[0].Files)
}

func TestGetPlan_Unknown(t *testing.T) {
	h := newTestStore(t)

	_, err := h.GetPlan("no-such-id")
	assert.Error(t, err)
}

func TestSaveExecutionAndList(t *testing.T) {
	h := newTestStore(t)

	id, err := h.SavePlan("fix the parser", "Fix bugs/issues", samplePlan("fix parser"))
	require.NoError(t, err)
	require.NoError(t, h.SaveExecution(id, planner.ExecutionResult{
		TotalSteps:   2,
		SuccessCount: 1,
		FailedSteps:  []int{2},
	}))

	records, err := h.ListPlans(10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "fix the parser", rec.Request)
	assert.Equal(t, "fix parser", rec.Summary)
	assert.Equal(t, 2, rec.StepCount)
	assert.True(t, rec.Executed)
	assert.Equal(t, 2, rec.TotalSteps)
	assert.Equal(t, 1, rec.SuccessCount)
	assert.Equal(t, []int{2}, rec.FailedSteps)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestListPlans_NewestFirstAndLimit(t *testing.T) {
	h := newTestStore(t)

	var ids []string
	for _, summary := range []string{"first", "second", "third"} {
		id, err := h.SavePlan("req "+summary, "General code changes", samplePlan(summary))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	records, err := h.ListPlans(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)
	assert.False(t, records[0].Executed)
}
