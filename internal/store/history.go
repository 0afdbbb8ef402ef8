// Package store persists generated plans and their execution outcomes in a
// local sqlite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"

	"github.com/nishant/yojana/internal/planner"
)

type HistoryStore struct {
	DB *sql.DB
}

func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			request TEXT,
			intent TEXT,
			summary TEXT,
			complexity TEXT,
			step_count INTEGER,
			plan_json TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS executions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			plan_id TEXT,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			total_steps INTEGER,
			success_count INTEGER,
			failed_steps TEXT
		);`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return nil, err
		}
	}

	return &HistoryStore{DB: db}, nil
}

func (h *HistoryStore) Close() error {
	return h.DB.Close()
}

// SavePlan stores a generated plan and returns its id.
func (h *HistoryStore) SavePlan(request, intent string, plan *planner.ExecutionPlan) (string, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO plans (id, request, intent, summary, complexity, step_count, plan_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = h.DB.Exec(query, id, request, intent, plan.Summary, plan.EstimatedComplexity, len(plan.Steps), string(planJSON))
	if err != nil {
		return "", err
	}
	return id, nil
}

// SaveExecution records the outcome of applying a stored plan.
func (h *HistoryStore) SaveExecution(planID string, result planner.ExecutionResult) error {
	failed, err := json.Marshal(result.FailedSteps)
	if err != nil {
		return fmt.Errorf("failed to encode failed steps: %w", err)
	}

	query := `INSERT INTO executions (plan_id, total_steps, success_count, failed_steps) VALUES (?, ?, ?, ?)`
	_, err = h.DB.Exec(query, planID, result.TotalSteps, result.SuccessCount, string(failed))
	return err
}

// GetPlan loads a stored plan by id.
func (h *HistoryStore) GetPlan(id string) (*planner.ExecutionPlan, error) {
	var planJSON string
	row := h.DB.QueryRow(`SELECT plan_json FROM plans WHERE id = ?`, id)
	if err := row.Scan(&planJSON); err != nil {
		return nil, err
	}

	var plan planner.ExecutionPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan %s: %w", id, err)
	}
	return &plan, nil
}

// ListPlans returns the most recent plans, newest first, each with its
// latest execution outcome when one exists.
func (h *HistoryStore) ListPlans(limit int) ([]PlanRecord, error) {
	query := `
		SELECT p.id, p.created_at, p.request, p.intent, p.summary, p.complexity, p.step_count, p.plan_json,
			e.total_steps, e.success_count, e.failed_steps
		FROM plans p
		LEFT JOIN executions e ON e.id = (
			SELECT id FROM executions WHERE plan_id = p.id ORDER BY executed_at DESC, id DESC LIMIT 1
		)
		ORDER BY p.rowid DESC
		LIMIT ?`
	rows, err := h.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var createdAt any
		var total, success sql.NullInt64
		var failedJSON sql.NullString

		if err := rows.Scan(&rec.ID, &createdAt, &rec.Request, &rec.Intent, &rec.Summary,
			&rec.Complexity, &rec.StepCount, &rec.PlanJSON, &total, &success, &failedJSON); err != nil {
			return nil, err
		}
		rec.CreatedAt = parseTimestamp(createdAt)

		if total.Valid {
			rec.Executed = true
			rec.TotalSteps = int(total.Int64)
			rec.SuccessCount = int(success.Int64)
			if failedJSON.Valid && failedJSON.String != "" {
				if err := json.Unmarshal([]byte(failedJSON.String), &rec.FailedSteps); err != nil {
					return nil, fmt.Errorf("failed to decode failed steps for plan %s: %w", rec.ID, err)
				}
			}
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or the raw sqlite text representation.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return ts
		}
	case []byte:
		if ts, err := time.Parse("2006-01-02 15:04:05", string(t)); err == nil {
			return ts
		}
	}
	return time.Time{}
}
