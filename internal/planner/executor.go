package planner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nishant/yojana/internal/llm"
	"github.com/nishant/yojana/internal/observability"
	"github.com/nishant/yojana/internal/workspace"
)

// Executor walks a plan's steps in order and applies file changes via
// further LLM calls. Execution is strictly sequential and not
// transactional: a failing file inside a multi-file step leaves the step's
// earlier files already written. That is a documented property, not a bug.
type Executor struct {
	client llm.Client
	ws     *workspace.Workspace
	logger *observability.Logger
}

func NewExecutor(client llm.Client, ws *workspace.Workspace, logger *observability.Logger) *Executor {
	return &Executor{client: client, ws: ws, logger: logger}
}

// ExecutePlan processes each step in plan order. A step with no files
// auto-succeeds. On a failing step, execution stops unless continueOnError
// is set; skipped steps are neither attempted nor counted. The plan is
// borrowed read-only.
func (e *Executor) ExecutePlan(ctx context.Context, plan *ExecutionPlan, continueOnError bool) ExecutionResult {
	result := ExecutionResult{TotalSteps: len(plan.Steps)}

	// One tree render shared by all create prompts. If it fails the steps
	// still run, just without structural context.
	tree, err := e.ws.RenderTree()
	if err != nil {
		tree = ""
	}

	for _, step := range plan.Steps {
		if err := e.executeStep(ctx, step, tree); err != nil {
			e.logger.StepFailed(step.Step, step.Action, err)
			result.FailedSteps = append(result.FailedSteps, step.Step)
			if !continueOnError {
				break
			}
			continue
		}
		result.SuccessCount++
	}

	return result
}

func (e *Executor) executeStep(ctx context.Context, step PlanStep, tree string) error {
	if len(step.Files) == 0 {
		e.logger.StepSucceeded(step.Step, step.Action, "no files to modify")
		return nil
	}

	for _, rel := range step.Files {
		target, err := e.resolve(rel)
		if err != nil {
			return err
		}

		if _, statErr := os.Stat(target); os.IsNotExist(statErr) {
			err = e.createFile(ctx, step, rel, target, tree)
		} else {
			err = e.modifyFile(ctx, step, rel, target)
		}
		if err != nil {
			return err
		}
	}

	e.logger.StepSucceeded(step.Step, step.Action, fmt.Sprintf("%d file(s) processed", len(step.Files)))
	return nil
}

// resolve confines plan paths to the workspace root.
func (e *Executor) resolve(rel string) (string, error) {
	target := filepath.Join(e.ws.Root, filepath.FromSlash(rel))
	relCheck, err := filepath.Rel(e.ws.Root, target)
	if err != nil || relCheck == ".." || strings.HasPrefix(relCheck, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("unsafe path outside workspace: %s", rel)
	}
	return target, nil
}

// createFile generates content for a path that did not exist at check time
// and writes it, overwriting unconditionally if something appeared at the
// path in between. Execution is single-threaded, so that race can only be
// caused by an external process; it is accepted, not guarded against.
func (e *Executor) createFile(ctx context.Context, step PlanStep, rel, target, tree string) error {
	prompts := buildCreatePrompts(step, rel, tree)
	content, err := e.generateContent(ctx, "create_file", prompts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	e.logger.FileWritten(rel, true, len(content))
	return nil
}

// modifyFile sends the current content as context and overwrites the file
// with the model's full rewrite. No diffing, no merge.
func (e *Executor) modifyFile(ctx context.Context, step PlanStep, rel, target string) error {
	current, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}

	prompts := buildModifyPrompts(step, rel, string(current))
	content, err := e.generateContent(ctx, "modify_file", prompts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	e.logger.FileWritten(rel, false, len(content))
	return nil
}

func (e *Executor) generateContent(ctx context.Context, purpose string, prompts PromptPair) (string, error) {
	start := time.Now()
	raw, err := e.client.Generate(ctx, prompts.System, prompts.User)
	e.logger.LLMExchange(purpose, e.client.Model(),
		len(prompts.System)+len(prompts.User), len(raw), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return stripCodeFences(raw), nil
}

// stripCodeFences removes a single wrapping fenced-code block if the model
// ignored the no-fences instruction: an opening triple-backtick with an
// optional language tag, and an optional closing triple-backtick.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	nl := strings.IndexByte(trimmed, '\n')
	if nl < 0 {
		// Nothing but the fence line itself.
		return ""
	}
	trimmed = trimmed[nl+1:]

	trimmed = strings.TrimRight(trimmed, " \t\n")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimRight(trimmed, " \t\n") + "\n"
}
