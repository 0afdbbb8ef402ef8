package planner

import (
	"context"
	"time"

	"github.com/nishant/yojana/internal/llm"
	"github.com/nishant/yojana/internal/observability"
	"github.com/nishant/yojana/internal/workspace"
)

// Generator produces execution plans from change requests.
type Generator struct {
	client llm.Client
	ws     *workspace.Workspace
	logger *observability.Logger
}

func NewGenerator(client llm.Client, ws *workspace.Workspace, logger *observability.Logger) *Generator {
	return &Generator{client: client, ws: ws, logger: logger}
}

// Generate builds the prompts, calls the upstream once, and parses the
// response. The raw model output is always returned so the caller can show
// it when no plan could be recovered (plan == nil, err == nil). Errors from
// prompt building or the upstream abort the whole flow.
func (g *Generator) Generate(ctx context.Context, userInput string) (*ExecutionPlan, string, error) {
	refs := workspace.ParseFileRefs(userInput)
	g.logger.PlanRequested(userInput, ClassifyIntent(userInput))

	prompts, err := BuildPlanPrompts(userInput, refs, g.ws)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	raw, err := g.client.Generate(ctx, prompts.System, prompts.User)
	g.logger.LLMExchange("plan", g.client.Model(),
		len(prompts.System)+len(prompts.User), len(raw), time.Since(start), err)
	if err != nil {
		return nil, "", err
	}

	plan := ParsePlan(raw)
	if plan == nil {
		g.logger.PlanRejected(len(raw))
		return nil, raw, nil
	}

	g.logger.PlanGenerated(plan.Summary, len(plan.Steps), plan.EstimatedComplexity)
	return plan, raw, nil
}
