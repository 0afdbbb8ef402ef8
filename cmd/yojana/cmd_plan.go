package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nishant/yojana/internal/planner"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan \"<change request>\"",
		Short: "Generate an execution plan without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			plan, err := generateAndShow(cmd, a, args[0])
			if err != nil {
				return err
			}
			savePlan(a, args[0], plan)
			return nil
		},
	}
}

// generateAndShow runs plan generation and prints either the plan or, when
// parsing failed, the raw model output so the user can recover manually.
func generateAndShow(cmd *cobra.Command, a *app, request string) (*planner.ExecutionPlan, error) {
	gen := planner.NewGenerator(a.client, a.ws, a.logger)
	plan, raw, err := gen.Generate(cmd.Context(), request)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		fmt.Println("The model response did not contain a usable plan. Raw output:")
		fmt.Println()
		fmt.Println(raw)
		return nil, fmt.Errorf("no plan could be parsed from the model response")
	}

	printPlan(plan)
	return plan, nil
}

// savePlan persists the plan; history failures are reported but never fail
// the command.
func savePlan(a *app, request string, plan *planner.ExecutionPlan) string {
	id, err := a.history.SavePlan(request, planner.ClassifyIntent(request), plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save plan to history: %v\n", err)
		return ""
	}
	return id
}

func printPlan(plan *planner.ExecutionPlan) {
	fmt.Printf("Plan: %s\n", plan.Summary)
	fmt.Printf("Estimated complexity: %s\n\n", plan.EstimatedComplexity)

	for _, step := range plan.Steps {
		fmt.Printf("  %d. %s\n", step.Step, step.Action)
		if step.Description != "" {
			fmt.Printf("     %s\n", step.Description)
		}
		if len(step.Files) > 0 {
			fmt.Printf("     files: %s\n", strings.Join(step.Files, ", "))
		}
	}

	if len(plan.Prerequisites) > 0 {
		fmt.Println("\nPrerequisites:")
		for _, p := range plan.Prerequisites {
			fmt.Printf("  - %s\n", p)
		}
	}
	if len(plan.Risks) > 0 {
		fmt.Println("\nRisks:")
		for _, r := range plan.Risks {
			fmt.Printf("  - %s\n", r)
		}
	}
}
