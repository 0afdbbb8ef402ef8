package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nishant/yojana/internal/observability"
	"github.com/nishant/yojana/internal/planner"
)

func newApplyCmd() *cobra.Command {
	var (
		flagYes             bool
		flagContinueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "apply \"<change request>\"",
		Short: "Generate a plan and apply it to the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.PrintBanner()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			plan, err := generateAndShow(cmd, a, args[0])
			if err != nil {
				return err
			}
			planID := savePlan(a, args[0], plan)

			if !flagYes && !confirm("Apply this plan?") {
				fmt.Println("Aborted.")
				return nil
			}

			exec := planner.NewExecutor(a.client, a.ws, a.logger)
			result := exec.ExecutePlan(cmd.Context(), plan, flagContinueOnError)

			if planID != "" {
				if err := a.history.SaveExecution(planID, result); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not save execution to history: %v\n", err)
				}
			}

			fmt.Printf("\nExecution finished: %d/%d steps succeeded.\n", result.SuccessCount, result.TotalSteps)
			if len(result.FailedSteps) > 0 {
				return fmt.Errorf("steps failed: %v", result.FailedSteps)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "apply without asking for confirmation")
	cmd.Flags().BoolVar(&flagContinueOnError, "continue-on-error", false, "keep executing remaining steps after a step fails")
	return cmd
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
