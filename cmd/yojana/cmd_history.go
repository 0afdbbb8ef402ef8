package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var flagLimit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated plans and their execution outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := loadConfigAt(cfgPath)
			if err != nil {
				return err
			}
			history, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer history.Close()

			records, err := history.ListPlans(flagLimit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No plans recorded yet.")
				return nil
			}

			for _, rec := range records {
				fmt.Printf("%s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"), rec.ID)
				fmt.Printf("  request: %s\n", rec.Request)
				fmt.Printf("  intent:  %s | %d step(s), %s complexity\n", rec.Intent, rec.StepCount, rec.Complexity)
				if rec.Executed {
					fmt.Printf("  applied: %d/%d succeeded", rec.SuccessCount, rec.TotalSteps)
					if len(rec.FailedSteps) > 0 {
						fmt.Printf(", failed steps %v", rec.FailedSteps)
					}
					fmt.Println()
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "maximum number of plans to list")
	return cmd
}
