package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishant/yojana/internal/workspace"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the workspace tree the planner sees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspace.New(flagRoot)
			if err != nil {
				return err
			}
			tree, err := ws.RenderTree()
			if err != nil {
				return err
			}
			fmt.Print(tree)
			return nil
		},
	}
}
