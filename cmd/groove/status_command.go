package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon health",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.newClient()
			if err != nil {
				return err
			}
			health, err := api.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("daemon unreachable: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Status", health.Status},
					{"Database", health.Database},
				},
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
