package main

import (
	"fmt"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newNextIDCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Show the id the next customer will receive",
		Args:  requireArgs(),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			last, err := app.customers.LastAssignedID(ctx)
			if err != nil {
				return err
			}

			response := &dto.NextIDResponse{LastAssignedID: last, NextID: last + 1}
			if app.jsonOutput {
				return printJSON(cmd.OutOrStdout(), response)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Next ID: %d (last assigned: %d)\n", response.NextID, response.LastAssignedID)
			return nil
		}),
	}
}
