package main

import (
	"fmt"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "stats REGION",
		Short: "Show customer count and average purchase of a region",
		Long: `Stats counts the customers whose state equals REGION exactly and averages
their purchase amounts, rounded to two places.

Example:
  cdms stats CA`,
		Args: requireArgs("REGION"),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			stats, err := app.segments.GetRegionStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			response := dto.NewStatsResponse(stats)
			out := cmd.OutOrStdout()
			if app.jsonOutput {
				return printJSON(out, response)
			}
			fmt.Fprintf(out, "Region: %s\n", response.State)
			fmt.Fprintf(out, "Total customers: %d\n", response.TotalCustomers)
			fmt.Fprintf(out, "Average purchase: %s\n", response.AveragePurchase)
			return nil
		}),
	}
}
