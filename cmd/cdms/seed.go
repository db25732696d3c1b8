package main

import (
	"fmt"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *application) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the store with generated customers",
		Long: `Seed creates --count fake customers through the normal validation path.

Example:
  cdms seed --count 100`,
		Args: requireArgs(),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			created, err := app.seeder.Seed(cmd.Context(), count)
			if err != nil {
				return err
			}

			if app.jsonOutput {
				responses := make([]*dto.CustomerResponse, 0, len(created))
				for _, c := range created {
					responses = append(responses, dto.NewCustomerResponse(c))
				}
				return printJSON(cmd.OutOrStdout(), responses)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d customer(s)\n", len(created))
			return nil
		}),
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of customers to create")
	return cmd
}
