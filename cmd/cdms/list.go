package main

import (
	"fmt"

	"cdms/internal/dto"
	"cdms/internal/models"

	"github.com/spf13/cobra"
)

func newListCmd(app *application) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers, highest purchase first",
		Long: `List prints every customer ordered by purchase amount, highest first.

Use --region to show only the customers of one state.

Example:
  cdms list
  cdms list --region CA
  cdms list --json`,
		Args: requireArgs(),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				customers []models.Customer
				err       error
			)
			if region != "" {
				customers, err = app.customers.ListCustomersByState(ctx, region)
			} else {
				customers, err = app.customers.ListCustomers(ctx)
			}
			if err != nil {
				return err
			}

			nextID, err := app.customers.NextID(ctx)
			if err != nil {
				return err
			}

			response := &dto.CustomerListResponse{
				Customers: customerResponses(customers),
				Total:     len(customers),
				NextID:    nextID,
			}

			out := cmd.OutOrStdout()
			if app.jsonOutput {
				return printJSON(out, response)
			}
			printCustomerTable(out, response.Customers)
			fmt.Fprintf(out, "Total: %d customer(s)\n", response.Total)
			fmt.Fprintf(out, "Next ID: %d\n", response.NextID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&region, "region", "", "only list customers of this state")
	return cmd
}
