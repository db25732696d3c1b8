package main

import (
	"fmt"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newUpdateCmd(app *application) *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a customer",
		Long: `Update replaces the fields of an existing customer. Fields without a flag
keep their current value. The result is validated like a new record.

Example:
  cdms update 7 --state NV --amount 900`,
		Args: requireArgs("ID"),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			existing, err := app.customers.GetCustomer(ctx, id)
			if err != nil {
				return err
			}

			current := dto.NewCustomerResponse(existing)
			req := &dto.CustomerRequest{
				FirstName:      current.FirstName,
				LastName:       current.LastName,
				Email:          current.Email,
				Phone:          current.Phone,
				State:          current.State,
				PurchaseAmount: current.PurchaseAmount,
			}
			flags.overlay(cmd, req)

			customer, err := app.customers.UpdateCustomer(ctx, id, req)
			if err != nil {
				return err
			}

			response := dto.NewCustomerResponse(customer)
			if app.jsonOutput {
				return printJSON(cmd.OutOrStdout(), response)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated customer %d\n", response.ID)
			return nil
		}),
	}

	flags.register(cmd)
	return cmd
}
