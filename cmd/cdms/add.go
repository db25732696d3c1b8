package main

import (
	"fmt"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newAddCmd(app *application) *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		Long: `Add validates the form and stores a new customer under the next id.
Every field is required; nothing is stored when any field is invalid.

Example:
  cdms add --first-name Ada --last-name Lovelace --email ada@example.com \
    --phone 5551234567 --state CA --amount 149.99`,
		Args: requireArgs(),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			customer, err := app.customers.CreateCustomer(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			response := dto.NewCustomerResponse(customer)
			if app.jsonOutput {
				return printJSON(cmd.OutOrStdout(), response)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created customer %d\n", response.ID)
			return nil
		}),
	}

	flags.register(cmd)
	return cmd
}
