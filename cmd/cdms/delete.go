package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *application) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a customer",
		Long: `Delete removes one customer after asking for confirmation.
Use --yes to skip the prompt. Deleted ids are never reused.

Example:
  cdms delete 7
  cdms delete 7 --yes`,
		Args: requireArgs("ID"),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !yes {
				customer, err := app.customers.GetCustomer(ctx, id)
				if err != nil {
					return err
				}
				if !confirm(cmd, fmt.Sprintf("Delete customer %d (%s)? [y/N]: ", id, customer.FullName())) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			if err := app.customers.DeleteCustomer(ctx, id); err != nil {
				return err
			}

			if app.jsonOutput {
				return printJSON(out, map[string]interface{}{"deleted": id})
			}
			fmt.Fprintf(out, "Deleted customer %d\n", id)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

// confirm asks prompt on the command output and reads a yes/no answer
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
