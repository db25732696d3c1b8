package main

import (
	"fmt"
	"strconv"
	"strings"

	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Find customers containing a term",
		Long: `Search prints the ids of every customer with a field that contains TERM,
ignoring case. All fields are searched, including id, phone and amount.

Example:
  cdms search smith
  cdms search 555`,
		Args: requireArgs("TERM"),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			term := args[0]
			ids, err := app.customers.SearchCustomers(cmd.Context(), term)
			if err != nil {
				return err
			}

			response := &dto.SearchResponse{Term: term, IDs: ids, Total: len(ids)}
			out := cmd.OutOrStdout()
			if app.jsonOutput {
				return printJSON(out, response)
			}
			if len(ids) == 0 {
				fmt.Fprintln(out, "No matching customers.")
				return nil
			}

			parts := make([]string, 0, len(ids))
			for _, id := range ids {
				parts = append(parts, strconv.FormatUint(uint64(id), 10))
			}
			fmt.Fprintf(out, "Matching customer ids: %s\n", strings.Join(parts, ", "))
			return nil
		}),
	}
}
