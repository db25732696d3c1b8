package main

import (
	"fmt"
	"io"

	apperrors "cdms/internal/errors"
	"cdms/internal/export"
	"cdms/internal/models"

	"github.com/spf13/cobra"
)

func newExportCmd(app *application) *cobra.Command {
	var (
		outPath   string
		region    string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "export customers|segments",
		Short: "Write the customer or segment table to a delimited text file",
		Long: `Export writes a table with a header row of its column names.

  customers  every customer, or those of --region, highest purchase first
  segments   the value segments of --region (required)

Example:
  cdms export customers --out customers.csv
  cdms export segments --region CA --out ca.tsv --delimiter tab`,
		Args:      requireArgs("customers|segments"),
		ValidArgs: []string{"customers", "segments"},
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return apperrors.New(apperrors.ValidationRequiredField, "out: is required")
			}
			delim, err := export.ParseDelimiter(delimiter)
			if err != nil {
				return apperrors.New(apperrors.ValidationInvalidFormat, "delimiter: "+err.Error())
			}
			opts := export.Options{Delimiter: delim}
			ctx := cmd.Context()

			var (
				rows  int
				write func(io.Writer) error
			)
			switch args[0] {
			case "customers":
				var customers []models.Customer
				if region != "" {
					customers, err = app.customers.ListCustomersByState(ctx, region)
				} else {
					customers, err = app.customers.ListCustomers(ctx)
				}
				if err != nil {
					return err
				}
				rows = len(customers)
				write = func(w io.Writer) error { return export.WriteCustomers(w, customers, opts) }
			case "segments":
				segments, err := app.segments.GetSegments(ctx, region)
				if err != nil {
					return err
				}
				rows = len(segments)
				write = func(w io.Writer) error { return export.WriteSegments(w, segments, opts) }
			default:
				return apperrors.New(apperrors.ValidationInvalidFormat,
					fmt.Sprintf("table: %q must be customers or segments", args[0]))
			}

			if err := export.WriteFile(outPath, write); err != nil {
				return apperrors.Wrap(apperrors.SystemExportError, err)
			}

			if app.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"path": outPath, "rows": rows})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d row(s) to %s\n", rows, outPath)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	cmd.Flags().StringVar(&region, "region", "", "state to export")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", `field delimiter, a single character or "tab"`)
	return cmd
}
