package main

import (
	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

func newSegmentsCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "segments REGION",
		Short: "Classify the customers of a region by purchase quartile",
		Long: `Segments ranks the customers of REGION by purchase amount and splits them
into four near-equal groups. The top group is High Value, the middle two are
Medium Value and the bottom group is Low Value.

Example:
  cdms segments CA
  cdms segments CA --json`,
		Args: requireArgs("REGION"),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			segments, err := app.segments.GetSegments(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.jsonOutput {
				return printJSON(cmd.OutOrStdout(), &dto.SegmentResponse{
					State:    args[0],
					Strategy: app.segments.Strategy(),
					Segments: segments,
				})
			}
			printSegmentTable(cmd.OutOrStdout(), segments)
			return nil
		}),
	}
}
