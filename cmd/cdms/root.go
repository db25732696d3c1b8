package main

import (
	"cdms/internal/middleware"

	"github.com/spf13/cobra"
)

const version = "v1.0.0"

func newRootCmd(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:   "cdms",
		Short: "cdms manages customer records and value segments",
		Long: `cdms is a single-user customer database. It stores customer records in a
local SQLite file, searches them, and reports per-region purchase statistics
and a four-way High/Medium/Low value segmentation.

The store location and behavior are configured through the environment
(CDMS_DB_PATH, CDMS_SEGMENT_STRATEGY, LOG_LEVEL, ...) or a .env file.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: middleware.Chain(func(cmd *cobra.Command, args []string) error {
			return app.open()
		}, middleware.RequestID()),
	}

	root.PersistentFlags().BoolVar(&app.jsonOutput, "json", false, "output as JSON")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return asUserError(err)
	})

	root.AddCommand(newListCmd(app))
	root.AddCommand(newAddCmd(app))
	root.AddCommand(newUpdateCmd(app))
	root.AddCommand(newDeleteCmd(app))
	root.AddCommand(newSearchCmd(app))
	root.AddCommand(newNextIDCmd(app))
	root.AddCommand(newStatsCmd(app))
	root.AddCommand(newSegmentsCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newSeedCmd(app))

	return root
}
