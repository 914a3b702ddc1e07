package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcscanner/itemsync/pkg/logging"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand(app Application) *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:     "fetch",
		GroupID: "core",
		Short:   "Download the upstream dataset without merging",
		Long: `Fetch downloads every item file from the upstream dataset into the
local cache without touching the catalog. Useful for warming the cache
before offline merge runs.`,
		Example: `  itemsync fetch             # Download into the cache
  itemsync fetch --no-cache  # Re-download everything`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.Logger()
			ctx := logging.WithLogger(cmd.Context(), logger)

			client, err := app.Client()
			if err != nil {
				return err
			}

			var opts []sources.Option
			if noCache {
				opts = append(opts, sources.WithNoCache())
			}

			raw, err := client.Fetch(ctx, opts...)
			if err != nil {
				return err
			}

			logger.Info().Int("items", len(raw)).Msg("Fetch complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "force re-download of all items (ignore cache)")

	return cmd
}
