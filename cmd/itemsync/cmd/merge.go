package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcscanner/itemsync"
	"github.com/arcscanner/itemsync/pkg/constants"
	"github.com/arcscanner/itemsync/pkg/logging"
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// mergeFlags holds the merge command's flag values.
type mergeFlags struct {
	dryRun  bool
	noCache bool
	catalog string
	rules   string
	fromDir string
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(app Application) *cobra.Command {
	flags := &mergeFlags{}

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge upstream item data into the local catalog",
		Long: `Merge fetches the community item dataset and reconciles it with the
local catalog:

1. Download all item files (cached on disk between runs)
2. Build an id-to-name lookup for recycle output references
3. Match each upstream item against the catalog by normalized name,
   falling back to fuzzy matching for renamed items
4. Preserve curator fields for matched items, default them for new ones
5. Write the merged catalog sorted by name`,
		Example: `  itemsync merge                     # Merge into items.json
  itemsync merge --dry-run           # Preview without writing
  itemsync merge --no-cache          # Force fresh downloads
  itemsync merge --from-dir ./items  # Merge from a local dataset checkout`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd, app, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "preview changes without writing the catalog")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "force re-download of all items (ignore cache)")
	cmd.Flags().StringVar(&flags.catalog, "catalog", "", "local catalog file (default items.json)")
	cmd.Flags().StringVar(&flags.rules, "rules", "", "YAML file overriding category and default rules")
	cmd.Flags().StringVar(&flags.fromDir, "from-dir", "", "read item files from a local directory instead of GitHub")

	return cmd
}

// runMerge executes the merge pipeline and prints the report.
func runMerge(cmd *cobra.Command, app Application, flags *mergeFlags) error {
	logger := app.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)

	var opts []itemsync.Option
	if flags.catalog != "" {
		opts = append(opts, itemsync.WithCatalogPath(flags.catalog))
	}
	if flags.fromDir != "" {
		opts = append(opts, itemsync.WithSource(sources.NewDirectory(flags.fromDir)))
	}
	if flags.rules != "" {
		rules, err := reconcile.LoadConfig(flags.rules)
		if err != nil {
			return err
		}
		opts = append(opts, itemsync.WithRules(rules))
	}

	client, err := app.Client(opts...)
	if err != nil {
		return err
	}

	var syncOpts []itemsync.SyncOption
	if flags.dryRun {
		syncOpts = append(syncOpts, itemsync.WithDryRun())
	}
	if flags.noCache {
		syncOpts = append(syncOpts, itemsync.WithNoCache())
	}

	result, err := client.Sync(ctx, syncOpts...)
	if err != nil {
		return err
	}

	printReport(os.Stdout, result)
	return nil
}

// printReport renders the merge report to w.
func printReport(w io.Writer, result *itemsync.Result) {
	fmt.Fprintln(w, "=== Merge Report ===")
	fmt.Fprintf(w, "Source:  %s\n", constants.UpstreamRepo)
	fmt.Fprintf(w, "Updated: %d items (existing with new data)\n", result.Stats.Updated)
	fmt.Fprintf(w, "Added:   %d items (new)\n", result.Stats.Added)
	fmt.Fprintf(w, "Skipped: %d items (no name)\n", result.Stats.Skipped)
	fmt.Fprintf(w, "Total:   %d items\n", result.Stats.Total)

	if result.DryRun {
		fmt.Fprintf(w, "\n[DRY RUN] Would write %d items\n", result.Stats.Total)
		if len(result.NewItems) > 0 {
			fmt.Fprintln(w, "\nSample of new items:")
			sample := result.NewItems
			if len(sample) > constants.DryRunSampleSize {
				sample = sample[:constants.DryRunSampleSize]
			}
			for _, item := range sample {
				fmt.Fprintf(w, "  - %s (%s, %s)\n", item.Name, item.Category, item.Rarity)
			}
		}
	}
}
