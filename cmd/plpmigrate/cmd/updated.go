package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/config"
	"github.com/stonebridge-jewelers/plpmigrate/internal/report"
)

var (
	updatedExport  string
	updatedUpdated string
	updatedBaseURL string
	updatedLimit   int
	updatedSave    bool
	updatedOutput  string
	updatedSamples bool
)

// updatedCmd lists only the collections the migration actually changed.
var updatedCmd = &cobra.Command{
	Use:   "updated",
	Short: "List URLs of collections that were actually updated",
	Long: `Diff the original export against the updated one, keyed by handle, and
list storefront URLs only for collections whose title, Body HTML, or
subheading metafield changed.

Examples:
  plpmigrate updated
  plpmigrate updated --limit 25
  plpmigrate updated --save --output updated_collections_urls.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		exportPath := fallback(updatedExport, cfg.Files.Export)
		updatedPath := fallback(updatedUpdated, cfg.Files.Updated)
		baseURL := fallback(updatedBaseURL, cfg.Report.BaseURL)

		if err := requireFiles(exportPath, updatedPath); err != nil {
			return err
		}

		beforeTbl, err := catalog.Load(exportPath)
		if err != nil {
			return fmt.Errorf("load original export: %w", err)
		}
		afterTbl, err := catalog.Load(updatedPath)
		if err != nil {
			return fmt.Errorf("load updated export: %w", err)
		}

		diffs := report.Diff(beforeTbl.Index(catalog.ColHandle), afterTbl.Index(catalog.ColHandle), report.CompareFields())
		logger.Info().Int("updated", len(diffs)).Msg("compared exports")

		opts := report.URLListingOptions{
			BaseURL: baseURL,
			Limit:   updatedLimit,
		}
		if updatedSamples {
			opts.Samples = urlsSampleCount
		}
		report.WriteUpdatedListing(os.Stdout, diffs, opts)

		if updatedSave {
			f, err := os.Create(updatedOutput)
			if err != nil {
				logger.Error().Err(err).Str("file", updatedOutput).Msg("save failed")
				return fmt.Errorf("create %s: %w", updatedOutput, err)
			}
			defer func() { _ = f.Close() }()
			saved := opts
			saved.Limit = 0
			report.WriteUpdatedListing(f, diffs, saved)
			logger.Info().Str("file", updatedOutput).Msg("saved updated listing")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updatedCmd)

	updatedCmd.Flags().StringVar(&updatedExport, "export", "", "original catalog export CSV (default from SHOPIFY_EXPORT_FILE)")
	updatedCmd.Flags().StringVar(&updatedUpdated, "updated", "", "updated catalog export CSV (default from SHOPIFY_UPDATED_FILE)")
	updatedCmd.Flags().StringVar(&updatedBaseURL, "base-url", "", "storefront base URL (default from SHOP_BASE_URL)")
	updatedCmd.Flags().IntVar(&updatedLimit, "limit", 0, "cap the number of collections displayed (0 = all)")
	updatedCmd.Flags().BoolVar(&updatedSave, "save", false, "save the full listing to a text file")
	updatedCmd.Flags().StringVar(&updatedOutput, "output", "updated_collections_urls.txt", "listing path used with --save")
	updatedCmd.Flags().BoolVar(&updatedSamples, "samples", false, "append a bare-URL sample block for manual testing")
}
