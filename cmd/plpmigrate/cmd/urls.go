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
	urlsExport  string
	urlsBaseURL string
	urlsLimit   int
	urlsAll     bool
	urlsSave    bool
	urlsOutput  string
	urlsSamples bool
)

// urlsSampleCount matches the legacy sample block size.
const urlsSampleCount = 10

// urlsCmd lists storefront URLs for every collection in an export.
var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "List collection URLs from an export",
	Long: `Derive {base-url}/collections/{handle} for every collection in an export
and print the listing. Duplicate handles are collapsed to their first
occurrence unless --all is given.

Examples:
  plpmigrate urls
  plpmigrate urls --limit 50
  plpmigrate urls --save --output collections_urls.txt
  plpmigrate urls --all --samples`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		exportPath := fallback(urlsExport, cfg.Files.Updated)
		baseURL := fallback(urlsBaseURL, cfg.Report.BaseURL)

		if err := requireFiles(exportPath); err != nil {
			return err
		}

		tbl, err := catalog.Load(exportPath)
		if err != nil {
			return fmt.Errorf("load export: %w", err)
		}
		listing := report.Collections(tbl, baseURL)
		logger.Info().Int("entries", len(listing.All)).Int("unique", len(listing.Unique)).Msg("loaded collections")

		opts := report.URLListingOptions{
			BaseURL:    baseURL,
			Limit:      urlsLimit,
			UniqueOnly: !urlsAll,
		}
		if urlsSamples {
			opts.Samples = urlsSampleCount
		}
		report.WriteURLListing(os.Stdout, listing, opts)

		if urlsSave {
			f, err := os.Create(urlsOutput)
			if err != nil {
				logger.Error().Err(err).Str("file", urlsOutput).Msg("save failed")
				return fmt.Errorf("create %s: %w", urlsOutput, err)
			}
			defer func() { _ = f.Close() }()
			saved := opts
			saved.Limit = 0
			report.WriteURLListing(f, listing, saved)
			logger.Info().Str("file", urlsOutput).Msg("saved URL listing")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlsCmd)

	urlsCmd.Flags().StringVar(&urlsExport, "export", "", "catalog export CSV (default from SHOPIFY_UPDATED_FILE)")
	urlsCmd.Flags().StringVar(&urlsBaseURL, "base-url", "", "storefront base URL (default from SHOP_BASE_URL)")
	urlsCmd.Flags().IntVar(&urlsLimit, "limit", 0, "cap the number of URLs displayed (0 = all)")
	urlsCmd.Flags().BoolVar(&urlsAll, "all", false, "show every row, including duplicate handles")
	urlsCmd.Flags().BoolVar(&urlsSave, "save", false, "save the full listing to a text file")
	urlsCmd.Flags().StringVar(&urlsOutput, "output", "collections_urls.txt", "listing path used with --save")
	urlsCmd.Flags().BoolVar(&urlsSamples, "samples", false, "append a bare-URL sample block for manual testing")
}
