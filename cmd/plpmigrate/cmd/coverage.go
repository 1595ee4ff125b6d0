package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/config"
	"github.com/stonebridge-jewelers/plpmigrate/internal/content"
	"github.com/stonebridge-jewelers/plpmigrate/internal/report"
)

var (
	coverageContent string
	coverageExport  string
	coverageUpdated string
	coverageBaseURL string
	coverageLimit   int
	coverageSave    bool
	coverageReport  string
)

// coverageCmd analyzes how much of the source content landed in the
// destination catalog.
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Analyze migration coverage",
	Long: `Compare the original and updated exports keyed by handle and classify
every collection: updated, not updated with matching content available, or
not updated with no matching content. Source content whose handle matches
no collection at all is reported as orphaned.

Examples:
  plpmigrate coverage
  plpmigrate coverage --save-report --report coverage_report.txt
  plpmigrate coverage --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		contentPath := fallback(coverageContent, cfg.Files.Content)
		exportPath := fallback(coverageExport, cfg.Files.Export)
		updatedPath := fallback(coverageUpdated, cfg.Files.Updated)
		baseURL := fallback(coverageBaseURL, cfg.Report.BaseURL)
		limit := coverageLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.Report.Limit
		}

		if err := requireFiles(contentPath, exportPath, updatedPath); err != nil {
			return err
		}

		sources, _, err := content.LoadSources(contentPath, logger)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		beforeTbl, err := catalog.Load(exportPath)
		if err != nil {
			return fmt.Errorf("load original export: %w", err)
		}
		afterTbl, err := catalog.Load(updatedPath)
		if err != nil {
			return fmt.Errorf("load updated export: %w", err)
		}

		cov := report.Analyze(sources, beforeTbl.Index(catalog.ColHandle), afterTbl.Index(catalog.ColHandle), baseURL)
		logger.Info().
			Int("updated", len(cov.Updated)).
			Int("not_updated", len(cov.NotUpdated)).
			Int("orphaned", len(cov.Orphaned)).
			Msg("coverage analyzed")

		report.WriteCoverage(os.Stdout, cov, limit)

		if coverageSave {
			f, err := os.Create(coverageReport)
			if err != nil {
				logger.Error().Err(err).Str("file", coverageReport).Msg("save report failed")
				return fmt.Errorf("create report %s: %w", coverageReport, err)
			}
			defer func() { _ = f.Close() }()
			report.WriteCoverage(f, cov, 0)
			logger.Info().Str("file", coverageReport).Msg("saved coverage report")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coverageCmd)

	coverageCmd.Flags().StringVar(&coverageContent, "content", "", "PLP content CSV (default from PLP_CONTENT_FILE)")
	coverageCmd.Flags().StringVar(&coverageExport, "export", "", "original catalog export CSV (default from SHOPIFY_EXPORT_FILE)")
	coverageCmd.Flags().StringVar(&coverageUpdated, "updated", "", "updated catalog export CSV (default from SHOPIFY_UPDATED_FILE)")
	coverageCmd.Flags().StringVar(&coverageBaseURL, "base-url", "", "storefront base URL (default from SHOP_BASE_URL)")
	coverageCmd.Flags().IntVar(&coverageLimit, "limit", 0, "cap on not-updated/orphaned listings shown (default from REPORT_LIMIT)")
	coverageCmd.Flags().BoolVar(&coverageSave, "save-report", false, "save the full analysis to a text file")
	coverageCmd.Flags().StringVar(&coverageReport, "report", "coverage_report.txt", "report path used with --save-report")
}
