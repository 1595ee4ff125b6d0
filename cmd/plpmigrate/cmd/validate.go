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
	validateContent string
	validateExport  string
	validateUpdated string
	validateLimit   int
	validateSave    bool
	validateReport  string
)

// validateCmd compares the original and updated exports and reports what
// the migration changed.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a migration by diffing the original and updated exports",
	Long: `Compare the original catalog export against the updated one, keyed by
collection ID, and list every record whose title, Body HTML, or subheading
metafield was rewritten.

Examples:
  plpmigrate validate
  plpmigrate validate --limit 25
  plpmigrate validate --save --report validation_report.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		contentPath := fallback(validateContent, cfg.Files.Content)
		exportPath := fallback(validateExport, cfg.Files.Export)
		updatedPath := fallback(validateUpdated, cfg.Files.Updated)
		limit := validateLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.Report.Limit
		}

		if err := requireFiles(exportPath, updatedPath, contentPath); err != nil {
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
		sources, rows, err := content.LoadSources(contentPath, logger)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		before := beforeTbl.Index(catalog.ColID)
		after := afterTbl.Index(catalog.ColID)
		logger.Info().Int("original", len(before)).Int("updated", len(after)).Msg("loaded exports")

		diffs := report.Diff(before, after, report.CompareFields())
		logger.Info().Int("changed", len(diffs)).Msg("analyzed changes")

		sum := report.ValidationSummary{
			TotalCollections: len(after),
			ContentEntries:   rows,
			HandleMappings:   len(sources),
		}
		report.WriteValidation(os.Stdout, diffs, sum, limit)

		if validateSave {
			if err := report.SaveChangesCSV(validateReport, diffs); err != nil {
				logger.Error().Err(err).Str("file", validateReport).Msg("save report failed")
				return err
			}
			logger.Info().Str("file", validateReport).Msg("saved change report")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateContent, "content", "", "PLP content CSV (default from PLP_CONTENT_FILE)")
	validateCmd.Flags().StringVar(&validateExport, "export", "", "original catalog export CSV (default from SHOPIFY_EXPORT_FILE)")
	validateCmd.Flags().StringVar(&validateUpdated, "updated", "", "updated catalog export CSV (default from SHOPIFY_UPDATED_FILE)")
	validateCmd.Flags().IntVar(&validateLimit, "limit", 0, "cap the number of change listings shown (default from REPORT_LIMIT)")
	validateCmd.Flags().BoolVar(&validateSave, "save", false, "save a detailed per-record change report as CSV")
	validateCmd.Flags().StringVar(&validateReport, "report", "validation_report.csv", "change report path used with --save")
}
