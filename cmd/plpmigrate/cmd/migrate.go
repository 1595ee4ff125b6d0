package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/config"
	"github.com/stonebridge-jewelers/plpmigrate/internal/content"
)

var (
	migrateContent string
	migrateExport  string
	migrateOutput  string
)

// migrateCmd runs the actual content migration.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Merge PLP content into a catalog export",
	Long: `Load the PLP content CSV and the catalog export CSV, match content to
collections by handle, and write an updated export.

For each matched collection the title is replaced, a formatted Body HTML
description is generated, and the subheading metafield is set, each only
when the corresponding source field is non-empty. Unmatched collections
pass through unchanged.

Examples:
  plpmigrate migrate
  plpmigrate migrate --content new-plp-content.csv --export shopify-categories-export.csv
  plpmigrate migrate --output shopify-categories-updated.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		contentPath := fallback(migrateContent, cfg.Files.Content)
		exportPath := fallback(migrateExport, cfg.Files.Export)
		outputPath := fallback(migrateOutput, cfg.Files.Updated)

		if err := requireFiles(contentPath, exportPath); err != nil {
			return err
		}

		sources, rows, err := content.LoadSources(contentPath, logger)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		logger.Info().Int("rows", rows).Int("handles", len(sources)).Str("file", contentPath).Msg("loaded PLP content")

		tbl, err := catalog.Load(exportPath)
		if err != nil {
			return fmt.Errorf("load export: %w", err)
		}
		logger.Info().Int("rows", len(tbl.Rows)).Str("file", exportPath).Msg("loaded catalog export")

		merged, stats := content.Merge(sources, tbl, logger)

		printMigrationStats(rows, len(sources), len(tbl.Rows), stats)

		if err := catalog.Save(outputPath, merged); err != nil {
			logger.Error().Err(err).Str("file", outputPath).Msg("save failed")
			return fmt.Errorf("save updated export: %w", err)
		}
		logger.Info().Int("rows", len(merged.Rows)).Str("file", outputPath).Msg("saved updated export")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateContent, "content", "", "PLP content CSV (default from PLP_CONTENT_FILE)")
	migrateCmd.Flags().StringVar(&migrateExport, "export", "", "catalog export CSV (default from SHOPIFY_EXPORT_FILE)")
	migrateCmd.Flags().StringVar(&migrateOutput, "output", "", "updated export path (default from SHOPIFY_UPDATED_FILE)")
}

func printMigrationStats(contentRows, handles, exportRows int, stats content.Stats) {
	fmt.Println("==================================================")
	fmt.Println("MIGRATION STATISTICS")
	fmt.Println("==================================================")
	fmt.Printf("Content entries loaded:   %d\n", contentRows)
	fmt.Printf("Handle mappings created:  %d\n", handles)
	fmt.Printf("Collections loaded:       %d\n", exportRows)
	fmt.Printf("Collections updated:      %d\n", stats.Updated)
	fmt.Printf("No match found:           %d\n", stats.Unmatched)
	if handles > 0 {
		fmt.Printf("Match rate:               %.1f%%\n", float64(stats.Updated)/float64(handles)*100)
	}
	fmt.Println("==================================================")
}
