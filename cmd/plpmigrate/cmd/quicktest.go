package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/config"
	"github.com/stonebridge-jewelers/plpmigrate/internal/quicktest"
	"github.com/stonebridge-jewelers/plpmigrate/internal/report"
)

var (
	quicktestExpect string
	quicktestExport string
)

// quicktestCmd spot-checks a handful of collections after a migration.
var quicktestCmd = &cobra.Command{
	Use:   "quicktest",
	Short: "Spot-check migrated collections against expectations",
	Long: `Check specific collections in the updated export against a YAML file of
expectations. Each check names a handle and the title it should carry; a
collection passes when the title matches or when new Body HTML / subheading
content is present. Generated Body HTML is additionally parsed to confirm
the expected container and heading structure.

Expectations file:
  checks:
    - handle: tacori
      title: Tacori Engagement Rings
    - handle: breitling
      title: Breitling Watches

Examples:
  plpmigrate quicktest --expect checks.yaml
  plpmigrate quicktest --expect checks.yaml --export shopify-categories-updated.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		exportPath := fallback(quicktestExport, cfg.Files.Updated)

		if err := requireFiles(quicktestExpect, exportPath); err != nil {
			return err
		}

		checks, err := quicktest.LoadChecks(quicktestExpect)
		if err != nil {
			return err
		}
		tbl, err := catalog.Load(exportPath)
		if err != nil {
			return fmt.Errorf("load export: %w", err)
		}

		results := quicktest.Run(checks, tbl.Index(catalog.ColHandle))
		logger.Info().Int("checks", len(results)).Msg("ran spot checks")

		printQuicktestResults(results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quicktestCmd)

	quicktestCmd.Flags().StringVar(&quicktestExpect, "expect", "quicktest.yaml", "YAML expectations file")
	quicktestCmd.Flags().StringVar(&quicktestExport, "export", "", "updated catalog export CSV (default from SHOPIFY_UPDATED_FILE)")
}

func printQuicktestResults(results []quicktest.Result) {
	fmt.Println("============================================================")
	fmt.Println("QUICK TEST RESULTS")
	fmt.Println("============================================================")

	passed, failed := 0, 0
	for _, r := range results {
		if !r.Found {
			fmt.Printf("FAIL %s: collection not found\n\n", r.Check.Handle)
			failed++
			continue
		}
		if r.Passed() {
			fmt.Printf("ok   %s\n", r.Check.Handle)
			passed++
		} else {
			fmt.Printf("FAIL %s: no content updated\n", r.Check.Handle)
			failed++
		}
		fmt.Printf("     Title:      %s\n", r.Title)
		fmt.Printf("     Expected:   %s\n", r.Check.Title)
		fmt.Printf("     Body HTML:  %s\n", describeBody(r))
		fmt.Printf("     Subheading: %s\n", yesNo(r.HasSubheading))
		if r.HasBodyHTML {
			fmt.Printf("     Preview:    %s\n", report.Preview(r.Preview, 100))
		}
		fmt.Println()
	}

	fmt.Println("============================================================")
	fmt.Printf("SUMMARY: %d passed, %d failed\n", passed, failed)
	fmt.Println("============================================================")
}

func describeBody(r quicktest.Result) string {
	if !r.HasBodyHTML {
		return "No"
	}
	if r.BodyHTMLValid {
		return "Yes"
	}
	return "Yes (unexpected structure)"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
