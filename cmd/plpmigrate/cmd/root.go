package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stonebridge-jewelers/plpmigrate/internal/config"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "plpmigrate",
		Short: "PLP content migration toolkit",
		Long: `plpmigrate moves Product Listing Page marketing copy from a legacy
platform export into a destination catalog export. Entries are matched by a
handle derived from each content row's URL; matching collections get a new
title, a formatted Body HTML description, and a subheading metafield.

Companion commands validate the rewritten export, analyze migration
coverage, spot-check individual collections, and list collection URLs for
manual review.`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: console)")
}

// newLogger builds the command logger from config with global flag
// overrides applied.
func newLogger(cfg config.Config) zerolog.Logger {
	lc := cfg.Logging
	if logLevel != "" {
		lc.Level = logLevel
	}
	if logFormat != "" {
		lc.Format = logFormat
	}
	return config.NewLogger(lc)
}

// fallback returns the flag value when set, the config default otherwise.
func fallback(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// requireFiles verifies every input exists before any processing starts.
// A missing file aborts the command with a non-zero exit.
func requireFiles(paths ...string) error {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing input file(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
