package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/iconcrate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the crate on disk is up to date",
	Long: `Render the crate in memory and compare it with the output directory.
Exits 1 when any file is missing or differs (CI mode).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addCrateFlags(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	config := buildGenerateConfig(&logger)

	result, err := iconcrate.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		format, err := outputFormat()
		if err != nil {
			return err
		}
		if err := iconcrate.WriteCheckOutput(os.Stdout, result, format, useColors()); err != nil {
			return err
		}
	}

	if result.Stale {
		os.Exit(1)
	}
	return nil
}
