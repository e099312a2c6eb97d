package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/yacobolo/iconcrate"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate the crate when simple-icons has a newer release",
	Long: `Compare the latest simple-icons release on npm with the newest crate
on crates.io. When upstream is ahead (or the crate was never published) the
crate is generated with the upstream version; otherwise nothing happens.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSync,
}

func init() {
	addCrateFlags(syncCmd)

	f := syncCmd.Flags()
	f.String("npm-package", "", "npm package to track (default: "+iconcrate.DefaultNPMPackage+")")
	f.String("crate", "", "Published crate to compare against (default: --crate-name)")
	f.String("npm-registry", "", "npm registry base URL")
	f.String("crates-registry", "", "crates.io API base URL")
	f.Int("retries", defaultRetries, "Retries for failed registry requests")
	f.Duration("timeout", defaultTimeout, "Timeout per registry request")
	f.Bool("dry-run", false, "Report the decision without generating")
}

func runSync(cmd *cobra.Command, _ []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	config := buildGenerateConfig(&logger)
	client := buildRegistryClient(&logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := iconcrate.Sync(ctx, client, config, buildSyncOptions(config.CrateName))
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	return iconcrate.WriteSyncOutput(os.Stdout, result, format, useColors())
}
