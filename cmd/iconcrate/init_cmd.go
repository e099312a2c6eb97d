package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .iconcrate.yaml config file",
	Long:  `Create a .iconcrate.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".iconcrate.yaml"); err == nil && !force {
			return fmt.Errorf(".iconcrate.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".iconcrate.yaml", []byte(defaultConfig), 0o600); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .iconcrate.yaml")
		return nil
	},
}

const defaultConfig = `# iconcrate configuration
# Docs: https://github.com/yacobolo/iconcrate

# Shared settings
verbose: false
quiet: false
color: false

log:
  format: text             # text | json

# Generation settings (generate, check, sync)
generate:
  package-dir: node_modules/simple-icons
  output-dir: simpleicons
  crate-name: simpleicons
  # version: 13.4.0        # default: version in <package-dir>/package.json
  authors: []
  edition: "2021"
  license: CC0-1.0
  strict-collisions: false
  output-format: text      # text | json

# Registry sync settings
sync:
  npm-package: simple-icons
  # crate: simpleicons     # default: generate.crate-name
  registry-npm: https://registry.npmjs.org
  registry-crates: https://crates.io/api/v1/crates
  retries: 3
  timeout: 30s
  dry-run: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
