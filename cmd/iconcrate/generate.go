package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/iconcrate"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the Rust crate from the simple-icons package",
	Long: `Read the simple-icons dataset and SVG files and write Cargo.toml and
src/lib.rs to the output directory. The directory is replaced on every run;
nothing is written if any icon fails to tokenize or parse.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addCrateFlags(generateCmd)
}

// addCrateFlags registers the flags shared by every command that builds
// the crate.
func addCrateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("package-dir", "", "simple-icons package directory (default: "+defaultPackageDir+")")
	f.String("data-file", "", "Dataset JSON (default: <package-dir>/_data/simple-icons.json)")
	f.String("icons-dir", "", "SVG directory (default: <package-dir>/icons)")
	f.String("ignore-file", "", "Gitignore file for the orphan scan (default: .gitignore)")
	f.String("output-dir", "", "Crate output directory (default: "+defaultOutputDir+")")
	f.String("crate-name", "", "Crate name (default: "+defaultCrateName+")")
	f.String("crate-version", "", "Crate version (default: version in <package-dir>/package.json)")
	f.StringSlice("authors", nil, "Cargo.toml authors")
	f.String("edition", "", "Rust edition (default: 2021)")
	f.String("license", "", "Cargo.toml license")
	f.Bool("strict-collisions", false, "Fail when two titles map to the same module")
	f.String("output-format", "", "Output format: text|json")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	config := buildGenerateConfig(&logger)

	result, err := iconcrate.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	return iconcrate.WriteGenerateOutput(os.Stdout, result, format, useColors())
}

func outputFormat() (iconcrate.OutputFormat, error) {
	return iconcrate.ParseOutputFormat(getStringWithFallback("output-format", "generate.output-format", ""))
}

func useColors() bool {
	return iconcrate.ShouldUseColors(getBoolWithFallback("color", "color", false))
}
