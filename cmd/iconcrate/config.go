package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/iconcrate"
	"github.com/yacobolo/iconcrate/internal/registry"
)

var k = koanf.New(".")

// Defaults shared by flags, the init template and the config builders.
const (
	defaultPackageDir = "node_modules/simple-icons"
	defaultOutputDir  = "simpleicons"
	defaultCrateName  = "simpleicons"
	defaultRetries    = 3
	defaultTimeout    = 30 * time.Second
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".iconcrate.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ICONCRATE_* prefix)
	if err := k.Load(env.Provider("ICONCRATE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, the rest become hyphens:
//
//	ICONCRATE_VERBOSE             -> verbose
//	ICONCRATE_GENERATE_OUTPUT_DIR -> generate.output-dir
//	ICONCRATE_SYNC_NPM_PACKAGE    -> sync.npm-package
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "ICONCRATE_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig(logger *zerolog.Logger) iconcrate.Config {
	config := iconcrate.Config{
		PackageDir:       getStringWithFallback("package-dir", "generate.package-dir", defaultPackageDir),
		DataFile:         getStringWithFallback("data-file", "generate.data-file", ""),
		IconsDir:         getStringWithFallback("icons-dir", "generate.icons-dir", ""),
		IgnoreFile:       getStringWithFallback("ignore-file", "generate.ignore-file", ""),
		OutputDir:        getStringWithFallback("output-dir", "generate.output-dir", defaultOutputDir),
		CrateName:        getStringWithFallback("crate-name", "generate.crate-name", defaultCrateName),
		Version:          getStringWithFallback("crate-version", "generate.version", ""),
		Edition:          getStringWithFallback("edition", "generate.edition", ""),
		License:          getStringWithFallback("license", "generate.license", ""),
		StrictCollisions: getBoolWithFallback("strict-collisions", "generate.strict-collisions", false),
		Logger:           logger,
	}

	// Handle authors: check flag key first, then config key
	if authors := k.Strings("authors"); len(authors) > 0 {
		config.Authors = authors
	} else if authors := k.Strings("generate.authors"); len(authors) > 0 {
		config.Authors = authors
	}

	return config
}

// buildSyncOptions constructs the sync options from koanf state.
func buildSyncOptions(crateName string) iconcrate.SyncOptions {
	return iconcrate.SyncOptions{
		NPMPackage: getStringWithFallback("npm-package", "sync.npm-package", iconcrate.DefaultNPMPackage),
		Crate:      getStringWithFallback("crate", "sync.crate", crateName),
		DryRun:     getBoolWithFallback("dry-run", "sync.dry-run", false),
	}
}

// buildRegistryClient constructs the registry client from koanf state.
func buildRegistryClient(logger *zerolog.Logger) *registry.Client {
	retries := getIntWithFallback("retries", "sync.retries", defaultRetries)
	if retries < 0 {
		retries = 0
	}

	return &registry.Client{
		HTTPClient: &http.Client{
			Timeout: getDurationWithFallback("timeout", "sync.timeout", defaultTimeout),
		},
		NPMBaseURL:    getStringWithFallback("npm-registry", "sync.registry-npm", registry.DefaultNPMBaseURL),
		CratesBaseURL: getStringWithFallback("crates-registry", "sync.registry-crates", registry.DefaultCratesBaseURL),
		MaxRetries:    uint64(retries),
		Logger:        logger,
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
