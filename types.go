package iconcrate

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/yacobolo/iconcrate/internal/registry"
)

// Config holds generator configuration
type Config struct {
	PackageDir string   // "node_modules/simple-icons"
	DataFile   string   // defaults to <PackageDir>/_data/simple-icons.json
	IconsDir   string   // defaults to <PackageDir>/icons
	IgnoreFile string   // gitignore consulted by the orphan scan (default: .gitignore)
	OutputDir  string   // "simpleicons" (crate root, replaced on every run)
	CrateName  string   // "simpleicons"
	Version    string   // crate version; empty reads <PackageDir>/package.json
	Authors    []string // Cargo.toml authors
	Edition    string   // Rust edition (default: 2021)
	License    string   // Cargo.toml license, e.g. "CC0-1.0"

	// StrictCollisions fails generation when two titles map to the same
	// module name instead of keeping the later one.
	StrictCollisions bool

	// Logger receives diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

func (c Config) dataFile() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	return filepath.Join(c.PackageDir, "_data", "simple-icons.json")
}

func (c Config) iconsDir() string {
	if c.IconsDir != "" {
		return c.IconsDir
	}
	return filepath.Join(c.PackageDir, "icons")
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// GeneratedFile is one file of the crate.
type GeneratedFile struct {
	Path string // relative to the output directory
	Size int
}

// GenerateResult contains generation stats
type GenerateResult struct {
	CrateName      string
	Version        string
	OutputDir      string
	IconsLoaded    int // entries in the data file
	IconsGenerated int // modules in the crate
	Overwrites     int // module name collisions resolved by last-write-wins
	Orphans        []string
	Files          []GeneratedFile
	Warnings       []string
}

// FileStatus describes how a generated file compares with the one on disk.
type FileStatus string

// File statuses reported by Check.
const (
	FileUpToDate FileStatus = "up-to-date"
	FileModified FileStatus = "modified"
	FileMissing  FileStatus = "missing"
)

// FileDrift is the check outcome for one file.
type FileDrift struct {
	Path   string
	Status FileStatus
	Diff   string // line diff, empty when up to date
}

// CheckResult reports whether the crate on disk matches a fresh generation.
type CheckResult struct {
	OutputDir string
	Stale     bool
	Files     []FileDrift
	Warnings  []string
}

// SyncOptions configures a version sync.
type SyncOptions struct {
	NPMPackage string // default: simple-icons
	Crate      string // default: Config.CrateName
	DryRun     bool   // decide only, never generate
}

// SyncResult is the outcome of Sync.
type SyncResult struct {
	NPMPackage string
	Crate      string
	Upstream   string
	Published  string // empty when the crate was never published
	Decision   registry.Decision
	Generated  *GenerateResult // nil unless a crate was generated
	Warnings   []string
}

// OutputFormat represents the result output format
type OutputFormat string

const (
	// OutputText prints a styled human summary
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
