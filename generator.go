package iconcrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/iconcrate/internal/dataset"
	"github.com/yacobolo/iconcrate/internal/emit"
	"github.com/yacobolo/iconcrate/internal/manifest"
	"github.com/yacobolo/iconcrate/internal/source"
)

// Paths of the crate files, relative to the output directory.
const (
	ManifestFile = "Cargo.toml"
	LibFile      = "src/lib.rs"
)

// crate is a fully rendered crate held in memory.
type crate struct {
	files  map[string][]byte
	result *GenerateResult
}

// Generate is the main entry point. The crate is rendered in memory first;
// the output directory is only touched once every step has succeeded.
func Generate(config Config) (*GenerateResult, error) {
	c, err := build(config)
	if err != nil {
		return nil, err
	}

	if err := writeCrate(config.OutputDir, c.files); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	config.logger().Info().
		Str("crate", c.result.CrateName).
		Str("version", c.result.Version).
		Int("icons", c.result.IconsGenerated).
		Msg("crate written")

	return c.result, nil
}

func build(config Config) (*crate, error) {
	log := config.logger()
	if config.CrateName == "" {
		return nil, errors.New("crate name is required")
	}
	if config.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}

	version := config.Version
	if version == "" {
		v, err := source.ReadPackageVersion(config.PackageDir)
		if err != nil {
			return nil, fmt.Errorf("version: %w", err)
		}
		version = v
	}

	// 1. Load dataset and SVG files
	provider := &source.Provider{
		DataFile:   config.dataFile(),
		IconsDir:   config.iconsDir(),
		IgnoreFile: config.IgnoreFile,
	}
	loaded, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	log.Debug().Int("icons", len(loaded.Sources)).Str("data", provider.DataFile).Msg("dataset loaded")

	result := &GenerateResult{
		CrateName:   config.CrateName,
		OutputDir:   config.OutputDir,
		IconsLoaded: len(loaded.Sources),
		Orphans:     loaded.Orphans,
	}
	for _, o := range loaded.Orphans {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s is not referenced by any dataset entry", o))
	}

	// 2. Assemble records
	assembler := dataset.NewAssembler()
	assembler.StrictCollisions = config.StrictCollisions
	ds, err := assembler.Assemble(loaded.Sources)
	if err != nil {
		return nil, fmt.Errorf("assemble failed: %w", err)
	}
	result.IconsGenerated = ds.Len()
	result.Overwrites = len(ds.Overwrites)
	for _, o := range ds.Overwrites {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%q replaced %q: both map to module %s", o.Title, o.Previous, o.Module))
	}

	// 3. Render lib.rs
	artifact, err := emit.Emit(ds)
	if err != nil {
		return nil, fmt.Errorf("emit failed: %w", err)
	}
	result.Warnings = append(result.Warnings, artifact.Warnings...)

	// 4. Render Cargo.toml
	m, err := manifest.New(config.CrateName, version)
	if err != nil {
		return nil, err
	}
	m.Package.Authors = config.Authors
	m.Package.License = config.License
	if config.Edition != "" {
		m.Package.Edition = config.Edition
	}
	cargo, err := m.Encode()
	if err != nil {
		return nil, err
	}
	result.Version = m.Package.Version

	files := map[string][]byte{
		ManifestFile: cargo,
		LibFile:      artifact.Source,
	}
	for _, name := range []string{ManifestFile, LibFile} {
		result.Files = append(result.Files, GeneratedFile{Path: name, Size: len(files[name])})
	}

	log.Debug().Int("modules", ds.Len()).Int("warnings", len(result.Warnings)).Msg("crate rendered")
	return &crate{files: files, result: result}, nil
}

// writeCrate replaces outputDir with the rendered files.
func writeCrate(outputDir string, files map[string][]byte) error {
	if err := os.RemoveAll(outputDir); err != nil {
		return err
	}
	for name, content := range files {
		path := filepath.Join(outputDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return err
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return err
		}
	}
	return nil
}
