// Package source loads the icon dataset and SVG files shipped in the
// simple-icons npm package.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yacobolo/iconcrate/internal/dataset"
	"github.com/yacobolo/iconcrate/internal/ident"
	"github.com/yacobolo/iconcrate/internal/svg"
)

// Entry is one icon in the package's data file.
type Entry struct {
	Title  string `json:"title"`
	Hex    string `json:"hex"`
	Source string `json:"source"`
	// Slug overrides the file name of the icon's SVG when set.
	Slug string `json:"slug,omitempty"`
}

type dataFile struct {
	Icons []Entry `json:"icons"`
}

// MissingIconError reports a dataset entry whose SVG file could not be read.
type MissingIconError struct {
	Title string
	Path  string
	Err   error
}

func (e *MissingIconError) Error() string {
	return fmt.Sprintf("icon %q: read %s: %v", e.Title, e.Path, e.Err)
}

func (e *MissingIconError) Unwrap() error { return e.Err }

// Provider reads icons from disk.
type Provider struct {
	DataFile  string // "node_modules/simple-icons/_data/simple-icons.json"
	IconsDir  string // "node_modules/simple-icons/icons"
	Tokenizer *ident.Tokenizer

	// IgnoreFile is the gitignore file consulted by the orphan scan.
	// Empty means ".gitignore" in the working directory.
	IgnoreFile string
}

// Result is the outcome of Load.
type Result struct {
	Sources []dataset.Source
	Files   []string // SVG file read for each source, same order
	Orphans []string // SVG files no entry refers to, sorted
}

// Load reads the data file and the SVG of every entry, in data file order.
// A missing or malformed SVG aborts the load.
func (p *Provider) Load() (*Result, error) {
	entries, err := ReadEntries(p.DataFile)
	if err != nil {
		return nil, err
	}

	tok := p.Tokenizer
	if tok == nil {
		tok = ident.NewTokenizer()
	}

	result := &Result{
		Sources: make([]dataset.Source, 0, len(entries)),
		Files:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		name := e.Slug
		if name == "" {
			if name, err = tok.Slugify(e.Title); err != nil {
				return nil, err
			}
		}

		path := filepath.Join(p.IconsDir, name+".svg")
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &MissingIconError{Title: e.Title, Path: path, Err: err}
		}
		markup := string(content)
		if err := svg.Validate(markup); err != nil {
			return nil, &MissingIconError{Title: e.Title, Path: path, Err: err}
		}

		result.Sources = append(result.Sources, dataset.Source{
			Title:  e.Title,
			Hex:    e.Hex,
			Source: e.Source,
			SVG:    markup,
		})
		result.Files = append(result.Files, path)
	}

	orphans, err := p.findOrphans(result.Files)
	if err != nil {
		return nil, err
	}
	result.Orphans = orphans

	return result, nil
}

// ReadEntries decodes the package's data file.
func ReadEntries(path string) ([]Entry, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var data dataFile
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", path, err)
	}
	return data.Icons, nil
}

// ReadPackageVersion returns the version field of packageDir/package.json.
func ReadPackageVersion(packageDir string) (string, error) {
	path := filepath.Join(packageDir, "package.json")
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read package manifest: %w", err)
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	if pkg.Version == "" {
		return "", fmt.Errorf("%s has no version", path)
	}
	return pkg.Version, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
