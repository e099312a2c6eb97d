package source

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// findOrphans lists SVG files under IconsDir that are not in used.
func (p *Provider) findOrphans(used []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(p.IconsDir, "**", "*.svg"))
	if err != nil {
		return nil, fmt.Errorf("glob icons directory: %w", err)
	}

	seen := make(map[string]bool, len(used))
	for _, f := range used {
		seen[filepath.Clean(f)] = true
	}

	gi := p.loadIgnore()
	orphans := make(map[string]bool)
	for _, m := range matches {
		m = filepath.Clean(m)
		if seen[m] || p.shouldSkip(gi, m) {
			continue
		}
		orphans[m] = true
	}
	return sortedKeys(orphans), nil
}

// loadIgnore compiles the gitignore file. A missing file disables filtering.
func (p *Provider) loadIgnore() *ignore.GitIgnore {
	path := p.IgnoreFile
	if path == "" {
		path = ".gitignore"
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkip applies the gitignore rules to relative paths only; absolute
// paths lie outside the project the ignore file describes.
func (p *Provider) shouldSkip(gi *ignore.GitIgnore, path string) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(path))
}
