package iconcrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Check renders the crate in memory and compares it with the files in
// config.OutputDir. Nothing is written.
func Check(config Config) (*CheckResult, error) {
	c, err := build(config)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{OutputDir: config.OutputDir, Warnings: c.result.Warnings}
	for _, f := range c.result.Files {
		path := filepath.Join(config.OutputDir, filepath.FromSlash(f.Path))
		// #nosec G304 - path is built from the configured output directory
		onDisk, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			result.Files = append(result.Files, FileDrift{Path: f.Path, Status: FileMissing})
			result.Stale = true
			continue
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		want := c.files[f.Path]
		if string(onDisk) == string(want) {
			result.Files = append(result.Files, FileDrift{Path: f.Path, Status: FileUpToDate})
			continue
		}
		result.Files = append(result.Files, FileDrift{
			Path:   f.Path,
			Status: FileModified,
			Diff:   lineDiff(string(onDisk), string(want)),
		})
		result.Stale = true
	}

	config.logger().Debug().Bool("stale", result.Stale).Msg("check finished")
	return result, nil
}

// lineDiff returns the changed lines of a line-level diff, prefixed with
// "-" for lines only in current and "+" for lines only in fresh.
func lineDiff(current, fresh string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, fresh)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
