package iconcrate

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Command   string        `json:"command"`
	Generate  *JSONGenerate `json:"generate,omitempty"`
	Check     *JSONCheck    `json:"check,omitempty"`
	Sync      *JSONSync     `json:"sync,omitempty"`
}

// JSONGenerate describes a generated crate
type JSONGenerate struct {
	Crate          string     `json:"crate"`
	CrateVersion   string     `json:"crate_version"`
	OutputDir      string     `json:"output_dir"`
	IconsLoaded    int        `json:"icons_loaded"`
	IconsGenerated int        `json:"icons_generated"`
	Overwrites     int        `json:"overwrites"`
	Orphans        []string   `json:"orphans"`
	Files          []JSONFile `json:"files"`
	Warnings       []string   `json:"warnings"`
}

// JSONFile is one generated file
type JSONFile struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// JSONCheck describes the drift of a crate on disk
type JSONCheck struct {
	OutputDir string          `json:"output_dir"`
	Stale     bool            `json:"stale"`
	Files     []JSONFileDrift `json:"files"`
	Warnings  []string        `json:"warnings"`
}

// JSONFileDrift is the check outcome for one file
type JSONFileDrift struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

// JSONSync describes a version sync
type JSONSync struct {
	NPMPackage string        `json:"npm_package"`
	Crate      string        `json:"crate"`
	Upstream   string        `json:"upstream"`
	Published  string        `json:"published,omitempty"`
	Proceed    bool          `json:"proceed"`
	Reason     string        `json:"reason"`
	Generated  *JSONGenerate `json:"generated,omitempty"`
	Warnings   []string      `json:"warnings"`
}

func writeJSON(w io.Writer, command string, fill func(*JSONOutput)) error {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Command:   command,
	}
	fill(&output)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONGenerate(result *GenerateResult) *JSONGenerate {
	files := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		files[i] = JSONFile{Path: f.Path, Bytes: f.Size}
	}

	return &JSONGenerate{
		Crate:          result.CrateName,
		CrateVersion:   result.Version,
		OutputDir:      result.OutputDir,
		IconsLoaded:    result.IconsLoaded,
		IconsGenerated: result.IconsGenerated,
		Overwrites:     result.Overwrites,
		Orphans:        nonNil(result.Orphans),
		Files:          files,
		Warnings:       nonNil(result.Warnings),
	}
}

func buildJSONCheck(result *CheckResult) *JSONCheck {
	files := make([]JSONFileDrift, len(result.Files))
	for i, f := range result.Files {
		files[i] = JSONFileDrift{Path: f.Path, Status: string(f.Status), Diff: f.Diff}
	}

	return &JSONCheck{
		OutputDir: result.OutputDir,
		Stale:     result.Stale,
		Files:     files,
		Warnings:  nonNil(result.Warnings),
	}
}

func buildJSONSync(result *SyncResult) *JSONSync {
	out := &JSONSync{
		NPMPackage: result.NPMPackage,
		Crate:      result.Crate,
		Upstream:   result.Upstream,
		Published:  result.Published,
		Proceed:    result.Decision.Proceed,
		Reason:     result.Decision.Reason,
		Warnings:   nonNil(result.Warnings),
	}
	if result.Generated != nil {
		out.Generated = buildJSONGenerate(result.Generated)
	}
	return out
}

// nonNil keeps empty lists as [] rather than null in the export.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
