package iconcrate

import (
	"fmt"
	"io"
)

// ParseOutputFormat selects the output format from the flag value. An empty
// value means text; unknown values are rejected.
func ParseOutputFormat(formatFlag string) (OutputFormat, error) {
	switch formatFlag {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", formatFlag)
	}
}

// WriteGenerateOutput writes a generation result in the given format
func WriteGenerateOutput(w io.Writer, result *GenerateResult, format OutputFormat, useColors bool) error {
	if format == OutputJSON {
		return writeJSON(w, "generate", func(out *JSONOutput) { out.Generate = buildJSONGenerate(result) })
	}
	NewReporter(w, useColors).PrintGenerate(result)
	return nil
}

// WriteCheckOutput writes a check result in the given format
func WriteCheckOutput(w io.Writer, result *CheckResult, format OutputFormat, useColors bool) error {
	if format == OutputJSON {
		return writeJSON(w, "check", func(out *JSONOutput) { out.Check = buildJSONCheck(result) })
	}
	NewReporter(w, useColors).PrintCheck(result)
	return nil
}

// WriteSyncOutput writes a sync result in the given format
func WriteSyncOutput(w io.Writer, result *SyncResult, format OutputFormat, useColors bool) error {
	if format == OutputJSON {
		return writeJSON(w, "sync", func(out *JSONOutput) { out.Sync = buildJSONSync(result) })
	}
	NewReporter(w, useColors).PrintSync(result)
	return nil
}
