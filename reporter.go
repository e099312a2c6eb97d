package iconcrate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

// Reporter prints results for humans
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintGenerate outputs a generation summary
func (r *Reporter) PrintGenerate(result *GenerateResult) {
	fmt.Fprintf(r.w, "%s %s %s in %s\n",
		RenderStyle(StyleGreen, "Generated", r.useColors),
		result.CrateName,
		result.Version,
		RenderStyle(StyleCyan, result.OutputDir, r.useColors))
	fmt.Fprintf(r.w, "  Icons loaded:    %d\n", result.IconsLoaded)
	fmt.Fprintf(r.w, "  Icons generated: %d\n", result.IconsGenerated)
	for _, f := range result.Files {
		fmt.Fprintf(r.w, "  %-16s %s\n", f.Path, humanize.Bytes(uint64(f.Size)))
	}
	r.printWarnings(result.Warnings)
}

// PrintCheck outputs the drift of every crate file
func (r *Reporter) PrintCheck(result *CheckResult) {
	for _, f := range result.Files {
		status := string(f.Status)
		switch f.Status {
		case FileUpToDate:
			status = RenderStyle(StyleGreen, status, r.useColors)
		default:
			status = RenderStyle(StyleRed, status, r.useColors)
		}
		fmt.Fprintf(r.w, "%s: %s\n", RenderStyle(StyleCyan, f.Path, r.useColors), status)

		if f.Diff != "" {
			r.printDiff(f.Diff)
		}
	}

	fmt.Fprintln(r.w, "")
	if result.Stale {
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleRed, fmt.Sprintf("Crate in %s is stale", result.OutputDir), r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run iconcrate generate to update it", r.useColors))
	} else {
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleGreen, fmt.Sprintf("Crate in %s is up to date", result.OutputDir), r.useColors))
	}
	r.printWarnings(result.Warnings)
}

// PrintSync outputs the version comparison and what was done about it
func (r *Reporter) PrintSync(result *SyncResult) {
	published := result.Published
	if published == "" {
		published = "unpublished"
	}
	fmt.Fprintf(r.w, "npm %s:       %s\n", result.NPMPackage, result.Upstream)
	fmt.Fprintf(r.w, "crates.io %s: %s\n", result.Crate, published)

	style := StyleGray
	if result.Decision.Proceed {
		style = StyleGreen
	}
	fmt.Fprintln(r.w, RenderStyle(style, result.Decision.Reason, r.useColors))

	if result.Generated != nil {
		fmt.Fprintln(r.w, "")
		r.PrintGenerate(result.Generated)
	}
	r.printWarnings(result.Warnings)
}

func (r *Reporter) printDiff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			line = RenderStyle(StyleRed, line, r.useColors)
		case strings.HasPrefix(line, "+"):
			line = RenderStyle(StyleGreen, line, r.useColors)
		}
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
}

func (r *Reporter) printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleYellow, pluralizeCount(len(warnings), "warning", "warnings")+":", r.useColors))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  - %s\n", w)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
