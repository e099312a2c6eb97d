package iconcrate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/iconcrate/internal/registry"
)

func sampleGenerate() *GenerateResult {
	return &GenerateResult{
		CrateName:      "simpleicons",
		Version:        "13.4.0",
		OutputDir:      "out",
		IconsLoaded:    3,
		IconsGenerated: 2,
		Overwrites:     1,
		Files: []GeneratedFile{
			{Path: ManifestFile, Size: 120},
			{Path: LibFile, Size: 2048},
		},
		Warnings: []string{`"Foo-Bar" replaced "Foo Bar": both map to module foo_bar`},
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		flag    string
		want    OutputFormat
		wantErr bool
	}{
		{flag: "", want: OutputText},
		{flag: "text", want: OutputText},
		{flag: "json", want: OutputJSON},
		{flag: "yaml", wantErr: true},
		{flag: "markdown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.flag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteGenerateText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGenerateOutput(&buf, sampleGenerate(), OutputText, false))

	out := buf.String()
	assert.Contains(t, out, "Generated simpleicons 13.4.0 in out\n")
	assert.Contains(t, out, "  Icons loaded:    3\n")
	assert.Contains(t, out, "  Icons generated: 2\n")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "1 warning:\n")
	assert.Contains(t, out, "  - \"Foo-Bar\" replaced")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes without colors")
}

func TestWriteGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGenerateOutput(&buf, sampleGenerate(), OutputJSON, false))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "generate", out.Command)
	assert.NotEmpty(t, out.Timestamp)
	require.NotNil(t, out.Generate)
	assert.Nil(t, out.Check)
	assert.Equal(t, "13.4.0", out.Generate.CrateVersion)
	assert.Equal(t, 2, out.Generate.IconsGenerated)
	assert.Equal(t, []JSONFile{{Path: ManifestFile, Bytes: 120}, {Path: LibFile, Bytes: 2048}}, out.Generate.Files)

	// Empty lists are exported as [] not null.
	assert.Contains(t, buf.String(), `"orphans": []`)
}

func TestWriteCheckText(t *testing.T) {
	result := &CheckResult{
		OutputDir: "out",
		Stale:     true,
		Files: []FileDrift{
			{Path: ManifestFile, Status: FileUpToDate},
			{Path: LibFile, Status: FileModified, Diff: "-old\n+new\n"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckOutput(&buf, result, OutputText, false))

	out := buf.String()
	assert.Contains(t, out, "Cargo.toml: up-to-date\n")
	assert.Contains(t, out, "src/lib.rs: modified\n")
	assert.Contains(t, out, "\t-old\n\t+new\n")
	assert.Contains(t, out, "Crate in out is stale")
	assert.Contains(t, out, "Hint:")
}

func TestWriteCheckJSON(t *testing.T) {
	result := &CheckResult{
		OutputDir: "out",
		Files:     []FileDrift{{Path: LibFile, Status: FileUpToDate}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckOutput(&buf, result, OutputJSON, false))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.NotNil(t, out.Check)
	assert.False(t, out.Check.Stale)
	assert.Equal(t, "up-to-date", out.Check.Files[0].Status)
}

func TestWriteSyncOutput(t *testing.T) {
	result := &SyncResult{
		NPMPackage: "simple-icons",
		Crate:      "simpleicons",
		Upstream:   "13.4.0",
		Decision:   registry.Decision{Proceed: true, Reason: "crate not published yet, releasing 13.4.0"},
		Generated:  sampleGenerate(),
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSyncOutput(&buf, result, OutputText, false))
		out := buf.String()
		assert.Contains(t, out, "npm simple-icons:       13.4.0\n")
		assert.Contains(t, out, "crates.io simpleicons: unpublished\n")
		assert.Contains(t, out, "crate not published yet")
		assert.Contains(t, out, "Generated simpleicons 13.4.0")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSyncOutput(&buf, result, OutputJSON, false))

		var out JSONOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.NotNil(t, out.Sync)
		assert.True(t, out.Sync.Proceed)
		assert.Empty(t, out.Sync.Published)
		require.NotNil(t, out.Sync.Generated)
		assert.Equal(t, "simpleicons", out.Sync.Generated.Crate)
	})
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(false))
}
