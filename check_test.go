package iconcrate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUpToDate(t *testing.T) {
	pkg := writePackage(t, "1.0.0", testIcon{title: "Example"})
	config := testConfig(t, pkg)

	_, err := Generate(config)
	require.NoError(t, err)

	result, err := Check(config)
	require.NoError(t, err)
	assert.False(t, result.Stale)
	require.Len(t, result.Files, 2)
	for _, f := range result.Files {
		assert.Equal(t, FileUpToDate, f.Status, f.Path)
		assert.Empty(t, f.Diff)
	}
}

func TestCheckMissingCrate(t *testing.T) {
	pkg := writePackage(t, "1.0.0", testIcon{title: "Example"})
	config := testConfig(t, pkg)

	result, err := Check(config)
	require.NoError(t, err)
	assert.True(t, result.Stale)
	for _, f := range result.Files {
		assert.Equal(t, FileMissing, f.Status)
	}

	// Check never writes.
	_, err = os.Stat(config.OutputDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCheckDetectsDrift(t *testing.T) {
	pkg := writePackage(t, "1.0.0", testIcon{title: "Example"})
	config := testConfig(t, pkg)

	_, err := Generate(config)
	require.NoError(t, err)

	// A new upstream icon makes the crate stale.
	pkg2 := writePackage(t, "1.0.0", testIcon{title: "Example"}, testIcon{title: "Zulu"})
	config.PackageDir = pkg2

	result, err := Check(config)
	require.NoError(t, err)
	assert.True(t, result.Stale)

	var lib FileDrift
	for _, f := range result.Files {
		if f.Path == LibFile {
			lib = f
		}
	}
	assert.Equal(t, FileModified, lib.Status)
	assert.Contains(t, lib.Diff, "+pub mod zulu {")
	assert.Contains(t, lib.Diff, `+        "zulu" => Some(Zulu),`)
	assert.NotContains(t, lib.Diff, "pub mod example")

	// Same version, so the manifest is unchanged.
	for _, f := range result.Files {
		if f.Path == ManifestFile {
			assert.Equal(t, FileUpToDate, f.Status)
		}
	}
}

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name    string
		current string
		fresh   string
		want    string
	}{
		{name: "equal", current: "a\nb\n", fresh: "a\nb\n", want: ""},
		{name: "added line", current: "a\nc\n", fresh: "a\nb\nc\n", want: "+b\n"},
		{name: "removed line", current: "a\nb\nc\n", fresh: "a\nc\n", want: "-b\n"},
		{name: "changed line", current: "a\nb\n", fresh: "a\nB\n", want: "-b\n+B\n"},
		{name: "no trailing newline", current: "a", fresh: "b", want: "-a\n+b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineDiff(tt.current, tt.fresh))
		})
	}
}
