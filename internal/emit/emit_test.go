package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/iconcrate/internal/dataset"
)

const simpleSVG = `<svg><path d="M0 0"/></svg>`

const exampleLib = `// Code generated by iconcrate. DO NOT EDIT.

#![allow(non_upper_case_globals)]

#[derive(Debug, Clone, Copy, PartialEq, Eq, Hash)]
pub struct Icon {
    pub title: &'static str,
    pub slug: &'static str,
    pub hex: &'static str,
    pub source: &'static str,
    pub svg: &'static str,
    pub path: &'static str,
}

pub mod example {
    use super::Icon;

    pub const ICON: Icon = Icon {
        title: "Example",
        slug: "example",
        hex: "#123456",
        source: "https://example.com",
        svg: "<svg><path d=\"M0 0\"/></svg>",
        path: "M0 0",
    };
}

pub use example::ICON as Example;

/// Returns the icon whose slug is ` + "`slug`" + `, if any.
pub fn get(slug: &str) -> Option<Icon> {
    match slug {
        "example" => Some(Example),
        _ => None,
    }
}
`

func assemble(t *testing.T, sources ...dataset.Source) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Assemble(sources)
	require.NoError(t, err)
	return ds
}

func TestEmitEndToEnd(t *testing.T) {
	ds := assemble(t, dataset.Source{
		Title:  "Example",
		Hex:    "#123456",
		Source: "https://example.com",
		SVG:    simpleSVG,
	})

	artifact, err := Emit(ds)
	require.NoError(t, err)
	assert.Equal(t, exampleLib, string(artifact.Source))
	assert.Empty(t, artifact.Warnings)

	require.Len(t, artifact.Declarations, 1)
	d := artifact.Declarations[0]
	assert.Equal(t, "example", d.Slug)
	assert.Equal(t, "example", d.Module)
	assert.Equal(t, "Example", d.Name)
	assert.Equal(t, "M0 0", d.Path)
	assert.True(t, d.Lookup)
}

func TestEmitEmptyDataset(t *testing.T) {
	artifact, err := Emit(dataset.New())
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Contains(t, out, "pub struct Icon {")
	assert.NotContains(t, out, "pub mod")
	assert.NotContains(t, out, "pub use")
	assert.Contains(t, out, "    match slug {\n        _ => None,\n    }")
}

func TestEmitDeterministic(t *testing.T) {
	sources := []dataset.Source{
		{Title: "Zeta", SVG: simpleSVG},
		{Title: "Alpha", SVG: simpleSVG},
		{Title: "C++", SVG: simpleSVG},
		{Title: ".NET", SVG: simpleSVG},
		{Title: "Mu", SVG: simpleSVG},
	}

	first, err := Emit(assemble(t, sources...))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Emit(assemble(t, sources...))
		require.NoError(t, err)
		require.Equal(t, string(first.Source), string(again.Source))
	}

	out := string(first.Source)
	alpha := strings.Index(out, "pub mod alpha")
	cpp := strings.Index(out, "pub mod cplusplus")
	dotnet := strings.Index(out, "pub mod dot_net")
	zeta := strings.Index(out, "pub mod zeta")
	assert.True(t, alpha < cpp && cpp < dotnet && dotnet < zeta, "modules must be sorted")
}

func TestEmitPlaceholderReexport(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: "ICON", SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Contains(t, out, "pub use icon::ICON;\n")
	assert.NotContains(t, out, "as ICON")
	assert.Contains(t, out, `"icon" => Some(ICON),`)
}

func TestEmitReservedModule(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: "Loop", SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Contains(t, out, "pub mod r#loop {")
	assert.Contains(t, out, "pub use r#loop::ICON as Loop;")
	assert.Contains(t, out, `"loop" => Some(Loop),`)
}

func TestEmitModuleCollisionHasSingleDeclaration(t *testing.T) {
	ds := assemble(t,
		dataset.Source{Title: "Foo Bar", Hex: "111111", SVG: simpleSVG},
		dataset.Source{Title: "Foo-Bar", Hex: "333333", SVG: simpleSVG},
	)

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Equal(t, 1, strings.Count(out, "pub mod foo_bar {"))
	assert.Contains(t, out, `title: "Foo-Bar"`)
	assert.NotContains(t, out, `title: "Foo Bar"`)
}

func TestEmitTypeNameCollision(t *testing.T) {
	// Different module names, same type name and slug.
	ds := assemble(t,
		dataset.Source{Title: "Foo Bar", SVG: simpleSVG},
		dataset.Source{Title: "FooBar", SVG: simpleSVG},
	)

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Contains(t, out, "pub use foo_bar::ICON as FooBar;")
	assert.Contains(t, out, "pub use foobar::ICON as FooBar2;")
	assert.Equal(t, 1, strings.Count(out, `"foobar" =>`))
	assert.Contains(t, out, `"foobar" => Some(FooBar),`)
	assert.Len(t, artifact.Warnings, 2)
}

func TestEmitPreludeNames(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: "None", SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.Contains(t, out, "pub use none::ICON as None2;")
	assert.Contains(t, out, `"none" => Some(None2),`)
	assert.Contains(t, out, "        _ => None,")
	require.Len(t, artifact.Warnings, 1)
	assert.Contains(t, artifact.Warnings[0], "reserved")
}

func TestEmitEscapesTitle(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: `Say "Hi"`, SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Source), `title: "Say \"Hi\"",`)
}

func TestEmitEscapesBackslash(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: `Back\`, SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Source), `title: "Back\\",`)
}

func TestEmitKeywordTypeName(t *testing.T) {
	ds := assemble(t, dataset.Source{Title: "Self", SVG: simpleSVG})

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	assert.NotContains(t, out, " as Self;")
	assert.NotContains(t, out, "Some(Self)")
	assert.Contains(t, out, "pub mod self_ {")
	assert.Contains(t, out, "pub use self_::ICON as Self_;")
	assert.Contains(t, out, `"self" => Some(Self_),`)
	assert.Empty(t, artifact.Warnings)
}

func TestEmitHandBuiltRecords(t *testing.T) {
	tests := []struct {
		name     string
		record   dataset.Record
		wantErr  string
		wantName string
	}{
		{
			name:     "Self type is renamed",
			record:   dataset.Record{Title: "Self", Slug: "self", Module: "self_", Type: "Self"},
			wantName: "Self2",
		},
		{
			name:     "raw keyword module",
			record:   dataset.Record{Title: "Loop", Slug: "loop", Module: "r#loop", Type: "Loop"},
			wantName: "Loop",
		},
		{
			name:    "module with spaces",
			record:  dataset.Record{Title: "Bad", Slug: "bad", Module: "bad module", Type: "Bad"},
			wantErr: `invalid module name "bad module"`,
		},
		{
			name:    "empty module",
			record:  dataset.Record{Title: "Empty", Slug: "empty", Type: "Empty"},
			wantErr: "invalid module name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset.New()
			ds.Put(tt.record)

			artifact, err := Emit(ds)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, artifact)
				return
			}
			require.NoError(t, err)
			require.Len(t, artifact.Declarations, 1)
			assert.Equal(t, tt.wantName, artifact.Declarations[0].Name)
			assert.NotContains(t, string(artifact.Source), " as Self;")
		})
	}
}

func TestEmitLookupTotality(t *testing.T) {
	ds := assemble(t,
		dataset.Source{Title: "Alpha", SVG: simpleSVG},
		dataset.Source{Title: "Beta", SVG: simpleSVG},
	)

	artifact, err := Emit(ds)
	require.NoError(t, err)

	out := string(artifact.Source)
	get := out[strings.Index(out, "pub fn get"):]
	assert.Equal(t, 2, strings.Count(get, "=> Some("))
	assert.True(t, strings.HasSuffix(get, "        _ => None,\n    }\n}\n"))
}
