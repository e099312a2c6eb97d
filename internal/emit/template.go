package emit

// libTemplate is the fixed layout of src/lib.rs: the record type, one module
// per icon, the re-exports and the lookup function.
const libTemplate = `// Code generated by iconcrate. DO NOT EDIT.

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
{{- range .Decls}}

pub mod {{.Module}} {
    use super::Icon;

    pub const {{$.Placeholder}}: Icon = Icon {
        title: "{{lit .Title}}",
        slug: "{{lit .Slug}}",
        hex: "{{lit .Hex}}",
        source: "{{lit .Source}}",
        svg: "{{.SVG}}",
        path: "{{lit .Path}}",
    };
}
{{- end}}
{{if .Decls}}
{{range .Decls}}
{{- if eq .Name $.Placeholder}}pub use {{.Module}}::{{$.Placeholder}};
{{else}}pub use {{.Module}}::{{$.Placeholder}} as {{.Name}};
{{end}}
{{- end}}
{{- end}}
/// Returns the icon whose slug is ` + "`slug`" + `, if any.
pub fn get(slug: &str) -> Option<Icon> {
    match slug {
{{- range .Decls}}{{if .Lookup}}
        "{{lit .Slug}}" => Some({{.Name}}),
{{- end}}{{end}}
        _ => None,
    }
}
`
