// Package emit renders a dataset as the source of a Rust crate: one module
// per icon, a re-export per icon and a slug lookup function.
package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/yacobolo/iconcrate/internal/dataset"
	"github.com/yacobolo/iconcrate/internal/ident"
	"github.com/yacobolo/iconcrate/internal/svg"
)

// Placeholder is the name of the constant declared inside every icon module.
// A record whose type name equals it is re-exported without renaming.
const Placeholder = "ICON"

// Declaration is one record as it appears in the output.
type Declaration struct {
	dataset.Record

	// Name is the re-exported constant name. It equals Record.Type unless
	// another record claimed that name first.
	Name string
	// Lookup is false when an earlier record already owns the slug, so the
	// record gets no arm in the lookup function.
	Lookup bool
}

// Artifact is the rendered crate source.
type Artifact struct {
	Source       []byte
	Declarations []Declaration
	Warnings     []string
}

var crateTemplate = template.Must(template.New("lib.rs").Funcs(template.FuncMap{
	"lit": svg.Escape,
}).Parse(libTemplate))

// Emit renders ds. Records are visited in module name order, so equal
// datasets always render to identical bytes.
func Emit(ds *dataset.Dataset) (*Artifact, error) {
	decls, warnings, err := plan(ds.Records())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := struct {
		Placeholder string
		Decls       []Declaration
	}{
		Placeholder: Placeholder,
		Decls:       decls,
	}
	if err := crateTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", crateTemplate.Name(), err)
	}

	return &Artifact{
		Source:       buf.Bytes(),
		Declarations: decls,
		Warnings:     warnings,
	}, nil
}

// preludeNames are re-export names that would shadow the Option variants used
// by the lookup function, plus the Self keyword for records built without the
// tokenizer.
var preludeNames = []string{"None", "Some", "Self"}

// plan assigns output names. Records must be sorted by module name. When two
// records share a type name the first keeps it and later ones get a numeric
// suffix; when two share a slug only the first is reachable by lookup. A
// record whose module name is not a valid identifier is an error.
func plan(records []dataset.Record) ([]Declaration, []string, error) {
	decls := make([]Declaration, 0, len(records))
	names := make(map[string]string, len(records)+len(preludeNames))
	slugs := make(map[string]string, len(records))
	var warnings []string

	for _, n := range preludeNames {
		names[n] = "a reserved Rust name"
	}

	for _, r := range records {
		if !ident.IsModule(r.Module) {
			return nil, nil, fmt.Errorf("record %q: invalid module name %q", r.Title, r.Module)
		}

		d := Declaration{Record: r, Name: r.Type, Lookup: true}

		if owner, taken := names[d.Name]; taken {
			d.Name = uniqueName(r.Type, names)
			warnings = append(warnings, fmt.Sprintf(
				"Type name %s of %q already used by %s - emitted as %s",
				r.Type, r.Title, owner, d.Name,
			))
		}
		names[d.Name] = "module " + r.Module

		if owner, taken := slugs[r.Slug]; taken {
			d.Lookup = false
			warnings = append(warnings, fmt.Sprintf(
				"Slug %q of %q already used by module %s - not reachable through get()",
				r.Slug, r.Title, owner,
			))
		} else {
			slugs[r.Slug] = r.Module
		}

		decls = append(decls, d)
	}

	return decls, warnings, nil
}

func uniqueName(base string, used map[string]string) string {
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if _, taken := used[name]; !taken {
			return name
		}
	}
}
