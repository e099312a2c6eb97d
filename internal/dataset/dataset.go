// Package dataset joins icon sources with their derived identifiers into the
// record set handed to the emitter.
package dataset

import (
	"fmt"
	"sort"

	"github.com/yacobolo/iconcrate/internal/ident"
	"github.com/yacobolo/iconcrate/internal/svg"
)

// Source is one icon as supplied by the upstream package.
type Source struct {
	Title  string // "Example"
	Hex    string // "123456"
	Source string // "https://example.com"
	SVG    string // raw SVG document
}

// Record is a fully assembled icon. Slug, Module and Type depend on Title
// only. SVG holds the markup escaped for embedding in a string literal.
type Record struct {
	Title  string
	Slug   string
	Module string
	Type   string
	Hex    string
	Source string
	SVG    string
	Path   string
}

// Overwrite records a module key written twice during assembly.
type Overwrite struct {
	Module   string
	Previous string // title of the replaced record
	Title    string // title of the record that replaced it
}

// CollisionError is returned in strict mode when two titles map to the same
// module name.
type CollisionError struct {
	Overwrite
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("titles %q and %q both map to module %s", e.Previous, e.Title, e.Module)
}

// Dataset maps module names to records.
type Dataset struct {
	records map[string]Record

	// Overwrites lists every key collision in the order it happened.
	Overwrites []Overwrite
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{records: make(map[string]Record)}
}

// Put stores r under its module name, replacing any earlier record with the
// same key. It reports the replaced record, if any.
func (d *Dataset) Put(r Record) (Record, bool) {
	prev, replaced := d.records[r.Module]
	d.records[r.Module] = r
	if replaced {
		d.Overwrites = append(d.Overwrites, Overwrite{Module: r.Module, Previous: prev.Title, Title: r.Title})
	}
	return prev, replaced
}

// Get returns the record stored under module.
func (d *Dataset) Get(module string) (Record, bool) {
	r, ok := d.records[module]
	return r, ok
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Keys returns the module names in lexicographic order.
func (d *Dataset) Keys() []string {
	keys := make([]string, 0, len(d.records))
	for k := range d.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the records ordered by module name.
func (d *Dataset) Records() []Record {
	keys := d.Keys()
	out := make([]Record, len(keys))
	for i, k := range keys {
		out[i] = d.records[k]
	}
	return out
}

// Assembler builds datasets from sources.
type Assembler struct {
	Tokenizer *ident.Tokenizer

	// StrictCollisions makes a module key collision fatal instead of letting
	// the later source win.
	StrictCollisions bool
}

// NewAssembler returns an assembler using the default tokenizer tables and
// last-write-wins collisions.
func NewAssembler() *Assembler {
	return &Assembler{Tokenizer: ident.NewTokenizer()}
}

// Assemble processes sources in order. Any tokenization or path extraction
// failure aborts assembly; no partial dataset is returned.
func Assemble(sources []Source) (*Dataset, error) {
	return NewAssembler().Assemble(sources)
}

// Assemble processes sources in order. When two titles share a module name
// the later one wins, unless StrictCollisions is set.
func (a *Assembler) Assemble(sources []Source) (*Dataset, error) {
	tok := a.Tokenizer
	if tok == nil {
		tok = ident.NewTokenizer()
	}

	ds := New()
	for _, src := range sources {
		r, err := buildRecord(tok, src)
		if err != nil {
			return nil, err
		}

		if a.StrictCollisions {
			if prev, exists := ds.Get(r.Module); exists {
				return nil, &CollisionError{Overwrite{Module: r.Module, Previous: prev.Title, Title: r.Title}}
			}
		}
		ds.Put(r)
	}
	return ds, nil
}

func buildRecord(tok *ident.Tokenizer, src Source) (Record, error) {
	ids, err := tok.Tokenize(src.Title)
	if err != nil {
		return Record{}, err
	}

	path, err := svg.ExtractPath(src.SVG)
	if err != nil {
		return Record{}, &svg.PathExtractionError{Slug: ids.Slug, Err: err}
	}

	return Record{
		Title:  src.Title,
		Slug:   ids.Slug,
		Module: ids.Module,
		Type:   ids.Type,
		Hex:    src.Hex,
		Source: src.Source,
		SVG:    svg.Escape(src.SVG),
		Path:   path,
	}, nil
}
