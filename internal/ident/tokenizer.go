package ident

import (
	"fmt"
	"regexp"
	"strings"
)

// Form names one of the three identifier forms.
type Form string

// Identifier forms.
const (
	FormSlug   Form = "slug"
	FormModule Form = "module"
	FormType   Form = "type"
)

// Identifiers holds the three forms derived from one title.
type Identifiers struct {
	Slug   string // "dot-net"
	Module string // "dot_net"
	Type   string // "DotNET"
}

// TokenizationError reports a title for which a form could not produce a
// valid identifier.
type TokenizationError struct {
	Title  string
	Form   Form
	Result string // what the rules produced; empty when nothing survived
}

func (e *TokenizationError) Error() string {
	if e.Result == "" {
		return fmt.Sprintf("tokenize %q: %s identifier is empty", e.Title, e.Form)
	}
	return fmt.Sprintf("tokenize %q: %s identifier %q is not valid", e.Title, e.Form, e.Result)
}

var (
	whitespace    = regexp.MustCompile(`\s+`)
	separatorRun  = regexp.MustCompile(`[\s-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	underscoreRun = regexp.MustCompile(`_{2,}`)
	slugIllegal   = regexp.MustCompile(`[^a-z0-9-]+`)
	moduleIllegal = regexp.MustCompile(`[^a-z0-9_]+`)
	typeIllegal   = regexp.MustCompile(`[^A-Za-z0-9]+`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	modulePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	typePattern   = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// reservedSuffix is appended to keywords that cannot be escaped as raw
// identifiers.
const reservedSuffix = "_"

// Tokenizer turns titles into identifiers using its rule tables. The zero
// value is not usable; start from NewTokenizer.
type Tokenizer struct {
	Shared RuleTable
	Slug   RuleTable
	Module RuleTable
	Type   RuleTable

	// Reserved maps module names that are keywords in the target language to
	// the identifier emitted instead.
	Reserved map[string]string
	// ReservedTypes does the same for type names.
	ReservedTypes map[string]string
}

// NewTokenizer returns a tokenizer with the default rule tables.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		Shared:        SharedRules,
		Slug:          SlugRules,
		Module:        ModuleRules,
		Type:          TypeRules,
		Reserved:      ReservedWords(),
		ReservedTypes: ReservedTypeWords(),
	}
}

var defaultTokenizer = NewTokenizer()

// Slugify derives a slug with the default tables.
func Slugify(title string) (string, error) { return defaultTokenizer.Slugify(title) }

// Modulify derives a module name with the default tables.
func Modulify(title string) (string, error) { return defaultTokenizer.Modulify(title) }

// Structify derives a type name with the default tables.
func Structify(title string) (string, error) { return defaultTokenizer.Structify(title) }

// Tokenize derives all three forms with the default tables.
func Tokenize(title string) (Identifiers, error) { return defaultTokenizer.Tokenize(title) }

// Tokenize derives all three forms of title. It fails on the first form that
// cannot be produced.
func (t *Tokenizer) Tokenize(title string) (Identifiers, error) {
	var ids Identifiers
	var err error

	if ids.Slug, err = t.Slugify(title); err != nil {
		return Identifiers{}, err
	}
	if ids.Module, err = t.Modulify(title); err != nil {
		return Identifiers{}, err
	}
	if ids.Type, err = t.Structify(title); err != nil {
		return Identifiers{}, err
	}
	return ids, nil
}

// Slugify returns a lowercase slug made of ASCII letters, digits and single
// hyphens: ".NET" becomes "dot-net", "C++" becomes "cplusplus".
func (t *Tokenizer) Slugify(title string) (string, error) {
	s := normalize(t.Shared, title, Lower)
	s = t.Slug.Apply(s)
	s = whitespace.ReplaceAllLiteralString(s, "")

	s = slugIllegal.ReplaceAllLiteralString(strings.ToLower(foldMarks(s)), "")
	s = strings.Trim(hyphenRun.ReplaceAllLiteralString(s, "-"), "-")

	return t.check(title, FormSlug, s, slugPattern)
}

// Modulify returns a snake_case module name. Numbers are spelled out, symbols
// become words and keywords are escaped: "AT&T" becomes "at_and_t", "Loop"
// becomes "r#loop".
func (t *Tokenizer) Modulify(title string) (string, error) {
	s := ExpandNumerals(title, "_")
	s = normalize(t.Shared, s, Lower)
	s = t.Module.Apply(s)
	s = separatorRun.ReplaceAllLiteralString(s, "_")

	s = moduleIllegal.ReplaceAllLiteralString(strings.ToLower(foldMarks(s)), "")
	s = strings.Trim(underscoreRun.ReplaceAllLiteralString(s, "_"), "_")

	s, err := t.check(title, FormModule, s, modulePattern)
	if err != nil {
		return "", err
	}
	if escaped, ok := t.Reserved[s]; ok {
		return escaped, nil
	}
	return s, nil
}

// Structify returns a PascalCase type name: every word, including the "Dot"
// standing in for a period, starts with a capital letter. "C++" becomes
// "CPlusPlus", "about.me" becomes "AboutDotMe", "Self" becomes "Self_".
func (t *Tokenizer) Structify(title string) (string, error) {
	s := ExpandNumerals(title, " ")
	s = strings.ReplaceAll(s, ".", " Dot ")
	s = strings.ReplaceAll(s, "-", " ")
	s = normalize(t.Shared, s, TitleWords)
	s = t.Type.Apply(s)
	s = whitespace.ReplaceAllLiteralString(s, "")

	s = typeIllegal.ReplaceAllLiteralString(foldMarks(s), "")
	if s != "" {
		s = strings.ToUpper(s[:1]) + s[1:]
	}

	s, err := t.check(title, FormType, s, typePattern)
	if err != nil {
		return "", err
	}
	if escaped, ok := t.ReservedTypes[s]; ok {
		return escaped, nil
	}
	return s, nil
}

func (t *Tokenizer) check(title string, form Form, s string, valid *regexp.Regexp) (string, error) {
	if !valid.MatchString(s) {
		return "", &TokenizationError{Title: title, Form: form, Result: s}
	}
	return s, nil
}

// rawKeywords are Rust keywords usable as raw identifiers (r#name).
var rawKeywords = []string{
	"abstract", "as", "async", "await", "become", "box", "break", "const",
	"continue", "do", "dyn", "else", "enum", "extern", "false", "final", "fn",
	"for", "gen", "if", "impl", "in", "let", "loop", "macro", "match", "mod",
	"move", "mut", "override", "priv", "pub", "ref", "return", "static",
	"struct", "trait", "true", "try", "type", "typeof", "unsafe", "unsized",
	"use", "virtual", "where", "while", "yield",
}

// pathKeywords cannot be raw identifiers in Rust.
var pathKeywords = []string{"crate", "self", "super"}

// ReservedWords returns the default keyword escapes for module names.
func ReservedWords() map[string]string {
	m := make(map[string]string, len(rawKeywords)+len(pathKeywords))
	for _, kw := range rawKeywords {
		m[kw] = "r#" + kw
	}
	for _, kw := range pathKeywords {
		m[kw] = kw + reservedSuffix
	}
	return m
}

// ReservedTypeWords returns the default keyword escapes for type names.
// "Self" is the only Rust keyword a PascalCase name can collide with.
func ReservedTypeWords() map[string]string {
	return map[string]string{"Self": "Self" + reservedSuffix}
}

// IsModule reports whether name is a module identifier Modulify can produce,
// including the escaped keyword forms.
func IsModule(name string) bool {
	return modulePattern.MatchString(strings.TrimPrefix(name, "r#"))
}
