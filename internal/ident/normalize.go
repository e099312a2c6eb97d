package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CaseMode selects the case folding done by Normalize.
type CaseMode int

const (
	// Lower folds the whole text to lowercase (slugs and module names).
	Lower CaseMode = iota
	// TitleWords uppercases the first letter of every whitespace separated
	// word and leaves the rest untouched (type names).
	TitleWords
)

// Normalize folds case, drops identifier-irrelevant punctuation and folds the
// enumerated Latin diacritics, in that order. Characters outside the
// enumerated set pass through unchanged.
func Normalize(text string, mode CaseMode) string {
	return normalize(SharedRules, text, mode)
}

func normalize(shared RuleTable, text string, mode CaseMode) string {
	switch mode {
	case Lower:
		text = strings.ToLower(text)
	case TitleWords:
		text = titleWords(text)
	}
	return shared.Apply(text)
}

func titleWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	start := true
	for _, r := range text {
		if start && !unicode.IsSpace(r) {
			b.WriteString(capitalize(string(r)))
			start = false
			continue
		}
		b.WriteRune(r)
		start = unicode.IsSpace(r)
	}
	return b.String()
}

// capitalize title-cases the first rune of word and keeps the remainder as is.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return cases.Title(language.Und).String(word[:size]) + word[size:]
}

// foldMarks strips combining marks left after canonical decomposition, so
// accented letters outside the enumerated set still reduce to a base letter.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
