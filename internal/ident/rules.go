// Package ident derives the three identifier forms of an icon title: the URL
// slug, the Rust module name and the Rust type name.
package ident

import (
	"regexp"
	"strings"
)

// Rule replaces every match of Pattern with Replacement. The replacement is
// literal; "$" has no special meaning.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// RuleTable is an ordered sequence of rules. Rules run one after another, so a
// rule sees the text produced by the rules before it.
type RuleTable []Rule

// Apply runs every rule of the table over s in order.
func (t RuleTable) Apply(s string) string {
	for _, r := range t {
		s = r.Pattern.ReplaceAllLiteralString(s, r.Replacement)
	}
	return s
}

// Concat returns a new table running t first and then each of the others.
func (t RuleTable) Concat(others ...RuleTable) RuleTable {
	out := make(RuleTable, 0, len(t))
	out = append(out, t...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

func rule(pattern, replacement string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// diacritics lists the accented Latin letters folded to their plain letter.
// Only lowercase variants are listed; uppercase rules are derived.
var diacritics = []struct {
	plain    string
	variants string
}{
	{"a", "àáâãä"},
	{"c", "çčć"},
	{"e", "èéêë"},
	{"i", "ìíîï"},
	{"n", "ñňń"},
	{"o", "òóôõö"},
	{"s", "šś"},
	{"u", "ùúûü"},
	{"y", "ýÿ"},
	{"z", "žź"},
}

// PunctuationRules drop punctuation that carries no meaning in an identifier.
var PunctuationRules = RuleTable{
	rule(`[!:'’‘ʼ]`, ""),
}

// FoldRules fold the enumerated diacritics, keeping the letter's case.
var FoldRules = foldRules()

func foldRules() RuleTable {
	table := make(RuleTable, 0, 2*len(diacritics))
	for _, d := range diacritics {
		table = append(table,
			rule("["+d.variants+"]", d.plain),
			rule("["+strings.ToUpper(d.variants)+"]", strings.ToUpper(d.plain)),
		)
	}
	return table
}

// SharedRules run for every identifier form, before the form's own table.
var SharedRules = PunctuationRules.Concat(FoldRules)

// SlugRules spell out symbols for URL slugs.
var SlugRules = RuleTable{
	rule(`\+`, "plus"),
	rule(`^\.`, "dot-"),
	rule(`\.$`, "-dot"),
	rule(`\.`, "-dot-"),
	rule(`^&`, "and-"),
	rule(`&$`, "-and"),
	rule(`&`, "-and-"),
}

// ModuleRules spell out symbols for module names.
var ModuleRules = RuleTable{
	rule(`\+`, "plus"),
	rule(`^\.`, "dot_"),
	rule(`\.$`, "_dot"),
	rule(`\.`, "_dot_"),
	rule(`^&`, "and_"),
	rule(`&$`, "_and"),
	rule(`&`, "_and_"),
}

// TypeRules spell out symbols for type names. Dots are handled earlier, when
// the title is split into words.
var TypeRules = RuleTable{
	rule(`\+`, "Plus"),
	rule(`&`, "And"),
}
