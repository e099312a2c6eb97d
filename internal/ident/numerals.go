package ident

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

var smallNumbers = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scales = []struct {
	value uint64
	name  string
}{
	{1e18, "quintillion"},
	{1e15, "quadrillion"},
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
	{1e3, "thousand"},
}

// ExpandNumerals replaces every run of ASCII digits with its English cardinal
// words, each capitalized and joined by sep. The replacement is padded with a
// space on both sides so it never fuses with neighbouring letters:
//
//	ExpandNumerals("Windows 11", " ") == "Windows  Eleven "
//	ExpandNumerals("500px", "_")      == " Five_Hundred px"
func ExpandNumerals(text, sep string) string {
	return digitRun.ReplaceAllStringFunc(text, func(run string) string {
		return " " + strings.Join(numberWords(run), sep) + " "
	})
}

func numberWords(run string) []string {
	n, err := strconv.ParseUint(run, 10, 64)
	if err != nil {
		// Too large for a cardinal; spell it digit by digit.
		words := make([]string, 0, len(run))
		for _, d := range run {
			words = append(words, capitalize(smallNumbers[d-'0']))
		}
		return words
	}

	parts := strings.FieldsFunc(Cardinal(n), func(r rune) bool {
		return r == '-' || r == ' '
	})
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return parts
}

// Cardinal returns the lowercase English cardinal of n, hyphenating the
// compound tens: Cardinal(1234) == "one thousand two hundred thirty-four".
func Cardinal(n uint64) string {
	if n < 20 {
		return smallNumbers[n]
	}

	var parts []string
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, belowThousand(n/s.value), s.name)
			n %= s.value
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n uint64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		word := tens[n/10]
		if n%10 != 0 {
			word += "-" + smallNumbers[n%10]
		}
		parts = append(parts, word)
	case n > 0:
		parts = append(parts, smallNumbers[n])
	}
	return strings.Join(parts, " ")
}
