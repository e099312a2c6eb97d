// Package svg extracts and prepares the SVG data embedded for each icon.
package svg

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// pathPattern matches the d attribute of a simple path: whitespace, word
// characters, hyphens, dots and commas only.
var pathPattern = regexp.MustCompile(`path d="([\s\w\-\.,]*)"`)

var (
	// ErrNoPath is returned when the markup has no extractable path.
	ErrNoPath = errors.New("no simple path element")
	// ErrNotSVG is returned when the document root is not an <svg> element.
	ErrNotSVG = errors.New("not an SVG document")
)

// PathExtractionError names the icon whose SVG had no extractable path.
type PathExtractionError struct {
	Slug string
	Err  error
}

func (e *PathExtractionError) Error() string {
	return fmt.Sprintf("failed to parse SVG path for %s: %v", e.Slug, e.Err)
}

func (e *PathExtractionError) Unwrap() error { return e.Err }

// ExtractPath returns the d attribute of the first simple path element.
func ExtractPath(markup string) (string, error) {
	m := pathPattern.FindStringSubmatch(markup)
	if m == nil {
		return "", ErrNoPath
	}
	return m[1], nil
}

// literalEscaper escapes the characters that end or alter a Rust string
// literal. It makes a single pass, so added backslashes are not escaped again.
var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape backslash-escapes backslashes and double quotes so markup can sit
// inside a string literal.
func Escape(markup string) string {
	return literalEscaper.Replace(markup)
}

// Validate checks that the first element of markup is <svg>. Prolog,
// doctype and comments before it are skipped.
func Validate(markup string) error {
	l := xml.NewLexer(parse.NewInputString(markup))
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("%w: %v", ErrNotSVG, err)
			}
			return fmt.Errorf("%w: no root element", ErrNotSVG)
		case xml.StartTagToken:
			name := strings.TrimSpace(strings.TrimPrefix(string(data), "<"))
			if name != "svg" {
				return fmt.Errorf("%w: root element is <%s>", ErrNotSVG, name)
			}
			return nil
		}
	}
}
