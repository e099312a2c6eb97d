// Package manifest renders the Cargo.toml of the generated crate.
package manifest

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// DefaultEdition is the Rust edition written when none is configured.
const DefaultEdition = "2021"

const header = "# Code generated by iconcrate. DO NOT EDIT.\n\n"

var crateName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// Manifest is a Cargo.toml document.
type Manifest struct {
	Package      Package           `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

// Package is the [package] table.
type Package struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Authors     []string `toml:"authors,omitempty"`
	Edition     string   `toml:"edition"`
	Description string   `toml:"description,omitempty"`
	License     string   `toml:"license,omitempty"`
	Repository  string   `toml:"repository,omitempty"`
}

// New returns a manifest for crate name at version. The version must be
// valid semver; it is written in canonical form.
func New(name, version string) (*Manifest, error) {
	if !crateName.MatchString(name) {
		return nil, fmt.Errorf("invalid crate name %q", name)
	}
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid crate version %q: %w", version, err)
	}

	return &Manifest{
		Package: Package{
			Name:    name,
			Version: v.String(),
			Edition: DefaultEdition,
		},
		Dependencies: map[string]string{},
	}, nil
}

// Encode renders m as TOML.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode Cargo.toml: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a Cargo.toml produced by Encode.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("decode Cargo.toml: %w", err)
	}
	return &m, nil
}
