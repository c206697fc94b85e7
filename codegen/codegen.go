// seehuhn.de/go/iconfont - icon fonts for Go programs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package codegen renders icon manifests as Go source code.
//
// Every alias of every icon becomes an exported string constant whose value
// is the single character at the icon's code point:
//
//	const ARROW_UP = "\uE000"
//
// The generated code is deterministic: the same manifest always gives the
// same bytes.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/iconfont/manifest"
)

// A Constant is a single generated declaration.
type Constant struct {
	// Name is the Go identifier.
	Name string

	// Alias is the icon name the identifier was derived from.
	Alias string

	Code rune
}

// Identifier converts an icon name into a constant name, by mapping
// all letters to upper case and replacing hyphens with underscores.
func Identifier(name string) string {
	upper := cases.Upper(language.Und).String(name)
	return strings.ReplaceAll(upper, "-", "_")
}

// Hex formats a code point as upper case hexadecimal digits, without a
// prefix and without leading zeros.
func Hex(code rune) string {
	return fmt.Sprintf("%X", code)
}

// Literal returns the Go escape sequence for code, for use inside a double
// quoted string literal.
//
// Code points in the Basic Multilingual Plane use the four digit \u form,
// all others use the eight digit \U form.
func Literal(code rune) string {
	hex := Hex(code)
	if code <= 0xFFFF {
		return `\u` + strings.Repeat("0", 4-len(hex)) + hex
	}
	return `\U` + strings.Repeat("0", 8-len(hex)) + hex
}

// Constants lists the declarations for all icon aliases in m, in manifest
// order.  Aliases of the same icon share the same value.
func Constants(m *manifest.Manifest) []Constant {
	var res []Constant
	for _, icon := range m.Icons {
		for _, alias := range icon.Names {
			res = append(res, Constant{
				Name:  Identifier(alias),
				Alias: alias,
				Code:  icon.Code,
			})
		}
	}
	return res
}

// DuplicateError is returned by [Write] if two aliases map to the same
// identifier.  Go does not allow a constant to be declared twice.
type DuplicateError struct {
	Name   string
	First  Constant
	Second Constant
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("codegen: duplicate identifier %s (from %q U+%04X and %q U+%04X)",
		err.Name, err.First.Alias, err.First.Code, err.Second.Alias, err.Second.Code)
}

// Options control the file header of the generated code.
type Options struct {
	// Package is the name of the generated package.
	Package string

	// Generator is named in the "Code generated" comment.
	Generator string

	// FontName, if set, is mentioned in the comment above the constants.
	FontName string
}

// Write writes a Go source file declaring the constants cc to w.
//
// The complete file is rendered before anything is written, so that
// nothing is written to w if an error occurs.
func Write(w io.Writer, opt *Options, cc []Constant) error {
	if !token.IsIdentifier(opt.Package) {
		return fmt.Errorf("codegen: invalid package name %q", opt.Package)
	}

	seen := make(map[string]Constant, len(cc))
	for _, c := range cc {
		if !token.IsIdentifier(c.Name) {
			return fmt.Errorf("codegen: %q (from %q) is not a valid identifier", c.Name, c.Alias)
		}
		if first, ok := seen[c.Name]; ok {
			return &DuplicateError{Name: c.Name, First: first, Second: c}
		}
		seen[c.Name] = c
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by %s; DO NOT EDIT.\n\n", opt.Generator)
	fmt.Fprintf(buf, "package %s\n", opt.Package)
	if len(cc) > 0 {
		buf.WriteString("\n")
		if name := strings.Join(strings.Fields(opt.FontName), " "); name != "" {
			fmt.Fprintf(buf, "// Glyphs of the %s icon font.\n\n", name)
		}
		for _, c := range cc {
			fmt.Fprintf(buf, "const %s = \"%s\"\n", c.Name, Literal(c.Code))
		}
	}

	body, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	_, err = w.Write(body)
	return err
}
