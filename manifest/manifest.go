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

// Package manifest decodes the icon manifest of an icon font distribution.
//
// The manifest is the "selection.json" file written by the IcoMoon font
// generator.  Only the parts needed to map icon names to code points are
// decoded:
//
//	{
//	  "icons": [
//	    {"properties": {"name": "arrow-up, arrow-north", "code": 59648, ...}, ...},
//	    ...
//	  ],
//	  "metadata": {"name": "Phosphor"},
//	  ...
//	}
//
// All other fields are ignored.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// NameSeparator separates the aliases in the name field of an icon.
const NameSeparator = ", "

// Manifest lists the icons of a font, in the order given in the file.
type Manifest struct {
	// Name is the font name from the manifest metadata, or "" if the
	// manifest does not specify one.
	Name string

	Icons []Icon
}

// Icon describes one glyph of the font.
type Icon struct {
	// Names holds one or more alias names for the icon.
	Names []string

	// Code is the code point of the glyph.
	Code rune
}

// ShapeError is returned by [Parse] if the manifest does not have the
// expected structure.
type ShapeError struct {
	// Index is the position of the offending icon in the icon list,
	// or -1 if the error is not specific to one icon.
	Index int

	// Field is the dotted path of the offending field.
	Field string

	Err error
}

func (err *ShapeError) Error() string {
	loc := err.Field
	if err.Index >= 0 {
		loc = fmt.Sprintf("icons[%d].%s", err.Index, err.Field)
	}
	if loc == "" {
		return "manifest: " + err.Err.Error()
	}
	return "manifest: " + loc + ": " + err.Err.Error()
}

func (err *ShapeError) Unwrap() error {
	return err.Err
}

var (
	errMissing     = errors.New("missing")
	errEmptyName   = errors.New("empty alias name")
	errInvalidCode = errors.New("not a valid Unicode code point")
)

type rawManifest struct {
	Icons    *[]rawIcon   `json:"icons"`
	Metadata *rawMetadata `json:"metadata"`
}

type rawMetadata struct {
	Name string `json:"name"`
}

type rawIcon struct {
	Properties *rawProperties `json:"properties"`
}

type rawProperties struct {
	Name *string `json:"name"`
	Code *int64  `json:"code"`
}

// Parse decodes a manifest.
//
// Missing fields, fields of the wrong type and code points which are not
// Unicode scalar values are reported as a [*ShapeError].
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	dec := json.NewDecoder(bytes.NewReader(data))
	err := dec.Decode(&raw)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ShapeError{Index: -1, Field: typeErr.Field, Err: err}
		}
		return nil, fmt.Errorf("manifest: %w", err)
	}

	if raw.Icons == nil {
		return nil, &ShapeError{Index: -1, Field: "icons", Err: errMissing}
	}

	m := &Manifest{
		Icons: make([]Icon, 0, len(*raw.Icons)),
	}
	if raw.Metadata != nil {
		m.Name = raw.Metadata.Name
	}

	for i, icon := range *raw.Icons {
		props := icon.Properties
		switch {
		case props == nil:
			return nil, &ShapeError{Index: i, Field: "properties", Err: errMissing}
		case props.Name == nil:
			return nil, &ShapeError{Index: i, Field: "properties.name", Err: errMissing}
		case props.Code == nil:
			return nil, &ShapeError{Index: i, Field: "properties.code", Err: errMissing}
		}

		names := SplitNames(*props.Name)
		for _, name := range names {
			if name == "" {
				return nil, &ShapeError{Index: i, Field: "properties.name", Err: errEmptyName}
			}
		}

		code := *props.Code
		if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return nil, &ShapeError{
				Index: i,
				Field: "properties.code",
				Err:   fmt.Errorf("%d: %w", code, errInvalidCode),
			}
		}

		m.Icons = append(m.Icons, Icon{
			Names: names,
			Code:  rune(code),
		})
	}

	return m, nil
}

// SplitNames splits the name field of an icon into its aliases.
func SplitNames(field string) []string {
	return strings.Split(field, NameSeparator)
}
