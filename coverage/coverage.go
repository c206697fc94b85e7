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

// Package coverage checks which code points are covered by a font.
package coverage

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
)

// Report summarises the glyph coverage of a font.
type Report struct {
	Family    string
	NumGlyphs int

	// Missing lists the requested code points which the font maps to
	// the .notdef glyph, in the order they were requested.
	Missing []rune
}

// Check parses a TrueType or OpenType font and looks up every code point
// in cc in the font's best character map.
func Check(data []byte, cc []rune) (*Report, error) {
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("coverage: %w", err)
	}

	lookup, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("coverage: %w", err)
	}

	res := &Report{
		Family:    font.FamilyName,
		NumGlyphs: font.NumGlyphs(),
	}
	seen := make(map[rune]bool, len(cc))
	for _, r := range cc {
		if seen[r] {
			continue
		}
		seen[r] = true
		if lookup.Lookup(r) == 0 {
			res.Missing = append(res.Missing, r)
		}
	}
	return res, nil
}
