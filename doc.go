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

// Package iconfont provides the Phosphor icon font for Go programs.
//
// The font file and the Go constants naming its glyphs are generated by the
// update-phosphor-icons tool, which downloads the current Phosphor release:
//
//	go generate seehuhn.de/go/iconfont
//
// This writes res/icons/Phosphor.ttf and icons/icons-gen.go.  The generated
// package declares one string constant per icon name, for example
// icons.CARET_DOWN, holding the single character which selects the icon's
// glyph in the font.
package iconfont

//go:generate go run ./tools/update-phosphor-icons
