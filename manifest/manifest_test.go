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

package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `{
  "IcoMoonType": "selection",
  "icons": [
    {
      "icon": {"paths": ["M0 0"], "tags": ["acorn"]},
      "attrs": [],
      "properties": {"order": 1, "id": 0, "name": "acorn", "prevSize": 32, "code": 57344},
      "setIdx": 0,
      "setId": 1,
      "iconIdx": 0
    },
    {
      "properties": {"name": "a-icon, a-alt", "code": 128512}
    }
  ],
  "height": 1024,
  "metadata": {"name": "Phosphor"},
  "preferences": {"showGlyphs": true}
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	want := &Manifest{
		Name: "Phosphor",
		Icons: []Icon{
			{Names: []string{"acorn"}, Code: 0xE000},
			{Names: []string{"a-icon", "a-alt"}, Code: 0x1F600},
		},
	}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("manifest (-want +got):\n%s", d)
	}
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse([]byte(`{"icons": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if len(m.Icons) != 0 {
		t.Errorf("got %d icons, want 0", len(m.Icons))
	}
}

func TestParseShapeErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		index int
		field string
	}{
		{"no icons", `{"metadata": {"name": "x"}}`, -1, "icons"},
		{"null icons", `{"icons": null}`, -1, "icons"},
		{"no properties", `{"icons": [{"icon": {}}]}`, 0, "properties"},
		{"no name", `{"icons": [{"properties": {"code": 1}}]}`, 0, "properties.name"},
		{"no code", `{"icons": [{"properties": {"name": "x"}}, {"properties": {"name": "y"}}]}`, 0, "properties.code"},
		{"second icon", `{"icons": [{"properties": {"name": "x", "code": 65}}, {"properties": {"name": "y"}}]}`, 1, "properties.code"},
		{"empty name", `{"icons": [{"properties": {"name": "", "code": 65}}]}`, 0, "properties.name"},
		{"empty alias", `{"icons": [{"properties": {"name": "x, ", "code": 65}}]}`, 0, "properties.name"},
		{"negative code", `{"icons": [{"properties": {"name": "x", "code": -1}}]}`, 0, "properties.code"},
		{"surrogate", `{"icons": [{"properties": {"name": "x", "code": 55296}}]}`, 0, "properties.code"},
		{"too large", `{"icons": [{"properties": {"name": "x", "code": 1114112}}]}`, 0, "properties.code"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected *ShapeError, got %v", err)
			}
			if shapeErr.Index != c.index || shapeErr.Field != c.field {
				t.Errorf("error at %d/%q, want %d/%q", shapeErr.Index, shapeErr.Field, c.index, c.field)
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	cases := []string{
		`{"icons": {}}`,
		`{"icons": [{"properties": {"name": 7, "code": 65}}]}`,
		`{"icons": [{"properties": {"name": "x", "code": "E000"}}]}`,
		`[]`,
	}
	for _, in := range cases {
		_, err := Parse([]byte(in))
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("%s: expected *ShapeError, got %v", in, err)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`{"icons": [`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"acorn", []string{"acorn"}},
		{"a-icon, a-alt", []string{"a-icon", "a-alt"}},
		{"a, b, c", []string{"a", "b", "c"}},
		{"a,b", []string{"a,b"}},
	}
	for _, c := range cases {
		got := SplitNames(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, d)
		}
	}
}
