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

package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	cases := []struct {
		info Info
		want string
	}{
		{Info{Tool: "tool"}, "tool"},
		{Info{Tool: "tool", Module: "seehuhn.de/go/iconfont"}, "tool"},
		{Info{Tool: "tool", Module: "seehuhn.de/go/iconfont", Version: "v0.1.0"},
			"tool (seehuhn.de/go/iconfont v0.1.0)"},
	}
	for _, c := range cases {
		if got := c.info.String(); got != c.want {
			t.Errorf("%#v: got %q, want %q", c.info, got, c.want)
		}
	}
}

func TestVersion(t *testing.T) {
	cases := []struct {
		info *debug.BuildInfo
		want string
	}{
		{&debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, "v1.2.3"},
		{&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, ""},
		{&debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			},
		}, "01234567"},
		{&debug.BuildInfo{
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, "abc+dirty"},
	}
	for i, c := range cases {
		if got := version(c.info); got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}
}

func TestRead(t *testing.T) {
	info := Read("update-phosphor-icons")
	if info.Tool != "update-phosphor-icons" {
		t.Errorf("wrong tool name %q", info.Tool)
	}
	if !strings.HasPrefix(info.String(), "update-phosphor-icons") {
		t.Errorf("unexpected version string %q", info.String())
	}
}
