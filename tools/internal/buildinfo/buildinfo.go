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
)

// Info identifies the build of a command line tool.
type Info struct {
	Tool string

	// Module is the main module path, or "" if no build information is
	// embedded in the binary.
	Module string

	// Version is the module version, or a VCS revision (shortened to eight
	// hex digits, with "+dirty" for modified trees) for development builds.
	Version string
}

// Read collects the build information embedded in the running binary.
func Read(toolName string) Info {
	res := Info{Tool: toolName}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return res
	}
	res.Module = info.Main.Path
	res.Version = version(info)
	return res
}

func version(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}

// String returns a short version string, e.g.
// "update-phosphor-icons (seehuhn.de/go/iconfont v0.1.0)".
func (info Info) String() string {
	if info.Module == "" || info.Version == "" {
		return info.Tool
	}
	return info.Tool + " (" + info.Module + " " + info.Version + ")"
}
