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

// Package archive reads named entries from a zip archive held in memory.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/zip"
)

// MissingEntryError is returned by [Reader.ReadFile] if the archive has no
// entry with the requested name.
type MissingEntryError struct {
	Name string
}

func (err *MissingEntryError) Error() string {
	return "archive: no entry " + err.Name
}

// Is allows to match the error against [fs.ErrNotExist].
func (err *MissingEntryError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// Reader gives access to the entries of a zip archive.
type Reader struct {
	zr *zip.Reader
}

// Open interprets data as a zip archive.
// The data must not be modified while the Reader is in use.
func Open(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return &Reader{zr: zr}, nil
}

// Names lists the entry names in the order they appear in the archive.
func (r *Reader) Names() []string {
	res := make([]string, len(r.zr.File))
	for i, f := range r.zr.File {
		res[i] = f.Name
	}
	return res
}

// ReadFile returns the uncompressed contents of the entry called name.
// If several entries share the name, the last one is used.
func (r *Reader) ReadFile(name string) ([]byte, error) {
	var entry *zip.File
	for _, f := range r.zr.File {
		if f.Name == name {
			entry = f
		}
	}
	if entry == nil {
		return nil, &MissingEntryError{Name: name}
	}

	fd, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("archive: %s: %w", name, err)
	}
	defer fd.Close()

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, fmt.Errorf("archive: %s: %w", name, err)
	}
	return data, nil
}
