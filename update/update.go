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

// Package update downloads the Phosphor icon font and generates Go
// constants for its glyphs.
package update

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/iconfont/archive"
	"seehuhn.de/go/iconfont/codegen"
	"seehuhn.de/go/iconfont/coverage"
	"seehuhn.de/go/iconfont/fetch"
	"seehuhn.de/go/iconfont/manifest"
)

// Generator is the name used in the header of the generated code.
const Generator = "update-phosphor-icons"

// Config describes where the icons come from and where the results go.
type Config struct {
	// URL is the location of the zip archive.
	URL string

	// FontEntry and ManifestEntry are the paths of the font and of the
	// icon manifest inside the archive.
	FontEntry     string
	ManifestEntry string

	// FontPath and SourcePath are the output files.
	FontPath   string
	SourcePath string

	// Package is the package name of the generated source file.
	Package string

	// Client is used for the download.  If this is nil,
	// [http.DefaultClient] is used.
	Client *http.Client
}

// DefaultConfig returns the locations used by the update-phosphor-icons
// tool.  Output paths are relative to the repository root.
func DefaultConfig() *Config {
	return &Config{
		URL:           "https://phosphoricons.com/assets/phosphor-icons.zip",
		FontEntry:     "Fonts/regular/Phosphor.ttf",
		ManifestEntry: "Fonts/regular/selection.json",
		FontPath:      filepath.Join("res", "icons", "Phosphor.ttf"),
		SourcePath:    filepath.Join("icons", "icons-gen.go"),
		Package:       "icons",
	}
}

// Run downloads the archive, writes the font file and then writes the
// generated source file.
//
// The font file is written before the manifest is read.  If the manifest
// is missing or cannot be used, the font file stays on disk and the
// source file is left untouched.
func Run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	logger.Info("downloading icons", "url", cfg.URL)
	data, err := fetch.Get(ctx, cfg.Client, cfg.URL)
	if err != nil {
		return err
	}
	logger.Info("downloaded icons", "bytes", len(data))

	zr, err := archive.Open(data)
	if err != nil {
		return err
	}

	font, err := zr.ReadFile(cfg.FontEntry)
	if err != nil {
		return err
	}
	err = writeFile(cfg.FontPath, font)
	if err != nil {
		return err
	}
	logger.Info("wrote font file", "path", cfg.FontPath, "bytes", len(font))

	body, err := zr.ReadFile(cfg.ManifestEntry)
	if err != nil {
		return err
	}
	m, err := manifest.Parse(body)
	if err != nil {
		return err
	}
	cc := codegen.Constants(m)

	checkGlyphs(logger, font, m)

	buf := &bytes.Buffer{}
	opt := &codegen.Options{
		Package:   cfg.Package,
		Generator: Generator,
		FontName:  m.Name,
	}
	err = codegen.Write(buf, opt, cc)
	if err != nil {
		return err
	}
	err = writeFile(cfg.SourcePath, buf.Bytes())
	if err != nil {
		return err
	}
	logger.Info("wrote icon string constants",
		"path", cfg.SourcePath,
		"icons", len(m.Icons),
		"constants", len(cc))

	return nil
}

// checkGlyphs reports icons which have no glyph in the font.
// Problems are logged but never stop the update.
func checkGlyphs(logger *slog.Logger, font []byte, m *manifest.Manifest) {
	codes := make([]rune, len(m.Icons))
	for i, icon := range m.Icons {
		codes[i] = icon.Code
	}

	report, err := coverage.Check(font, codes)
	if err != nil {
		logger.Warn("cannot inspect font", "error", err)
		return
	}
	logger.Debug("font glyphs", "family", report.Family, "glyphs", report.NumGlyphs)

	if len(report.Missing) == 0 {
		return
	}
	missing := make([]string, len(report.Missing))
	for i, r := range report.Missing {
		missing[i] = "U+" + codegen.Hex(r)
	}
	logger.Warn("icons without glyph",
		"count", len(missing),
		"codes", strings.Join(missing, " "))
}

// writeFile creates or truncates the file at path and writes data to it.
// Missing parent directories are created.
func writeFile(path string, data []byte) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = fd.Write(data)
	if err != nil {
		fd.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fd.Close()
}
