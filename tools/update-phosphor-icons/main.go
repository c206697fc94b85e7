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

// Update-phosphor-icons downloads the Phosphor icon font and regenerates
// the Go string constants for its icons.
//
// The tool takes no arguments.  Run it from the repository root:
//
//	go run ./tools/update-phosphor-icons
//
// It writes res/icons/Phosphor.ttf and icons/icons-gen.go.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/iconfont/internal/logging"
	"seehuhn.de/go/iconfont/tools/internal/buildinfo"
	"seehuhn.de/go/iconfont/update"
)

const toolName = "update-phosphor-icons"

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("unexpected arguments")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	info := buildinfo.Read(toolName)

	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s - download the Phosphor icon font and generate Go constants\n", toolName)
		fmt.Fprintf(stderr, "%s\n\n", info)
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  %s\n\n", toolName)
		fmt.Fprintf(stderr, "Run from the repository root.  The tool takes no options.\n")
	}
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return errUsage
	}

	logger := slog.New(logging.NewTerminalHandler(stdout, slog.LevelInfo))
	logger.Debug("starting", "version", info.String())

	return update.Run(ctx, update.DefaultConfig(), logger)
}
