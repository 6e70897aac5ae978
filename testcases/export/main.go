// seehuhn.de/go/pixel - a 2D software rasteriser
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

// Command export renders test cases with the rasteriser and writes them
// as PNG files.  By default the built-in test cases are rendered; use
// -scenes to render the test cases from a YAML file instead.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/output", "output directory")
	scenes := flag.String("scenes", "", "YAML file with test cases to render")
	verbose := flag.Bool("v", false, "log rasteriser diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixel.SetLogger(logger)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	named, err := collect(*scenes)
	if err != nil {
		panic(err)
	}

	r := pixel.NewRasteriser(0, 0)
	for _, name := range slices.Sorted(maps.Keys(named)) {
		tc := named[name]
		pixel.RenderInto(r, tc)

		fname := filepath.Join(*outDir, name+".png")
		if err := writePNG(fname, r.Framebuffer()); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		logger.Info("wrote", "file", fname, "width", tc.Width, "height", tc.Height)
	}
}

// collect returns the test cases to render, keyed by output file name.
func collect(scenes string) (map[string]testcases.TestCase, error) {
	res := make(map[string]testcases.TestCase)
	if scenes != "" {
		cases, err := testcases.LoadFile(scenes)
		if err != nil {
			return nil, err
		}
		for _, tc := range cases {
			res[tc.Name] = tc
		}
		return res, nil
	}

	for category, cases := range testcases.All {
		for _, tc := range cases {
			res[category+"_"+tc.Name] = tc
		}
	}
	return res, nil
}

func writePNG(fname string, fb *pixel.Framebuffer) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, fb.Image())
}
