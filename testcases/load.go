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

package testcases

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by all validation errors from [Load] and
// [TestCase.Validate].
var ErrInvalidScene = errors.New("invalid scene")

// maxCanvasSize bounds the width and height of loaded scenes.
const maxCanvasSize = 1 << 14

// Load reads a YAML list of test cases from r and validates them.
func Load(r io.Reader) ([]TestCase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cases []TestCase
	if err := dec.Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding scenes: %w", err)
	}

	seen := make(map[string]bool, len(cases))
	for i := range cases {
		tc := &cases[i]
		if err := tc.Validate(); err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		if seen[tc.Name] {
			return nil, fmt.Errorf("scene %d: duplicate name %q: %w", i, tc.Name, ErrInvalidScene)
		}
		seen[tc.Name] = true
	}
	return cases, nil
}

// LoadFile reads a YAML list of test cases from the named file.
func LoadFile(name string) (cases []TestCase, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cases, err = Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cases, nil
}

// Validate checks that tc can be rendered.
func (tc *TestCase) Validate() error {
	if !validName(tc.Name) {
		return fmt.Errorf("name %q: %w", tc.Name, ErrInvalidScene)
	}
	if tc.Width <= 0 || tc.Height <= 0 || tc.Width > maxCanvasSize || tc.Height > maxCanvasSize {
		return fmt.Errorf("%s: canvas size %dx%d: %w", tc.Name, tc.Width, tc.Height, ErrInvalidScene)
	}
	for i, s := range tc.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s: step %d: %w", tc.Name, i, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	switch s.Op {
	case OpPoint, OpSegment, OpOutline, OpFill, OpInterpolatedFill:
		// any number of vertices
	case OpCircle:
		if len(s.Vertices) != 1 {
			return fmt.Errorf("circle needs exactly one vertex, got %d: %w",
				len(s.Vertices), ErrInvalidScene)
		}
		if !(s.Radius >= 0) {
			return fmt.Errorf("circle radius %g: %w", s.Radius, ErrInvalidScene)
		}
	default:
		return fmt.Errorf("unknown operation %q: %w", s.Op, ErrInvalidScene)
	}
	if s.Thickness < 0 || s.Size < 0 {
		return fmt.Errorf("negative thickness or size: %w", ErrInvalidScene)
	}
	return nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
