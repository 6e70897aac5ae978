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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

func TestLoadFile(t *testing.T) {
	cases, err := LoadFile(filepath.Join("testdata", "scenes.yaml"))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	tri := cases[0]
	assert.Equal(t, "gradient_triangle", tri.Name)
	assert.Equal(t, 48, tri.Width)
	require.Len(t, tri.Steps, 1)
	assert.Equal(t, OpInterpolatedFill, tri.Steps[0].Op)
	assert.Equal(t, []Vertex{v(4, 4, Red), v(44, 10, Green), v(20, 44, Blue)}, tri.Steps[0].Vertices)

	lines := cases[1]
	assert.Equal(t, White, lines.Background)
	require.NotNil(t, lines.Clip)
	assert.Equal(t, rect.Rect{LLx: 4, LLy: 4, URx: 28, URy: 28}, *lines.Clip)
	assert.Equal(t, 3, lines.Steps[0].Thickness)
	assert.True(t, lines.Steps[0].Interpolate)

	circles := cases[2]
	assert.True(t, circles.Blend)
	assert.Equal(t, matrix.Matrix{1, 0, 0, 1, 20, 20}, circles.CTM)
	assert.Equal(t, 12.0, circles.Steps[0].Radius)
	assert.True(t, circles.Steps[0].Filled)
	assert.Equal(t, translucent(Red, 0.5), circles.Steps[0].Vertices[0].Colour)
	assert.Equal(t, 2, circles.Steps[2].Size)
}

func TestLoadEmpty(t *testing.T) {
	cases, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad name": `
- name: Bad-Name
  width: 10
  height: 10`,
		"zero width": `
- name: zero
  width: 0
  height: 10`,
		"too large": `
- name: large
  width: 100000
  height: 10`,
		"unknown op": `
- name: op
  width: 10
  height: 10
  steps:
    - op: spline`,
		"circle without centre": `
- name: circle
  width: 10
  height: 10
  steps:
    - op: circle
      radius: 3`,
		"negative radius": `
- name: circle
  width: 10
  height: 10
  steps:
    - op: circle
      radius: -3
      vertices: [{x: 1, y: 1, colour: [1, 1, 1, 1]}]`,
		"negative thickness": `
- name: seg
  width: 10
  height: 10
  steps:
    - op: segment
      thickness: -1`,
		"duplicate": `
- name: twice
  width: 10
  height: 10
- name: twice
  width: 5
  height: 5`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(strings.NewReader("- name: x\n  wdth: 10\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidScene)

	_, err = Load(strings.NewReader("- [unclosed"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "does_not_exist.yaml"))
	assert.Error(t, err)
}

// TestBuiltinScenes checks that all built-in scenes are valid and have
// unique names within their category.
func TestBuiltinScenes(t *testing.T) {
	for category, cases := range All {
		seen := make(map[string]bool)
		for _, tc := range cases {
			assert.NoError(t, tc.Validate(), "%s_%s", category, tc.Name)
			assert.False(t, seen[tc.Name], "duplicate scene %s_%s", category, tc.Name)
			seen[tc.Name] = true
		}
	}
}

func TestStepPath(t *testing.T) {
	seg := Step{Op: OpSegment, Vertices: []Vertex{v(0, 0, White), v(4, 0, White), v(9, 9, White)}}
	p := seg.Path()
	require.NotNil(t, p)
	assert.Len(t, p.Cmds, 2) // the unpaired vertex is dropped

	fill := Step{Op: OpFill, Vertices: triangle(0, 0, 4, 0, 0, 4, White)}
	p = fill.Path()
	require.NotNil(t, p)
	assert.Len(t, p.Cmds, 4)

	c := circle(5, 5, 2, White, true).Path()
	require.NotNil(t, c)
	assert.Len(t, c.Cmds, 6)

	point := Step{Op: OpPoint, Size: 3, Vertices: []Vertex{v(5.5, 5.5, White)}}
	p = point.Path()
	require.NotNil(t, p)
	assert.Equal(t, 4.0, p.Coords[0].X)
	assert.Equal(t, 4.0, p.Coords[0].Y)

	assert.Nil(t, Step{Op: OpOutline}.Path())
	assert.Nil(t, Step{Op: OpCircle}.Path())
}
