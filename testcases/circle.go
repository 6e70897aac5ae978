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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

var circleCases = []TestCase{
	{
		Name:   "outline",
		Width:  64,
		Height: 64,
		Steps:  []Step{circle(32, 32, 25, White, false)},
	},
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Steps:  []Step{circle(32, 32, 25, White, true)},
	},
	{
		Name:   "nested",
		Width:  64,
		Height: 64,
		Steps: []Step{
			circle(32, 32, 28, Blue, true),
			circle(32, 32, 18, Green, true),
			circle(32, 32, 8, Red, true),
			circle(32, 32, 30, White, false),
		},
	},
	{
		Name:   "translucent",
		Width:  64,
		Height: 64,
		Blend:  true,
		Steps: []Step{
			circle(24, 26, 16, translucent(Red, 0.5), true),
			circle(40, 26, 16, translucent(Green, 0.5), true),
			circle(32, 40, 16, translucent(Blue, 0.5), true),
		},
	},
}

var clipCases = []TestCase{
	{
		Name:   "starburst",
		Width:  64,
		Height: 64,
		Clip:   &rect.Rect{LLx: 16, LLy: 16, URx: 48, URy: 48},
		Steps:  []Step{starburst(32, 32, 30, 24, true, 1)},
	},
	{
		Name:   "fill",
		Width:  64,
		Height: 64,
		Clip:   &rect.Rect{LLx: 8, LLy: 20, URx: 56, URy: 44},
		Steps: []Step{
			circle(32, 32, 28, Green, true),
			{Op: OpFill, Vertices: fivePointStar(32, 32, 30, Red)},
		},
	},
	{
		Name:   "offscreen",
		Width:  64,
		Height: 64,
		Steps: []Step{
			{Op: OpFill, Vertices: triangle(-40, -10, 100, 32, -40, 80, Blue)},
			{Op: OpSegment, Vertices: []Vertex{v(-1000, -900, White), v(1000, 1100, White)}},
		},
	},
}

var ctmCases = []TestCase{
	{
		Name:   "scaled_circle",
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(32, 32),
		Steps:  []Step{circle(0, 0, 14, White, true)},
	},
	{
		Name:   "rotated_rectangle",
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
		Steps: []Step{
			{Op: OpFill, Vertices: rectangle(-16, -10, 16, 10, Green)},
			{Op: OpOutline, Vertices: rectangle(-20, -14, 20, 14, White)},
		},
	},
}

// circle builds a circle step around (cx, cy).
func circle(cx, cy, r float64, c RGBA, filled bool) Step {
	return Step{
		Op:       OpCircle,
		Vertices: []Vertex{v(cx, cy, c)},
		Radius:   r,
		Filled:   filled,
	}
}
