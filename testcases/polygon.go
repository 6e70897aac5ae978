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

import "math"

var polygonCases = []TestCase{
	{
		Name:   "outline_convex",
		Width:  64,
		Height: 64,
		Steps: []Step{
			{Op: OpOutline, Vertices: triangle(10, 50, 32, 10, 54, 50, Green)},
			{Op: OpOutline, Vertices: rectangle(4, 4, 20, 20, Red)},
		},
	},
	{
		Name:   "outline_star",
		Width:  64,
		Height: 64,
		Steps:  []Step{{Op: OpOutline, Vertices: fivePointStar(32, 32, 25, White)}},
	},
	{
		Name:   "outline_interpolated",
		Width:  64,
		Height: 64,
		Steps: []Step{{
			Op:          OpOutline,
			Interpolate: true,
			Vertices:    []Vertex{v(10, 50, Red), v(32, 10, Green), v(54, 50, Blue)},
		}},
	},
}

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Steps:  []Step{{Op: OpFill, Vertices: triangle(10, 50, 32, 10, 54, 50, White)}},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Steps:  []Step{{Op: OpFill, Vertices: rectangle(10, 10, 44, 44, White)}},
	},
	{
		Name:   "convex_set",
		Width:  64,
		Height: 64,
		Steps: []Step{
			{Op: OpFill, Vertices: triangle(2.5, 1.5, 30.5, 6.5, 12.5, 28.5, Red)},
			{Op: OpFill, Vertices: regularPolygon(44, 44, 15, 6, Green)},
			{Op: OpFill, Vertices: rectangle(36, 4, 60, 20, Blue)},
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Steps:  []Step{{Op: OpFill, Vertices: fivePointStar(32, 32, 25, White)}},
	},
	{
		Name:   "concave",
		Width:  64,
		Height: 64,
		Steps: []Step{{
			Op: OpFill,
			Vertices: []Vertex{
				v(8.5, 8.5, Green), v(56.5, 8.5, Green), v(56.5, 56.5, Green),
				v(32.5, 24.5, Green), v(8.5, 56.5, Green),
			},
		}},
	},
	{
		Name:   "interpolated_triangle",
		Width:  64,
		Height: 64,
		Steps: []Step{{
			Op:       OpInterpolatedFill,
			Vertices: []Vertex{v(10, 50, Red), v(32, 10, Green), v(54, 50, Blue)},
		}},
	},
	{
		Name:   "interpolated_quad",
		Width:  64,
		Height: 64,
		Steps: []Step{{
			Op: OpInterpolatedFill,
			Vertices: []Vertex{
				v(8, 8, Red), v(56, 8, Blue), v(56, 56, Blue), v(8, 56, Red),
			},
		}},
	},
}

var blendCases = []TestCase{
	{
		Name:   "overlapping",
		Width:  64,
		Height: 64,
		Blend:  true,
		Steps: []Step{
			{Op: OpFill, Vertices: rectangle(8, 8, 40, 40, translucent(Red, 0.5))},
			{Op: OpFill, Vertices: rectangle(24, 24, 56, 56, translucent(Blue, 0.5))},
			{Op: OpFill, Vertices: triangle(8, 56, 32, 16, 56, 56, translucent(Green, 0.25))},
		},
	},
	{
		Name:       "on_white",
		Width:      64,
		Height:     64,
		Blend:      true,
		Background: White,
		Steps: []Step{
			{Op: OpInterpolatedFill, Vertices: []Vertex{
				v(8, 8, translucent(Red, 0.8)),
				v(56, 8, translucent(Green, 0.5)),
				v(32, 56, translucent(Blue, 0.2)),
			}},
		},
	},
}

// triangle builds a triangle with a uniform colour.
func triangle(x1, y1, x2, y2, x3, y3 float64, c RGBA) []Vertex {
	return []Vertex{v(x1, y1, c), v(x2, y2, c), v(x3, y3, c)}
}

// rectangle builds an axis-aligned rectangle with a uniform colour.
func rectangle(x1, y1, x2, y2 float64, c RGBA) []Vertex {
	return []Vertex{v(x1, y1, c), v(x2, y1, c), v(x2, y2, c), v(x1, y2, c)}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64, c RGBA) []Vertex {
	pts := regularPolygon(cx, cy, r, 5, c)

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	res := make([]Vertex, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}

// regularPolygon builds a regular n-gon with one vertex straight up.
func regularPolygon(cx, cy, r float64, n int, c RGBA) []Vertex {
	res := make([]Vertex, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		res[i] = v(cx+r*math.Cos(angle), cy+r*math.Sin(angle), c)
	}
	return res
}
