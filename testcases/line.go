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

var lineCases = []TestCase{
	{
		Name:   "starburst",
		Width:  64,
		Height: 64,
		Steps:  []Step{starburst(32, 32, 28, 16, false, 1)},
	},
	{
		Name:   "starburst_interpolated",
		Width:  64,
		Height: 64,
		Steps:  []Step{starburst(32, 32, 28, 16, true, 1)},
	},
	{
		Name:   "starburst_thick",
		Width:  64,
		Height: 64,
		Steps:  []Step{starburst(32, 32, 28, 8, false, 3)},
	},
	{
		Name:   "axis_aligned",
		Width:  32,
		Height: 32,
		Steps: []Step{{
			Op: OpSegment,
			Vertices: []Vertex{
				v(2, 2, White), v(29, 2, White), // horizontal
				v(2, 4, White), v(2, 29, White), // vertical
				v(4, 4, White), v(29, 29, White), // diagonal
			},
		}},
	},
	{
		Name:   "points",
		Width:  32,
		Height: 32,
		Steps: []Step{
			{Op: OpPoint, Vertices: []Vertex{v(4, 4, Red), v(8, 4, Green), v(12, 4, Blue)}},
			{Op: OpPoint, Size: 3, Vertices: []Vertex{v(4, 12, White), v(12, 12, White)}},
			{Op: OpPoint, Size: 6, Vertices: []Vertex{v(20, 20, Red)}},
		},
	},
}

// starburst builds n segments from the centre (cx, cy) outwards, covering
// all octants.  With interpolate set, the colour changes from red at the
// centre to blue at the far end.
func starburst(cx, cy, r float64, n int, interpolate bool, thickness int) Step {
	s := Step{
		Op:          OpSegment,
		Interpolate: interpolate,
		Thickness:   thickness,
	}
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		s.Vertices = append(s.Vertices,
			v(cx, cy, Red),
			v(cx+r*math.Cos(angle), cy+r*math.Sin(angle), Blue))
	}
	return s
}
