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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498

// Path returns the exact geometry of the step as a path.
//
// Polygons become closed subpaths, segments become open two-point
// subpaths, circles become four cubic arcs (not the 40-gon the rasteriser
// draws), and points become unit squares.  Returns nil for steps
// without geometry.
func (s Step) Path() *path.Data {
	p := &path.Data{}
	switch s.Op {
	case OpOutline, OpFill, OpInterpolatedFill:
		if len(s.Vertices) == 0 {
			return nil
		}
		p.MoveTo(s.Vertices[0].Pos())
		for _, vert := range s.Vertices[1:] {
			p.LineTo(vert.Pos())
		}
		p.Close()

	case OpSegment:
		for i := 0; i+1 < len(s.Vertices); i += 2 {
			p.MoveTo(s.Vertices[i].Pos()).LineTo(s.Vertices[i+1].Pos())
		}

	case OpCircle:
		if len(s.Vertices) != 1 {
			return nil
		}
		c := s.Vertices[0].Pos()
		r := s.Radius
		k := r * kappa
		pt := func(dx, dy float64) vec.Vec2 { return c.Add(vec.Vec2{X: dx, Y: dy}) }
		p.MoveTo(pt(r, 0)).
			CubeTo(pt(r, k), pt(k, r), pt(0, r)).
			CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
			CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
			CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
			Close()

	case OpPoint:
		size := float64(max(s.Size, 1))
		for _, vert := range s.Vertices {
			off := float64(int(size-1) / 2)
			x, y := math.Floor(vert.X)-off, math.Floor(vert.Y)-off
			p.MoveTo(vec.Vec2{X: x, Y: y}).
				LineTo(vec.Vec2{X: x + size, Y: y}).
				LineTo(vec.Vec2{X: x + size, Y: y + size}).
				LineTo(vec.Vec2{X: x, Y: y + size}).
				Close()
		}
	}

	if len(p.Cmds) == 0 {
		return nil
	}
	return p
}
