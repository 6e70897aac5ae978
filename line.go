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

package pixel

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/clip"
)

// DrawSegment draws the segment from v1 to v2, including both end points.
//
// Under [InterpolatedFilled] the colour changes linearly from v1.Colour
// to v2.Colour along the segment, otherwise the whole segment is drawn in
// v1.Colour.  Thickness is the number of pixels painted across the
// segment at each step; values below 1 are treated as 1.  The segment is
// clipped to the clip rectangle before it is rasterised.
func (r *Rasteriser) DrawSegment(v1, v2 Vertex, thickness int) {
	if clip.IsEmpty(r.effectiveClip()) {
		if debugEnabled() {
			Logger().Debug("segment discarded, empty clip region", "clip", r.state.Clip)
		}
		return
	}
	v1.Position = r.toDevice(v1.Position)
	v2.Position = r.toDevice(v2.Position)
	r.drawSegment(v1, v2, thickness, r.state.Fill == InterpolatedFilled)
}

// drawSegment clips a segment given in device coordinates and rasterises
// the visible part.  If the segment is shortened, the end point colours
// are adjusted so that the colour gradient is unchanged.
func (r *Rasteriser) drawSegment(v1, v2 Vertex, thickness int, interpolate bool) {
	p1, p2, ok := clip.Segment(v1.Position, v2.Position, r.effectiveClip())
	if !ok {
		return
	}

	if interpolate && (p1 != v1.Position || p2 != v2.Position) {
		t1 := segmentParam(v1.Position, v2.Position, p1)
		t2 := segmentParam(v1.Position, v2.Position, p2)
		v1.Colour, v2.Colour = v1.Colour.Lerp(v2.Colour, t1), v1.Colour.Lerp(v2.Colour, t2)
	}
	v1.Position = p1
	v2.Position = p2

	r.rasteriseSegment(v1, v2, thickness, interpolate)
}

// rasteriseSegment draws a segment in device coordinates using the
// midpoint algorithm.  No clipping is done, but every pixel goes through
// writePixel.
//
// The segment is first mapped to the first octant: the end points are
// ordered by x (swapped), downward segments are reflected in the x-axis
// (negated), and steep segments have their axes exchanged (axisSwapped).
// The walk then advances x by one per step and y by at most one.
func (r *Rasteriser) rasteriseSegment(v1, v2 Vertex, thickness int, interpolate bool) {
	thickness = max(thickness, 1)

	x0 := int(math.Floor(v1.Position.X))
	y0 := int(math.Floor(v1.Position.Y))
	x1 := int(math.Floor(v2.Position.X))
	y1 := int(math.Floor(v2.Position.Y))

	if x0 == x1 && y0 == y1 {
		r.writePixel(x0, y0, v1.Colour)
		return
	}

	swapped := x0 > x1
	if swapped {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	negated := y1 < y0
	if negated {
		y0, y1 = -y0, -y1
	}

	axisSwapped := y1-y0 > x1-x0
	if axisSwapped {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	// Now 0 <= dy <= dx and dx > 0.
	dx := x1 - x0
	dy := y1 - y0

	eps := 0
	y := y0
	for x := x0; x <= x1; x++ {
		px, py := x, y
		if axisSwapped {
			px, py = py, px
		}
		if negated {
			py = -py
		}

		c := v1.Colour
		if interpolate {
			t := float32(x-x0) / float32(dx)
			if swapped {
				t = 1 - t
			}
			c = v1.Colour.Lerp(v2.Colour, t)
		}

		r.writeBrush(px, py, thickness, axisSwapped, c)

		eps += dy
		if 2*eps >= dx {
			y++
			eps -= dx
		}
	}
}

// writeBrush paints thickness pixels centred on (x, y) along the minor
// axis of a segment: offsets 0, +1, -1, +2, -2, ...
// The minor axis is x if minorX is set, and y otherwise.
func (r *Rasteriser) writeBrush(x, y, thickness int, minorX bool, c Colour4) {
	for i := range thickness {
		off := (i + 1) / 2
		if i%2 == 0 {
			off = -off
		}
		if minorX {
			r.writePixel(x+off, y, c)
		} else {
			r.writePixel(x, y+off, c)
		}
	}
}

// segmentParam returns the parameter t of the point q on the segment
// from a to b, such that q = a + t(b-a).  The dominant axis is used, to
// keep the division well conditioned.
func segmentParam(a, b, q vec.Vec2) float32 {
	d := b.Sub(a)
	var t float64
	switch {
	case math.Abs(d.X) >= math.Abs(d.Y) && d.X != 0:
		t = (q.X - a.X) / d.X
	case d.Y != 0:
		t = (q.Y - a.Y) / d.Y
	}
	if math.IsNaN(t) {
		// Finite points are infinitely close to the finite end point.
		if math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) {
			return 1
		}
		return 0
	}
	return float32(t)
}
