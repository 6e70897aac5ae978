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

// Package clip implements Cohen-Sutherland clipping of line segments
// against axis-aligned rectangles.
//
// Rectangles are half-open: a point p is inside r if
// r.LLx <= p.X < r.URx and r.LLy <= p.Y < r.URy.  LLx, URx, LLy and URy
// are the left, right, bottom and top boundaries.
package clip

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode is a bit mask describing on which sides of a rectangle a
// point lies.
type Outcode uint8

// These are the bits of an Outcode.
const (
	Inside Outcode = 0
	Left   Outcode = 1 << (iota - 1) // x < left
	Right                            // x >= right
	Bottom                           // y < bottom
	Top                              // y >= top
)

// RegionCode computes the outcode of p with respect to r.
// The result is [Inside] if and only if p lies in r.
func RegionCode(p vec.Vec2, r rect.Rect) Outcode {
	code := Inside

	if p.X < r.LLx {
		code |= Left
	} else if p.X >= r.URx {
		code |= Right
	}

	if p.Y < r.LLy {
		code |= Bottom
	} else if p.Y >= r.URy {
		code |= Top
	}

	return code
}

// Contains reports whether p lies inside r.
func Contains(p vec.Vec2, r rect.Rect) bool {
	return !isNaN(p) && RegionCode(p, r) == Inside
}

// Segment clips the segment from p1 to p2 against r.
//
// If any part of the segment lies in r, Segment returns the end points of
// the visible part, in the same orientation as the input, and ok=true.
// A segment entirely inside r is returned unchanged.  If the segment
// misses r, ok is false.
//
// Points on the exclusive right and top boundaries are moved to the
// largest representable coordinate below the boundary, so that clipped
// points always satisfy RegionCode(q, r) == Inside.
func Segment(p1, p2 vec.Vec2, r rect.Rect) (q1, q2 vec.Vec2, ok bool) {
	if isNaN(p1) || isNaN(p2) {
		return p1, p2, false
	}

	c1 := RegionCode(p1, r)
	c2 := RegionCode(p2, r)

	for range maxIterations {
		if c1|c2 == Inside {
			return p1, p2, true
		}
		if c1&c2 != 0 {
			return p1, p2, false
		}

		// At least one point is outside; move it onto the violated boundary.
		out := c1
		if out == Inside {
			out = c2
		}

		// Interpolate from the end point which stays in place.
		a, b := p2, p1
		if out != c1 {
			a, b = p1, p2
		}

		var p vec.Vec2
		switch {
		case out&Top != 0:
			p = atY(a, b, math.Nextafter(r.URy, math.Inf(-1)))
		case out&Bottom != 0:
			p = atY(a, b, r.LLy)
		case out&Right != 0:
			p = atX(a, b, math.Nextafter(r.URx, math.Inf(-1)))
		case out&Left != 0:
			p = atX(a, b, r.LLx)
		}
		if isNaN(p) {
			// The direction towards an infinite end point is undefined.
			return p1, p2, false
		}

		if out == c1 {
			p1 = p
			c1 = RegionCode(p1, r)
		} else {
			p2 = p
			c2 = RegionCode(p2, r)
		}
	}

	// Rounding kept moving a point across a boundary.
	return p1, p2, false
}

// Intersect returns the intersection of a and b.  The result may be
// empty, in which case URx <= LLx or URy <= LLy.
func Intersect(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
}

// IsEmpty reports whether r contains no points.
func IsEmpty(r rect.Rect) bool {
	return !(r.LLx < r.URx && r.LLy < r.URy)
}

// atY returns the point on the line through a and b with the given
// y-coordinate.  a.Y and b.Y must differ.
func atY(a, b vec.Vec2, y float64) vec.Vec2 {
	if a.X == b.X {
		return vec.Vec2{X: a.X, Y: y}
	}
	return vec.Vec2{X: a.X + (b.X-a.X)*(y-a.Y)/(b.Y-a.Y), Y: y}
}

// atX returns the point on the line through a and b with the given
// x-coordinate.  a.X and b.X must differ.
func atX(a, b vec.Vec2, x float64) vec.Vec2 {
	if a.Y == b.Y {
		return vec.Vec2{X: x, Y: a.Y}
	}
	return vec.Vec2{X: x, Y: a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)}
}

func isNaN(p vec.Vec2) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// maxIterations bounds the clipping loop.  Each boundary is crossed at
// most once in exact arithmetic, so four iterations suffice; the extra
// ones absorb rounding.
const maxIterations = 8
