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

package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var box = rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

func TestRegionCode(t *testing.T) {
	cases := []struct {
		p    vec.Vec2
		want Outcode
	}{
		{vec.Vec2{X: 5, Y: 5}, Inside},
		{vec.Vec2{X: 0, Y: 0}, Inside},
		{vec.Vec2{X: 9.999, Y: 9.999}, Inside},
		{vec.Vec2{X: 10, Y: 5}, Right},
		{vec.Vec2{X: 5, Y: 10}, Top},
		{vec.Vec2{X: -1, Y: 5}, Left},
		{vec.Vec2{X: 5, Y: -1}, Bottom},
		{vec.Vec2{X: -1, Y: -1}, Left | Bottom},
		{vec.Vec2{X: 11, Y: 11}, Right | Top},
		{vec.Vec2{X: -1, Y: 11}, Left | Top},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RegionCode(c.p, box), "RegionCode(%v)", c.p)
	}
}

func TestOutcodeBits(t *testing.T) {
	assert.Equal(t, Outcode(1), Left)
	assert.Equal(t, Outcode(2), Right)
	assert.Equal(t, Outcode(4), Bottom)
	assert.Equal(t, Outcode(8), Top)
}

func TestContainsNaN(t *testing.T) {
	assert.True(t, Contains(vec.Vec2{X: 1, Y: 1}, box))
	assert.False(t, Contains(vec.Vec2{X: math.NaN(), Y: 1}, box))
	assert.False(t, Contains(vec.Vec2{X: 1, Y: math.NaN()}, box))
}

func TestSegmentInside(t *testing.T) {
	p1 := vec.Vec2{X: 1, Y: 2}
	p2 := vec.Vec2{X: 8, Y: 7}
	q1, q2, ok := Segment(p1, p2, box)
	require.True(t, ok)
	assert.Equal(t, p1, q1)
	assert.Equal(t, p2, q2)
}

func TestSegmentOutside(t *testing.T) {
	cases := [][2]vec.Vec2{
		{{X: -5, Y: 1}, {X: -1, Y: 9}},   // left
		{{X: 11, Y: 1}, {X: 20, Y: 9}},   // right
		{{X: 1, Y: 10}, {X: 9, Y: 20}},   // top, on the boundary
		{{X: -5, Y: 4}, {X: 4, Y: -5}},   // corner, different outcodes
		{{X: 10, Y: 0}, {X: 10, Y: 10}},  // on the exclusive right edge
		{{X: -1, Y: -1}, {X: -1, Y: -1}}, // degenerate
	}
	for _, c := range cases {
		_, _, ok := Segment(c[0], c[1], box)
		assert.False(t, ok, "segment %v", c)
	}
}

func TestSegmentCrossing(t *testing.T) {
	q1, q2, ok := Segment(vec.Vec2{X: -10, Y: 5}, vec.Vec2{X: 30, Y: 5}, box)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, q1)
	assert.Equal(t, 5.0, q2.Y)
	assert.Less(t, q2.X, 10.0)
	assert.Equal(t, 9.0, math.Floor(q2.X))
}

func TestSegmentOrientation(t *testing.T) {
	a := vec.Vec2{X: 30, Y: -3}
	b := vec.Vec2{X: -4, Y: 12}
	q1, q2, ok := Segment(a, b, box)
	require.True(t, ok)
	r1, r2, ok := Segment(b, a, box)
	require.True(t, ok)

	// The visible part is the same, traversed in the opposite direction.
	assert.InDelta(t, q1.X, r2.X, 1e-9)
	assert.InDelta(t, q1.Y, r2.Y, 1e-9)
	assert.InDelta(t, q2.X, r1.X, 1e-9)
	assert.InDelta(t, q2.Y, r1.Y, 1e-9)

	// q1 is the end closer to a.
	assert.Less(t, q2.Sub(b).Length(), q1.Sub(b).Length())
}

// TestSegmentResultInside checks that clipped end points always lie in the
// half-open rectangle, and on the original line.
func TestSegmentResultInside(t *testing.T) {
	r := rect.Rect{LLx: 2.5, LLy: -3, URx: 17, URy: 11.25}
	pts := []vec.Vec2{
		{X: -20, Y: -20}, {X: 40, Y: 30}, {X: 9, Y: -50}, {X: 9, Y: 50},
		{X: -7, Y: 4}, {X: 33, Y: 4}, {X: 5, Y: 5}, {X: 16.9, Y: 11.2},
		{X: 17, Y: 11.25}, {X: 2.5, Y: -3},
	}
	for _, p1 := range pts {
		for _, p2 := range pts {
			q1, q2, ok := Segment(p1, p2, r)
			if !ok {
				continue
			}
			assert.True(t, Contains(q1, r), "q1=%v for %v-%v", q1, p1, p2)
			assert.True(t, Contains(q2, r), "q2=%v for %v-%v", q2, p1, p2)

			d := p2.Sub(p1)
			for _, q := range []vec.Vec2{q1, q2} {
				cross := d.X*(q.Y-p1.Y) - d.Y*(q.X-p1.X)
				assert.InDelta(t, 0, cross/math.Max(d.Length(), 1), 1e-6)
			}
		}
	}
}

func TestSegmentNaN(t *testing.T) {
	_, _, ok := Segment(vec.Vec2{X: math.NaN(), Y: 0}, vec.Vec2{X: 5, Y: 5}, box)
	assert.False(t, ok)
	_, _, ok = Segment(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 5, Y: math.NaN()}, box)
	assert.False(t, ok)
}

func TestSegmentHuge(t *testing.T) {
	q1, q2, ok := Segment(vec.Vec2{X: -1e300, Y: 5}, vec.Vec2{X: 1e300, Y: 5}, box)
	require.True(t, ok)
	assert.True(t, Contains(q1, box))
	assert.True(t, Contains(q2, box))
}

func TestSegmentInfinite(t *testing.T) {
	r := rect.Rect{URx: 20, URy: 10}
	inf := math.Inf(1)

	q1, q2, ok := Segment(vec.Vec2{X: 5, Y: inf}, vec.Vec2{X: 5, Y: 5}, r)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 5, Y: math.Nextafter(10, 0)}, q1)
	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, q2)

	// Non-vertical segments towards infinity become vertical in the limit.
	q1, q2, ok = Segment(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: inf}, r)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, q1)
	assert.Equal(t, vec.Vec2{X: 5, Y: math.Nextafter(10, 0)}, q2)

	q1, q2, ok = Segment(vec.Vec2{X: -inf, Y: 3}, vec.Vec2{X: inf, Y: 3}, r)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 3}, q1)
	assert.Equal(t, vec.Vec2{X: math.Nextafter(20, 0), Y: 3}, q2)

	// No direction is defined here.
	q1, q2, ok = Segment(vec.Vec2{X: inf, Y: inf}, vec.Vec2{X: 5, Y: 5}, r)
	if ok {
		assert.True(t, Contains(q1, r))
		assert.True(t, Contains(q2, r))
	}
}

func TestIntersect(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	b := rect.Rect{LLx: 5, LLy: -5, URx: 20, URy: 7}
	assert.Equal(t, rect.Rect{LLx: 5, LLy: 0, URx: 10, URy: 7}, Intersect(a, b))

	c := rect.Rect{LLx: 20, LLy: 20, URx: 30, URy: 30}
	assert.True(t, IsEmpty(Intersect(a, c)))
}

func TestIsEmpty(t *testing.T) {
	assert.False(t, IsEmpty(box))
	assert.True(t, IsEmpty(rect.Rect{LLx: 5, LLy: 0, URx: 5, URy: 10}))
	assert.True(t, IsEmpty(rect.Rect{LLx: 0, LLy: 3, URx: 10, URy: 1}))
	assert.True(t, IsEmpty(rect.Rect{LLx: math.NaN(), URx: 10, URy: 10}))
}
