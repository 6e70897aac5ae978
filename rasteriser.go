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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/clip"
)

// Vertex is a point with an associated colour.
type Vertex struct {
	Position vec.Vec2
	Colour   Colour4
}

// scanItem records one intersection of a polygon edge with a scanline.
type scanItem struct {
	colour Colour4
	x      int
}

// Rasteriser draws points, segments, polygons and circles into a
// [Framebuffer].  Drawing is controlled by a [State], which is changed
// through the setter methods.
//
// A real coordinate c addresses pixel floor(c), so the pixel (i, j)
// covers the square [i, i+1) × [j, j+1).  Every pixel write is checked
// against the framebuffer bounds; writes outside are discarded.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	state State
	fb    *Framebuffer

	// scanlines holds, for each framebuffer row, the polygon edge
	// intersections of the current fill.  It is rebuilt on every fill.
	scanlines [][]scanItem

	devVerts []Vertex // vertices in device coordinates, reused across calls
}

// NewRasteriser creates a rasteriser with a framebuffer of the given size.
// The framebuffer is cleared to transparent; the background colour is
// opaque black, the foreground colour opaque white, the clip rectangle
// covers the whole framebuffer and the modes are [Line], [Unfilled] and
// [NoBlend].
func NewRasteriser(width, height int) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(width, height)
	return r
}

// Reset restores the rasteriser to the state of a new rasteriser of the
// given size, preserving internal buffer capacity for reuse.
func (r *Rasteriser) Reset(width, height int) {
	if r.fb == nil {
		r.fb = &Framebuffer{}
	}
	r.fb.resize(width, height)
	height = r.fb.Height()

	r.scanlines = slices.Grow(r.scanlines[:0], height)[:height]
	for y := range r.scanlines {
		r.scanlines[y] = r.scanlines[y][:0]
	}

	r.state = defaultState(r.fb.Width(), height)
}

// Release frees the framebuffer and the internal buffers.
// After Release, draw calls have no effect.
func (r *Rasteriser) Release() {
	r.fb = nil
	r.scanlines = nil
}

// Framebuffer returns the framebuffer the rasteriser draws into.
func (r *Rasteriser) Framebuffer() *Framebuffer {
	return r.fb
}

// Width returns the framebuffer width in pixels.
func (r *Rasteriser) Width() int {
	return r.fb.Width()
}

// Height returns the framebuffer height in pixels.
func (r *Rasteriser) Height() int {
	return r.fb.Height()
}

// Clear sets every pixel to c and records c as the background colour.
// Clear ignores the blend mode and the clip rectangle.
func (r *Rasteriser) Clear(c Colour4) {
	r.SetBackground(c)
	r.fb.Fill(c)
}

// DrawPoint paints the pixel containing p in the foreground colour.
// If size is at least 2, a size×size square of pixels around p is
// painted instead.  Points outside the clip rectangle are discarded.
func (r *Rasteriser) DrawPoint(p vec.Vec2, size int) {
	p = r.toDevice(p)
	if !clip.Contains(p, r.state.Clip) {
		return
	}

	x := int(math.Floor(p.X))
	y := int(math.Floor(p.Y))
	if size < 2 {
		r.writePixel(x, y, r.state.Foreground)
		return
	}

	lo := -(size - 1) / 2
	for dy := lo; dy < lo+size; dy++ {
		for dx := lo; dx < lo+size; dx++ {
			r.writePixel(x+dx, y+dy, r.state.Foreground)
		}
	}
}

// writePixel is the single entry point for all pixel writes.
// Writes outside the framebuffer are discarded.  Under [AlphaBlend],
// c is composited over the current pixel colour.
func (r *Rasteriser) writePixel(x, y int, c Colour4) {
	if !r.fb.Contains(x, y) {
		return
	}
	if r.state.Blend == AlphaBlend {
		c = over(c, r.fb.Pixel(x, y))
	}
	r.fb.SetPixel(x, y, c)
}

// toDevice maps a position to device coordinates using the CTM.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.state.CTM
	return vec.Vec2{
		X: scale(m[0], p.X) + scale(m[2], p.Y) + m[4],
		Y: scale(m[1], p.X) + scale(m[3], p.Y) + m[5],
	}
}

// scale returns a*x, where a zero coefficient gives 0 even for infinite x.
func scale(a, x float64) float64 {
	if a == 0 {
		return 0
	}
	return a * x
}

// toDeviceVertices maps vertex positions to device coordinates.
// The result is stored in a buffer which is reused by the next call.
func (r *Rasteriser) toDeviceVertices(vertices []Vertex) []Vertex {
	r.devVerts = slices.Grow(r.devVerts[:0], len(vertices))
	for _, v := range vertices {
		r.devVerts = append(r.devVerts, Vertex{Position: r.toDevice(v.Position), Colour: v.Colour})
	}
	return r.devVerts
}

// effectiveClip returns the clip rectangle restricted to the framebuffer.
func (r *Rasteriser) effectiveClip() rect.Rect {
	return clip.Intersect(r.state.Clip, rect.Rect{
		URx: float64(r.fb.Width()),
		URy: float64(r.fb.Height()),
	})
}

// Numerical limits for the rasteriser.
const (
	// coordLimit bounds scanline intersections before conversion to
	// integers.  Anything beyond is far outside any framebuffer.
	coordLimit = 1 << 30

	// circleSegments is the number of polygon vertices used to
	// approximate a circle.
	circleSegments = 40
)
