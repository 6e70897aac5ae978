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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/clip"
)

// DrawFilled fills the polygon with the given vertices, using the
// even-odd rule on each pixel row.  The closing edge from the last to the
// first vertex is implied.
//
// Under [InterpolatedFilled] the colours of the vertices are interpolated
// across the polygon, otherwise the polygon is filled with the colour of
// the first vertex.
//
// Polygons with fewer than three vertices are not special-cased: their
// edges are processed like those of any other polygon.
func (r *Rasteriser) DrawFilled(vertices []Vertex) {
	r.fillPolygon(r.toDeviceVertices(vertices), r.state.Fill == InterpolatedFilled)
}

// DrawInterpolatedFilled fills the polygon like [Rasteriser.DrawFilled]
// in [InterpolatedFilled] mode, independent of the current fill mode.
func (r *Rasteriser) DrawInterpolatedFilled(vertices []Vertex) {
	r.fillPolygon(r.toDeviceVertices(vertices), true)
}

// fillPolygon fills a polygon given in device coordinates.
//
// For every row y the intersections of the polygon edges with the line
// through y are collected, sorted by x, and drawn as horizontal spans
// between consecutive pairs.  A row with an odd number of intersections
// can only arise from non-finite coordinates; its right-most
// intersection has no partner and is dropped.
func (r *Rasteriser) fillPolygon(vertices []Vertex, interpolate bool) {
	if len(r.scanlines) == 0 {
		return
	}
	if clip.IsEmpty(r.effectiveClip()) {
		if debugEnabled() {
			Logger().Debug("fill discarded, empty clip region", "clip", r.state.Clip)
		}
		return
	}

	r.clearScanlines()
	r.collectIntersections(vertices, interpolate)

	unpaired := 0
	for y, row := range r.scanlines {
		if len(row)%2 != 0 {
			unpaired++
		}
		if len(row) < 2 {
			continue
		}

		slices.SortStableFunc(row, func(a, b scanItem) int {
			return cmp.Compare(a.x, b.x)
		})

		yf := float64(y)
		for i := 0; i+1 < len(row); i += 2 {
			left := Vertex{Position: vec.Vec2{X: float64(row[i].x), Y: yf}, Colour: row[i].colour}
			right := Vertex{Position: vec.Vec2{X: float64(row[i+1].x), Y: yf}, Colour: row[i+1].colour}
			r.drawSegment(left, right, 1, interpolate)
		}
	}

	if unpaired > 0 && debugEnabled() {
		Logger().Debug("unpaired scanline intersections dropped",
			"rows", unpaired, "vertices", len(vertices))
	}
}

// clearScanlines empties every row of the scanline table, keeping the
// row capacity.
func (r *Rasteriser) clearScanlines() {
	for y := range r.scanlines {
		r.scanlines[y] = r.scanlines[y][:0]
	}
}

// collectIntersections adds the intersections of all polygon edges with
// the framebuffer rows to the scanline table.
//
// An edge contributes to row y if y lies between the y-coordinates of
// its end points, end points included.  Horizontal edges are skipped.
// A vertex on a row where the boundary passes through, rather than
// turning back, is counted once: the edge ending there leaves the row
// to the next non-horizontal edge.  Local y-extrema keep both
// intersections.  Intersections are snapped to the pixel containing
// them.
func (r *Rasteriser) collectIntersections(vertices []Vertex, interpolate bool) {
	n := len(vertices)
	if n == 0 {
		return
	}

	flat := vertices[0].Colour
	yLast := float64(len(r.scanlines) - 1)

	for i := range n {
		a := vertices[i]
		b := vertices[(i+1)%n]
		x1, y1 := a.Position.X, a.Position.Y
		x2, y2 := b.Position.X, b.Position.Y

		dir := edgeDir(y1, y2)
		if dir == 0 {
			continue
		}

		// Row range, restricted to the framebuffer.  NaN coordinates
		// make the comparison fail.
		lo := max(math.Ceil(min(y1, y2)), 0)
		hi := min(math.Floor(max(y1, y2)), yLast)
		if y2 == math.Floor(y2) && nextDir(vertices, i) == dir {
			if dir > 0 {
				hi = min(hi, y2-1)
			} else {
				lo = max(lo, y2+1)
			}
		}
		if !(lo <= hi) {
			continue
		}

		for y := int(lo); y <= int(hi); y++ {
			yf := float64(y)
			x := x1 + (yf-y1)*(x2-x1)/(y2-y1)
			if math.IsNaN(x) {
				continue
			}
			x = max(-coordLimit, min(coordLimit, math.Floor(x)))

			c := flat
			if interpolate {
				c = a.Colour.Lerp(b.Colour, float32((yf-y1)/(y2-y1)))
			}
			r.scanlines[y] = append(r.scanlines[y], scanItem{colour: c, x: int(x)})
		}
	}
}

// edgeDir returns +1 for an edge going down the rows, -1 for an edge going
// up, and 0 for horizontal edges and edges with NaN coordinates.
func edgeDir(y1, y2 float64) int {
	switch {
	case y2 > y1:
		return 1
	case y2 < y1:
		return -1
	default:
		return 0
	}
}

// nextDir returns the direction of the first non-horizontal edge after
// edge i, or 0 if there is none.
func nextDir(vertices []Vertex, i int) int {
	n := len(vertices)
	for k := 1; k < n; k++ {
		j := (i + k) % n
		a := vertices[j].Position.Y
		b := vertices[(j+1)%n].Position.Y
		if d := edgeDir(a, b); d != 0 {
			return d
		}
	}
	return 0
}
