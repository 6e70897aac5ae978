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

// DrawOutline draws the edges of the closed polygon through the given
// vertices.  Each edge is drawn like [Rasteriser.DrawSegment] with
// thickness 1.  A single vertex draws one pixel; an empty vertex list
// draws nothing.
func (r *Rasteriser) DrawOutline(vertices []Vertex) {
	r.outline(r.toDeviceVertices(vertices))
}

// outline draws the edges of a polygon given in device coordinates.
func (r *Rasteriser) outline(vertices []Vertex) {
	n := len(vertices)
	if n == 0 {
		return
	}

	interpolate := r.state.Fill == InterpolatedFilled
	for i := range n - 1 {
		r.drawSegment(vertices[i], vertices[i+1], 1, interpolate)
	}
	r.drawSegment(vertices[n-1], vertices[0], 1, interpolate)
}

// DrawPolygon draws the vertex list according to the geometry and fill
// modes.
//
// In [Line] mode, independent segments are drawn between the vertex
// pairs (0, 1), (2, 3), ...; a final unpaired vertex is ignored.
// In [Polygon] mode, [Unfilled] draws the outline, [Filled] and
// [InterpolatedFilled] fill the polygon.
func (r *Rasteriser) DrawPolygon(vertices []Vertex) {
	dev := r.toDeviceVertices(vertices)

	if r.state.Geometry == Line {
		interpolate := r.state.Fill == InterpolatedFilled
		for i := 0; i+1 < len(dev); i += 2 {
			r.drawSegment(dev[i], dev[i+1], 1, interpolate)
		}
		return
	}

	switch r.state.Fill {
	case Filled:
		r.fillPolygon(dev, false)
	case InterpolatedFilled:
		r.fillPolygon(dev, true)
	default:
		r.outline(dev)
	}
}
