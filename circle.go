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
)

// Circle is a circle with a uniform colour.
type Circle struct {
	Centre vec.Vec2
	Radius float64
	Colour Colour4
}

// CircleVertices approximates c by a polygon with 40 vertices, placed at
// equally spaced angles starting at angle 0 and going counter-clockwise
// in a y-up coordinate system.  All vertices lie on the circle.
func CircleVertices(c Circle) []Vertex {
	vertices := make([]Vertex, circleSegments)
	for i := range vertices {
		theta := 2 * math.Pi * float64(i) / circleSegments
		sin, cos := math.Sincos(theta)
		vertices[i] = Vertex{
			Position: vec.Vec2{
				X: c.Centre.X + c.Radius*cos,
				Y: c.Centre.Y + c.Radius*sin,
			},
			Colour: c.Colour,
		}
	}
	return vertices
}

// DrawCircle draws the outline of c, or fills c if filled is set.
// The circle is approximated by the polygon from [CircleVertices].
func (r *Rasteriser) DrawCircle(c Circle, filled bool) {
	vertices := CircleVertices(c)
	if filled {
		r.DrawFilled(vertices)
	} else {
		r.DrawOutline(vertices)
	}
}
