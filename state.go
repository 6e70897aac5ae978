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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// GeometryMode selects how [Rasteriser.DrawPolygon] interprets a vertex list.
type GeometryMode int

const (
	// Line draws independent segments between vertex pairs (0,1), (2,3), ...
	Line GeometryMode = iota

	// Polygon draws one closed polygon through all vertices.
	Polygon
)

func (m GeometryMode) String() string {
	switch m {
	case Line:
		return "line"
	case Polygon:
		return "polygon"
	default:
		return fmt.Sprintf("GeometryMode(%d)", int(m))
	}
}

// FillMode selects between outlines, flat fills and colour interpolation.
type FillMode int

const (
	// Unfilled draws polygon outlines with the flat colour of each
	// segment's first vertex.
	Unfilled FillMode = iota

	// Filled fills polygons with the colour of their first vertex.
	Filled

	// InterpolatedFilled fills polygons and draws segments with colours
	// interpolated linearly between the vertex colours.
	InterpolatedFilled
)

func (m FillMode) String() string {
	switch m {
	case Unfilled:
		return "unfilled"
	case Filled:
		return "filled"
	case InterpolatedFilled:
		return "interpolated"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// BlendMode selects how new pixels are combined with the framebuffer.
type BlendMode int

const (
	// NoBlend overwrites the destination pixel.
	NoBlend BlendMode = iota

	// AlphaBlend composites the source over the destination using the
	// source alpha.
	AlphaBlend
)

func (m BlendMode) String() string {
	switch m {
	case NoBlend:
		return "none"
	case AlphaBlend:
		return "alpha"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// State is the drawing configuration of a [Rasteriser].
// It is read by every draw call and changed only through the setters
// of the Rasteriser.
type State struct {
	Geometry GeometryMode
	Fill     FillMode
	Blend    BlendMode

	// Foreground is the colour used by DrawPoint.
	Foreground Colour4

	// Background is the colour last passed to Clear.
	Background Colour4

	// Clip restricts geometry to a half-open rectangle in device
	// coordinates: LLx <= x < URx and LLy <= y < URy.
	Clip rect.Rect

	// CTM maps vertex positions to device coordinates.
	CTM matrix.Matrix
}

// defaultState returns the state of a newly created rasteriser for a
// framebuffer of the given size.
func defaultState(width, height int) State {
	return State{
		Geometry:   Line,
		Fill:       Unfilled,
		Blend:      NoBlend,
		Foreground: White,
		Background: Black,
		Clip: rect.Rect{
			LLx: 0,
			LLy: 0,
			URx: float64(width),
			URy: float64(height),
		},
		CTM: matrix.Identity,
	}
}

// State returns a copy of the current drawing state.
func (r *Rasteriser) State() State {
	return r.state
}

// SetBackground sets the background colour.  The framebuffer is not
// changed; use [Rasteriser.Clear] to paint the background.
func (r *Rasteriser) SetBackground(c Colour4) {
	r.state.Background = c
}

// SetForeground sets the colour used by [Rasteriser.DrawPoint].
func (r *Rasteriser) SetForeground(c Colour4) {
	r.state.Foreground = c
}

// SetGeometryMode sets how [Rasteriser.DrawPolygon] interprets vertices.
func (r *Rasteriser) SetGeometryMode(m GeometryMode) {
	r.state.Geometry = m
}

// SetFillMode sets the fill mode.
func (r *Rasteriser) SetFillMode(m FillMode) {
	r.state.Fill = m
}

// SetBlendMode sets the blend mode.
func (r *Rasteriser) SetBlendMode(m BlendMode) {
	r.state.Blend = m
}

// SetClipRectangle restricts drawing to left <= x < right and
// bottom <= y < top, in device coordinates.
func (r *Rasteriser) SetClipRectangle(left, right, bottom, top float64) {
	r.state.Clip = rect.Rect{LLx: left, LLy: bottom, URx: right, URy: top}
}

// SetTransform sets the matrix which maps vertex positions to device
// coordinates.  The zero matrix is treated as the identity.
func (r *Rasteriser) SetTransform(m matrix.Matrix) {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	r.state.CTM = m
}
