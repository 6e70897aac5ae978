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

// Package testcases defines scenes for exercising the rasteriser.
// Scenes are plain data, so that they can be rendered by the rasteriser,
// exported as vector reference files, or loaded from YAML.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single scene.
type TestCase struct {
	Name   string `yaml:"name"`   // lowercase a-z, 0-9 and _ only
	Width  int    `yaml:"width"`  // canvas width in pixels
	Height int    `yaml:"height"` // canvas height in pixels

	// Background is the colour the canvas is cleared to.
	// The zero value means opaque black.
	Background RGBA `yaml:"background,omitempty"`

	// Blend enables alpha blending for all steps.
	Blend bool `yaml:"blend,omitempty"`

	// Clip restricts drawing to a rectangle.  Nil means the whole canvas.
	Clip *rect.Rect `yaml:"clip,omitempty"`

	// CTM maps vertex positions to device coordinates.
	// The zero value means no transform.
	CTM matrix.Matrix `yaml:"ctm,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Op is a drawing operation.
type Op string

// These are the supported drawing operations.
const (
	OpPoint            Op = "point"             // one point per vertex
	OpSegment          Op = "segment"           // segments between vertex pairs
	OpOutline          Op = "outline"           // closed polygon outline
	OpFill             Op = "fill"              // flat polygon fill
	OpInterpolatedFill Op = "interpolated_fill" // gradient polygon fill
	OpCircle           Op = "circle"            // circle around the first vertex
)

// Step is one drawing call of a scene.
type Step struct {
	Op       Op       `yaml:"op"`
	Vertices []Vertex `yaml:"vertices"`

	// Thickness is the segment thickness in pixels (OpSegment only).
	// Zero means 1.
	Thickness int `yaml:"thickness,omitempty"`

	// Interpolate enables colour interpolation along segments
	// (OpSegment and OpOutline).
	Interpolate bool `yaml:"interpolate,omitempty"`

	// Radius is the circle radius (OpCircle only).
	Radius float64 `yaml:"radius,omitempty"`

	// Filled selects a filled circle (OpCircle only).
	Filled bool `yaml:"filled,omitempty"`

	// Size is the point size in pixels (OpPoint only).
	Size int `yaml:"size,omitempty"`
}

// Vertex is a coloured point.
type Vertex struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Colour RGBA    `yaml:"colour"`
}

// Pos returns the position of v.
func (v Vertex) Pos() vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// RGBA is a colour given as red, green, blue and alpha in [0, 1].
type RGBA [4]float32

// Commonly used colours.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
	Red   = RGBA{1, 0, 0, 1}
	Green = RGBA{0, 1, 0, 1}
	Blue  = RGBA{0, 0, 1, 1}
)

// v is a helper to create a vertex.
func v(x, y float64, c RGBA) Vertex {
	return Vertex{X: x, Y: y, Colour: c}
}

// translucent returns c with the alpha channel replaced by a.
func translucent(c RGBA, a float32) RGBA {
	c[3] = a
	return c
}
