// Package pixel implements a software rasteriser for coloured points,
// segments, polygons and circles.
//
// Geometry is drawn into an in-memory [Framebuffer] with exact,
// non-anti-aliased pixel writes: segments use the integer midpoint
// algorithm, polygons are filled with a scanline table and the even-odd
// rule, and circles are approximated by 40-sided polygons.
package pixel

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixel/testcases"
)

// RenderExample renders a test case into a new framebuffer.
func RenderExample(tc testcases.TestCase) *Framebuffer {
	r := NewRasteriser(tc.Width, tc.Height)
	RenderInto(r, tc)
	return r.Framebuffer()
}

// RenderInto resets r to the size of the test case and renders the test
// case into it.
func RenderInto(r *Rasteriser, tc testcases.TestCase) {
	r.Reset(tc.Width, tc.Height)

	r.Clear(background(tc))

	if tc.Blend {
		r.SetBlendMode(AlphaBlend)
	}
	if tc.Clip != nil {
		r.SetClipRectangle(tc.Clip.LLx, tc.Clip.URx, tc.Clip.LLy, tc.Clip.URy)
	}
	if tc.CTM != (matrix.Matrix{}) {
		r.SetTransform(tc.CTM)
	}

	for _, s := range tc.Steps {
		renderStep(r, s)
	}
}

func renderStep(r *Rasteriser, s testcases.Step) {
	vertices := make([]Vertex, len(s.Vertices))
	for i, v := range s.Vertices {
		vertices[i] = Vertex{Position: v.Pos(), Colour: colourOf(v.Colour)}
	}

	fillMode := Unfilled
	if s.Interpolate {
		fillMode = InterpolatedFilled
	}

	switch s.Op {
	case testcases.OpPoint:
		for _, v := range vertices {
			r.SetForeground(v.Colour)
			r.DrawPoint(v.Position, s.Size)
		}

	case testcases.OpSegment:
		r.SetFillMode(fillMode)
		for i := 0; i+1 < len(vertices); i += 2 {
			r.DrawSegment(vertices[i], vertices[i+1], s.Thickness)
		}

	case testcases.OpOutline:
		r.SetFillMode(fillMode)
		r.DrawOutline(vertices)

	case testcases.OpFill:
		r.SetFillMode(Filled)
		r.DrawFilled(vertices)

	case testcases.OpInterpolatedFill:
		r.SetFillMode(InterpolatedFilled)
		r.DrawInterpolatedFilled(vertices)

	case testcases.OpCircle:
		if len(vertices) != 1 {
			return
		}
		r.SetFillMode(Filled)
		r.DrawCircle(Circle{
			Centre: vertices[0].Position,
			Radius: s.Radius,
			Colour: vertices[0].Colour,
		}, s.Filled)
	}
}

// background returns the clear colour of a test case.
func background(tc testcases.TestCase) Colour4 {
	if tc.Background == (testcases.RGBA{}) {
		return Black
	}
	return colourOf(tc.Background)
}

func colourOf(c testcases.RGBA) Colour4 {
	return Colour4{R: c[0], G: c[1], B: c[2], A: c[3]}
}
