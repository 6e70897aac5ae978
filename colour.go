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
	"image/color"

	"github.com/chewxy/math32"
)

// Colour4 is a colour with red, green, blue and alpha channels.
// Channels are nominally in the range [0, 1], but arithmetic on colours
// is not clamped.  Values are only clamped when a colour is converted
// to an 8-bit or 16-bit representation.
type Colour4 struct {
	R, G, B, A float32
}

// Commonly used colours.
var (
	Black       = Colour4{0, 0, 0, 1}
	White       = Colour4{1, 1, 1, 1}
	Transparent = Colour4{}
)

// Add returns the channel-wise sum c + o.
func (c Colour4) Add(o Colour4) Colour4 {
	return Colour4{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns c with every channel multiplied by s.
func (c Colour4) Mul(s float32) Colour4 {
	return Colour4{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp interpolates linearly between c (t=0) and o (t=1).
func (c Colour4) Lerp(o Colour4, t float32) Colour4 {
	return c.Mul(1 - t).Add(o.Mul(t))
}

// Clamp returns c with every channel restricted to [0, 1].
func (c Colour4) Clamp() Colour4 {
	return Colour4{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// NRGBA converts c to a non-premultiplied 8-bit colour.
func (c Colour4) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements the [color.Color] interface.
func (c Colour4) RGBA() (r, g, b, a uint32) {
	c = c.Clamp()
	a = uint32(math32.Round(c.A * 0xffff))
	r = uint32(math32.Round(c.R * c.A * 0xffff))
	g = uint32(math32.Round(c.G * c.A * 0xffff))
	b = uint32(math32.Round(c.B * c.A * 0xffff))
	return r, g, b, a
}

// ColourFrom converts an arbitrary colour to a Colour4.
func ColourFrom(c color.Color) Colour4 {
	if c, ok := c.(Colour4); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Colour4{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

// over composites src over dst using the alpha channel of src.
func over(src, dst Colour4) Colour4 {
	a := src.A
	res := src.Mul(a).Add(dst.Mul(1 - a))
	res.A = a + dst.A*(1-a)
	return res
}

func clamp01(x float32) float32 {
	return math32.Max(0, math32.Min(1, x))
}

func to8(x float32) uint8 {
	return uint8(math32.Round(clamp01(x) * 255))
}
