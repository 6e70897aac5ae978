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
	"image"
	"slices"
)

// Framebuffer is a rectangular grid of colours, stored in row-major order.
// Row y holds pixels (0, y) to (Width-1, y).
type Framebuffer struct {
	width, height int
	pix           []Colour4
}

// NewFramebuffer allocates a framebuffer of the given size with all
// pixels set to [Transparent].  Negative sizes are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.resize(width, height)
	return fb
}

// resize changes the size of fb, reusing the pixel storage if possible.
// All pixels are reset to [Transparent].
func (fb *Framebuffer) resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height
	fb.width = width
	fb.height = height
	fb.pix = slices.Grow(fb.pix[:0], n)[:n]
	clear(fb.pix)
}

// Width returns the number of pixel columns.
func (fb *Framebuffer) Width() int {
	if fb == nil {
		return 0
	}
	return fb.width
}

// Height returns the number of pixel rows.
func (fb *Framebuffer) Height() int {
	if fb == nil {
		return 0
	}
	return fb.height
}

// Contains reports whether (x, y) addresses a pixel of fb.
func (fb *Framebuffer) Contains(x, y int) bool {
	return fb != nil && x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Pixel returns the colour at (x, y).
// Coordinates outside the buffer return the zero colour.
func (fb *Framebuffer) Pixel(x, y int) Colour4 {
	if !fb.Contains(x, y) {
		return Colour4{}
	}
	return fb.pix[y*fb.width+x]
}

// SetPixel stores c at (x, y).  Writes outside the buffer are discarded
// and SetPixel returns false.
func (fb *Framebuffer) SetPixel(x, y int, c Colour4) bool {
	if !fb.Contains(x, y) {
		return false
	}
	fb.pix[y*fb.width+x] = c
	return true
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Colour4) {
	if fb == nil {
		return
	}
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// Row returns the pixels of row y.  The slice aliases the framebuffer
// storage.  Rows outside the buffer return nil.
func (fb *Framebuffer) Row(y int) []Colour4 {
	if fb == nil || y < 0 || y >= fb.height {
		return nil
	}
	return fb.pix[y*fb.width : (y+1)*fb.width]
}

// Image converts the framebuffer to an 8-bit image for presentation.
// Channels are clamped to [0, 1] before conversion.  Framebuffer row y
// becomes image row y.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := range fb.Height() {
		row := img.Pix[y*img.Stride:]
		for x, c := range fb.Row(y) {
			n := c.NRGBA()
			row[4*x] = n.R
			row[4*x+1] = n.G
			row[4*x+2] = n.B
			row[4*x+3] = n.A
		}
	}
	return img
}
