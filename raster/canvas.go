// guitarplayer/appicon - application icon generator for guitarPlayer
// Copyright (C) 2026  The guitarPlayer authors
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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas is a square RGBA raster that shapes are painted onto in
// sequence. Pixels hold straight (non-premultiplied) alpha and start
// fully transparent. Each paint operation composites source-over, so
// later shapes overlay earlier ones.
type Canvas struct {
	img *image.NRGBA
	ras *Rasterizer
}

// NewCanvas returns a fully transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
	return &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, size, size)),
		ras: NewRasterizer(clip),
	}
}

// SetScale makes all subsequent drawing operations scale uniformly by s
// about the canvas origin. Stroke widths scale along with coordinates.
func (c *Canvas) SetScale(s float64) {
	c.ras.CTM = matrix.Matrix{s, 0, 0, s, 0, 0}
}

// Fill paints the interior of the path (nonzero winding rule) with col.
func (c *Canvas) Fill(p path.Path, col color.NRGBA) {
	c.ras.Fill(p, func(y, xMin int, coverage []float32) {
		c.compositeRow(y, xMin, coverage, col)
	})
}

// Stroke paints the path's stroked outline with the given width, cap
// style and color. The width is in user-space units.
func (c *Canvas) Stroke(p path.Path, width float64, capStyle graphics.LineCapStyle, col color.NRGBA) {
	c.ras.Width = width
	c.ras.Cap = capStyle
	c.ras.Stroke(p, func(y, xMin int, coverage []float32) {
		c.compositeRow(y, xMin, coverage, col)
	})
}

// Image returns the underlying raster. The canvas retains ownership;
// further drawing mutates the returned image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// compositeRow blends one row of coverage into the canvas.
func (c *Canvas) compositeRow(y, xMin int, coverage []float32, col color.NRGBA) {
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		o := c.img.PixOffset(xMin+i, y)
		px := c.img.Pix[o : o+4 : o+4]
		dst := color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
		out := over(dst, col, cov)
		px[0], px[1], px[2], px[3] = out.R, out.G, out.B, out.A
	}
}

// over composites src over dst in straight alpha, with the source alpha
// scaled by the coverage value.
func over(dst, src color.NRGBA, cov float32) color.NRGBA {
	sa := float64(src.A) / 255 * float64(cov)
	if sa <= 0 {
		return dst
	}
	da := float64(dst.A) / 255

	oa := sa + da*(1-sa)
	if oa <= 0 {
		return color.NRGBA{}
	}

	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	return color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(oa*255 + 0.5),
	}
}
