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

// Package appicon renders the guitarPlayer application icon and writes
// the PNG set a macOS AppIcon.appiconset requires.
package appicon

import (
	"image"
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"github.com/guitarplayer/appicon/raster"
)

// refSize is the design grid the icon geometry is expressed on. Renders
// at other sizes scale uniformly by size/refSize.
const refSize = 512

// Icon palette.
var (
	indigo     = color.NRGBA{R: 102, G: 126, B: 234, A: 255} // background and hardware
	bodyWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 240} // body, neck, headstock
	stringBlue = color.NRGBA{R: 102, G: 126, B: 234, A: 200} // strings
	coral      = color.NRGBA{R: 255, G: 107, B: 107, A: 255} // sound hole rim, notes
	white      = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // sound hole centre
)

// Render draws the guitar icon onto a transparent size×size canvas.
// The result is deterministic for a given size.
func Render(size int) *image.NRGBA {
	c := raster.NewCanvas(size)
	c.SetScale(float64(size) / refSize)

	// Background disc, 20 units in from every edge
	c.Fill(raster.Circle(256, 256, 236), indigo)

	// Body
	c.Fill(raster.Ellipse(256, 296, 100, 60), bodyWhite)

	// Neck and headstock
	c.Fill(raster.RoundedRect(156, 96, 356, 126, 14), bodyWhite)
	c.Fill(raster.RoundedRect(116, 56, 396, 116, 30), bodyWhite)

	// Tuning pegs
	for _, dx := range []float64{-100, -50, 50, 100} {
		c.Fill(raster.Circle(256+dx, 86, 6), indigo)
	}

	// Strings, from just below the neck down to the sound hole centre
	for _, dx := range []float64{-100, -50, 50, 100} {
		c.Stroke(raster.Line(256+dx, 116, 256+dx, 296), 4, graphics.LineCapButt, stringBlue)
	}

	// Sound hole with rim
	c.Fill(raster.Circle(256, 296, 40), coral)
	c.Fill(raster.Circle(256, 296, 30), white)

	// Decorative notes
	for _, dx := range []float64{-60, 60} {
		drawNote(c, 256+dx, 176)
	}

	return c.Image()
}

// drawNote draws a note glyph: a filled head with a stem rising from its
// right edge.
func drawNote(c *raster.Canvas, x, y float64) {
	c.Fill(raster.Circle(x, y, 8), coral)
	c.Stroke(raster.Line(x+8, y-16, x+8, y+8), 4, graphics.LineCapButt, coral)
}
