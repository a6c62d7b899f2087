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

package appicon

import (
	"bytes"
	"image/color"
	"testing"
)

// colorClose reports whether two colors agree within tol per channel.
func colorClose(a, b color.NRGBA, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol &&
		diff(a.B, b.B) <= tol && diff(a.A, b.A) <= tol
}

// mixOver blends src over an opaque ground in straight alpha.
func mixOver(src, ground color.NRGBA) color.NRGBA {
	sa := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*sa + float64(d)*(1-sa) + 0.5)
	}
	return color.NRGBA{
		R: mix(src.R, ground.R),
		G: mix(src.G, ground.G),
		B: mix(src.B, ground.B),
		A: 255,
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{16, 32, 128, 512, 1024} {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %v", size, b)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(128)
	b := Render(128)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders at the same size differ")
	}
}

func TestBackgroundDisc(t *testing.T) {
	img := Render(512)

	// corners are outside the disc
	for _, pt := range [][2]int{{0, 0}, {511, 0}, {0, 511}, {511, 511}} {
		if a := img.NRGBAAt(pt[0], pt[1]).A; a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", pt[0], pt[1], a)
		}
	}
	// the 20-unit margin stays transparent
	if a := img.NRGBAAt(256, 10).A; a != 0 {
		t.Errorf("margin pixel alpha = %d, want 0", a)
	}
	// unobstructed disc interior carries the background fill
	if got := img.NRGBAAt(256, 40); !colorClose(got, indigo, 1) {
		t.Errorf("background pixel = %v, want %v", got, indigo)
	}
}

func TestSoundHoleRing(t *testing.T) {
	img := Render(512)

	// inner circle: opaque white at the hole centre
	if got := img.NRGBAAt(256, 296); !colorClose(got, white, 1) {
		t.Errorf("hole centre = %v, want %v", got, white)
	}
	// mid-ring samples above and below the centre: opaque red
	for _, y := range []int{261, 331} {
		if got := img.NRGBAAt(256, y); !colorClose(got, coral, 1) {
			t.Errorf("ring pixel (256,%d) = %v, want %v", y, got, coral)
		}
	}
	// mid-ring samples left and right of the centre
	for _, x := range []int{221, 291} {
		if got := img.NRGBAAt(x, 296); !colorClose(got, coral, 1) {
			t.Errorf("ring pixel (%d,296) = %v, want %v", x, got, coral)
		}
	}
}

func TestScalingLaw(t *testing.T) {
	// corresponding sample points carry the same colors at every scale
	for _, size := range []int{128, 256, 512} {
		scale := float64(size) / refSize
		img := Render(size)
		cx := size / 2

		if a := img.NRGBAAt(0, 0).A; a != 0 {
			t.Errorf("size %d: corner not transparent", size)
		}
		if got := img.NRGBAAt(cx, int(40*scale)); !colorClose(got, indigo, 1) {
			t.Errorf("size %d: background sample = %v, want %v", size, got, indigo)
		}
		holeY := cx + int(40*scale)
		if got := img.NRGBAAt(cx, holeY); !colorClose(got, white, 1) {
			t.Errorf("size %d: hole centre = %v, want %v", size, got, white)
		}
		ringY := holeY - int(35*scale+0.5)
		if got := img.NRGBAAt(cx, ringY); !colorClose(got, coral, 1) {
			t.Errorf("size %d: ring sample = %v, want %v", size, got, coral)
		}
	}
}

func TestStringOverBody(t *testing.T) {
	// a string pixel inside the body shows the translucent string color
	// over white-over-indigo, composited in paint order
	img := Render(512)

	ground := mixOver(bodyWhite, indigo)
	want := mixOver(stringBlue, ground)

	if got := img.NRGBAAt(306, 290); !colorClose(got, want, 2) {
		t.Errorf("string-over-body pixel = %v, want %v", got, want)
	}
	// body without a string keeps the plain white-over-indigo blend
	if got := img.NRGBAAt(330, 270); !colorClose(got, ground, 2) {
		t.Errorf("plain body pixel = %v, want %v", got, ground)
	}
}

func TestNoteGlyphs(t *testing.T) {
	img := Render(512)

	for _, x := range []int{196, 316} {
		// note head
		if got := img.NRGBAAt(x, 176); !colorClose(got, coral, 1) {
			t.Errorf("note head (%d,176) = %v, want %v", x, got, coral)
		}
		// stem rises from the head's right edge
		if got := img.NRGBAAt(x+8, 164); !colorClose(got, coral, 1) {
			t.Errorf("note stem (%d,164) = %v, want %v", x+8, got, coral)
		}
	}
}

func TestTuningPegs(t *testing.T) {
	img := Render(512)

	for _, dx := range []int{-100, -50, 50, 100} {
		if got := img.NRGBAAt(256+dx, 86); !colorClose(got, indigo, 1) {
			t.Errorf("peg at (%d,86) = %v, want %v", 256+dx, got, indigo)
		}
	}
}
