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
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeGrid strokes a path with the given width and cap style and
// returns the resulting size×size coverage buffer.
func strokeGrid(t *testing.T, size int, p path.Path, width float64, capStyle graphics.LineCapStyle) []float32 {
	t.Helper()
	return coverageGrid(t, size, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Width = width
		r.Cap = capStyle
		r.Stroke(p, emit)
	})
}

func TestStrokeButtLine(t *testing.T) {
	// a butt-capped vertical stroke of width 4 is the rectangle [6,10)×[2,14)
	const size = 16
	buf := strokeGrid(t, size, Line(8, 2, 8, 14), 4, graphics.LineCapButt)

	for _, x := range []int{6, 7, 8, 9} {
		if got := buf[8*size+x]; got < 0.999 {
			t.Errorf("coverage at (%d,8) = %g, want 1", x, got)
		}
	}
	if got := buf[8*size+5]; got != 0 {
		t.Errorf("coverage left of stroke = %g, want 0", got)
	}
	if got := buf[8*size+10]; got != 0 {
		t.Errorf("coverage right of stroke = %g, want 0", got)
	}
	// butt caps end exactly at the endpoints
	if got := buf[1*size+8]; got != 0 {
		t.Errorf("coverage above butt cap = %g, want 0", got)
	}
	if got := buf[14*size+8]; got != 0 {
		t.Errorf("coverage below butt cap = %g, want 0", got)
	}
	if sum := coverageSum(buf); math.Abs(sum-48) > 0.01 {
		t.Errorf("total coverage = %g, want 48", sum)
	}
}

func TestStrokeRoundCap(t *testing.T) {
	const size = 16
	buf := strokeGrid(t, size, Line(8, 2, 8, 14), 4, graphics.LineCapRound)

	// the cap disk at (8,14) fully contains pixel (8,14)
	if got := buf[14*size+8]; got < 0.99 {
		t.Errorf("coverage inside round cap = %g, want 1", got)
	}
	// total area grows by one full disk (two half-disk caps of radius 2)
	want := 48 + math.Pi*4
	if sum := coverageSum(buf); math.Abs(sum-want) > want*0.01 {
		t.Errorf("total coverage = %g, want ≈%g", sum, want)
	}
}

func TestStrokeSquareCap(t *testing.T) {
	const size = 16
	buf := strokeGrid(t, size, Line(8, 2, 8, 14), 4, graphics.LineCapSquare)

	// square caps extend the rectangle by half the width at both ends
	if got := buf[14*size+6]; got < 0.999 {
		t.Errorf("coverage inside square cap = %g, want 1", got)
	}
	if got := buf[0*size+6]; got < 0.999 {
		t.Errorf("coverage inside top square cap = %g, want 1", got)
	}
	if sum := coverageSum(buf); math.Abs(sum-64) > 0.01 {
		t.Errorf("total coverage = %g, want 64", sum)
	}
}

func TestStrokePolylineJoin(t *testing.T) {
	// an L-shaped polyline gets a round join at the corner
	const size = 24
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		buf[0] = vec.Vec2{X: 4, Y: 6}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: 14, Y: 6}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: 14, Y: 16}
		yield(path.CmdLineTo, buf[:1])
	}
	buf := strokeGrid(t, size, p, 4, graphics.LineCapButt)

	// both arms are covered
	if got := buf[6*size+8]; got < 0.999 {
		t.Errorf("horizontal arm coverage = %g, want 1", got)
	}
	if got := buf[12*size+14]; got < 0.999 {
		t.Errorf("vertical arm coverage = %g, want 1", got)
	}
	// the outer corner region is only reached by the join disk
	if got := buf[4*size+14]; got < 0.5 {
		t.Errorf("round join coverage = %g, want > 0.5", got)
	}
	// overlapping quads and the join disk must not cancel at the corner
	if got := buf[6*size+13]; got < 0.999 {
		t.Errorf("corner interior coverage = %g, want 1", got)
	}
}

func TestStrokeDegeneratePoint(t *testing.T) {
	const size = 16
	round := strokeGrid(t, size, Line(8, 8, 8, 8), 4, graphics.LineCapRound)
	butt := strokeGrid(t, size, Line(8, 8, 8, 8), 4, graphics.LineCapButt)

	// round cap draws a dot, butt cap draws nothing; the dot is a
	// polygonal disk, so allow for its inscribed-area deficit
	want := math.Pi * 4
	if sum := coverageSum(round); math.Abs(sum-want) > want*0.05 {
		t.Errorf("round dot coverage = %g, want ≈%g", sum, want)
	}
	if sum := coverageSum(butt); sum != 0 {
		t.Errorf("butt dot coverage = %g, want 0", sum)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	const size = 16
	buf := strokeGrid(t, size, Line(8, 2, 8, 14), 0, graphics.LineCapButt)
	if sum := coverageSum(buf); sum != 0 {
		t.Errorf("zero-width stroke produced coverage %g", sum)
	}
}
