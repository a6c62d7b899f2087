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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// bezierK is the control point offset for approximating a quarter circle
// with a cubic Bézier: 4/3 * (sqrt(2) - 1).
const bezierK = 0.5522847498

// Circle returns a closed circular path centred at (cx, cy).
func Circle(cx, cy, r float64) path.Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns a closed elliptical path centred at (cx, cy) with
// half-axes rx and ry, built from four cubic Bézier quarter-arcs.
func Ellipse(cx, cy, rx, ry float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		kx := bezierK * rx
		ky := bezierK * ry

		var buf [3]vec.Vec2

		buf[0] = vec.Vec2{X: cx, Y: cy - ry}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// Rect returns a closed axis-aligned rectangle path with corners
// (x0, y0) and (x1, y1).
func Rect(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2

		buf[0] = vec.Vec2{X: x0, Y: y0}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y0}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y1}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: x0, Y: y1}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// RoundedRect returns a closed rectangle path with corners (x0, y0) and
// (x1, y1) and quarter-arc corners of the given radius. The radius is
// clamped to half the shorter side, so a radius of half the height gives
// a stadium shape.
func RoundedRect(x0, y0, x1, y1, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		r = min(r, (x1-x0)/2, (y1-y0)/2)
		if r <= 0 {
			Rect(x0, y0, x1, y1)(yield)
			return
		}
		k := bezierK * r

		var buf [3]vec.Vec2

		buf[0] = vec.Vec2{X: x0 + r, Y: y0}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: x1 - r, Y: y0}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: x1 - r + k, Y: y0}, vec.Vec2{X: x1, Y: y0 + r - k}, vec.Vec2{X: x1, Y: y0 + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y1 - r}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: x1, Y: y1 - r + k}, vec.Vec2{X: x1 - r + k, Y: y1}, vec.Vec2{X: x1 - r, Y: y1}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0] = vec.Vec2{X: x0 + r, Y: y1}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: x0 + r - k, Y: y1}, vec.Vec2{X: x0, Y: y1 - r + k}, vec.Vec2{X: x0, Y: y1 - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0] = vec.Vec2{X: x0, Y: y0 + r}
		if !yield(path.CmdLineTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: x0, Y: y0 + r - k}, vec.Vec2{X: x0 + r - k, Y: y0}, vec.Vec2{X: x0 + r, Y: y0}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// Line returns an open path from (x0, y0) to (x1, y1), for stroking.
func Line(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2

		buf[0] = vec.Vec2{X: x0, Y: y0}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y1}
		yield(path.CmdLineTo, buf[:1])
	}
}
