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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the path as a stroked outline using Width and Cap.
// Joins between segments are round. The emit callback receives coverage
// row-by-row; its slice argument is valid only during the call.
//
// The outline is built as a set of polygons (one quad per segment, plus
// cap and join polygons) that are filled together under the nonzero
// winding rule, so overlapping pieces composite without seams.
func (r *Rasterizer) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}

	r.flattenPolylines(p)

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	h := r.Width / 2
	for i := range r.ptsOffsets {
		start := r.ptsOffsets[i]
		end := len(r.pts)
		if i+1 < len(r.ptsOffsets) {
			end = r.ptsOffsets[i+1]
		}
		r.strokePolyline(r.pts[start:end], r.subpathClosed[i], h)
	}

	// Rasterize all outline polygons as one compound path
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	for i := range r.outlineOffsets {
		start := r.outlineOffsets[i]
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.fillEdges(emit)
}

// flattenPolylines converts the path into polylines, one per subpath.
// Results are stored in r.pts, r.ptsOffsets and r.subpathClosed.
func (r *Rasterizer) flattenPolylines(p path.Path) {
	r.pts = r.pts[:0]
	r.ptsOffsets = r.ptsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]

	appendPt := func(from, to vec.Vec2) {
		r.pts = append(r.pts, to)
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.ptsOffsets = append(r.ptsOffsets, len(r.pts))
			r.subpathClosed = append(r.subpathClosed, false)
			r.pts = append(r.pts, pts[0])
			current = pts[0]

		case path.CmdLineTo:
			r.pts = append(r.pts, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], appendPt)
			current = pts[1]

		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], appendPt)
			current = pts[2]

		case path.CmdClose:
			if n := len(r.subpathClosed); n > 0 {
				r.subpathClosed[n-1] = true
			}
		}
	}
}

// strokePolyline builds outline polygons for a single polyline with
// half-width h.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool, h float64) {
	// Remove zero-length segments
	r.clean = r.clean[:0]
	for _, pt := range pts {
		n := len(r.clean)
		if n > 0 && pt.Sub(r.clean[n-1]).Length() < zeroLengthThreshold {
			continue
		}
		r.clean = append(r.clean, pt)
	}
	pts = r.clean
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		// Degenerate subpath: only a round cap has a defined shape
		if r.Cap == graphics.LineCapRound {
			r.addDisk(pts[0], h)
		}
		return
	}

	// One quad per segment
	for i := 0; i+1 < len(pts); i++ {
		r.addSegmentQuad(pts[i], pts[i+1], h)
	}

	if closed {
		r.addSegmentQuad(pts[len(pts)-1], pts[0], h)
		for _, pt := range pts {
			r.addDisk(pt, h)
		}
		return
	}

	// Round joins at interior vertices
	for _, pt := range pts[1 : len(pts)-1] {
		r.addDisk(pt, h)
	}

	// Caps at the open ends
	first, last := pts[0], pts[len(pts)-1]
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisk(first, h)
		r.addDisk(last, h)
	case graphics.LineCapSquare:
		tStart := first.Sub(pts[1])
		tEnd := last.Sub(pts[len(pts)-2])
		r.addSegmentQuad(first, first.Add(tStart.Mul(h/tStart.Length())), h)
		r.addSegmentQuad(last, last.Add(tEnd.Mul(h/tEnd.Length())), h)
	}
	// Butt cap: segment quads already end at the endpoints
}

// addSegmentQuad appends the rectangle covering a stroked segment from a
// to b with half-width h. All quads share the same orientation so that
// overlaps reinforce rather than cancel under the nonzero rule.
func (r *Rasterizer) addSegmentQuad(a, b vec.Vec2, h float64) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.outlineOffsets = append(r.outlineOffsets, len(r.outline))
	r.outline = append(r.outline,
		a.Add(n.Mul(h)),
		b.Add(n.Mul(h)),
		b.Sub(n.Mul(h)),
		a.Sub(n.Mul(h)),
	)
}

// addDisk appends a polygonal disk of the given radius centred at c,
// with the same orientation as the segment quads. The vertex count is
// chosen so the chord error stays below Flatness in device pixels.
func (r *Rasterizer) addDisk(c vec.Vec2, radius float64) {
	devRadius := radius * r.ctmScale()

	steps := minDiskSteps
	if devRadius > r.Flatness {
		// sagitta of one chord: s = r*(1 - cos(θ/2)) <= Flatness
		dTheta := 2 * math.Acos(1-r.Flatness/devRadius)
		steps = max(int(math.Ceil(2*math.Pi/dTheta)), minDiskSteps)
	}

	r.outlineOffsets = append(r.outlineOffsets, len(r.outline))
	for i := range steps {
		th := 2 * math.Pi * float64(i) / float64(steps)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + radius*math.Cos(th),
			Y: c.Y - radius*math.Sin(th),
		})
	}
}

// ctmScale estimates the largest scale factor of the CTM's linear part.
func (r *Rasterizer) ctmScale() float64 {
	sx := math.Hypot(r.CTM[0], r.CTM[1])
	sy := math.Hypot(r.CTM[2], r.CTM[3])
	return max(sx, sy)
}

// minDiskSteps is the minimum vertex count for join and cap disks.
// Small disks would otherwise degenerate into visibly coarse polygons.
const minDiskSteps = 16
