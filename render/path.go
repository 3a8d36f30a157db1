// seehuhn.de/go/overlay - annotation and measurement overlays for paged documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package render

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
)

// EllipseSegments is the number of edges used to approximate ellipses.
const EllipseSegments = 64

// EllipsePolygon returns a polygon approximating the ellipse inscribed in
// box, rotated by rotation degrees about the box centre.
func EllipsePolygon(box scene.Box, rotation float64) []vec.Vec2 {
	c := box.Center()
	rx, ry := box.Width/2, box.Height/2
	pts := make([]vec.Vec2, EllipseSegments)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / EllipseSegments
		p := vec.Vec2{X: c.X + rx*math.Cos(phi), Y: c.Y + ry*math.Sin(phi)}
		pts[i] = scene.RotateAbout(p, c, rotation)
	}
	return pts
}

// Outline returns the closed outline of a rectangle or ellipse, or the
// open path of a line or arrow.
func Outline(s scene.Shape) (pts []vec.Vec2, closed bool) {
	switch s.Kind {
	case scene.Rectangle:
		c := s.Box.Corners(s.Rotation)
		return c[:], true
	case scene.Ellipse:
		return EllipsePolygon(s.Box, s.Rotation), true
	default:
		from, to, _ := LineSegment(s)
		return []vec.Vec2{from, to}, false
	}
}

// MaxDashes is the largest number of dashes and gaps [Dash] produces for
// one path.  Finer patterns are drawn as solid lines.
const MaxDashes = 10000

// Dash splits a polyline into the dashes of a dash pattern.
// Patterns with an odd number of entries are repeated once, so that
// dashes and gaps alternate.  An empty pattern, or one without positive
// length, gives the whole path as a single dash.
func Dash(pts []vec.Vec2, closed bool, pattern []float64) [][]vec.Vec2 {
	if closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	total := 0.0
	for _, l := range pattern {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			total = 0
			break
		}
		total += l
	}
	if total <= 0 || len(pts) < 2 {
		return [][]vec.Vec2{pts}
	}
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
		total *= 2
	}
	if measure.PathLength(pts)/total*float64(len(pattern)) > MaxDashes {
		return [][]vec.Vec2{pts}
	}

	var res [][]vec.Vec2
	cur := []vec.Vec2{pts[0]}
	idx := 0
	left := pattern[0]
	on := true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		l := seg.Length()
		pos := 0.0
		for l-pos > left {
			pos += left
			p := a.Add(seg.Mul(pos / l))
			if on {
				cur = append(cur, p)
				res = append(res, cur)
				cur = nil
			} else {
				cur = []vec.Vec2{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= l - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		res = append(res, cur)
	}
	return res
}
