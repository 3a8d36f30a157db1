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

package hittest

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// LineSlack is added to half the stroke width when testing lines and
// polyline edges.
const LineSlack = 5

// Options controls the sensitivity of hit-tests.
// All values are in document units.
type Options struct {
	// Tolerance is the distance by which boxes and ellipses are inflated,
	// and the minimum pick distance for lines.
	Tolerance float64

	// CountRadius is the radius of the circle around a count marker.
	CountRadius float64

	// TipRadius is the radius of the marker drawn at the tip of comments
	// and callouts.
	TipRadius float64
}

// DefaultOptions returns the options used at zoom level 1.
func DefaultOptions() Options {
	return Options{
		Tolerance:   5,
		CountRadius: 8,
		TipRadius:   6,
	}
}

// DistanceToSegment returns the distance from p to the line segment a–b.
func DistanceToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// PointInPolygon reports whether p lies inside the closed polygon poly,
// using the even-odd rule.
func PointInPolygon(p vec.Vec2, poly []vec.Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// lineReach is the pick distance for strokes of the given width.
func lineReach(strokeWidth, tol float64) float64 {
	return math.Max(tol, strokeWidth/2+LineSlack)
}

// toLocal rotates p into the unrotated frame of a box.
func toLocal(p vec.Vec2, box scene.Box, rotation float64) vec.Vec2 {
	if rotation == 0 {
		return p
	}
	return scene.RotateAbout(p, box.Center(), -rotation)
}

// pointInBox tests p against a rotated box, inflated by tol on all sides.
func pointInBox(p vec.Vec2, box scene.Box, rotation, tol float64) bool {
	q := toLocal(p, box, rotation)
	return q.X >= box.X-tol && q.X <= box.X+box.Width+tol &&
		q.Y >= box.Y-tol && q.Y <= box.Y+box.Height+tol
}

// pointInEllipse tests p against the ellipse inscribed in a rotated box,
// with both radii inflated by tol.
func pointInEllipse(p vec.Vec2, box scene.Box, rotation, tol float64) bool {
	rx := box.Width/2 + tol
	ry := box.Height/2 + tol
	if rx <= 0 || ry <= 0 {
		return false
	}
	d := toLocal(p, box, rotation).Sub(box.Center())
	dx, dy := d.X/rx, d.Y/ry
	return dx*dx+dy*dy <= 1
}

func nearPolyline(p vec.Vec2, pts []vec.Vec2, closed bool, reach float64) bool {
	for i := 1; i < len(pts); i++ {
		if DistanceToSegment(p, pts[i-1], pts[i]) <= reach {
			return true
		}
	}
	if closed && len(pts) > 2 {
		return DistanceToSegment(p, pts[len(pts)-1], pts[0]) <= reach
	}
	return false
}

// PointInShape reports whether p hits the shape s.
func PointInShape(p vec.Vec2, s scene.Shape, tol float64) bool {
	if !s.Valid() {
		return false
	}
	switch s.Kind {
	case scene.Line, scene.Arrow:
		return DistanceToSegment(p, s.Start, s.End) <= lineReach(s.Style.StrokeWidth, tol)
	case scene.Rectangle:
		return pointInBox(p, s.Box, s.Rotation, tol)
	case scene.Ellipse:
		return pointInEllipse(p, s.Box, s.Rotation, tol)
	}
	return false
}

// PointInMeasurement reports whether p hits the measurement m.
func PointInMeasurement(p vec.Vec2, m scene.Measurement, opts Options) bool {
	if !m.Valid() {
		return false
	}
	tol := opts.Tolerance
	switch m.Kind {
	case scene.Length, scene.Perimeter:
		return nearPolyline(p, m.Points, false, lineReach(m.Style.StrokeWidth, tol))
	case scene.Area:
		if nearPolyline(p, m.Points, true, lineReach(m.Style.StrokeWidth, tol)) {
			return true
		}
		return PointInPolygon(p, m.Points)
	case scene.Count:
		return p.Sub(m.Point).Length() <= math.Max(opts.CountRadius, tol)
	case scene.Text:
		return pointInBox(p, m.Box, m.Rotation, tol)
	case scene.Comment, scene.Callout:
		if p.Sub(*m.Tip).Length() <= opts.TipRadius+tol {
			return true
		}
		return pointInBox(p, m.Box, m.Rotation, tol)
	}
	return false
}

// FindItemAtPoint returns the topmost object under p.
// Shapes are examined before measurements.  Within each list, objects
// later in the drawing order win.
func FindItemAtPoint(p vec.Vec2, shapes []scene.Shape, measurements []scene.Measurement, opts Options) (scene.ItemRef, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if PointInShape(p, shapes[i], opts.Tolerance) {
			return scene.ItemRef{Type: scene.ItemShape, ID: shapes[i].ID}, true
		}
	}
	for i := len(measurements) - 1; i >= 0; i-- {
		if PointInMeasurement(p, measurements[i], opts) {
			return scene.ItemRef{Type: scene.ItemMeasurement, ID: measurements[i].ID}, true
		}
	}
	return scene.ItemRef{}, false
}
