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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// The rectangles in this package use document coordinates with y pointing
// down, so LLy is the top edge and URy the bottom edge.

// RectFromPoints returns the smallest rectangle containing a and b.
func RectFromPoints(a, b vec.Vec2) rect.Rect {
	return boundsOf(a, b)
}

// boundsOf returns the smallest rectangle containing all of pts.
func boundsOf(pts ...vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.Add(p.X, p.Y)
	}
	return r
}

// Intersects reports whether two rectangles overlap.
// Rectangles which only touch along an edge intersect.
func Intersects(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx &&
		a.LLy <= b.URy && b.LLy <= a.URy
}

func boxBounds(box scene.Box, rotation float64) rect.Rect {
	c := box.Corners(rotation)
	return boundsOf(c[:]...)
}

// ellipseBounds returns the exact bounding box of the ellipse inscribed in
// a rotated box.
func ellipseBounds(box scene.Box, rotation float64) rect.Rect {
	rx, ry := box.Width/2, box.Height/2
	s, c := math.Sincos(rotation * math.Pi / 180)
	hw := math.Hypot(rx*c, ry*s)
	hh := math.Hypot(rx*s, ry*c)
	ctr := box.Center()
	return rect.Rect{LLx: ctr.X - hw, LLy: ctr.Y - hh, URx: ctr.X + hw, URy: ctr.Y + hh}
}

// ShapeBounds returns the bounding box of a shape.
// The second return value is false for invalid shapes.
func ShapeBounds(s scene.Shape) (rect.Rect, bool) {
	if !s.Valid() {
		return rect.Rect{}, false
	}
	switch s.Kind {
	case scene.Line, scene.Arrow:
		return boundsOf(s.Start, s.End), true
	case scene.Ellipse:
		return ellipseBounds(s.Box, s.Rotation), true
	default:
		return boxBounds(s.Box, s.Rotation), true
	}
}

// MeasurementBounds returns the bounding box of a measurement.
// Comment and callout boxes are extended to include the tip and, if set,
// the knee.  The second return value is false for invalid measurements.
func MeasurementBounds(m scene.Measurement, opts Options) (rect.Rect, bool) {
	if !m.Valid() {
		return rect.Rect{}, false
	}
	switch m.Kind {
	case scene.Length, scene.Area, scene.Perimeter:
		return boundsOf(m.Points...), true
	case scene.Count:
		r := opts.CountRadius
		return rect.Rect{
			LLx: m.Point.X - r, LLy: m.Point.Y - r,
			URx: m.Point.X + r, URy: m.Point.Y + r,
		}, true
	case scene.Text:
		return boxBounds(m.Box, m.Rotation), true
	default:
		c := m.Box.Corners(m.Rotation)
		pts := append(c[:], *m.Tip)
		if m.Knee != nil {
			pts = append(pts, *m.Knee)
		}
		return boundsOf(pts...), true
	}
}

// InRegion returns all objects whose bounding box intersects region, in
// drawing order.  Shapes come before measurements.
func InRegion(region rect.Rect, shapes []scene.Shape, measurements []scene.Measurement, opts Options) []scene.ItemRef {
	var res []scene.ItemRef
	for _, s := range shapes {
		if b, ok := ShapeBounds(s); ok && Intersects(region, b) {
			res = append(res, scene.ItemRef{Type: scene.ItemShape, ID: s.ID})
		}
	}
	for _, m := range measurements {
		if b, ok := MeasurementBounds(m, opts); ok && Intersects(region, b) {
			res = append(res, scene.ItemRef{Type: scene.ItemMeasurement, ID: m.ID})
		}
	}
	return res
}
