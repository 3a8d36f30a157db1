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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
)

// LabelAnchor returns the document position where the label of m is
// centred: half-way along lengths and perimeters, at the vertex centroid
// of areas, and at the box centre of text annotations.
func LabelAnchor(m scene.Measurement) (vec.Vec2, bool) {
	if !m.Valid() {
		return vec.Vec2{}, false
	}
	switch m.Kind {
	case scene.Length, scene.Perimeter:
		return alongPath(m.Points, measure.PathLength(m.Points)/2), true
	case scene.Area:
		var c vec.Vec2
		for _, p := range m.Points {
			c = c.Add(p)
		}
		return c.Mul(1 / float64(len(m.Points))), true
	case scene.Text, scene.Comment, scene.Callout:
		return m.Box.Center(), true
	}
	return vec.Vec2{}, false
}

// Label returns the text shown for m.  Lengths, perimeters and areas are
// formatted in the unit of cal; text annotations show their text.
func Label(m scene.Measurement, cal measure.Calibration) string {
	if !m.Valid() {
		return ""
	}
	switch m.Kind {
	case scene.Length, scene.Perimeter:
		return cal.FormatLength(measure.PathLength(m.Points))
	case scene.Area:
		return cal.FormatArea(measure.PolygonArea(m.Points))
	case scene.Text, scene.Comment, scene.Callout:
		return m.Text
	}
	return ""
}

// alongPath returns the point at distance d along the polyline.
func alongPath(pts []vec.Vec2, d float64) vec.Vec2 {
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pts[i-1])
		l := seg.Length()
		if d <= l && l > 0 {
			return pts[i-1].Add(seg.Mul(d / l))
		}
		d -= l
	}
	return pts[len(pts)-1]
}
