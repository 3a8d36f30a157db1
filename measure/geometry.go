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

package measure

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PathLength returns the length of the open polyline through pts.
func PathLength(pts []vec.Vec2) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	return total
}

// PolygonPerimeter returns the length of the closed polygon through pts.
func PolygonPerimeter(pts []vec.Vec2) float64 {
	if len(pts) < 2 {
		return 0
	}
	return PathLength(pts) + pts[0].Sub(pts[len(pts)-1]).Length()
}

// PolygonArea returns the (unsigned) area enclosed by the polygon pts.
// Self-intersecting polygons give the shoelace value.
func PolygonArea(pts []vec.Vec2) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return math.Abs(sum) / 2
}
