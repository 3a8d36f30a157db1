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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport is a rectangular region of a page with its own calibration.
type Viewport struct {
	// BBox is the location of the viewport in document space.
	BBox rect.Rect

	// Name is a descriptive title of the viewport (optional).
	Name string

	// Calibration applies to measurements taken inside BBox.
	Calibration Calibration
}

// Contains reports whether p lies inside the viewport.
// Points on the boundary are inside.
func (v *Viewport) Contains(p vec.Vec2) bool {
	return p.X >= v.BBox.LLx && p.X <= v.BBox.URx &&
		p.Y >= v.BBox.LLy && p.Y <= v.BBox.URy
}

// Viewports is the list of viewports of a page, in drawing order.
type Viewports []*Viewport

// Select returns the viewport which applies at point p.
// Viewports are examined in reverse order and the first one containing p is
// returned.  If no viewport contains p, nil is returned.
func (vs Viewports) Select(p vec.Vec2) *Viewport {
	for i := len(vs) - 1; i >= 0; i-- {
		if vs[i] != nil && vs[i].Contains(p) {
			return vs[i]
		}
	}
	return nil
}

// Clone returns a deep copy of vs.
func (vs Viewports) Clone() Viewports {
	if vs == nil {
		return nil
	}
	res := make(Viewports, len(vs))
	for i, v := range vs {
		if v != nil {
			c := *v
			res[i] = &c
		}
	}
	return res
}
