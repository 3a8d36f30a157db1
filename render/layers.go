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

import "seehuhn.de/go/overlay/scene"

// Items is a list of objects to draw.  Measurements are drawn first, each
// list in order, so that the topmost object is also the one found by
// hit-testing.
type Items struct {
	Shapes       []scene.Shape
	Measurements []scene.Measurement
}

// Len returns the number of objects in it.
func (it Items) Len() int {
	return len(it.Shapes) + len(it.Measurements)
}

// Layers splits a page into objects which can be drawn once and cached,
// and objects which change during interaction.
type Layers struct {
	Static      Items
	Interactive Items
}

// Partition assigns selected objects to the interactive layer and all
// other objects to the static layer.  The relative order of the objects
// is kept.  Malformed objects are left out.
func Partition(shapes []scene.Shape, measurements []scene.Measurement, isSelected func(id string) bool) Layers {
	var l Layers
	for _, s := range shapes {
		if !s.Valid() {
			continue
		}
		if isSelected != nil && isSelected(s.ID) {
			l.Interactive.Shapes = append(l.Interactive.Shapes, s)
		} else {
			l.Static.Shapes = append(l.Static.Shapes, s)
		}
	}
	for _, m := range measurements {
		if !m.Valid() {
			continue
		}
		if isSelected != nil && isSelected(m.ID) {
			l.Interactive.Measurements = append(l.Interactive.Measurements, m)
		} else {
			l.Static.Measurements = append(l.Static.Measurements, m)
		}
	}
	return l
}
