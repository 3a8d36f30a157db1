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

package transform

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

func fromBox(b scene.Box, rotation float64) Resizable {
	return Resizable{X: b.X, Y: b.Y, W: b.Width, H: b.Height, Rotation: rotation}
}

// lineBox returns the bounding box of a line, as a Resizable.
// Lines are never rotated; their direction is given by the endpoints.
func lineBox(a, b vec.Vec2) Resizable {
	return Resizable{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// ResizableOfShape returns the resizable view of a shape.
// Lines and arrows are represented by the bounding box of their endpoints.
// The second return value is false for invalid shapes.
func ResizableOfShape(s scene.Shape) (Resizable, bool) {
	if !s.Valid() {
		return Resizable{}, false
	}
	if s.Kind.IsLinear() {
		return lineBox(s.Start, s.End), true
	}
	return fromBox(s.Box, s.Rotation), true
}

// ResizableOfMeasurement returns the resizable view of a text, comment or
// callout box.  Other measurements are edited vertex by vertex and have
// no resizable view.
func ResizableOfMeasurement(m scene.Measurement) (Resizable, bool) {
	if !m.Kind.HasBox() || !m.Valid() {
		return Resizable{}, false
	}
	return fromBox(m.Box, m.Rotation), true
}

// ApplyToShape returns the patch which gives s the geometry r.
// For lines and arrows, the endpoints keep their relative position inside
// the bounding box.
func ApplyToShape(s scene.Shape, r Resizable) scene.ShapePatch {
	if s.Kind.IsLinear() {
		old := lineBox(s.Start, s.End)
		start := remap(s.Start, old, r)
		end := remap(s.End, old, r)
		return scene.ShapePatch{Start: &start, End: &end}
	}
	b := r.Box()
	rot := r.Rotation
	return scene.ShapePatch{Box: &b, Rotation: &rot}
}

// ApplyToMeasurement returns the patch which gives the box of m the
// geometry r.  The tip and an explicit knee stay where they are.
func ApplyToMeasurement(m scene.Measurement, r Resizable) (scene.MeasurementPatch, bool) {
	if !m.Kind.HasBox() {
		return scene.MeasurementPatch{}, false
	}
	b := r.Box()
	rot := r.Rotation
	return scene.MeasurementPatch{Box: &b, Rotation: &rot}, true
}

// remap moves p from box "from" to the same relative position in box "to".
// A zero extent maps to the near edge of the new box.
func remap(p vec.Vec2, from, to Resizable) vec.Vec2 {
	var u, v float64
	if from.W > 0 {
		u = (p.X - from.X) / from.W
	}
	if from.H > 0 {
		v = (p.Y - from.Y) / from.H
	}
	return vec.Vec2{X: to.X + u*to.W, Y: to.Y + v*to.H}
}
