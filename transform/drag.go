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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// DragShape returns the patch which moves s by delta.
// A zero delta gives an empty patch.
func DragShape(s scene.Shape, delta vec.Vec2) scene.ShapePatch {
	if delta == (vec.Vec2{}) {
		return scene.ShapePatch{}
	}
	if s.Kind.IsLinear() {
		start := s.Start.Add(delta)
		end := s.End.Add(delta)
		return scene.ShapePatch{Start: &start, End: &end}
	}
	b := s.Box.Translate(delta)
	return scene.ShapePatch{Box: &b}
}

// DragMeasurement returns the patch which moves m by delta.
//
// Comments and callouts move their box and knee, but keep the tip in place:
// the tip marks a location in the document, the box is what the user
// drags.  A zero delta gives an empty patch.
func DragMeasurement(m scene.Measurement, delta vec.Vec2) scene.MeasurementPatch {
	if delta == (vec.Vec2{}) {
		return scene.MeasurementPatch{}
	}
	switch {
	case m.Kind.HasPoints():
		pts := make([]vec.Vec2, len(m.Points))
		for i, p := range m.Points {
			pts[i] = p.Add(delta)
		}
		return scene.MeasurementPatch{Points: pts}
	case m.Kind == scene.Count:
		p := m.Point.Add(delta)
		return scene.MeasurementPatch{Point: &p}
	case m.Kind.HasBox():
		b := m.Box.Translate(delta)
		patch := scene.MeasurementPatch{Box: &b}
		if m.Kind.HasTip() && m.Knee != nil {
			knee := m.Knee.Add(delta)
			patch.Knee = &knee
		}
		return patch
	}
	return scene.MeasurementPatch{}
}

// MoveVertex returns the patch which moves vertex index of a length, area
// or perimeter measurement to p.
// The second return value is false if m has no such vertex.
func MoveVertex(m scene.Measurement, index int, p vec.Vec2) (scene.MeasurementPatch, bool) {
	if !m.Kind.HasPoints() || index < 0 || index >= len(m.Points) {
		return scene.MeasurementPatch{}, false
	}
	pts := make([]vec.Vec2, len(m.Points))
	copy(pts, m.Points)
	pts[index] = p
	return scene.MeasurementPatch{Points: pts}, true
}

// MoveEndpoint returns the patch which moves the start (index 0) or end
// (index 1) of a line or arrow to p.
func MoveEndpoint(s scene.Shape, index int, p vec.Vec2) (scene.ShapePatch, bool) {
	if !s.Kind.IsLinear() {
		return scene.ShapePatch{}, false
	}
	switch index {
	case 0:
		return scene.ShapePatch{Start: &p}, true
	case 1:
		return scene.ShapePatch{End: &p}, true
	}
	return scene.ShapePatch{}, false
}

// MoveTip returns the patch which re-anchors the tip of a comment or
// callout at p.
func MoveTip(m scene.Measurement, p vec.Vec2) (scene.MeasurementPatch, bool) {
	if !m.Kind.HasTip() {
		return scene.MeasurementPatch{}, false
	}
	return scene.MeasurementPatch{Tip: &p}, true
}
