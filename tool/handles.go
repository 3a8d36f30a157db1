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

package tool

import (
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/transform"
)

// Handles lists the handles of the selected object, in document space.
// Handles are only shown when exactly one object is selected.
type Handles struct {
	Target scene.ItemRef

	// Resize holds the resize handles of objects with a box.
	Resize map[transform.Handle]vec.Vec2

	// Rotation is the rotation handle of objects with a box.
	Rotation *vec.Vec2

	// Vertices holds the end points of lines and arrows, and the vertices
	// of length, area and perimeter measurements.
	Vertices []vec.Vec2

	// Tip and Knee are set for comments and callouts.
	Tip, Knee *vec.Vec2

	box         transform.Resizable
	shape       scene.Shape
	measurement scene.Measurement
}

// Handles returns the handles of the selected object, taking any gesture
// in progress into account.  The second return value is false unless
// exactly one valid object on the current page is selected.
func (e *Engine) Handles() (Handles, bool) {
	sel := e.Scene.Selection()
	if len(sel) != 1 {
		return Handles{}, false
	}
	id := sel[0]
	pv := e.Preview()
	if s, ok := e.Scene.Shape(id); ok {
		if s.PageIndex != e.Page || !s.Valid() {
			return Handles{}, false
		}
		return e.shapeHandles(pv.Shape(s)), true
	}
	if m, ok := e.Scene.Measurement(id); ok {
		if m.PageIndex != e.Page || !m.Valid() {
			return Handles{}, false
		}
		return e.measurementHandles(pv.Measurement(m)), true
	}
	return Handles{}, false
}

func (e *Engine) shapeHandles(s scene.Shape) Handles {
	h := Handles{
		Target: scene.ItemRef{Type: scene.ItemShape, ID: s.ID},
		shape:  s,
	}
	if s.Kind.IsLinear() {
		h.Vertices = []vec.Vec2{s.Start, s.End}
		return h
	}
	if r, ok := transform.ResizableOfShape(s); ok {
		e.setBox(&h, r)
	}
	return h
}

func (e *Engine) measurementHandles(m scene.Measurement) Handles {
	h := Handles{
		Target:      scene.ItemRef{Type: scene.ItemMeasurement, ID: m.ID},
		measurement: m,
	}
	if m.Kind.HasPoints() {
		h.Vertices = slices.Clone(m.Points)
	}
	if r, ok := transform.ResizableOfMeasurement(m); ok {
		e.setBox(&h, r)
	}
	if m.Kind.HasTip() {
		tip := *m.Tip
		h.Tip = &tip
		if l, ok := e.Config.Callout.Route(m); ok {
			h.Knee = &l.Knee
		}
	}
	return h
}

func (e *Engine) setBox(h *Handles, r transform.Resizable) {
	h.box = r
	h.Resize = transform.Handles(r)
	rot := transform.RotationHandle(r, e.Config.rotationOffset(e.View))
	h.Rotation = &rot
}

// handleHit describes the handle under the pointer.
type handleHit struct {
	state  State
	handle transform.Handle
	vertex int
}

// at returns the handle within radius of p.  Tips take precedence, since
// they usually sit on top of the annotated content.  Knees come last, so
// that a knee close to the box does not hide the resize handles.
func (h *Handles) at(p vec.Vec2, radius float64) (handleHit, bool) {
	near := func(q vec.Vec2) bool {
		return q.Sub(p).Length() <= radius
	}
	if h.Tip != nil && near(*h.Tip) {
		return handleHit{state: DraggingTip}, true
	}
	for i := len(h.Vertices) - 1; i >= 0; i-- {
		if near(h.Vertices[i]) {
			return handleHit{state: DraggingVertex, vertex: i}, true
		}
	}
	if h.Rotation != nil && near(*h.Rotation) {
		return handleHit{state: Rotating}, true
	}
	if h.Resize != nil {
		if hd, ok := transform.HandleAt(h.box, p, radius); ok {
			return handleHit{state: Resizing, handle: hd}, true
		}
	}
	if h.Knee != nil && near(*h.Knee) {
		return handleHit{state: DraggingKnee}, true
	}
	return handleHit{}, false
}
