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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/hittest"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/transform"
)

// Preview describes the effect of the gesture in progress.
//
// Renderers pass every object through [Preview.Shape] or
// [Preview.Measurement] before drawing it, and draw the draft objects on
// top.  The scene itself only changes when the gesture is committed.
type Preview struct {
	State State

	// Delta is the offset of the objects being dragged.
	Delta vec.Vec2

	// DraftShape and DraftMeasurement show the object being created.
	DraftShape       *scene.Shape
	DraftMeasurement *scene.Measurement

	// DraftPoints holds the clicked points of a point sequence, followed
	// by the pointer position.
	DraftPoints []vec.Vec2

	// SelectionRect is the region of a box selection.
	SelectionRect *rect.Rect

	moving           map[string]struct{}
	target           scene.ItemRef
	shapePatch       scene.ShapePatch
	measurementPatch scene.MeasurementPatch
}

// Preview returns the pending effect of the current gesture.
func (e *Engine) Preview() *Preview {
	p := &Preview{State: e.state}
	g := &e.g
	switch e.state {
	case DraggingSelection:
		p.Delta = g.delta()
		p.moving = g.moving
	case Resizing, Rotating, DraggingVertex, DraggingKnee, DraggingTip:
		p.target = g.target
		p.shapePatch, p.measurementPatch = g.patches(e.state, &e.Config)
	case BoxSelecting:
		if g.moved {
			r := hittest.RectFromPoints(g.start, g.current)
			p.SelectionRect = &r
		}
	case DraggingShapeStart:
		e.draftDrag(p)
	case DrawingPointSequence:
		pts := append(slices.Clone(g.points), g.current)
		p.DraftPoints = pts
		kind, _ := e.tool.measurementKind()
		m := e.sequenceMeasurement(kind, pts)
		p.DraftMeasurement = &m
	}
	return p
}

func (e *Engine) draftDrag(p *Preview) {
	g := &e.g
	a, b := g.start, g.current
	var m scene.Measurement
	switch e.tool {
	case Calibrate:
		m = scene.Measurement{
			PageIndex: e.Page,
			Kind:      scene.Length,
			Style:     e.Config.Style,
			Points:    []vec.Vec2{a, b},
		}
	case Text:
		m = e.newText(a, b, !g.moved)
	case Callout:
		if g.moved {
			m = e.newCallout(scene.Callout, a, &b)
		} else {
			m = e.newCallout(scene.Callout, a, nil)
		}
	default:
		if kind, ok := e.tool.shapeKind(); ok {
			s := e.newShape(kind, a, b)
			p.DraftShape = &s
		}
		return
	}
	p.DraftMeasurement = &m
}

// Active reports whether a gesture is in progress.
func (p *Preview) Active() bool {
	return p != nil && p.State != Idle
}

// Shape returns s as it appears with the pending edit applied.
func (p *Preview) Shape(s scene.Shape) scene.Shape {
	if p == nil {
		return s
	}
	if p.target.Type == scene.ItemShape && p.target.ID == s.ID {
		return p.shapePatch.Apply(s)
	}
	if _, ok := p.moving[s.ID]; ok {
		return transform.DragShape(s, p.Delta).Apply(s)
	}
	return s
}

// Measurement returns m as it appears with the pending edit applied.
func (p *Preview) Measurement(m scene.Measurement) scene.Measurement {
	if p == nil {
		return m
	}
	if p.target.Type == scene.ItemMeasurement && p.target.ID == m.ID {
		return p.measurementPatch.Apply(m)
	}
	if _, ok := p.moving[m.ID]; ok {
		return transform.DragMeasurement(m, p.Delta).Apply(m)
	}
	return m
}
