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
	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/hittest"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/transform"
)

// gesture holds the transient state of a pointer gesture.
// Positions are in document space unless noted otherwise.
type gesture struct {
	startScreen vec.Vec2
	start       vec.Vec2
	current     vec.Vec2

	// moved is set once the pointer has travelled further than the drag
	// threshold.
	moved bool

	// additive is set for shift-drags on empty space.
	additive bool

	// ids and moving hold the objects moved by DraggingSelection.
	ids    []string
	moving map[string]struct{}

	// target is the object edited through a handle, with a copy of its
	// state at pointer-down.
	target      scene.ItemRef
	shape       scene.Shape
	measurement scene.Measurement

	handle transform.Handle
	vertex int
	orig   transform.Resizable
	box    transform.Resizable

	// points collects the clicks of a point sequence.
	points []vec.Vec2
}

// delta returns the drag offset, or zero while the pointer is within the
// drag threshold.
func (g *gesture) delta() vec.Vec2 {
	if !g.moved {
		return vec.Vec2{}
	}
	return g.current.Sub(g.start)
}

// patches returns the edit of the handle target.  Both patches are empty
// while the pointer is within the drag threshold.
func (g *gesture) patches(state State, cfg *Config) (scene.ShapePatch, scene.MeasurementPatch) {
	var sp scene.ShapePatch
	var mp scene.MeasurementPatch
	if !g.moved {
		return sp, mp
	}
	switch g.target.Type {
	case scene.ItemShape:
		switch state {
		case Resizing, Rotating:
			sp = transform.ApplyToShape(g.shape, g.box)
		case DraggingVertex:
			sp, _ = transform.MoveEndpoint(g.shape, g.vertex, g.current)
		}
	case scene.ItemMeasurement:
		m := g.measurement
		switch state {
		case Resizing, Rotating:
			mp, _ = transform.ApplyToMeasurement(m, g.box)
		case DraggingVertex:
			mp, _ = transform.MoveVertex(m, g.vertex, g.current)
		case DraggingTip:
			mp, _ = transform.MoveTip(m, g.current)
		case DraggingKnee:
			knee := cfg.Callout.SnapKnee(m.Box, m.Rotation, g.current)
			mp = scene.MeasurementPatch{Knee: &knee}
		}
	}
	return sp, mp
}

// PointerDown handles a press of a pointer button.
// Only the primary button is used.
func (e *Engine) PointerDown(ev PointerEvent) {
	if ev.Button != Primary {
		return
	}
	p := e.View.ToDocument(ev.Screen)

	if e.state == DrawingPointSequence {
		e.addSequencePoint(ev, p)
		return
	}
	if e.state != Idle {
		// the pointer-up of the previous gesture was lost
		e.Abort()
	}

	e.g = gesture{startScreen: ev.Screen, start: p, current: p}
	switch {
	case e.tool == Select:
		e.pointerDownSelect(ev, p)
	case e.tool == Count:
		e.addMeasurement(e.newCount(p))
	case e.tool.pointSequence():
		e.state = DrawingPointSequence
		e.g.points = []vec.Vec2{p}
	default:
		e.state = DraggingShapeStart
	}
}

func (e *Engine) pointerDownSelect(ev PointerEvent, p vec.Vec2) {
	if h, ok := e.Handles(); ok {
		if hit, ok := h.at(p, e.Config.handleRadius(e.View)); ok {
			e.startHandleDrag(&h, hit)
			return
		}
	}

	shapes := e.Scene.ShapesOnPage(e.Page)
	measurements := e.Scene.MeasurementsOnPage(e.Page)
	ref, ok := hittest.FindItemAtPoint(p, shapes, measurements, e.Config.hitOptions(e.View))
	if !ok {
		e.g.additive = ev.Mods.Has(Shift)
		e.state = BoxSelecting
		return
	}

	if ev.Mods.Has(Shift) {
		e.Scene.ToggleSelection(ref.ID)
		return
	}
	if !e.Scene.IsSelected(ref.ID) {
		e.Scene.SetSelection(ref.ID)
	}
	e.g.ids = e.Scene.Selection()
	e.g.moving = make(map[string]struct{}, len(e.g.ids))
	for _, id := range e.g.ids {
		e.g.moving[id] = struct{}{}
	}
	e.state = DraggingSelection
}

func (e *Engine) startHandleDrag(h *Handles, hit handleHit) {
	e.g.target = h.Target
	e.g.shape = h.shape
	e.g.measurement = h.measurement
	e.g.handle = hit.handle
	e.g.vertex = hit.vertex
	e.g.orig = h.box
	e.g.box = h.box
	e.state = hit.state
}

// PointerMove handles pointer motion.  The scene is not modified; the
// pending edit is available through [Engine.Preview].
func (e *Engine) PointerMove(ev PointerEvent) {
	if e.state == Idle {
		return
	}
	e.track(ev)
}

// track updates the gesture for the pointer position of ev.
// The work done is independent of the number of objects in the scene.
func (e *Engine) track(ev PointerEvent) {
	g := &e.g
	g.current = e.View.ToDocument(ev.Screen)
	if !g.moved && ev.Screen.Sub(g.startScreen).Length() >= e.Config.DragThreshold {
		g.moved = true
	}
	if !g.moved {
		return
	}

	switch e.state {
	case Resizing:
		g.box = transform.Resize(g.orig, g.handle, g.current.Sub(g.start))
	case Rotating:
		snap := ev.Mods.Has(Shift) != e.Config.SnapRotation
		deg, ok := transform.Rotate(g.orig.Center(), g.current, transform.TopHandleOffset, snap)
		if ok {
			g.box = g.orig
			g.box.Rotation = deg
		}
	}
}

// PointerUp handles the release of a pointer button and commits the
// gesture in progress.
func (e *Engine) PointerUp(ev PointerEvent) {
	if ev.Button != Primary {
		return
	}
	switch e.state {
	case Idle, DrawingPointSequence:
		return
	}
	e.track(ev)

	state := e.state
	g := e.g
	e.abort()

	switch state {
	case DraggingShapeStart:
		e.finishShapeDrag(&g)
	case DraggingSelection:
		if d := g.delta(); d != (vec.Vec2{}) {
			e.moveObjects(g.ids, d)
			e.checkpoint("move")
		}
	case BoxSelecting:
		e.finishBoxSelect(&g)
	default:
		e.commitTarget(state, &g)
	}
}

func (e *Engine) commitTarget(state State, g *gesture) {
	sp, mp := g.patches(state, &e.Config)
	ok := true
	switch g.target.Type {
	case scene.ItemShape:
		if !sp.IsEmpty() {
			ok = e.Scene.UpdateShape(g.target.ID, sp)
		}
	case scene.ItemMeasurement:
		if !mp.IsEmpty() {
			ok = e.Scene.UpdateMeasurement(g.target.ID, mp)
		}
	}
	if !ok {
		e.Log.WithFields(logrus.Fields{
			"id":    g.target.ID,
			"state": state,
		}).Warn("edit rejected")
		return
	}
	e.checkpoint(state.String())
}

func (e *Engine) finishBoxSelect(g *gesture) {
	if !g.moved {
		if !g.additive {
			e.Scene.ClearSelection()
		}
		return
	}
	region := hittest.RectFromPoints(g.start, g.current)
	refs := hittest.InRegion(region,
		e.Scene.ShapesOnPage(e.Page), e.Scene.MeasurementsOnPage(e.Page),
		e.Config.hitOptions(e.View))
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	if g.additive {
		e.Scene.AddToSelection(ids...)
	} else {
		e.Scene.SetSelection(ids...)
	}
}

func (e *Engine) finishShapeDrag(g *gesture) {
	a, b := g.start, g.current
	switch e.tool {
	case Calibrate:
		if !g.moved {
			return
		}
		e.calibrationLine = b.Sub(a).Length()
		e.hasCalibrationLine = true
		e.Log.WithFields(logrus.Fields{
			"page":   e.Page,
			"length": e.calibrationLine,
		}).Debug("calibration line drawn")
	case Text:
		e.addMeasurement(e.newText(a, b, !g.moved))
	case Callout:
		if g.moved {
			e.addMeasurement(e.newCallout(scene.Callout, a, &b))
		} else {
			e.addMeasurement(e.newCallout(scene.Callout, a, nil))
		}
	default:
		kind, ok := e.tool.shapeKind()
		if !ok || !g.moved {
			return
		}
		e.addShape(e.newShape(kind, a, b))
	}
}

// addSequencePoint handles a click while a point sequence is drawn.
// Clicks on the previous point are ignored.
func (e *Engine) addSequencePoint(ev PointerEvent, p vec.Vec2) {
	if ev.Clicks >= 2 && (e.tool == Area || e.tool == Perimeter) {
		e.finishSequence()
		return
	}
	last := e.g.points[len(e.g.points)-1]
	if p.Sub(last).Length() <= e.Config.handleRadius(e.View) {
		return
	}
	e.g.points = append(e.g.points, p)
	e.g.current = p
	if e.tool == Length || e.tool == Comment {
		e.finishSequence()
	}
}

// finishSequence creates the measurement for the collected points.
// If there are too few points, nothing happens.
func (e *Engine) finishSequence() {
	if e.state != DrawingPointSequence {
		return
	}
	kind, _ := e.tool.measurementKind()
	if len(e.g.points) < minPoints(kind) {
		return
	}
	m := e.sequenceMeasurement(kind, e.g.points)
	e.abort()
	e.addMeasurement(m)
}

func minPoints(kind scene.MeasurementKind) int {
	switch kind {
	case scene.Length, scene.Perimeter:
		return 2
	case scene.Area:
		return 3
	}
	return 1
}
