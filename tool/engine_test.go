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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/view"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func newEngine(t *testing.T, shapes ...scene.Shape) *Engine {
	t.Helper()
	s := scene.New()
	for _, shape := range shapes {
		if _, err := s.AddShape(shape); err != nil {
			t.Fatal(err)
		}
	}
	return New(s, view.New(600, 800), DefaultConfig())
}

func rectShape(id string, x, y, w, h float64) scene.Shape {
	return scene.Shape{
		ID:    id,
		Kind:  scene.Rectangle,
		Style: scene.DefaultStyle(),
		Box:   scene.Box{X: x, Y: y, Width: w, Height: h},
	}
}

func at(x, y float64) PointerEvent {
	return PointerEvent{Screen: vec.Vec2{X: x, Y: y}, Clicks: 1}
}

func click(e *Engine, x, y float64) {
	e.PointerDown(at(x, y))
	e.PointerUp(at(x, y))
}

func drag(e *Engine, x0, y0, x1, y1 float64, mods Modifier) {
	ev := at(x0, y0)
	ev.Mods = mods
	e.PointerDown(ev)
	ev.Screen = vec.Vec2{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
	e.PointerMove(ev)
	ev.Screen = vec.Vec2{X: x1, Y: y1}
	e.PointerMove(ev)
	e.PointerUp(ev)
}

func mustShape(t *testing.T, e *Engine, id string) scene.Shape {
	t.Helper()
	s, ok := e.Scene.Shape(id)
	if !ok {
		t.Fatalf("shape %q not found", id)
	}
	return s
}

func TestDrawRectangle(t *testing.T) {
	e := newEngine(t)
	if err := e.SetTool(Rectangle); err != nil {
		t.Fatal(err)
	}
	drag(e, 110, 60, 10, 10, 0)

	shapes := e.Scene.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	want := scene.Box{X: 10, Y: 10, Width: 100, Height: 50}
	if d := cmp.Diff(want, shapes[0].Box); d != "" {
		t.Errorf("box (-want +got):\n%s", d)
	}
	if e.Tool() != Select || e.State() != Idle {
		t.Errorf("tool %s, state %s after drawing", e.Tool(), e.State())
	}
	if d := cmp.Diff([]string{shapes[0].ID}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}
	if e.History.Len() != 2 {
		t.Errorf("history has %d entries, want 2", e.History.Len())
	}
}

func TestZoomedView(t *testing.T) {
	e := newEngine(t)
	e.View.Zoom = 2
	e.View.Pan = vec.Vec2{X: 20, Y: 20}
	e.SetTool(Ellipse)
	drag(e, 40, 40, 240, 140, 0)

	shapes := e.Scene.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	want := scene.Box{X: 10, Y: 10, Width: 100, Height: 50}
	if d := cmp.Diff(want, shapes[0].Box, approx); d != "" {
		t.Errorf("box (-want +got):\n%s", d)
	}
}

func TestTinyDragAbortsShape(t *testing.T) {
	for _, tool := range []Tool{Rectangle, Ellipse, Line, Arrow, Calibrate} {
		e := newEngine(t)
		e.SetTool(tool)
		drag(e, 10, 10, 11, 11, 0)
		if e.Scene.Len() != 0 || e.History.Len() != 1 {
			t.Errorf("%s: tiny drag created an object", tool)
		}
		if e.Tool() != tool {
			t.Errorf("%s: tool changed to %s", tool, e.Tool())
		}
		if _, ok := e.CalibrationLine(); ok {
			t.Errorf("%s: tiny drag gave a calibration line", tool)
		}
	}
}

func TestTextClick(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Text)
	click(e, 50, 60)

	ms := e.Scene.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	want := scene.Box{X: 50, Y: 60, Width: 160, Height: 40}
	if d := cmp.Diff(want, ms[0].Box); d != "" {
		t.Errorf("box (-want +got):\n%s", d)
	}
	if ms[0].Kind != scene.Text || ms[0].FontSize != 14 {
		t.Errorf("got %s with font size %g", ms[0].Kind, ms[0].FontSize)
	}
}

func TestCalloutDrag(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Callout)
	drag(e, 100, 400, 300, 200, 0)

	ms := e.Scene.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	m := ms[0]
	if m.Tip == nil || *m.Tip != (vec.Vec2{X: 100, Y: 400}) {
		t.Errorf("tip = %v", m.Tip)
	}
	if d := cmp.Diff(vec.Vec2{X: 300, Y: 200}, m.Box.Center()); d != "" {
		t.Errorf("box centre (-want +got):\n%s", d)
	}
}

func TestDragSelection(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))

	e.PointerDown(at(50, 25))
	for i := 1; i <= 10; i++ {
		e.PointerMove(at(50+3*float64(i), 25+2*float64(i)))
	}
	if e.State() != DraggingSelection {
		t.Fatalf("state = %s", e.State())
	}

	// nothing is committed before the pointer is released
	orig := scene.Box{X: 0, Y: 0, Width: 100, Height: 50}
	if d := cmp.Diff(orig, mustShape(t, e, "a").Box); d != "" {
		t.Errorf("scene changed during drag (-want +got):\n%s", d)
	}
	moved := scene.Box{X: 30, Y: 20, Width: 100, Height: 50}
	if d := cmp.Diff(moved, e.Preview().Shape(mustShape(t, e, "a")).Box); d != "" {
		t.Errorf("preview (-want +got):\n%s", d)
	}

	e.PointerUp(at(80, 45))
	if d := cmp.Diff(moved, mustShape(t, e, "a").Box); d != "" {
		t.Errorf("after drag (-want +got):\n%s", d)
	}
	if e.History.Len() != 2 {
		t.Errorf("history has %d entries, want 2", e.History.Len())
	}

	e.Undo()
	if d := cmp.Diff(orig, mustShape(t, e, "a").Box); d != "" {
		t.Errorf("after undo (-want +got):\n%s", d)
	}
}

func TestClickSelectsWithoutHistory(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	click(e, 50, 25)
	if !e.Scene.IsSelected("a") {
		t.Error("click did not select")
	}
	if e.History.Len() != 1 {
		t.Errorf("history has %d entries, want 1", e.History.Len())
	}
	if e.Scene.Revision() != 1 {
		t.Errorf("click changed the scene")
	}
}

func TestEscapeAborts(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	rev := e.Scene.Revision()

	e.PointerDown(at(50, 25))
	e.PointerMove(at(150, 125))
	e.KeyDown(KeyEvent{Key: KeyEscape})
	if e.State() != Idle {
		t.Errorf("state = %s after escape", e.State())
	}
	e.PointerUp(at(150, 125))

	if e.Scene.Revision() != rev || e.History.Len() != 1 {
		t.Error("escape did not abort the drag")
	}
	if e.Preview().Active() {
		t.Error("preview still active")
	}
}

func TestShiftClickToggles(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 50, 50), rectShape("b", 100, 0, 50, 50))
	shift := func(x, y float64) {
		ev := at(x, y)
		ev.Mods = Shift
		e.PointerDown(ev)
		e.PointerUp(ev)
	}

	click(e, 25, 25)
	shift(125, 25)
	if d := cmp.Diff([]string{"a", "b"}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}
	shift(25, 25)
	if d := cmp.Diff([]string{"b"}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}
}

func TestBoxSelect(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 50, 50), rectShape("b", 200, 200, 50, 50))

	drag(e, 100, 100, 260, 260, 0)
	if d := cmp.Diff([]string{"b"}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}

	drag(e, -20, -20, 20, 20, Shift)
	if d := cmp.Diff([]string{"a", "b"}, e.Scene.Selection()); d != "" {
		t.Errorf("shift selection (-want +got):\n%s", d)
	}

	drag(e, -20, -20, 20, 20, 0)
	if d := cmp.Diff([]string{"a"}, e.Scene.Selection()); d != "" {
		t.Errorf("replaced selection (-want +got):\n%s", d)
	}

	click(e, 500, 500)
	if len(e.Scene.Selection()) != 0 {
		t.Error("click on empty space kept the selection")
	}
	if e.History.Len() != 1 {
		t.Error("selection changes added history entries")
	}
}

func TestDeleteSelection(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 50, 50), rectShape("b", 200, 200, 50, 50), rectShape("c", 400, 0, 50, 50))
	e.Scene.SetSelection("a", "c")

	if !e.KeyDown(KeyEvent{Key: KeyDelete}) {
		t.Error("Delete not handled")
	}
	if e.Scene.Len() != 1 || e.History.Len() != 2 {
		t.Errorf("Len() = %d, history %d", e.Scene.Len(), e.History.Len())
	}

	// nothing selected: no history entry
	e.KeyDown(KeyEvent{Key: KeyBackspace})
	if e.History.Len() != 2 {
		t.Errorf("empty delete added a history entry")
	}

	e.KeyDown(KeyEvent{Key: KeyZ, Mods: Ctrl})
	if e.Scene.Len() != 3 {
		t.Errorf("after undo Len() = %d, want 3", e.Scene.Len())
	}
}

func TestLengthMeasurement(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Length)
	click(e, 0, 0)
	if e.State() != DrawingPointSequence {
		t.Fatalf("state = %s", e.State())
	}
	e.PointerMove(at(50, 0))
	if m := e.Preview().DraftMeasurement; m == nil || len(m.Points) != 2 {
		t.Errorf("draft = %v", m)
	}
	click(e, 100, 0)

	ms := e.Scene.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if d := cmp.Diff(want, ms[0].Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
	if e.Tool() != Select || e.State() != Idle {
		t.Errorf("tool %s, state %s", e.Tool(), e.State())
	}
}

func TestAreaDoubleClick(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Area)
	click(e, 0, 0)
	click(e, 100, 0)

	// too few points: Enter is a no-op
	e.KeyDown(KeyEvent{Key: KeyEnter})
	if e.State() != DrawingPointSequence || e.Scene.Len() != 0 {
		t.Fatal("area finished with two points")
	}

	click(e, 100, 100)
	second := at(100, 100)
	second.Clicks = 2
	e.PointerDown(second)
	e.PointerUp(second)

	ms := e.Scene.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	if ms[0].Kind != scene.Area || len(ms[0].Points) != 3 {
		t.Errorf("got %s with %d points", ms[0].Kind, len(ms[0].Points))
	}
	if e.History.Len() != 2 {
		t.Errorf("history has %d entries, want 2", e.History.Len())
	}
}

func TestPerimeterEnter(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Perimeter)
	click(e, 0, 0)
	click(e, 100, 0)
	click(e, 100, 0) // repeated point is ignored
	e.KeyDown(KeyEvent{Key: KeyEnter})

	ms := e.Scene.Measurements()
	if len(ms) != 1 || len(ms[0].Points) != 2 {
		t.Fatalf("measurements = %v", ms)
	}
}

func TestCommentClicks(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Comment)
	click(e, 10, 10)
	click(e, 200, 200)

	ms := e.Scene.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	m := ms[0]
	if m.Kind != scene.Comment || m.Tip == nil || *m.Tip != (vec.Vec2{X: 10, Y: 10}) {
		t.Errorf("comment = %+v", m)
	}
	if d := cmp.Diff(vec.Vec2{X: 200, Y: 200}, m.Box.Center()); d != "" {
		t.Errorf("box centre (-want +got):\n%s", d)
	}
}

func TestCount(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Count)
	e.PointerDown(at(30, 40))
	if e.Scene.Len() != 1 || e.State() != Idle {
		t.Fatal("count not created on pointer-down")
	}
	e.PointerUp(at(30, 40))
	if e.History.Len() != 2 || e.Tool() != Select {
		t.Errorf("history %d, tool %s", e.History.Len(), e.Tool())
	}
}

func TestAutoSelectOff(t *testing.T) {
	e := newEngine(t)
	e.Config.AutoSelect = false
	e.SetTool(Count)
	click(e, 10, 10)
	click(e, 20, 10)
	if e.Scene.Len() != 2 || e.Tool() != Count {
		t.Errorf("Len() = %d, tool %s", e.Scene.Len(), e.Tool())
	}
}

func TestResizeHandle(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	click(e, 50, 25)

	drag(e, 100, 50, 120, 70, 0)
	want := scene.Box{X: 0, Y: 0, Width: 120, Height: 70}
	if d := cmp.Diff(want, mustShape(t, e, "a").Box, approx); d != "" {
		t.Errorf("box (-want +got):\n%s", d)
	}
	if e.History.Len() != 2 {
		t.Errorf("history has %d entries, want 2", e.History.Len())
	}
}

func TestResizePreview(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	click(e, 50, 25)

	e.PointerDown(at(100, 25))
	e.PointerMove(at(150, 40))
	if e.State() != Resizing {
		t.Fatalf("state = %s", e.State())
	}
	got := e.Preview().Shape(mustShape(t, e, "a")).Box
	want := scene.Box{X: 0, Y: 0, Width: 150, Height: 50}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("preview (-want +got):\n%s", d)
	}
	if mustShape(t, e, "a").Box.Width != 100 {
		t.Error("scene changed during resize")
	}
	e.KeyDown(KeyEvent{Key: KeyEscape})
	if e.History.Len() != 1 || mustShape(t, e, "a").Box.Width != 100 {
		t.Error("escape did not abort the resize")
	}
}

func TestRotateHandle(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	click(e, 50, 25)

	h, ok := e.Handles()
	if !ok || h.Rotation == nil {
		t.Fatal("no rotation handle")
	}
	if d := cmp.Diff(vec.Vec2{X: 50, Y: -24}, *h.Rotation, approx); d != "" {
		t.Errorf("rotation handle (-want +got):\n%s", d)
	}

	drag(e, 50, -24, 150, 25, 0)
	if d := cmp.Diff(90.0, mustShape(t, e, "a").Rotation, approx); d != "" {
		t.Errorf("rotation (-want +got):\n%s", d)
	}

	// the handle has turned with the box; shift snaps to 15° steps
	drag(e, 99, 25, 53, -50, Shift)
	if d := cmp.Diff(0.0, mustShape(t, e, "a").Rotation, approx); d != "" {
		t.Errorf("snapped rotation (-want +got):\n%s", d)
	}
}

// The angle is undefined with the pointer on the centre of the box.  The
// last defined angle of the gesture is kept.
func TestRotateThroughCentre(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	click(e, 50, 25)
	drag(e, 50, -24, 150, 25, 0)
	if d := cmp.Diff(90.0, mustShape(t, e, "a").Rotation, approx); d != "" {
		t.Fatalf("rotation (-want +got):\n%s", d)
	}

	drag(e, 99, 25, 50, 25, 0)
	if d := cmp.Diff(90.0, mustShape(t, e, "a").Rotation, approx); d != "" {
		t.Errorf("released on the centre (-want +got):\n%s", d)
	}

	e.PointerDown(at(99, 25))
	e.PointerMove(at(50, -30))
	e.PointerMove(at(50, 25))
	e.PointerUp(at(50, 25))
	if d := cmp.Diff(0.0, mustShape(t, e, "a").Rotation, approx); d != "" {
		t.Errorf("passed through the centre (-want +got):\n%s", d)
	}
}

func TestSelectAllKey(t *testing.T) {
	other := rectShape("c", 0, 0, 10, 10)
	other.PageIndex = 1
	e := newEngine(t, rectShape("a", 0, 0, 10, 10), rectShape("b", 20, 20, 10, 10), other)
	if _, err := e.Scene.AddMeasurement(scene.Measurement{
		ID: "n", Kind: scene.Count, Style: scene.DefaultStyle(), Point: vec.Vec2{X: 5, Y: 5},
	}); err != nil {
		t.Fatal(err)
	}
	historyLen := e.History.Len()

	if !e.KeyDown(KeyEvent{Key: "A", Mods: Ctrl}) {
		t.Fatal("Ctrl+A not handled")
	}
	if d := cmp.Diff([]string{"a", "b", "n"}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}
	if e.History.Len() != historyLen {
		t.Error("selecting added a history entry")
	}

	e.Page = 1
	e.SelectAll()
	if d := cmp.Diff([]string{"c"}, e.Scene.Selection()); d != "" {
		t.Errorf("selection on page 1 (-want +got):\n%s", d)
	}
}

func TestCalloutHandles(t *testing.T) {
	tip := vec.Vec2{X: 150, Y: 400}
	s := scene.New()
	_, err := s.AddMeasurement(scene.Measurement{
		ID:   "c",
		Kind: scene.Callout,
		Box:  scene.Box{X: 100, Y: 100, Width: 100, Height: 40},
		Tip:  &tip,
	})
	if err != nil {
		t.Fatal(err)
	}
	e := New(s, view.New(600, 800), DefaultConfig())
	click(e, 150, 120)

	h, ok := e.Handles()
	if !ok || h.Knee == nil || h.Tip == nil {
		t.Fatal("callout handles missing")
	}
	if d := cmp.Diff(vec.Vec2{X: 150, Y: 160}, *h.Knee, approx); d != "" {
		t.Errorf("knee (-want +got):\n%s", d)
	}

	drag(e, 150, 400, 160, 420, 0)
	m, _ := e.Scene.Measurement("c")
	if *m.Tip != (vec.Vec2{X: 160, Y: 420}) {
		t.Errorf("tip = %v", *m.Tip)
	}

	// a knee dragged beside the box snaps to its centre line
	drag(e, 150, 160, 260, 125, 0)
	m, _ = e.Scene.Measurement("c")
	if m.Knee == nil {
		t.Fatal("knee not set")
	}
	if d := cmp.Diff(vec.Vec2{X: 260, Y: 120}, *m.Knee, approx); d != "" {
		t.Errorf("knee (-want +got):\n%s", d)
	}
	if e.History.Len() != 3 {
		t.Errorf("history has %d entries, want 3", e.History.Len())
	}
}

func TestVertexDrag(t *testing.T) {
	s := scene.New()
	_, err := s.AddMeasurement(scene.Measurement{
		ID:     "m",
		Kind:   scene.Length,
		Points: []vec.Vec2{{X: 10, Y: 10}, {X: 110, Y: 10}},
	})
	if err != nil {
		t.Fatal(err)
	}
	e := New(s, view.New(600, 800), DefaultConfig())
	click(e, 60, 10)
	drag(e, 110, 10, 110, 60, 0)

	m, _ := e.Scene.Measurement("m")
	want := []vec.Vec2{{X: 10, Y: 10}, {X: 110, Y: 60}}
	if d := cmp.Diff(want, m.Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
}

func TestLineEndpoint(t *testing.T) {
	line := scene.Shape{ID: "l", Kind: scene.Arrow, Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 100, Y: 0}}
	e := newEngine(t, line)
	click(e, 50, 0)
	drag(e, 0, 0, 0, 30, 0)
	got := mustShape(t, e, "l")
	if got.Start != (vec.Vec2{X: 0, Y: 30}) || got.End != line.End {
		t.Errorf("line = %v–%v", got.Start, got.End)
	}
}

func TestCalibrate(t *testing.T) {
	e := newEngine(t)
	if err := e.ApplyCalibration(10, "m"); !errors.Is(err, ErrNoCalibrationLine) {
		t.Errorf("got %v, want ErrNoCalibrationLine", err)
	}

	e.SetTool(Calibrate)
	drag(e, 0, 0, 100, 0, 0)
	if l, ok := e.CalibrationLine(); !ok || l != 100 {
		t.Fatalf("calibration line %g, %t", l, ok)
	}

	for _, bad := range []float64{0, -5} {
		if err := e.ApplyCalibration(bad, "m"); !errors.Is(err, measure.ErrInvalidDistance) {
			t.Errorf("ApplyCalibration(%g) = %v", bad, err)
		}
	}
	if d := cmp.Diff(measure.Default(), e.Scene.Calibration(0)); d != "" {
		t.Errorf("calibration changed by invalid input (-want +got):\n%s", d)
	}

	if err := e.ApplyCalibration(10, "m"); err != nil {
		t.Fatal(err)
	}
	want := measure.Calibration{Scale: 10, Unit: "m"}
	if d := cmp.Diff(want, e.Scene.Calibration(0)); d != "" {
		t.Errorf("calibration (-want +got):\n%s", d)
	}
	if e.History.Len() != 1 {
		t.Error("calibration added a history entry")
	}
	if e.Tool() != Select {
		t.Errorf("tool = %s", e.Tool())
	}
}

func TestCopyPaste(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	e.Scene.SetSelection("a")
	ctrl := func(k Key) { e.KeyDown(KeyEvent{Key: k, Mods: Ctrl}) }

	ctrl(KeyC)
	ctrl(KeyV)
	ctrl(KeyV)

	shapes := e.Scene.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
	for i, want := range []float64{0, 10, 20} {
		if shapes[i].Box.X != want || shapes[i].Box.Y != want {
			t.Errorf("shape %d at %g,%g", i, shapes[i].Box.X, shapes[i].Box.Y)
		}
	}
	if d := cmp.Diff([]string{shapes[2].ID}, e.Scene.Selection()); d != "" {
		t.Errorf("selection (-want +got):\n%s", d)
	}
	if e.History.Len() != 3 {
		t.Errorf("history has %d entries, want 3", e.History.Len())
	}
}

func TestPasteMovesTip(t *testing.T) {
	m := scene.Measurement{
		Kind: scene.Callout,
		Box:  scene.Box{X: 0, Y: 0, Width: 10, Height: 10},
		Tip:  &vec.Vec2{X: 50, Y: 50},
	}
	got := offsetMeasurement(m, vec.Vec2{X: 5, Y: 5})
	if *got.Tip != (vec.Vec2{X: 55, Y: 55}) || got.Box.X != 5 {
		t.Errorf("got %+v", got)
	}
	if m.Tip.X != 50 {
		t.Error("offsetMeasurement modified its argument")
	}
}

func TestNudge(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	e.KeyDown(KeyEvent{Key: KeyRight})
	if e.History.Len() != 1 {
		t.Error("nudge without selection added an entry")
	}

	e.Scene.SetSelection("a")
	e.KeyDown(KeyEvent{Key: KeyRight, Mods: Shift})
	e.KeyDown(KeyEvent{Key: KeyUp})
	box := mustShape(t, e, "a").Box
	if box.X != 10 || box.Y != -1 {
		t.Errorf("box at %g,%g", box.X, box.Y)
	}
	if e.History.Len() != 3 {
		t.Errorf("history has %d entries, want 3", e.History.Len())
	}
}

func TestUndoRedoKeys(t *testing.T) {
	e := newEngine(t)
	e.SetTool(Rectangle)
	drag(e, 0, 0, 50, 50, 0)

	e.KeyDown(KeyEvent{Key: KeyZ, Mods: Ctrl})
	if e.Scene.Len() != 0 {
		t.Fatal("undo failed")
	}
	e.KeyDown(KeyEvent{Key: "Z", Mods: Ctrl | Shift})
	if e.Scene.Len() != 1 {
		t.Fatal("redo failed")
	}
	e.KeyDown(KeyEvent{Key: KeyZ, Mods: Ctrl})
	e.KeyDown(KeyEvent{Key: KeyY, Mods: Ctrl})
	if e.Scene.Len() != 1 {
		t.Fatal("Ctrl+Y did not redo")
	}
}

func TestSetTool(t *testing.T) {
	e := newEngine(t, rectShape("a", 0, 0, 100, 50))
	e.Scene.SetSelection("a")
	if err := e.SetTool("lasso"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("got %v, want ErrUnknownTool", err)
	}
	e.SetTool(Length)
	if len(e.Scene.Selection()) != 0 {
		t.Error("drawing tool kept the selection")
	}
	click(e, 0, 0)
	e.SetTool(Area)
	if e.State() != Idle {
		t.Errorf("tool change left state %s", e.State())
	}
}

func TestOtherPagesIgnored(t *testing.T) {
	a := rectShape("a", 0, 0, 100, 50)
	a.PageIndex = 1
	e := newEngine(t, a)
	click(e, 50, 25)
	if len(e.Scene.Selection()) != 0 {
		t.Error("selected an object on another page")
	}
	e.Page = 1
	click(e, 50, 25)
	if !e.Scene.IsSelected("a") {
		t.Error("object on the current page not selected")
	}
}
