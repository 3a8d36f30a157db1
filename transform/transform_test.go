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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestZeroDragIsEmpty(t *testing.T) {
	tip := vec.Vec2{X: 1, Y: 2}
	knee := vec.Vec2{X: 3, Y: 4}
	shapes := []scene.Shape{
		{Kind: scene.Rectangle, Box: scene.Box{Width: 10, Height: 10}},
		{Kind: scene.Arrow, End: vec.Vec2{X: 10, Y: 10}},
	}
	measurements := []scene.Measurement{
		{Kind: scene.Area, Points: []vec.Vec2{{}, {X: 1}, {Y: 1}}},
		{Kind: scene.Count},
		{Kind: scene.Callout, Box: scene.Box{Width: 10, Height: 10}, Tip: &tip, Knee: &knee},
	}
	for _, s := range shapes {
		if p := DragShape(s, vec.Vec2{}); !p.IsEmpty() {
			t.Errorf("%s: zero drag gave %+v", s.Kind, p)
		}
	}
	for _, m := range measurements {
		if p := DragMeasurement(m, vec.Vec2{}); !p.IsEmpty() {
			t.Errorf("%s: zero drag gave %+v", m.Kind, p)
		}
	}
}

func TestDragCallout(t *testing.T) {
	tip := vec.Vec2{X: 100, Y: 100}
	knee := vec.Vec2{X: 60, Y: 15}
	m := scene.Measurement{
		Kind: scene.Callout,
		Box:  scene.Box{X: 0, Y: 0, Width: 40, Height: 30},
		Tip:  &tip,
		Knee: &knee,
	}
	delta := vec.Vec2{X: 5, Y: -7}
	got := DragMeasurement(m, delta).Apply(m)

	if d := cmp.Diff(scene.Box{X: 5, Y: -7, Width: 40, Height: 30}, got.Box); d != "" {
		t.Errorf("box (-want +got):\n%s", d)
	}
	if *got.Tip != tip {
		t.Errorf("tip moved to %v", *got.Tip)
	}
	if *got.Knee != (vec.Vec2{X: 65, Y: 8}) {
		t.Errorf("knee = %v", *got.Knee)
	}
	if *m.Knee != knee {
		t.Error("DragMeasurement modified its argument")
	}
}

func TestDragPoints(t *testing.T) {
	m := scene.Measurement{Kind: scene.Perimeter, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	got := DragMeasurement(m, vec.Vec2{X: 1, Y: 2}).Apply(m)
	want := []vec.Vec2{{X: 1, Y: 2}, {X: 11, Y: 2}}
	if d := cmp.Diff(want, got.Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}

	line := scene.Shape{Kind: scene.Line, Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 5, Y: 5}}
	moved := DragShape(line, vec.Vec2{X: -1, Y: 1}).Apply(line)
	if moved.Start != (vec.Vec2{X: -1, Y: 1}) || moved.End != (vec.Vec2{X: 4, Y: 6}) {
		t.Errorf("line moved to %v–%v", moved.Start, moved.End)
	}
}

func TestResizeRoundTrip(t *testing.T) {
	deltas := []vec.Vec2{{X: 13, Y: 7}, {X: -4, Y: 9}, {X: 20, Y: -6}}
	for _, theta := range []float64{0, 37, 90, 180, 271} {
		for _, h := range AllHandles {
			for _, delta := range deltas {
				name := fmt.Sprintf("%g/%s/%v", theta, h, delta)
				t.Run(name, func(t *testing.T) {
					r := Resizable{X: 100, Y: 50, W: 80, H: 60, Rotation: theta}
					there := Resize(r, h, delta)
					back := Resize(there, h, delta.Mul(-1))
					if d := cmp.Diff(r, back, approx); d != "" {
						t.Errorf("round trip (-want +got):\n%s", d)
					}
				})
			}
		}
	}
}

// TestResizeKeepsOppositeSide checks that the corner opposite to the
// dragged handle does not move, for rotated boxes.
func TestResizeKeepsOppositeSide(t *testing.T) {
	opposite := map[Handle]Handle{NW: SE, NE: SW, SE: NW, SW: NE}
	for _, theta := range []float64{0, 37, 90, 180, 271} {
		for h, o := range opposite {
			r := Resizable{X: 10, Y: 20, W: 50, H: 30, Rotation: theta}
			before := Handles(r)[o]
			after := Handles(Resize(r, h, vec.Vec2{X: 6, Y: -3}))[o]
			if d := cmp.Diff(before, after, approx); d != "" {
				t.Errorf("θ=%g handle %s: opposite corner moved (-want +got):\n%s", theta, h, d)
			}
		}
	}
}

func TestResizeLocalFrame(t *testing.T) {
	// A box rotated by 90°: dragging the east handle downwards on screen
	// widens the box.
	r := Resizable{X: 0, Y: 0, W: 40, H: 20, Rotation: 90}
	got := Resize(r, E, vec.Vec2{X: 0, Y: 10})
	if d := cmp.Diff(50.0, got.W, approx); d != "" {
		t.Errorf("width (-want +got):\n%s", d)
	}
	if d := cmp.Diff(20.0, got.H, approx); d != "" {
		t.Errorf("height (-want +got):\n%s", d)
	}
}

func TestResizeMinimumSize(t *testing.T) {
	r := Resizable{X: 0, Y: 0, W: 40, H: 20}

	got := Resize(r, E, vec.Vec2{X: -40})
	want := Resizable{X: 0, Y: 0, W: MinSize, H: 20}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("collapse (-want +got):\n%s", d)
	}

	// dragging past the opposite edge flips the box
	got = Resize(r, E, vec.Vec2{X: -50})
	want = Resizable{X: -10, Y: 0, W: 10, H: 20}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("flip (-want +got):\n%s", d)
	}
}

func TestRotate(t *testing.T) {
	c := vec.Vec2{X: 50, Y: 50}
	tests := []struct {
		pointer vec.Vec2
		snap    bool
		want    float64
	}{
		{vec.Vec2{X: 50, Y: 0}, false, 0},    // straight up
		{vec.Vec2{X: 100, Y: 50}, false, 90}, // right
		{vec.Vec2{X: 50, Y: 100}, false, 180},
		{vec.Vec2{X: 0, Y: 50}, false, 270},
		{vec.Vec2{X: 60, Y: 0}, true, 15},
		{vec.Vec2{X: 52, Y: 0}, true, 0},
	}
	for _, tt := range tests {
		got, ok := Rotate(c, tt.pointer, TopHandleOffset, tt.snap)
		if !ok {
			t.Errorf("Rotate(%v) undefined", tt.pointer)
			continue
		}
		if d := cmp.Diff(tt.want, got, approx); d != "" {
			t.Errorf("Rotate(%v, snap=%t) (-want +got):\n%s", tt.pointer, tt.snap, d)
		}
	}
}

func TestRotationHandleAngle(t *testing.T) {
	// dragging the rotation handle to its own position keeps the angle
	for _, theta := range []float64{0, 37, 90, 180, 271} {
		r := Resizable{X: 0, Y: 0, W: 40, H: 20, Rotation: theta}
		p := RotationHandle(r, 25)
		got, _ := Rotate(r.Center(), p, TopHandleOffset, false)
		if d := cmp.Diff(theta, got, approx); d != "" {
			t.Errorf("θ=%g (-want +got):\n%s", theta, d)
		}
	}
}

func TestRotateAtCentre(t *testing.T) {
	c := vec.Vec2{X: 50, Y: 50}
	for _, snap := range []bool{false, true} {
		if _, ok := Rotate(c, c, TopHandleOffset, snap); ok {
			t.Errorf("snap=%t: angle defined at the centre", snap)
		}
	}
}

func TestHandleAt(t *testing.T) {
	r := Resizable{X: 0, Y: 0, W: 40, H: 20}
	h, ok := HandleAt(r, vec.Vec2{X: 41, Y: 21}, 4)
	if !ok || h != SE {
		t.Errorf("HandleAt = %q, %t; want se", h, ok)
	}
	if _, ok := HandleAt(r, vec.Vec2{X: 10, Y: 10}, 4); ok {
		t.Error("handle found in the box interior")
	}
}

func TestResizableRoundTrip(t *testing.T) {
	line := scene.Shape{Kind: scene.Arrow, Start: vec.Vec2{X: 10, Y: 40}, End: vec.Vec2{X: 30, Y: 20}}
	r, ok := ResizableOfShape(line)
	if !ok {
		t.Fatal("line has no resizable view")
	}
	r2 := Resize(r, SE, vec.Vec2{X: 20, Y: 20})
	got := ApplyToShape(line, r2).Apply(line)
	// the bounding box doubles in size, anchored at the top-left corner
	if d := cmp.Diff(vec.Vec2{X: 10, Y: 60}, got.Start, approx); d != "" {
		t.Errorf("start (-want +got):\n%s", d)
	}
	if d := cmp.Diff(vec.Vec2{X: 50, Y: 20}, got.End, approx); d != "" {
		t.Errorf("end (-want +got):\n%s", d)
	}

	tip := vec.Vec2{X: 0, Y: 0}
	callout := scene.Measurement{
		Kind: scene.Callout, Box: scene.Box{X: 10, Y: 10, Width: 30, Height: 10},
		Rotation: 15, Tip: &tip,
	}
	cr, ok := ResizableOfMeasurement(callout)
	if !ok {
		t.Fatal("callout has no resizable view")
	}
	p, ok := ApplyToMeasurement(callout, cr)
	if !ok {
		t.Fatal("ApplyToMeasurement failed")
	}
	if d := cmp.Diff(callout, p.Apply(callout)); d != "" {
		t.Errorf("identity resize changed the callout (-want +got):\n%s", d)
	}

	if _, ok := ResizableOfMeasurement(scene.Measurement{Kind: scene.Area, Points: []vec.Vec2{{}, {X: 1}, {Y: 1}}}); ok {
		t.Error("area measurement has a resizable view")
	}
}

func TestMoveEndpoint(t *testing.T) {
	line := scene.Shape{Kind: scene.Arrow, Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 10, Y: 0}}
	tests := []struct {
		index      int
		start, end vec.Vec2
	}{
		{0, vec.Vec2{X: -5, Y: 3}, vec.Vec2{X: 10, Y: 0}},
		{1, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: -5, Y: 3}},
	}
	for _, tt := range tests {
		p, ok := MoveEndpoint(line, tt.index, vec.Vec2{X: -5, Y: 3})
		if !ok {
			t.Fatalf("index %d rejected", tt.index)
		}
		got := p.Apply(line)
		if got.Start != tt.start || got.End != tt.end {
			t.Errorf("index %d: got %v–%v", tt.index, got.Start, got.End)
		}
	}
	if line.End != (vec.Vec2{X: 10, Y: 0}) {
		t.Error("MoveEndpoint modified its argument")
	}

	if _, ok := MoveEndpoint(line, 2, vec.Vec2{}); ok {
		t.Error("MoveEndpoint accepted an out of range index")
	}
	box := scene.Shape{Kind: scene.Rectangle, Box: scene.Box{Width: 1, Height: 1}}
	if _, ok := MoveEndpoint(box, 0, vec.Vec2{}); ok {
		t.Error("MoveEndpoint accepted a rectangle")
	}
}

func TestMoveVertex(t *testing.T) {
	m := scene.Measurement{Kind: scene.Length, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	p, ok := MoveVertex(m, 1, vec.Vec2{X: 20, Y: 5})
	if !ok {
		t.Fatal("MoveVertex failed")
	}
	got := p.Apply(m)
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 20, Y: 5}}
	if d := cmp.Diff(want, got.Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
	if m.Points[1] != (vec.Vec2{X: 10, Y: 0}) {
		t.Error("MoveVertex modified its argument")
	}
	if _, ok := MoveVertex(m, 2, vec.Vec2{}); ok {
		t.Error("MoveVertex accepted an out of range index")
	}
	if _, ok := MoveVertex(scene.Measurement{Kind: scene.Count}, 0, vec.Vec2{}); ok {
		t.Error("MoveVertex accepted a count marker")
	}
}
