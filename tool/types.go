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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// Tool is the active editing tool.
type Tool string

// These are the available tools.
const (
	Select    Tool = "select"
	Rectangle Tool = "rectangle"
	Ellipse   Tool = "ellipse"
	Line      Tool = "line"
	Arrow     Tool = "arrow"
	Text      Tool = "text"
	Callout   Tool = "callout"
	Length    Tool = "length"
	Area      Tool = "area"
	Perimeter Tool = "perimeter"
	Comment   Tool = "comment"
	Count     Tool = "count"
	Calibrate Tool = "calibrate"
)

// AllTools lists the tools in toolbar order.
var AllTools = []Tool{
	Select, Rectangle, Ellipse, Line, Arrow, Text, Callout,
	Length, Area, Perimeter, Comment, Count, Calibrate,
}

// Valid reports whether t is one of the known tools.
func (t Tool) Valid() bool {
	for _, u := range AllTools {
		if t == u {
			return true
		}
	}
	return false
}

// shapeKind returns the shape kind drawn by t, if any.
func (t Tool) shapeKind() (scene.ShapeKind, bool) {
	switch t {
	case Rectangle:
		return scene.Rectangle, true
	case Ellipse:
		return scene.Ellipse, true
	case Line:
		return scene.Line, true
	case Arrow:
		return scene.Arrow, true
	}
	return "", false
}

// measurementKind returns the measurement kind created by t, if any.
func (t Tool) measurementKind() (scene.MeasurementKind, bool) {
	switch t {
	case Text:
		return scene.Text, true
	case Callout:
		return scene.Callout, true
	case Length:
		return scene.Length, true
	case Area:
		return scene.Area, true
	case Perimeter:
		return scene.Perimeter, true
	case Comment:
		return scene.Comment, true
	case Count:
		return scene.Count, true
	}
	return "", false
}

// pointSequence reports whether t collects clicked points.
func (t Tool) pointSequence() bool {
	switch t {
	case Length, Area, Perimeter, Comment:
		return true
	}
	return false
}

// State is the state of the interaction state machine.
type State int

// These are the states of the interaction state machine.
const (
	Idle State = iota
	DrawingPointSequence
	DraggingShapeStart
	DraggingSelection
	Resizing
	Rotating
	BoxSelecting
	DraggingVertex
	DraggingKnee
	DraggingTip
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DrawingPointSequence:
		return "drawing-point-sequence"
	case DraggingShapeStart:
		return "dragging-shape-start"
	case DraggingSelection:
		return "dragging-selection"
	case Resizing:
		return "resizing"
	case Rotating:
		return "rotating"
	case BoxSelecting:
		return "box-selecting"
	case DraggingVertex:
		return "dragging-vertex"
	case DraggingKnee:
		return "dragging-knee"
	case DraggingTip:
		return "dragging-tip"
	}
	return "unknown"
}

// Modifier is a set of keyboard modifiers held during an event.
type Modifier uint8

// These are the recognised modifiers.  Hosts should report the Command key
// on macOS as Ctrl.
const (
	Shift Modifier = 1 << iota
	Alt
	Ctrl
)

// Has reports whether all modifiers in m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Button identifies a pointer button.
type Button int

// Only the primary button starts gestures.
const (
	Primary Button = iota
	Middle
	Secondary
)

// PointerEvent is a pointer-down, pointer-move or pointer-up event.
type PointerEvent struct {
	// Screen is the pointer position in screen pixels.
	Screen vec.Vec2

	Button Button
	Mods   Modifier

	// Clicks is the click count of a pointer-down event: 2 for the second
	// press of a double-click.
	Clicks int
}

// Key identifies a key on the keyboard.
type Key string

// These are the keys handled by the engine.  Letter keys are only
// interpreted together with Ctrl.
const (
	KeyEscape    Key = "Escape"
	KeyEnter     Key = "Enter"
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
	KeyLeft      Key = "ArrowLeft"
	KeyRight     Key = "ArrowRight"
	KeyUp        Key = "ArrowUp"
	KeyDown      Key = "ArrowDown"
	KeyA         Key = "a"
	KeyC         Key = "c"
	KeyV         Key = "v"
	KeyY         Key = "y"
	KeyZ         Key = "z"
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Mods Modifier
}
