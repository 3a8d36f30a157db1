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
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/transform"
)

func boxFromCorners(a, b vec.Vec2) scene.Box {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return scene.Box{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// textBox returns a box of the default text box size with its top-left
// corner at p.
func (e *Engine) textBox(p vec.Vec2) scene.Box {
	return scene.Box{
		X:      p.X,
		Y:      p.Y,
		Width:  e.Config.TextBoxWidth,
		Height: e.Config.TextBoxHeight,
	}
}

func (e *Engine) newShape(kind scene.ShapeKind, a, b vec.Vec2) scene.Shape {
	s := scene.Shape{
		PageIndex: e.Page,
		Kind:      kind,
		Style:     e.Config.Style,
	}
	if kind.IsLinear() {
		s.Start, s.End = a, b
	} else {
		s.Box = boxFromCorners(a, b)
	}
	return s
}

// newText returns a text box spanning a and b.  Clicks and drags which
// are too small to give a usable box create a box of the default size at a.
func (e *Engine) newText(a, b vec.Vec2, click bool) scene.Measurement {
	box := boxFromCorners(a, b)
	if click || box.Width < transform.MinSize || box.Height < transform.MinSize {
		box = e.textBox(a)
	}
	return scene.Measurement{
		PageIndex: e.Page,
		Kind:      scene.Text,
		Style:     e.Config.Style,
		Box:       box,
		FontSize:  e.Config.FontSize,
	}
}

// newCallout returns a comment or callout pointing at tip.  The box is
// centred at the given point, or placed at Config.CalloutOffset from the
// tip if at is nil.
func (e *Engine) newCallout(kind scene.MeasurementKind, tip vec.Vec2, at *vec.Vec2) scene.Measurement {
	var box scene.Box
	if at == nil {
		box = e.textBox(tip.Add(e.Config.CalloutOffset))
	} else {
		half := vec.Vec2{X: e.Config.TextBoxWidth / 2, Y: e.Config.TextBoxHeight / 2}
		box = e.textBox(at.Sub(half))
	}
	return scene.Measurement{
		PageIndex: e.Page,
		Kind:      kind,
		Style:     e.Config.Style,
		Box:       box,
		FontSize:  e.Config.FontSize,
		Tip:       &tip,
	}
}

func (e *Engine) newCount(p vec.Vec2) scene.Measurement {
	return scene.Measurement{
		PageIndex: e.Page,
		Kind:      scene.Count,
		Style:     e.Config.Style,
		Point:     p,
	}
}

// sequenceMeasurement builds a measurement from clicked points.  For
// comments, the first point is the tip and the second one, if present,
// the centre of the box.
func (e *Engine) sequenceMeasurement(kind scene.MeasurementKind, pts []vec.Vec2) scene.Measurement {
	if kind == scene.Comment {
		var at *vec.Vec2
		if len(pts) > 1 {
			at = &pts[1]
		}
		return e.newCallout(kind, pts[0], at)
	}
	return scene.Measurement{
		PageIndex: e.Page,
		Kind:      kind,
		Style:     e.Config.Style,
		Points:    slices.Clone(pts),
	}
}

func (e *Engine) addShape(s scene.Shape) {
	id, err := e.Scene.AddShape(s)
	if err != nil {
		e.Log.WithError(err).Debug("shape discarded")
		return
	}
	e.created(id)
}

func (e *Engine) addMeasurement(m scene.Measurement) {
	id, err := e.Scene.AddMeasurement(m)
	if err != nil {
		e.Log.WithError(err).Debug("measurement discarded")
		return
	}
	e.created(id)
}

// created commits a new object and, for single-shot tools, switches back
// to the select tool with the new object selected.
func (e *Engine) created(id string) {
	e.checkpoint("add " + string(e.tool))
	if e.Config.AutoSelect {
		e.tool = Select
		e.Scene.SetSelection(id)
	}
}
