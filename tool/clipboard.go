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
	"seehuhn.de/go/overlay/transform"
)

// clip is one copied object.  Exactly one of the fields is set.
type clip struct {
	shape       *scene.Shape
	measurement *scene.Measurement
}

// Copy places copies of the selected objects on the clipboard and returns
// the number of objects copied.  If nothing is selected, the clipboard is
// left unchanged.
func (e *Engine) Copy() int {
	var clips []clip
	for _, s := range e.Scene.Shapes() {
		if e.Scene.IsSelected(s.ID) {
			clips = append(clips, clip{shape: &s})
		}
	}
	for _, m := range e.Scene.Measurements() {
		if e.Scene.IsSelected(m.ID) {
			clips = append(clips, clip{measurement: &m})
		}
	}
	if len(clips) == 0 {
		return 0
	}
	e.clipboard = clips
	e.pasteCount = 0
	return len(clips)
}

// Paste adds the clipboard contents to the current page and selects the
// new objects.  Repeated pastes are shifted by Config.PasteOffset each, so
// that copies do not cover each other.  The paste is one undoable action.
func (e *Engine) Paste() int {
	if e.state != Idle || len(e.clipboard) == 0 {
		return 0
	}
	e.pasteCount++
	d := e.Config.PasteOffset * float64(e.pasteCount)
	delta := vec.Vec2{X: d, Y: d}

	var ids []string
	for _, c := range e.clipboard {
		var id string
		var err error
		switch {
		case c.shape != nil:
			s := transform.DragShape(*c.shape, delta).Apply(*c.shape)
			s.ID = ""
			s.PageIndex = e.Page
			id, err = e.Scene.AddShape(s)
		case c.measurement != nil:
			m := offsetMeasurement(*c.measurement, delta)
			m.ID = ""
			m.PageIndex = e.Page
			id, err = e.Scene.AddMeasurement(m)
		}
		if err != nil {
			e.Log.WithError(err).Warn("object not pasted")
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0
	}
	e.Scene.SetSelection(ids...)
	e.tool = Select
	e.checkpoint("paste")
	return len(ids)
}

// offsetMeasurement moves all parts of m by d, including the tip of
// comments and callouts.
func offsetMeasurement(m scene.Measurement, d vec.Vec2) scene.Measurement {
	m = transform.DragMeasurement(m, d).Apply(m)
	if m.Tip != nil {
		tip := m.Tip.Add(d)
		m.Tip = &tip
	}
	return m
}
