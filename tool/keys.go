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
	"strings"

	"seehuhn.de/go/geom/vec"
)

// KeyDown handles a key press and reports whether the key was used.
//
// While a gesture is in progress, only Escape (abort) and Enter (finish
// a point sequence) are handled.
func (e *Engine) KeyDown(ev KeyEvent) bool {
	key := ev.Key
	if len(key) == 1 {
		key = Key(strings.ToLower(string(key)))
	}

	switch key {
	case KeyEscape:
		switch {
		case e.state != Idle:
			e.Abort()
		case e.tool != Select:
			e.SetTool(Select)
		default:
			e.Scene.ClearSelection()
		}
		return true
	case KeyEnter:
		if e.state == DrawingPointSequence {
			e.finishSequence()
			return true
		}
		return false
	}
	if e.state != Idle {
		return false
	}

	if ev.Mods.Has(Ctrl) {
		switch key {
		case KeyZ:
			if ev.Mods.Has(Shift) {
				e.Redo()
			} else {
				e.Undo()
			}
		case KeyY:
			e.Redo()
		case KeyC:
			e.Copy()
		case KeyV:
			e.Paste()
		case KeyA:
			e.SelectAll()
		default:
			return false
		}
		return true
	}

	step := e.Config.NudgeStep
	if ev.Mods.Has(Shift) {
		step *= 10
	}
	switch key {
	case KeyDelete, KeyBackspace:
		e.DeleteSelection()
	case KeyLeft:
		e.Nudge(vec.Vec2{X: -step})
	case KeyRight:
		e.Nudge(vec.Vec2{X: step})
	case KeyUp:
		e.Nudge(vec.Vec2{Y: -step})
	case KeyDown:
		e.Nudge(vec.Vec2{Y: step})
	default:
		return false
	}
	return true
}
