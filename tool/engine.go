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
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/history"
	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/transform"
	"seehuhn.de/go/overlay/view"
)

var (
	// ErrUnknownTool is returned by [Engine.SetTool] for an unknown tool.
	ErrUnknownTool = errors.New("tool: unknown tool")

	// ErrNoCalibrationLine is returned by [Engine.ApplyCalibration] if no
	// reference line has been drawn with the calibrate tool.
	ErrNoCalibrationLine = errors.New("tool: no calibration line drawn")
)

// Engine turns pointer and key events into edits of a scene.
//
// All methods must be called from the same goroutine.
type Engine struct {
	Scene   *scene.Scene
	History *history.Manager
	View    *view.View

	// Page is the index of the page shown in View.  New objects are
	// created on this page, and only objects on this page can be hit.
	Page int

	Config Config

	// Log receives a debug message for every committed action.
	Log logrus.FieldLogger

	tool  Tool
	state State
	g     gesture

	// committed is the scene revision stored in the newest history entry.
	committed uint64

	clipboard  []clip
	pasteCount int

	calibrationLine    float64
	hasCalibrationLine bool
}

// New returns an engine editing s, shown through v.
// The history starts with the current contents of s.
func New(s *scene.Scene, v *view.View, cfg Config) *Engine {
	discard := logrus.New()
	discard.Out = io.Discard

	return &Engine{
		Scene:     s,
		History:   history.New(s.Snapshot(), cfg.HistoryLimit),
		View:      v,
		Config:    cfg,
		Log:       discard,
		tool:      Select,
		committed: s.Revision(),
	}
}

// Reset aborts any gesture and restarts the history from the current
// contents of the scene.  This is used after loading a new document.
func (e *Engine) Reset() {
	e.abort()
	e.History.Reset(e.Scene.Snapshot())
	e.committed = e.Scene.Revision()
	e.hasCalibrationLine = false
}

// Tool returns the active tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// State returns the current state of the interaction state machine.
func (e *Engine) State() State {
	return e.state
}

// SetTool activates a tool.  Any gesture in progress is aborted.
// Switching to a drawing tool clears the selection.
func (e *Engine) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTool, t)
	}
	e.abort()
	if t != Select {
		e.Scene.ClearSelection()
	}
	if t != Calibrate {
		e.hasCalibrationLine = false
	}
	e.tool = t
	e.Log.WithField("tool", t).Debug("tool selected")
	return nil
}

// PagePoint maps a screen position to document space.
func (e *Engine) PagePoint(screen vec.Vec2) vec.Vec2 {
	return e.View.ToDocument(screen)
}

// Abort cancels the gesture in progress, if any, without changing the
// scene.
func (e *Engine) Abort() {
	if e.state != Idle {
		e.Log.WithField("state", e.state).Debug("gesture aborted")
	}
	e.abort()
}

func (e *Engine) abort() {
	e.state = Idle
	e.g = gesture{}
}

// Checkpoint adds a history entry if the scene has changed since the last
// entry.  Hosts call this after editing the scene directly, for example
// after changing the text of a text box.
func (e *Engine) Checkpoint() bool {
	return e.checkpoint("edit")
}

func (e *Engine) checkpoint(action string) bool {
	rev := e.Scene.Revision()
	if rev == e.committed {
		return false
	}
	e.History.Push(e.Scene.Snapshot())
	e.committed = rev
	e.Log.WithFields(logrus.Fields{
		"action":  action,
		"objects": e.Scene.Len(),
		"history": e.History.Len(),
	}).Debug("checkpoint")
	return true
}

// Undo reverts the last action.  Any gesture in progress is aborted first.
func (e *Engine) Undo() bool {
	e.abort()
	snap, ok := e.History.Undo()
	if !ok {
		return false
	}
	e.restore(snap, "undo")
	return true
}

// Redo repeats the last undone action.
func (e *Engine) Redo() bool {
	e.abort()
	snap, ok := e.History.Redo()
	if !ok {
		return false
	}
	e.restore(snap, "redo")
	return true
}

func (e *Engine) restore(snap scene.Snapshot, action string) {
	e.Scene.Restore(snap)
	e.committed = e.Scene.Revision()
	e.Log.WithFields(logrus.Fields{
		"action":  action,
		"objects": snap.Len(),
	}).Debug("history")
}

// DeleteSelection removes all selected objects and returns the number of
// objects removed.
func (e *Engine) DeleteSelection() int {
	if e.state != Idle {
		return 0
	}
	n := e.Scene.Delete(e.Scene.Selection()...)
	if n > 0 {
		e.checkpoint("delete")
	}
	return n
}

// SelectAll selects all objects on the current page.
func (e *Engine) SelectAll() {
	var ids []string
	for _, s := range e.Scene.ShapesOnPage(e.Page) {
		ids = append(ids, s.ID)
	}
	for _, m := range e.Scene.MeasurementsOnPage(e.Page) {
		ids = append(ids, m.ID)
	}
	e.Scene.SetSelection(ids...)
}

// Nudge moves the selected objects by delta, as one undoable action.
func (e *Engine) Nudge(delta vec.Vec2) bool {
	if e.state != Idle || delta == (vec.Vec2{}) {
		return false
	}
	e.moveObjects(e.Scene.Selection(), delta)
	return e.checkpoint("nudge")
}

// moveObjects drags the objects with the given ids by delta.
func (e *Engine) moveObjects(ids []string, delta vec.Vec2) {
	for _, id := range ids {
		if s, ok := e.Scene.Shape(id); ok {
			e.Scene.UpdateShape(id, transform.DragShape(s, delta))
		} else if m, ok := e.Scene.Measurement(id); ok {
			e.Scene.UpdateMeasurement(id, transform.DragMeasurement(m, delta))
		}
	}
}

// CalibrationLine returns the document length of the reference line drawn
// with the calibrate tool.
func (e *Engine) CalibrationLine() (float64, bool) {
	return e.calibrationLine, e.hasCalibrationLine
}

// ApplyCalibration sets the calibration of the current page, so that the
// reference line drawn with the calibrate tool has length realDistance in
// the given unit.
//
// If realDistance is not a positive number, an error is returned and the
// previous calibration is kept.
func (e *Engine) ApplyCalibration(realDistance float64, unit string) error {
	if !e.hasCalibrationLine {
		return ErrNoCalibrationLine
	}
	cal, err := measure.Calibrate(e.calibrationLine, realDistance, unit)
	if err != nil {
		e.Log.WithError(err).WithField("page", e.Page).Warn("calibration rejected")
		return err
	}

	// Calibration is not part of the undo history.
	e.checkpoint("edit")
	e.Scene.SetCalibration(e.Page, cal)
	e.committed = e.Scene.Revision()

	e.hasCalibrationLine = false
	if e.Config.AutoSelect {
		e.tool = Select
	}
	e.Log.WithFields(logrus.Fields{
		"page":  e.Page,
		"scale": cal.Scale,
		"unit":  cal.Unit,
	}).Info("page calibrated")
	return nil
}
