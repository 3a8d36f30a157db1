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

	"seehuhn.de/go/overlay/callout"
	"seehuhn.de/go/overlay/history"
	"seehuhn.de/go/overlay/hittest"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/view"
)

// Config holds the tunable parameters of an [Engine].
//
// Sizes marked "screen pixels" are converted to document units using the
// current zoom, so that handles and tolerances look the same at every
// zoom level.
type Config struct {
	// HandleRadius is the pick radius of resize, vertex, knee and tip
	// handles, in screen pixels.
	HandleRadius float64

	// RotationHandleOffset is the distance of the rotation handle above
	// the top edge of the box, in screen pixels.
	RotationHandleOffset float64

	// HitTolerance, CountRadius and TipRadius are the hit-test parameters,
	// in screen pixels.
	HitTolerance float64
	CountRadius  float64
	TipRadius    float64

	// DragThreshold is the distance the pointer must travel before a
	// press becomes a drag, in screen pixels.
	DragThreshold float64

	// TextBoxWidth and TextBoxHeight give the size of text boxes created
	// by a click instead of a drag, in document units.
	TextBoxWidth  float64
	TextBoxHeight float64

	// CalloutOffset is the position of a new callout or comment box
	// relative to its tip, when only the tip was given.
	CalloutOffset vec.Vec2

	// PasteOffset is the distance by which each paste is shifted from
	// the copied objects, in document units.
	PasteOffset float64

	// NudgeStep is the distance moved by an arrow key, in document units.
	// Shift multiplies the step by 10.
	NudgeStep float64

	// HistoryLimit is the maximum number of undo entries.
	HistoryLimit int

	// AutoSelect makes single-shot tools return to the select tool after
	// creating an object, with the new object selected.
	AutoSelect bool

	// SnapRotation makes the rotation handle snap to multiples of 15°
	// without Shift; Shift then gives free rotation.
	SnapRotation bool

	Style    scene.Style
	FontSize float64

	Callout callout.Config
}

// DefaultConfig returns the default engine settings.
func DefaultConfig() Config {
	hit := hittest.DefaultOptions()
	return Config{
		HandleRadius:         6,
		RotationHandleOffset: 24,
		HitTolerance:         hit.Tolerance,
		CountRadius:          hit.CountRadius,
		TipRadius:            hit.TipRadius,
		DragThreshold:        3,
		TextBoxWidth:         160,
		TextBoxHeight:        40,
		CalloutOffset:        vec.Vec2{X: 40, Y: -80},
		PasteOffset:          10,
		NudgeStep:            1,
		HistoryLimit:         history.DefaultLimit,
		AutoSelect:           true,
		Style:                scene.DefaultStyle(),
		FontSize:             14,
		Callout:              callout.DefaultConfig(),
	}
}

// hitOptions returns the hit-test parameters for the current zoom.
func (cfg *Config) hitOptions(v *view.View) hittest.Options {
	return hittest.Options{
		Tolerance:   v.Size(view.HitTolerance, cfg.HitTolerance),
		CountRadius: v.Size(view.MeasurementMarker, cfg.CountRadius),
		TipRadius:   v.Size(view.CalloutTipMarker, cfg.TipRadius),
	}
}

// handleRadius returns the pick radius of handles in document units.
func (cfg *Config) handleRadius(v *view.View) float64 {
	return v.Size(view.SelectionHandle, cfg.HandleRadius)
}

// rotationOffset returns the distance of the rotation handle above the
// box, in document units.
func (cfg *Config) rotationOffset(v *view.View) float64 {
	return v.Size(view.RotationHandle, cfg.RotationHandleOffset)
}
