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

package view

// Element identifies a kind of on-screen element for the sizing policy.
type Element int

// Visual-constant elements keep their size on screen.
const (
	SelectionHandle Element = iota
	RotationHandle
	VertexHandle
	StrokePreview
	SelectionOutline
	MeasurementMarker
	MeasurementLabel
	CalloutTipMarker
	HitTolerance

	// Content-scaled elements are part of the document and grow and shrink
	// with the page.
	ShapeStroke
	MeasurementStroke
	TextFont
)

var elementNames = [...]string{
	SelectionHandle:   "selection handle",
	RotationHandle:    "rotation handle",
	VertexHandle:      "vertex handle",
	StrokePreview:     "stroke preview",
	SelectionOutline:  "selection outline",
	MeasurementMarker: "measurement marker",
	MeasurementLabel:  "measurement label",
	CalloutTipMarker:  "callout tip marker",
	HitTolerance:      "hit tolerance",
	ShapeStroke:       "shape stroke",
	MeasurementStroke: "measurement stroke",
	TextFont:          "text font",
}

func (e Element) String() string {
	if e >= 0 && int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "unknown element"
}

// VisualConstant reports whether elements of this kind keep a constant
// size on screen.
func (e Element) VisualConstant() bool {
	return e < ShapeStroke
}

// Size returns the document-space size of an element with the given
// nominal size.  For visual-constant elements the nominal size is in screen
// pixels, for content-scaled elements it is in document units.
func (v *View) Size(e Element, nominal float64) float64 {
	if e.VisualConstant() {
		return v.ScaleInvariant(nominal)
	}
	return nominal
}
