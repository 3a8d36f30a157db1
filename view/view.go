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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// MinZoom is the smallest zoom factor used in divisions.
const MinZoom = 1e-6

// View describes how a page is placed on screen.
type View struct {
	// PageWidth and PageHeight give the size of the unrotated page in
	// document units.
	PageWidth, PageHeight float64

	// Rotation is the clockwise rotation of the page on screen.
	Rotation Rotation

	// Zoom is the number of screen pixels per document unit.
	Zoom float64

	// Pan is the screen position of the top-left corner of the displayed
	// (rotated) page.
	Pan vec.Vec2
}

// New returns a view of a w×h page at zoom 1, without rotation or panning.
func New(w, h float64) *View {
	return &View{PageWidth: w, PageHeight: h, Zoom: 1}
}

func (v *View) zoom() float64 {
	return math.Max(v.Zoom, MinZoom)
}

// Matrix returns the document-to-screen transformation.
func (v *View) Matrix() matrix.Matrix {
	z := v.zoom()
	return v.Rotation.matrix(v.PageWidth, v.PageHeight).
		Mul(matrix.Scale(z, z)).
		Mul(matrix.Translate(v.Pan.X, v.Pan.Y))
}

// InverseMatrix returns the screen-to-document transformation.
func (v *View) InverseMatrix() matrix.Matrix {
	z := v.zoom()
	return matrix.Translate(-v.Pan.X, -v.Pan.Y).
		Mul(matrix.Scale(1/z, 1/z)).
		Mul(v.Rotation.inverse(v.PageWidth, v.PageHeight))
}

// ToScreen converts a document-space point to screen space.
func (v *View) ToScreen(p vec.Vec2) vec.Vec2 {
	x, y := v.Matrix().Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// ToDocument converts a screen-space point to document space.
func (v *View) ToDocument(p vec.Vec2) vec.Vec2 {
	x, y := v.InverseMatrix().Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// PagePoint converts the position of a pointer event to document space.
// Hosts use this when they need document coordinates outside of the
// engine's event handlers.
func (v *View) PagePoint(screen vec.Vec2) vec.Vec2 {
	return v.ToDocument(screen)
}

// ScreenSize returns the size of the displayed page in screen pixels.
func (v *View) ScreenSize() (w, h float64) {
	w, h = v.PageWidth, v.PageHeight
	if v.Rotation.swapsAxes() {
		w, h = h, w
	}
	z := v.zoom()
	return w * z, h * z
}

// ScaleInvariant converts a size in screen pixels into document units,
// so that the size looks the same at every zoom level.
func (v *View) ScaleInvariant(nominal float64) float64 {
	return nominal / v.zoom()
}

// ZoomAbout changes the zoom factor while keeping the document point under
// the screen position anchor fixed.
func (v *View) ZoomAbout(anchor vec.Vec2, zoom float64) {
	if zoom < MinZoom || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return
	}
	p := v.ToDocument(anchor)
	v.Zoom = zoom
	moved := v.ToScreen(p)
	v.Pan = v.Pan.Add(anchor.Sub(moved))
}
