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

// Package measure converts between document-space geometry and real-world
// units.
//
// # Calibration
//
// A [Calibration] records how many document units correspond to one
// real-world unit on a page, together with the unit label.  The zero
// calibration is never used directly; [Default] returns one document unit
// per pixel.
//
//	cal, err := measure.Calibrate(240, 10, "ft") // 240 document units span 10 ft
//	if err != nil {
//		// keep the previous calibration
//	}
//	feet := cal.ToRealLength(96)
//
// Calibration is usually obtained by measuring a known distance on the page
// with [Calibrate].  A real distance which is zero, negative or not finite is
// rejected with [ErrInvalidDistance].
//
// # Number Formats
//
// [NumberFormat] values describe how a real-world quantity is shown to the
// user.  A slice of formats forms a unit chain: the integer part of each
// stage is printed and the remainder is passed on to the next stage.
//
//	formats := []*measure.NumberFormat{
//		{Unit: "ft", ConversionFactor: 1, Precision: 1},
//		{Unit: "in", ConversionFactor: 12, Precision: 8, FractionFormat: measure.FractionFraction},
//	}
//	s, _ := measure.Format(1.75, formats) // "1 ft 9 in"
//
// # Viewports
//
// A page can carry several [Viewport] regions with their own calibration,
// for example a floor plan and a detail drawing at a different scale.
// [Viewports.Select] returns the topmost viewport containing a point.
package measure
