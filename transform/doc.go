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

// Package transform implements the geometry of moving, resizing and
// rotating scene objects.
//
// None of the functions in this package modify their arguments.  They
// return patches, which the caller applies to the scene when a gesture is
// complete, or applies at read time to show a preview.
//
// Resizing works on the [Resizable] view of an object: an axis-aligned box
// together with a rotation about the box centre.  Shapes and text-like
// measurements are converted to this view with [ResizableOfShape] and
// [ResizableOfMeasurement], and the result is mapped back with
// [ApplyToShape] and [ApplyToMeasurement].
package transform
