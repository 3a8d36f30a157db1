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

// Package scene holds the shapes and measurements drawn on top of a
// document, together with the selection and the per-page calibration.
//
// All geometry is stored in document space: the resolution independent
// coordinate system of a page, with the origin in the top-left corner and y
// growing downwards.  Rotation angles are in degrees, clockwise on screen,
// and are normalized to the range [0, 360).
//
// The order of objects in a [Scene] is their drawing order.  Objects added
// later are drawn on top of earlier ones.
//
// A Scene is only modified through its methods.  Getters return deep copies
// and updates are expressed as patches ([ShapePatch], [MeasurementPatch]),
// so that a [Snapshot] taken at any time stays valid.  The Scene never
// records undo history by itself.
package scene
