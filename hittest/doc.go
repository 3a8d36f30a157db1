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

// Package hittest decides which scene objects lie under a point or inside
// a selection rectangle.
//
// All tests work in document space.  Rotated boxes are handled by rotating
// the query point into the local frame of the box.  Objects whose geometry
// is not valid never match.
//
// [FindItemAtPoint] examines shapes before measurements, each list from
// the top of the drawing order downwards, and returns the first hit.
package hittest
