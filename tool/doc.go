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

// Package tool implements the interaction state machine of the overlay
// editor.
//
// An [Engine] receives pointer and key events in screen coordinates,
// maps them to document space and turns them into scene edits.  While a
// gesture is in progress, the scene is left unchanged and the pending edit
// is exposed through [Engine.Preview]; the edit is committed when the
// pointer is released.  Every completed gesture which changed the scene
// adds exactly one entry to the undo history.
package tool
