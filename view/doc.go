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

// Package view maps between document space and screen space.
//
// A [View] places one page on screen: the page is first rotated by a
// multiple of 90 degrees, then scaled by the zoom factor and finally moved
// by the pan offset.  [View.ToScreen] applies this transformation and
// [View.ToDocument] undoes it.
//
// The package also implements the sizing policy for on-screen elements.
// Some elements, like selection handles, keep a constant size on screen
// whatever the zoom.  Others, like the strokes of user-drawn shapes, are
// part of the content and scale with it.  Use [View.Size] to obtain the
// document-space size of an element.
package view
