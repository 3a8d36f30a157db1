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

package transform

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// MinSize is the smallest width and height a resize can produce.
const MinSize = 1

// Handle identifies one of the eight resize handles of a box.
type Handle string

// These are the resize handles, named by compass direction.
// North is the top edge of the unrotated box.
const (
	N  Handle = "n"
	S  Handle = "s"
	E  Handle = "e"
	W  Handle = "w"
	NE Handle = "ne"
	NW Handle = "nw"
	SE Handle = "se"
	SW Handle = "sw"
)

// AllHandles lists the resize handles in drawing order.
var AllHandles = []Handle{NW, N, NE, E, SE, S, SW, W}

// sides returns which horizontal and vertical edges the handle moves:
// -1 for the left/top edge, +1 for the right/bottom edge, 0 for none.
func (h Handle) sides() (sx, sy int) {
	switch h {
	case N:
		return 0, -1
	case S:
		return 0, 1
	case E:
		return 1, 0
	case W:
		return -1, 0
	case NE:
		return 1, -1
	case NW:
		return -1, -1
	case SE:
		return 1, 1
	case SW:
		return -1, 1
	}
	return 0, 0
}

// Valid reports whether h is one of the eight handles.
func (h Handle) Valid() bool {
	sx, sy := h.sides()
	return sx != 0 || sy != 0
}

// Resizable is the common view of all objects which can be resized with
// handles: an axis-aligned box, rotated by Rotation degrees about its
// centre.
type Resizable struct {
	X, Y, W, H float64
	Rotation   float64
}

// Box returns the unrotated box.
func (r Resizable) Box() scene.Box {
	return scene.Box{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Center returns the centre of the box, which is also the rotation pivot.
func (r Resizable) Center() vec.Vec2 {
	return vec.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Resize moves the edges controlled by handle h by delta and returns the
// new box.
//
// The delta is given in document space.  It is rotated into the local frame
// of the box, the edges are moved there, and the new centre is rotated back,
// so that the side opposite to the handle stays in place on screen.  Edges
// which cross over are swapped, and the result is at least [MinSize] wide
// and high.
func Resize(r Resizable, h Handle, delta vec.Vec2) Resizable {
	sx, sy := h.sides()
	if (sx == 0 && sy == 0) || delta == (vec.Vec2{}) {
		return r
	}

	local := delta
	if r.Rotation != 0 {
		local.X, local.Y = scene.Rotation(-r.Rotation).Apply(delta.X, delta.Y)
	}

	left, right := r.X, r.X+r.W
	top, bottom := r.Y, r.Y+r.H
	switch sx {
	case -1:
		left += local.X
	case 1:
		right += local.X
	}
	switch sy {
	case -1:
		top += local.Y
	case 1:
		bottom += local.Y
	}

	x0, x1 := normalizeEdges(left, right, sx)
	y0, y1 := normalizeEdges(top, bottom, sy)

	oldCenter := r.Center()
	newLocal := vec.Vec2{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
	newCenter := scene.RotateAbout(newLocal, oldCenter, r.Rotation)

	w, hh := x1-x0, y1-y0
	return Resizable{
		X:        newCenter.X - w/2,
		Y:        newCenter.Y - hh/2,
		W:        w,
		H:        hh,
		Rotation: r.Rotation,
	}
}

// normalizeEdges orders two edge positions and enforces the minimum size.
// If the box is too small, the edge controlled by the handle gives way.
func normalizeEdges(lo, hi float64, side int) (float64, float64) {
	if lo > hi {
		lo, hi = hi, lo
		side = -side
	}
	if hi-lo >= MinSize {
		return lo, hi
	}
	if side < 0 {
		return hi - MinSize, hi
	}
	return lo, lo + MinSize
}

// Rotate returns the rotation angle for a rotation handle dragged to
// pointer.
//
// The angle of the pointer as seen from center is offset by handleOffset,
// the angular position of the handle on the unrotated box (90 for a handle
// above the centre).  If snap is set, the result is rounded to a multiple
// of [SnapDegrees].
//
// The second return value is false if pointer coincides with center,
// where the angle is undefined.
func Rotate(center, pointer vec.Vec2, handleOffset float64, snap bool) (float64, bool) {
	d := pointer.Sub(center)
	if d == (vec.Vec2{}) {
		return 0, false
	}
	deg := math.Atan2(d.Y, d.X)*180/math.Pi + handleOffset
	if snap {
		deg = math.Round(deg/SnapDegrees) * SnapDegrees
	}
	return scene.NormalizeDegrees(deg), true
}

// SnapDegrees is the angle increment used by [Rotate] when snapping.
const SnapDegrees = 15

// TopHandleOffset is the handle offset for a rotation handle placed above
// the box centre.
const TopHandleOffset = 90

// Handles returns the document-space positions of the resize handles.
func Handles(r Resizable) map[Handle]vec.Vec2 {
	c := r.Center()
	res := make(map[Handle]vec.Vec2, len(AllHandles))
	for _, h := range AllHandles {
		sx, sy := h.sides()
		local := vec.Vec2{
			X: c.X + float64(sx)*r.W/2,
			Y: c.Y + float64(sy)*r.H/2,
		}
		res[h] = scene.RotateAbout(local, c, r.Rotation)
	}
	return res
}

// RotationHandle returns the position of the rotation handle, placed
// offset units above the top edge of the box.
func RotationHandle(r Resizable, offset float64) vec.Vec2 {
	c := r.Center()
	local := vec.Vec2{X: c.X, Y: r.Y - offset}
	return scene.RotateAbout(local, c, r.Rotation)
}

// HandleAt returns the resize handle within radius of p, if any.
func HandleAt(r Resizable, p vec.Vec2, radius float64) (Handle, bool) {
	pos := Handles(r)
	for _, h := range AllHandles {
		if pos[h].Sub(p).Length() <= radius {
			return h, true
		}
	}
	return "", false
}
