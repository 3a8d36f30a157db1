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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// Rotation describes how a page is rotated when displayed.
// The possible values are [Rotate0], [Rotate90], [Rotate180] and
// [Rotate270].
type Rotation int

// Valid values for Rotation.
const (
	Rotate0   Rotation = 0   // don't rotate
	Rotate90  Rotation = 90  // rotate 90 degrees clockwise
	Rotate180 Rotation = 180 // rotate 180 degrees clockwise
	Rotate270 Rotation = 270 // rotate 270 degrees clockwise
)

// ErrRotation is returned by [DecodeRotation] for angles which are not a
// multiple of 90 degrees.
var ErrRotation = errors.New("view: page rotation must be a multiple of 90")

// DecodeRotation converts an angle in degrees into a Rotation.
// Any multiple of 90, including negative values, is accepted.
func DecodeRotation(deg int) (Rotation, error) {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 0, 90, 180, 270:
		return Rotation(deg), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrRotation, deg)
	}
}

// Degrees returns the rotation angle in degrees.
func (r Rotation) Degrees() int {
	return int(r)
}

// swapsAxes reports whether the rotated page is displayed in landscape
// orientation for a portrait page.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// matrix returns the transformation which rotates a page of size w×h
// clockwise and moves the result back into the positive quadrant.
func (r Rotation) matrix(w, h float64) matrix.Matrix {
	switch r {
	case Rotate90:
		return matrix.Matrix{0, 1, -1, 0, h, 0}
	case Rotate180:
		return matrix.Matrix{-1, 0, 0, -1, w, h}
	case Rotate270:
		return matrix.Matrix{0, -1, 1, 0, 0, w}
	default:
		return matrix.Identity
	}
}

// inverse returns the inverse of r.matrix(w, h).
func (r Rotation) inverse(w, h float64) matrix.Matrix {
	switch r {
	case Rotate90:
		return matrix.Matrix{0, -1, 1, 0, 0, h}
	case Rotate180:
		return matrix.Matrix{-1, 0, 0, -1, w, h}
	case Rotate270:
		return matrix.Matrix{0, 1, -1, 0, w, 0}
	default:
		return matrix.Identity
	}
}
