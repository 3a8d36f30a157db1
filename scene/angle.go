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

package scene

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// NormalizeDegrees maps an angle to the range [0, 360).
// Values within 1e-9 of a multiple of 360 are mapped to 0.
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg < 1e-9 || 360-deg < 1e-9 {
		return 0
	}
	return deg
}

// Rotation returns the matrix which rotates by deg degrees about the origin.
// With y pointing down, positive angles turn clockwise on screen.
func Rotation(deg float64) matrix.Matrix {
	switch NormalizeDegrees(deg) {
	case 0:
		return matrix.Identity
	case 90:
		return matrix.Matrix{0, 1, -1, 0, 0, 0}
	case 180:
		return matrix.Matrix{-1, 0, 0, -1, 0, 0}
	case 270:
		return matrix.Matrix{0, -1, 1, 0, 0, 0}
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// RotateAbout rotates p by deg degrees about center.
func RotateAbout(p, center vec.Vec2, deg float64) vec.Vec2 {
	if deg == 0 {
		return p
	}
	x, y := Rotation(deg).Apply(p.X-center.X, p.Y-center.Y)
	return vec.Vec2{X: x + center.X, Y: y + center.Y}
}
