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

package measure

import (
	"errors"
	"fmt"
	"math"
)

// MinScale is the smallest calibration scale used in divisions.
const MinScale = 1e-9

// DefaultUnit is the unit label of an uncalibrated page.
const DefaultUnit = "px"

// ErrInvalidDistance is returned by [Calibrate] if one of the distances is
// not a positive, finite number.
var ErrInvalidDistance = errors.New("measure: invalid calibration distance")

// Calibration describes the relation between document space and real-world
// units on one page.
type Calibration struct {
	// Scale is the number of document units per real-world unit.
	Scale float64

	// Unit is the label of the real-world unit, e.g. "m" or "ft".
	Unit string
}

// Default returns the calibration of a page where no calibration has been
// set: one document unit per pixel.
func Default() Calibration {
	return Calibration{Scale: 1, Unit: DefaultUnit}
}

// Calibrate solves for the calibration which maps documentDistance to
// realDistance.
func Calibrate(documentDistance, realDistance float64, unit string) (Calibration, error) {
	if !isPositive(realDistance) {
		return Calibration{}, fmt.Errorf("real distance %g: %w", realDistance, ErrInvalidDistance)
	}
	if !isPositive(documentDistance) {
		return Calibration{}, fmt.Errorf("document distance %g: %w", documentDistance, ErrInvalidDistance)
	}
	if unit == "" {
		unit = DefaultUnit
	}
	return Calibration{Scale: documentDistance / realDistance, Unit: unit}, nil
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// IsZero reports whether c is the zero value.
func (c Calibration) IsZero() bool {
	return c.Scale == 0 && c.Unit == ""
}

func (c Calibration) scale() float64 {
	return math.Max(c.Scale, MinScale)
}

// ToRealLength converts a document-space distance to real-world units.
func (c Calibration) ToRealLength(d float64) float64 {
	return d / c.scale()
}

// ToRealArea converts a document-space area to square real-world units.
func (c Calibration) ToRealArea(a float64) float64 {
	s := c.scale()
	return a / (s * s)
}

// ToDocumentLength converts a real-world distance to document units.
func (c Calibration) ToDocumentLength(r float64) float64 {
	return r * c.scale()
}

// Formats returns the number formats used to label distances and areas
// in the calibrated unit.  Values are shown with two decimal places.
func (c Calibration) Formats() (distance, area []*NumberFormat) {
	unit := c.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	distance = []*NumberFormat{{
		Unit:             unit,
		ConversionFactor: 1,
		Precision:        100,
	}}
	area = []*NumberFormat{{
		Unit:             unit + "²",
		ConversionFactor: 1,
		Precision:        100,
	}}
	return distance, area
}

// FormatLength converts a document-space distance to a labelled string.
func (c Calibration) FormatLength(d float64) string {
	distance, _ := c.Formats()
	s, _ := Format(c.ToRealLength(d), distance)
	return s
}

// FormatArea converts a document-space area to a labelled string.
func (c Calibration) FormatArea(a float64) string {
	_, area := c.Formats()
	s, _ := Format(c.ToRealArea(a), area)
	return s
}
