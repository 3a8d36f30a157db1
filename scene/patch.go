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
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"
)

// ShapePatch is a partial update of a [Shape].
// Nil fields are left unchanged.  The ID, page and kind of a shape can not
// be patched.
type ShapePatch struct {
	Style    *Style
	Rotation *float64
	Box      *Box
	Start    *vec.Vec2
	End      *vec.Vec2
}

// IsEmpty reports whether the patch changes nothing.
func (p ShapePatch) IsEmpty() bool {
	return p.Style == nil && p.Rotation == nil && p.Box == nil &&
		p.Start == nil && p.End == nil
}

// Apply returns a copy of s with the patch applied.
func (p ShapePatch) Apply(s Shape) Shape {
	s = s.Clone()
	if p.Style != nil {
		s.Style = p.Style.clone()
	}
	if p.Rotation != nil {
		s.Rotation = NormalizeDegrees(*p.Rotation)
	}
	if p.Box != nil {
		s.Box = *p.Box
	}
	if p.Start != nil {
		s.Start = *p.Start
	}
	if p.End != nil {
		s.End = *p.End
	}
	return s
}

// MeasurementPatch is a partial update of a [Measurement].
// Nil fields are left unchanged.  The ID, page and kind of a measurement
// can not be patched.
type MeasurementPatch struct {
	Style    *Style
	Points   []vec.Vec2
	Point    *vec.Vec2
	Box      *Box
	Rotation *float64
	Text     *string
	FontSize *float64
	Tip      *vec.Vec2
	Knee     *vec.Vec2

	// ClearKnee removes an explicit knee, so that the leader elbow is
	// derived again.  Knee takes precedence if both are set.
	ClearKnee bool
}

// IsEmpty reports whether the patch changes nothing.
func (p MeasurementPatch) IsEmpty() bool {
	return p.Style == nil && p.Points == nil && p.Point == nil &&
		p.Box == nil && p.Rotation == nil && p.Text == nil &&
		p.FontSize == nil && p.Tip == nil && p.Knee == nil && !p.ClearKnee
}

// Apply returns a copy of m with the patch applied.
func (p MeasurementPatch) Apply(m Measurement) Measurement {
	m = m.Clone()
	if p.Style != nil {
		m.Style = p.Style.clone()
	}
	if p.Points != nil {
		m.Points = slices.Clone(p.Points)
	}
	if p.Point != nil {
		m.Point = *p.Point
	}
	if p.Box != nil {
		m.Box = *p.Box
	}
	if p.Rotation != nil {
		m.Rotation = NormalizeDegrees(*p.Rotation)
	}
	if p.Text != nil {
		m.Text = *p.Text
	}
	if p.FontSize != nil {
		m.FontSize = *p.FontSize
	}
	if p.Tip != nil {
		tip := *p.Tip
		m.Tip = &tip
	}
	if p.ClearKnee {
		m.Knee = nil
	}
	if p.Knee != nil {
		knee := *p.Knee
		m.Knee = &knee
	}
	return m
}
