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

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"
)

// ShapeKind identifies the variant of a [Shape].
type ShapeKind string

// These are the supported shape kinds.
const (
	Rectangle ShapeKind = "rectangle"
	Ellipse   ShapeKind = "ellipse"
	Line      ShapeKind = "line"
	Arrow     ShapeKind = "arrow"
)

// IsLinear reports whether shapes of this kind are defined by two endpoints.
func (k ShapeKind) IsLinear() bool {
	return k == Line || k == Arrow
}

// MeasurementKind identifies the variant of a [Measurement].
type MeasurementKind string

// These are the supported measurement kinds.
const (
	Length    MeasurementKind = "length"
	Area      MeasurementKind = "area"
	Perimeter MeasurementKind = "perimeter"
	Count     MeasurementKind = "count"
	Comment   MeasurementKind = "comment"
	Text      MeasurementKind = "text"
	Callout   MeasurementKind = "callout"
)

// HasBox reports whether measurements of this kind carry a text box.
func (k MeasurementKind) HasBox() bool {
	return k == Comment || k == Text || k == Callout
}

// HasTip reports whether measurements of this kind point at a location on
// the page.
func (k MeasurementKind) HasTip() bool {
	return k == Comment || k == Callout
}

// HasPoints reports whether measurements of this kind are defined by a list
// of vertices.
func (k MeasurementKind) HasPoints() bool {
	return k == Length || k == Area || k == Perimeter
}

// Style describes how an object is stroked and filled.
type Style struct {
	// Stroke is the stroke colour, in the form "#rrggbb" or "#rrggbbaa".
	Stroke string

	// StrokeWidth is the line width in document units.
	StrokeWidth float64

	// StrokeDashPattern gives alternating dash and gap lengths.
	// An empty pattern draws a solid line.
	StrokeDashPattern []float64

	// Fill is the fill colour.  The empty string means no fill.
	Fill string

	// Opacity is applied to both stroke and fill, in the range [0, 1].
	Opacity float64
}

// DefaultStyle returns the style used for newly drawn objects.
func DefaultStyle() Style {
	return Style{
		Stroke:      "#e53935",
		StrokeWidth: 2,
		Opacity:     1,
	}
}

func (s Style) clone() Style {
	s.StrokeDashPattern = slices.Clone(s.StrokeDashPattern)
	return s
}

// Box is an axis-aligned rectangle, before any rotation is applied.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the centre of the box.
func (b Box) Center() vec.Vec2 {
	return vec.Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d vec.Vec2) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Corners returns the corners of the box after rotating it by deg degrees
// about its centre.  The order is top-left, top-right, bottom-right,
// bottom-left.
func (b Box) Corners(deg float64) [4]vec.Vec2 {
	c := b.Center()
	pts := [4]vec.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
	if deg != 0 {
		for i := range pts {
			pts[i] = RotateAbout(pts[i], c, deg)
		}
	}
	return pts
}

func (b Box) valid() bool {
	return finite(b.X, b.Y, b.Width, b.Height) && b.Width > 0 && b.Height > 0
}

// Shape is a user-drawn rectangle, ellipse, line or arrow.
type Shape struct {
	ID        string
	PageIndex int
	Kind      ShapeKind
	Style     Style

	// Rotation is the rotation about the box centre, in degrees.
	// Lines and arrows ignore this field.
	Rotation float64

	// Box gives the geometry of rectangles and ellipses.
	Box Box

	// Start and End give the geometry of lines and arrows.
	Start, End vec.Vec2
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	s.Style = s.Style.clone()
	return s
}

// Valid reports whether the geometry of s is consistent with its kind.
func (s Shape) Valid() bool {
	switch s.Kind {
	case Rectangle, Ellipse:
		return s.Box.valid() && finite(s.Rotation)
	case Line, Arrow:
		return finite(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	default:
		return false
	}
}

// Measurement is a measurement or a text annotation on a page.
type Measurement struct {
	ID        string
	PageIndex int
	Kind      MeasurementKind
	Style     Style

	// Points holds the vertices of length (exactly two), area (at least
	// three, closed) and perimeter (at least two, open) measurements.
	Points []vec.Vec2

	// Point is the location of a count marker.
	Point vec.Vec2

	// Box, Rotation, Text and FontSize describe the text box of comment, text
	// and callout annotations.
	Box      Box
	Rotation float64
	Text     string
	FontSize float64

	// Tip is the location a comment or callout points at.
	Tip *vec.Vec2

	// Knee is an explicit elbow of the callout leader.  If Knee is nil, the
	// elbow is derived from Box and Tip.
	Knee *vec.Vec2
}

// Clone returns a deep copy of m.
func (m Measurement) Clone() Measurement {
	m.Style = m.Style.clone()
	m.Points = slices.Clone(m.Points)
	if m.Tip != nil {
		tip := *m.Tip
		m.Tip = &tip
	}
	if m.Knee != nil {
		knee := *m.Knee
		m.Knee = &knee
	}
	return m
}

// Valid reports whether the geometry of m is consistent with its kind.
// Objects which are not valid are skipped by hit-testing and rendering.
func (m Measurement) Valid() bool {
	switch m.Kind {
	case Length:
		return len(m.Points) == 2 && finitePoints(m.Points)
	case Area:
		return len(m.Points) >= 3 && finitePoints(m.Points)
	case Perimeter:
		return len(m.Points) >= 2 && finitePoints(m.Points)
	case Count:
		return finite(m.Point.X, m.Point.Y)
	case Text:
		return m.Box.valid() && finite(m.Rotation)
	case Comment, Callout:
		if m.Tip == nil || !finite(m.Tip.X, m.Tip.Y) {
			return false
		}
		if m.Knee != nil && !finite(m.Knee.X, m.Knee.Y) {
			return false
		}
		return m.Box.valid() && finite(m.Rotation)
	default:
		return false
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func finitePoints(pts []vec.Vec2) bool {
	for _, p := range pts {
		if !finite(p.X, p.Y) {
			return false
		}
	}
	return true
}

// ItemType distinguishes shapes from measurements.
type ItemType int

// These are the possible item types.
const (
	ItemShape ItemType = iota + 1
	ItemMeasurement
)

func (t ItemType) String() string {
	switch t {
	case ItemShape:
		return "shape"
	case ItemMeasurement:
		return "measurement"
	default:
		return "unknown"
	}
}

// ItemRef refers to one object in a scene.
type ItemRef struct {
	Type ItemType
	ID   string
}
