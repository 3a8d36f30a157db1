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

package render

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/callout"
	"seehuhn.de/go/overlay/scene"
)

// MinSegment is the shortest segment which gets an arrowhead.
const MinSegment = 0.1

// ArrowSize returns the length of an arrowhead for the given line width.
// The head is half as wide as it is long.
func ArrowSize(lineWidth float64) float64 {
	return max(3, 6*lineWidth)
}

// ArrowHead is a closed, filled arrowhead.
type ArrowHead struct {
	Tip         vec.Vec2
	Left, Right vec.Vec2

	// Base is the midpoint between Left and Right.  Lines ending in the
	// arrowhead stop here.
	Base vec.Vec2
}

// NewArrowHead returns the arrowhead for a line from from to at.
//
// The tip is pulled back from at by the miter extension of the stroke, so
// that the outline of the stroked head ends exactly at at.
// The second return value is false for segments shorter than [MinSegment].
func NewArrowHead(at, from vec.Vec2, lineWidth float64) (ArrowHead, bool) {
	d := at.Sub(from)
	D := d.Length()
	if D < MinSegment {
		return ArrowHead{}, false
	}
	dir := d.Mul(1 / D)
	perp := vec.Vec2{X: -dir.Y, Y: dir.X}

	size := ArrowSize(lineWidth)

	// The two sides of the head meet at the tip with half-angle θ/2,
	// where tan(θ/2) = 0.5.  The miter of a stroke of width w extends
	// w/(2 sin(θ/2)) beyond the corner.
	sinHalfTheta := 0.5 / math.Hypot(1, 0.5)
	shift := lineWidth / (2 * sinHalfTheta)

	tip := at.Sub(dir.Mul(shift))
	base := tip.Sub(dir.Mul(size))
	return ArrowHead{
		Tip:   tip,
		Left:  base.Add(perp.Mul(0.5 * size)),
		Right: base.Sub(perp.Mul(0.5 * size)),
		Base:  base,
	}, true
}

// Polygon returns the outline of the head.
func (a ArrowHead) Polygon() []vec.Vec2 {
	return []vec.Vec2{a.Tip, a.Left, a.Right}
}

// LineSegment returns the visible part of a line or arrow.  For arrows,
// the line stops at the base of the arrowhead, which is returned as the
// second value.
func LineSegment(s scene.Shape) (from, to vec.Vec2, head *ArrowHead) {
	if s.Kind != scene.Arrow {
		return s.Start, s.End, nil
	}
	a, ok := NewArrowHead(s.End, s.Start, s.Style.StrokeWidth)
	if !ok {
		return s.Start, s.End, nil
	}
	return s.Start, a.Base, &a
}

// CalloutPolyline returns the visible leader of a callout: start, knee
// and the base of the arrowhead at the tip.  The last segment is shortened
// so that it does not overlap the arrowhead.
//
// If the knee coincides with the tip, the head is aligned with the
// segment from the start point.
func CalloutPolyline(l callout.Leader, lineWidth float64) ([]vec.Vec2, *ArrowHead) {
	from := l.Knee
	if l.Tip.Sub(from).Length() < MinSegment {
		from = l.Start
	}
	a, ok := NewArrowHead(l.Tip, from, lineWidth)
	if !ok {
		return []vec.Vec2{l.Start, l.Knee, l.Tip}, nil
	}
	if from == l.Start {
		return []vec.Vec2{l.Start, a.Base}, &a
	}
	return []vec.Vec2{l.Start, l.Knee, a.Base}, &a
}
