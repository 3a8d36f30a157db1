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

// Package callout computes the leader lines which connect the text box of
// a callout to the point it annotates.
//
// A leader runs from a start point on the edge of the box, through a knee,
// to the tip.  If the callout has no explicit knee, the knee is derived
// from the box and the tip: the leader leaves the box horizontally unless
// the tip lies well above or below the box.  All decisions are taken in
// the local frame of the box, so rotated boxes behave like unrotated ones.
package callout

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
)

// Config holds the tuning parameters of the router.
type Config struct {
	// HorizontalBias favours side attachment: the leader leaves the box
	// sideways as long as |dx|·HorizontalBias ≥ |dy|, where (dx, dy) is
	// the offset from the box centre to the tip.
	HorizontalBias float64

	// MaxStub is the largest distance between the box edge and the knee,
	// in document units.
	MaxStub float64
}

// DefaultConfig returns the default router settings.
func DefaultConfig() Config {
	return Config{
		HorizontalBias: 3,
		MaxStub:        20,
	}
}

// Side is the edge of the box where the leader is attached.
type Side int

// These are the possible attachment sides, for the unrotated box.
const (
	Right Side = iota
	Left
	Bottom
	Top
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	}
	return "unknown"
}

// Horizontal reports whether the leader leaves the box sideways.
func (s Side) Horizontal() bool {
	return s == Right || s == Left
}

// Leader is the routed connector of a callout.
type Leader struct {
	Start vec.Vec2 // on the edge of the box
	Knee  vec.Vec2
	Tip   vec.Vec2
	Side  Side
}

// Points returns the polyline start, knee, tip.
func (l Leader) Points() []vec.Vec2 {
	return []vec.Vec2{l.Start, l.Knee, l.Tip}
}

// side chooses the attachment side for a local offset d from the box
// centre.
func (cfg Config) side(d vec.Vec2) Side {
	bias := cfg.HorizontalBias
	if bias <= 0 {
		bias = 1
	}
	if math.Abs(d.X)*bias >= math.Abs(d.Y) {
		if d.X < 0 {
			return Left
		}
		return Right
	}
	if d.Y < 0 {
		return Top
	}
	return Bottom
}

// DeriveKnee returns the knee of a leader from box to tip, for a box
// rotated by rotation degrees about its centre.
func (cfg Config) DeriveKnee(box scene.Box, rotation float64, tip vec.Vec2) (vec.Vec2, Side) {
	c := box.Center()
	d := scene.RotateAbout(tip, c, -rotation).Sub(c)
	side := cfg.side(d)

	halfW, halfH := box.Width/2, box.Height/2
	var local vec.Vec2
	switch side {
	case Right:
		local = vec.Vec2{X: c.X + halfW + cfg.stub(d.X, halfW), Y: c.Y}
	case Left:
		local = vec.Vec2{X: c.X - halfW - cfg.stub(d.X, halfW), Y: c.Y}
	case Bottom:
		local = vec.Vec2{X: c.X, Y: c.Y + halfH + cfg.stub(d.Y, halfH)}
	case Top:
		local = vec.Vec2{X: c.X, Y: c.Y - halfH - cfg.stub(d.Y, halfH)}
	}
	return scene.RotateAbout(local, c, rotation), side
}

// stub returns the distance from the box edge to the knee: half the gap
// between edge and tip along the attachment axis, capped at MaxStub.
func (cfg Config) stub(offset, half float64) float64 {
	gap := (math.Abs(offset) - half) / 2
	return math.Max(0, math.Min(gap, cfg.MaxStub))
}

// EdgePoint returns the point where the ray from the box centre towards p
// leaves the rotated box.  If p is the centre, the centre is returned.
func EdgePoint(box scene.Box, rotation float64, p vec.Vec2) vec.Vec2 {
	c := box.Center()
	u := scene.RotateAbout(p, c, -rotation).Sub(c)
	t := math.Inf(1)
	if u.X != 0 {
		t = math.Min(t, box.Width/2/math.Abs(u.X))
	}
	if u.Y != 0 {
		t = math.Min(t, box.Height/2/math.Abs(u.Y))
	}
	if math.IsInf(t, 1) {
		return c
	}
	return scene.RotateAbout(c.Add(u.Mul(t)), c, rotation)
}

// Route computes the leader of a comment or callout.
// An explicit knee takes precedence over the derived one.
// The second return value is false for objects without a valid leader,
// for example a callout without a tip.
func (cfg Config) Route(m scene.Measurement) (Leader, bool) {
	if !m.Kind.HasTip() || !m.Valid() {
		return Leader{}, false
	}
	tip := *m.Tip

	var knee vec.Vec2
	var side Side
	if m.Knee != nil {
		knee = *m.Knee
		c := m.Box.Center()
		side = cfg.side(scene.RotateAbout(knee, c, -m.Rotation).Sub(c))
	} else {
		knee, side = cfg.DeriveKnee(m.Box, m.Rotation, tip)
	}

	return Leader{
		Start: EdgePoint(m.Box, m.Rotation, knee),
		Knee:  knee,
		Tip:   tip,
		Side:  side,
	}, true
}

// SnapKnee aligns a knee dragged by the user with the local axes of the
// box.  A knee beside the box is moved onto the horizontal centre line of
// the box, a knee above or below the box onto the vertical centre line.
func (cfg Config) SnapKnee(box scene.Box, rotation float64, knee vec.Vec2) vec.Vec2 {
	c := box.Center()
	local := scene.RotateAbout(knee, c, -rotation)
	if cfg.side(local.Sub(c)).Horizontal() {
		local.Y = c.Y
	} else {
		local.X = c.X
	}
	return scene.RotateAbout(local, c, rotation)
}
