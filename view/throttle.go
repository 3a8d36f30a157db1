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

import "time"

// Throttle tells a host at which resolution to rasterize the page while
// the user pans or zooms.  During active view changes a lower draft
// resolution is used, after Idle has passed without a change the full
// resolution is used again.
//
// A Throttle does not start timers.  The host passes in the current time
// and is responsible for redrawing once the idle period is over.
type Throttle struct {
	// Idle is the time without view changes after which the page is
	// rendered at full resolution.
	Idle time.Duration

	// Draft is the resolution factor used during view changes, in the
	// range (0, 1].
	Draft float64

	last time.Time
}

// NewThrottle returns a throttle with the given idle period and draft
// factor.
func NewThrottle(idle time.Duration, draft float64) *Throttle {
	return &Throttle{Idle: idle, Draft: draft}
}

// Touch records a view change at time now.
func (t *Throttle) Touch(now time.Time) {
	t.last = now
}

// Settled reports whether the idle period has passed since the last view
// change.
func (t *Throttle) Settled(now time.Time) bool {
	return t.last.IsZero() || now.Sub(t.last) >= t.Idle
}

// Scale returns the rasterization scale to use at time now, for a page
// whose full-fidelity scale is full.
func (t *Throttle) Scale(now time.Time, full float64) float64 {
	if t.Settled(now) || t.Draft <= 0 || t.Draft >= 1 {
		return full
	}
	return full * t.Draft
}

// Deadline returns the time at which the page should be re-rendered at
// full resolution.  The second return value is false if the page is
// already settled.
func (t *Throttle) Deadline(now time.Time) (time.Time, bool) {
	if t.Settled(now) {
		return time.Time{}, false
	}
	return t.last.Add(t.Idle), true
}
