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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestCalibrationRoundTrip(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 1000} {
		cal := Calibration{Scale: scale, Unit: "m"}
		for _, d := range []float64{0, 1, 17.25, 1e6} {
			want := cal.ToRealLength(d)
			got := cal.ToRealLength(cal.ToDocumentLength(cal.ToRealLength(d)))
			if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
				t.Errorf("scale %g, d %g: got %g, want %g", scale, d, got, want)
			}
		}
	}
}

func TestToRealArea(t *testing.T) {
	cal := Calibration{Scale: 4, Unit: "m"}
	if got := cal.ToRealArea(32); got != 2 {
		t.Errorf("ToRealArea(32) = %g, want 2", got)
	}
}

func TestTinyScale(t *testing.T) {
	cal := Calibration{Scale: 0, Unit: "m"}
	got := cal.ToRealLength(1)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("ToRealLength with zero scale = %g", got)
	}
	if d := cmp.Diff(1/MinScale, got, cmpopts.EquateApprox(1e-12, 0)); d != "" {
		t.Errorf("ToRealLength with zero scale (-want +got):\n%s", d)
	}
}

func TestCalibrate(t *testing.T) {
	tests := []struct {
		name     string
		doc      float64
		real     float64
		unit     string
		want     Calibration
		wantFail bool
	}{
		{"simple", 240, 10, "ft", Calibration{Scale: 24, Unit: "ft"}, false},
		{"empty unit", 50, 100, "", Calibration{Scale: 0.5, Unit: DefaultUnit}, false},
		{"zero real", 240, 0, "ft", Calibration{}, true},
		{"negative real", 240, -3, "ft", Calibration{}, true},
		{"infinite real", 240, math.Inf(1), "ft", Calibration{}, true},
		{"NaN real", 240, math.NaN(), "ft", Calibration{}, true},
		{"zero document", 0, 10, "ft", Calibration{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calibrate(tt.doc, tt.real, tt.unit)
			if tt.wantFail {
				if !errors.Is(err, ErrInvalidDistance) {
					t.Fatalf("expected ErrInvalidDistance, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("calibration mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFormatLength(t *testing.T) {
	cal := Calibration{Scale: 10, Unit: "m"}
	if got, want := cal.FormatLength(125), "12.5 m"; got != want {
		t.Errorf("FormatLength = %q, want %q", got, want)
	}
	if got, want := cal.FormatArea(250), "2.5 m²"; got != want {
		t.Errorf("FormatArea = %q, want %q", got, want)
	}
	if got, want := Default().FormatLength(3), "3 px"; got != want {
		t.Errorf("FormatLength = %q, want %q", got, want)
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		pts  []vec.Vec2
		want float64
	}{
		{"too few", []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0},
		{"unit square", []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 1},
		{"clockwise", []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 0}}, 6},
		{"triangle", []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonArea(tt.pts); got != tt.want {
				t.Errorf("PolygonArea = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestPathLength(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	if got := PathLength(pts); got != 11 {
		t.Errorf("PathLength = %g, want 11", got)
	}
	if got := PolygonPerimeter(pts); math.Abs(got-(11+math.Hypot(3, 10))) > 1e-12 {
		t.Errorf("PolygonPerimeter = %g", got)
	}
}
