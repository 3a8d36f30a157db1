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
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/callout"
	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/view"
)

// Rasterizer draws shapes and measurements onto an image.
// Document coordinates are mapped to pixels using View.
type Rasterizer struct {
	Image *image.RGBA
	View  *view.View

	Callout callout.Config

	// MarkerRadius is the radius of count markers, in pixels.
	MarkerRadius float64

	// Face is used for labels and text boxes.
	Face font.Face

	raster *vector.Rasterizer
	width  int
	height int
}

// NewRasterizer allocates a white image covering the page shown by v.
func NewRasterizer(v *view.View) *Rasterizer {
	sw, sh := v.ScreenSize()
	w := max(1, int(math.Ceil(sw+v.Pan.X)))
	h := max(1, int(math.Ceil(sh+v.Pan.Y)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Rasterizer{
		Image:        img,
		View:         v,
		Callout:      callout.DefaultConfig(),
		MarkerRadius: 8,
		Face:         basicfont.Face7x13,
		raster:       vector.NewRasterizer(w, h),
		width:        w,
		height:       h,
	}
}

// DrawPage draws all valid objects of one page.  Measurements are drawn
// below shapes.  Labels use the calibration in effect at their anchor.
func (r *Rasterizer) DrawPage(sc *scene.Scene, page int) {
	it := Partition(sc.ShapesOnPage(page), sc.MeasurementsOnPage(page), nil).Static
	r.DrawItems(it, func(p vec.Vec2) measure.Calibration {
		return sc.CalibrationAt(page, p)
	})
}

// DrawItems draws a list of objects.  If cal is nil, labels use
// [measure.Default].
func (r *Rasterizer) DrawItems(it Items, cal func(vec.Vec2) measure.Calibration) {
	for _, m := range it.Measurements {
		c := measure.Default()
		if p, ok := LabelAnchor(m); ok && cal != nil {
			c = cal(p)
		}
		r.DrawMeasurement(m, c)
	}
	for _, s := range it.Shapes {
		r.DrawShape(s)
	}
}

// DrawShape draws a single shape.  Malformed shapes are skipped.
func (r *Rasterizer) DrawShape(s scene.Shape) {
	if !s.Valid() {
		return
	}
	stroke, fill := r.colors(s.Style)
	lw := r.lineWidth(view.ShapeStroke, s.Style.StrokeWidth)

	pts, closed := Outline(s)
	if closed && fill.A > 0 {
		r.fillPolygon(pts, fill)
	}
	r.strokePath(pts, closed, lw, s.Style.StrokeDashPattern, stroke)
	if _, _, head := LineSegment(s); head != nil {
		r.fillPolygon(head.Polygon(), stroke)
	}
}

// DrawMeasurement draws a single measurement with its label.
// Malformed measurements are skipped.
func (r *Rasterizer) DrawMeasurement(m scene.Measurement, cal measure.Calibration) {
	if !m.Valid() {
		return
	}
	stroke, fill := r.colors(m.Style)
	lw := r.lineWidth(view.MeasurementStroke, m.Style.StrokeWidth)
	dash := m.Style.StrokeDashPattern

	switch m.Kind {
	case scene.Length, scene.Perimeter:
		r.strokePath(m.Points, false, lw, dash, stroke)
	case scene.Area:
		if fill.A > 0 {
			r.fillPolygon(m.Points, fill)
		}
		r.strokePath(m.Points, true, lw, dash, stroke)
	case scene.Count:
		r.fillScreenCircle(r.View.ToScreen(m.Point), r.MarkerRadius, stroke)
		return
	case scene.Text, scene.Comment, scene.Callout:
		if m.Kind.HasTip() {
			if l, ok := r.Callout.Route(m); ok {
				pts, head := CalloutPolyline(l, m.Style.StrokeWidth)
				r.strokePath(pts, false, lw, dash, stroke)
				if head != nil {
					r.fillPolygon(head.Polygon(), stroke)
				}
			}
		}
		corners := m.Box.Corners(m.Rotation)
		if fill.A > 0 {
			r.fillPolygon(corners[:], fill)
		}
		r.strokePath(corners[:], true, lw, dash, stroke)
		r.drawBoxText(m, stroke)
		return
	}

	if p, ok := LabelAnchor(m); ok {
		r.drawLabel(r.View.ToScreen(p), Label(m, cal), stroke)
	}
}

func (r *Rasterizer) colors(st scene.Style) (stroke, fill color.NRGBA) {
	// malformed colours are not drawn
	stroke, _ = ParseColor(st.Stroke, st.Opacity)
	fill, _ = ParseColor(st.Fill, st.Opacity)
	return stroke, fill
}

// lineWidth returns the width of a stroke in pixels.
func (r *Rasterizer) lineWidth(e view.Element, w float64) float64 {
	if w <= 0 {
		w = 1
	}
	return r.View.Size(e, w) * r.View.Zoom
}

func (r *Rasterizer) device(p vec.Vec2) (float32, float32) {
	q := r.View.ToScreen(p)
	return float32(q.X), float32(q.Y)
}

func (r *Rasterizer) paint(col color.NRGBA) {
	if col.A > 0 {
		r.raster.Draw(r.Image, r.Image.Bounds(), image.NewUniform(col), image.Point{})
	}
	r.raster.Reset(r.width, r.height)
}

func (r *Rasterizer) fillPolygon(pts []vec.Vec2, col color.NRGBA) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	r.raster.Reset(r.width, r.height)
	r.raster.MoveTo(r.device(pts[0]))
	for _, p := range pts[1:] {
		r.raster.LineTo(r.device(p))
	}
	r.raster.ClosePath()
	r.paint(col)
}

func (r *Rasterizer) fillScreenCircle(c vec.Vec2, radius float64, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	const n = 24
	r.raster.Reset(r.width, r.height)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / n
		x := float32(c.X + radius*math.Cos(phi))
		y := float32(c.Y + radius*math.Sin(phi))
		if i == 0 {
			r.raster.MoveTo(x, y)
		} else {
			r.raster.LineTo(x, y)
		}
	}
	r.raster.ClosePath()
	r.paint(col)
}

// strokePath strokes a path of width lw pixels.  Every segment is drawn
// as a quadrilateral; all quadrilaterals share the same orientation, so
// that overlaps at the joins do not cancel.
func (r *Rasterizer) strokePath(pts []vec.Vec2, closed bool, lw float64, dash []float64, col color.NRGBA) {
	if col.A == 0 || len(pts) < 2 {
		return
	}
	hw := math.Max(lw/2, 0.5)

	r.raster.Reset(r.width, r.height)
	for _, part := range Dash(pts, closed, dash) {
		for i := 1; i < len(part); i++ {
			a := r.View.ToScreen(part[i-1])
			b := r.View.ToScreen(part[i])
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			n := vec.Vec2{X: -d.Y / l * hw, Y: d.X / l * hw}
			quad := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
			r.raster.MoveTo(float32(quad[0].X), float32(quad[0].Y))
			for _, q := range quad[1:] {
				r.raster.LineTo(float32(q.X), float32(q.Y))
			}
			r.raster.ClosePath()
		}
	}
	r.paint(col)
}

// drawLabel draws text centred at the screen position c.
func (r *Rasterizer) drawLabel(c vec.Vec2, text string, col color.NRGBA) {
	if text == "" || col.A == 0 {
		return
	}
	metrics := r.Face.Metrics()
	width := font.MeasureString(r.Face, text)
	d := &font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(col),
		Face: r.Face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(c.X*64) - width/2,
			Y: fixed.Int26_6(c.Y*64) + (metrics.Ascent-metrics.Descent)/2,
		},
	}
	d.DrawString(text)
}

// drawBoxText draws the text of a text box, one line per row, starting
// at the top-left corner of the unrotated box.
func (r *Rasterizer) drawBoxText(m scene.Measurement, col color.NRGBA) {
	if m.Text == "" || col.A == 0 {
		return
	}
	const pad = 4
	metrics := r.Face.Metrics()
	p := r.View.ToScreen(vec.Vec2{X: m.Box.X, Y: m.Box.Y})
	dot := fixed.Point26_6{
		X: fixed.Int26_6((p.X + pad) * 64),
		Y: fixed.Int26_6((p.Y+pad)*64) + metrics.Ascent,
	}
	for _, line := range strings.Split(m.Text, "\n") {
		d := &font.Drawer{Dst: r.Image, Src: image.NewUniform(col), Face: r.Face, Dot: dot}
		d.DrawString(line)
		dot.Y += metrics.Height
	}
}
