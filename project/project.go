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

// Package project converts scenes to and from the stored document format.
//
// A document holds the shapes and measurements of all pages together with
// the per-page calibration:
//
//	{"shapes": [...], "measurements": [...],
//	 "calibrationScales": {"0": 72}, "pageUnits": {"0": "in"}}
//
// Objects are stored as they are.  Malformed objects are read without
// error; they are ignored by hit-testing and rendering.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/measure"
	"seehuhn.de/go/overlay/scene"
)

// Version is the document version written by this package.
const Version = 1

// ErrVersion is returned for documents written by a newer version.
var ErrVersion = errors.New("project: unsupported document version")

// Document is the stored form of a scene.
type Document struct {
	Version           int                `json:"version,omitempty"`
	Shapes            []Shape            `json:"shapes"`
	Measurements      []Measurement      `json:"measurements"`
	CalibrationScales map[int]float64    `json:"calibrationScales"`
	PageUnits         map[int]string     `json:"pageUnits"`
	Viewports         map[int][]Viewport `json:"viewports,omitempty"`
}

// Point is a position in document space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style is the stored form of [scene.Style].
// A missing opacity means fully opaque.
type Style struct {
	Stroke            string    `json:"stroke,omitempty"`
	StrokeWidth       float64   `json:"strokeWidth,omitempty"`
	StrokeDashPattern []float64 `json:"strokeDashPattern,omitempty"`
	Fill              string    `json:"fill,omitempty"`
	Opacity           *float64  `json:"opacity,omitempty"`
}

// Shape is the stored form of [scene.Shape].
type Shape struct {
	ID        string  `json:"id"`
	PageIndex int     `json:"pageIndex"`
	Type      string  `json:"type"`
	Style     Style   `json:"style"`
	Rotation  float64 `json:"rotation,omitempty"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Start *Point `json:"start,omitempty"`
	End   *Point `json:"end,omitempty"`
}

// Measurement is the stored form of [scene.Measurement].
type Measurement struct {
	ID        string  `json:"id"`
	PageIndex int     `json:"pageIndex"`
	Type      string  `json:"type"`
	Style     Style   `json:"style"`
	Points    []Point `json:"points,omitempty"`
	Point     *Point  `json:"point,omitempty"`

	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`

	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	Tip      *Point  `json:"tip,omitempty"`
	Knee     *Point  `json:"knee,omitempty"`
}

// Viewport is the stored form of [measure.Viewport].
type Viewport struct {
	Name  string     `json:"name,omitempty"`
	BBox  [4]float64 `json:"bbox"`
	Scale float64    `json:"scale"`
	Unit  string     `json:"unit"`
}

// FromScene returns the stored form of sc.
func FromScene(sc *scene.Scene) *Document {
	doc := &Document{
		Version:           Version,
		Shapes:            []Shape{},
		Measurements:      []Measurement{},
		CalibrationScales: make(map[int]float64),
		PageUnits:         make(map[int]string),
	}
	for _, s := range sc.Shapes() {
		doc.Shapes = append(doc.Shapes, encodeShape(s))
	}
	for _, m := range sc.Measurements() {
		doc.Measurements = append(doc.Measurements, encodeMeasurement(m))
	}
	for page, cal := range sc.Calibrations() {
		doc.CalibrationScales[page] = cal.Scale
		doc.PageUnits[page] = cal.Unit
	}
	for page, vs := range sc.AllViewports() {
		if doc.Viewports == nil {
			doc.Viewports = make(map[int][]Viewport)
		}
		doc.Viewports[page] = encodeViewports(vs)
	}
	return doc
}

// Scene builds a scene from the document.
//
// Calibrations with a scale which is not a positive number are ignored,
// and the page keeps the default calibration.  Objects with missing or
// duplicate ids give an error.
func (doc *Document) Scene() (*scene.Scene, error) {
	if doc.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}

	sc := scene.New()
	shapes := make([]scene.Shape, len(doc.Shapes))
	for i, s := range doc.Shapes {
		shapes[i] = s.decode()
	}
	measurements := make([]scene.Measurement, len(doc.Measurements))
	for i, m := range doc.Measurements {
		measurements[i] = m.decode()
	}
	if err := sc.Load(shapes, measurements); err != nil {
		return nil, err
	}

	pages := make(map[int]bool)
	for page := range doc.CalibrationScales {
		pages[page] = true
	}
	for page := range doc.PageUnits {
		pages[page] = true
	}
	for page := range pages {
		cal := measure.Default()
		if scale, ok := doc.CalibrationScales[page]; ok {
			if !(scale > 0) || math.IsInf(scale, 0) {
				continue
			}
			cal.Scale = scale
		}
		if unit := doc.PageUnits[page]; unit != "" {
			cal.Unit = unit
		}
		sc.SetCalibration(page, cal)
	}
	for page, vs := range doc.Viewports {
		sc.SetViewports(page, decodeViewports(vs))
	}
	return sc, nil
}

// Read decodes a document.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	return doc, nil
}

// Write encodes the document as indented JSON.
func (doc *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func point(p vec.Vec2) *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) vec() vec.Vec2 {
	if p == nil {
		return vec.Vec2{}
	}
	return vec.Vec2{X: p.X, Y: p.Y}
}

func encodeStyle(st scene.Style) Style {
	opacity := st.Opacity
	return Style{
		Stroke:            st.Stroke,
		StrokeWidth:       st.StrokeWidth,
		StrokeDashPattern: st.StrokeDashPattern,
		Fill:              st.Fill,
		Opacity:           &opacity,
	}
}

func (st Style) decode() scene.Style {
	opacity := 1.0
	if st.Opacity != nil {
		opacity = *st.Opacity
	}
	return scene.Style{
		Stroke:            st.Stroke,
		StrokeWidth:       st.StrokeWidth,
		StrokeDashPattern: st.StrokeDashPattern,
		Fill:              st.Fill,
		Opacity:           opacity,
	}
}

func encodeShape(s scene.Shape) Shape {
	res := Shape{
		ID:        s.ID,
		PageIndex: s.PageIndex,
		Type:      string(s.Kind),
		Style:     encodeStyle(s.Style),
	}
	if s.Kind.IsLinear() {
		res.Start = point(s.Start)
		res.End = point(s.End)
	} else {
		res.Rotation = s.Rotation
		res.X, res.Y = s.Box.X, s.Box.Y
		res.Width, res.Height = s.Box.Width, s.Box.Height
	}
	return res
}

func (s Shape) decode() scene.Shape {
	return scene.Shape{
		ID:        s.ID,
		PageIndex: s.PageIndex,
		Kind:      scene.ShapeKind(s.Type),
		Style:     s.Style.decode(),
		Rotation:  s.Rotation,
		Box:       scene.Box{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height},
		Start:     s.Start.vec(),
		End:       s.End.vec(),
	}
}

func encodeMeasurement(m scene.Measurement) Measurement {
	res := Measurement{
		ID:        m.ID,
		PageIndex: m.PageIndex,
		Type:      string(m.Kind),
		Style:     encodeStyle(m.Style),
	}
	switch {
	case m.Kind.HasPoints():
		res.Points = make([]Point, len(m.Points))
		for i, p := range m.Points {
			res.Points[i] = Point{X: p.X, Y: p.Y}
		}
	case m.Kind == scene.Count:
		res.Point = point(m.Point)
	case m.Kind.HasBox():
		res.X, res.Y = m.Box.X, m.Box.Y
		res.Width, res.Height = m.Box.Width, m.Box.Height
		res.Rotation = m.Rotation
		res.Text = m.Text
		res.FontSize = m.FontSize
		if m.Tip != nil {
			res.Tip = point(*m.Tip)
		}
		if m.Knee != nil {
			res.Knee = point(*m.Knee)
		}
	}
	return res
}

func (m Measurement) decode() scene.Measurement {
	res := scene.Measurement{
		ID:        m.ID,
		PageIndex: m.PageIndex,
		Kind:      scene.MeasurementKind(m.Type),
		Style:     m.Style.decode(),
		Point:     m.Point.vec(),
		Box:       scene.Box{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		Rotation:  m.Rotation,
		Text:      m.Text,
		FontSize:  m.FontSize,
	}
	if m.Points != nil {
		res.Points = make([]vec.Vec2, len(m.Points))
		for i, p := range m.Points {
			res.Points[i] = vec.Vec2{X: p.X, Y: p.Y}
		}
	}
	if m.Tip != nil {
		tip := m.Tip.vec()
		res.Tip = &tip
	}
	if m.Knee != nil {
		knee := m.Knee.vec()
		res.Knee = &knee
	}
	return res
}

func encodeViewports(vs measure.Viewports) []Viewport {
	res := make([]Viewport, len(vs))
	for i, v := range vs {
		if v == nil {
			continue
		}
		res[i] = Viewport{
			Name:  v.Name,
			BBox:  [4]float64{v.BBox.LLx, v.BBox.LLy, v.BBox.URx, v.BBox.URy},
			Scale: v.Calibration.Scale,
			Unit:  v.Calibration.Unit,
		}
	}
	return res
}

func decodeViewports(vs []Viewport) measure.Viewports {
	res := make(measure.Viewports, len(vs))
	for i, v := range vs {
		res[i] = &measure.Viewport{
			Name: v.Name,
			BBox: rect.Rect{LLx: v.BBox[0], LLy: v.BBox[1], URx: v.BBox[2], URy: v.BBox[3]},
			Calibration: measure.Calibration{
				Scale: v.Scale,
				Unit:  v.Unit,
			},
		}
	}
	return res
}
