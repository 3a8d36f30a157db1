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
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/measure"
)

var (
	// ErrDuplicateID is returned when an object is added with an ID which is
	// already in use.
	ErrDuplicateID = errors.New("scene: duplicate object ID")

	// ErrInvalidGeometry is returned when an object is added whose geometry
	// does not match its kind.
	ErrInvalidGeometry = errors.New("scene: invalid geometry")
)

// Scene is the set of shapes and measurements of a document.
//
// The zero value is not usable; use [New] to create a Scene.
type Scene struct {
	shapes       []Shape
	measurements []Measurement
	selection    map[string]struct{}
	calibration  map[int]measure.Calibration
	viewports    map[int]measure.Viewports

	revision uint64
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		selection:   make(map[string]struct{}),
		calibration: make(map[int]measure.Calibration),
		viewports:   make(map[int]measure.Viewports),
	}
}

// Revision returns a counter which is incremented by every change to the
// shapes, measurements or calibration of the scene.
// Selection changes do not affect the revision.
func (s *Scene) Revision() uint64 {
	return s.revision
}

// Lookup returns the type of the object with the given id.
func (s *Scene) Lookup(id string) (ItemType, bool) {
	if s.shapeIndex(id) >= 0 {
		return ItemShape, true
	}
	if s.measurementIndex(id) >= 0 {
		return ItemMeasurement, true
	}
	return 0, false
}

func (s *Scene) shapeIndex(id string) int {
	for i := range s.shapes {
		if s.shapes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Scene) measurementIndex(id string) int {
	for i := range s.measurements {
		if s.measurements[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Scene) assignID(id string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}
	if _, exists := s.Lookup(id); exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	return id, nil
}

// AddShape appends a shape to the top of the drawing order and returns its
// id.  If shape.ID is empty, a new id is generated.
func (s *Scene) AddShape(shape Shape) (string, error) {
	if !shape.Valid() {
		return "", fmt.Errorf("%w: %s shape", ErrInvalidGeometry, shape.Kind)
	}
	id, err := s.assignID(shape.ID)
	if err != nil {
		return "", err
	}
	shape = shape.Clone()
	shape.ID = id
	shape.Rotation = NormalizeDegrees(shape.Rotation)
	s.shapes = append(s.shapes, shape)
	s.revision++
	return id, nil
}

// UpdateShape applies a patch to the shape with the given id.
// It returns false, and leaves the scene unchanged, if no such shape exists
// or if the result would not be a valid shape.
func (s *Scene) UpdateShape(id string, p ShapePatch) bool {
	i := s.shapeIndex(id)
	if i < 0 {
		return false
	}
	if p.IsEmpty() {
		return true
	}
	updated := p.Apply(s.shapes[i])
	if !updated.Valid() {
		return false
	}
	s.shapes[i] = updated
	s.revision++
	return true
}

// DeleteShape removes the shape with the given id.
// Deleting a shape which does not exist is a no-op.
func (s *Scene) DeleteShape(id string) {
	i := s.shapeIndex(id)
	if i < 0 {
		return
	}
	s.shapes = slices.Delete(s.shapes, i, i+1)
	delete(s.selection, id)
	s.revision++
}

// Shape returns a copy of the shape with the given id.
func (s *Scene) Shape(id string) (Shape, bool) {
	i := s.shapeIndex(id)
	if i < 0 {
		return Shape{}, false
	}
	return s.shapes[i].Clone(), true
}

// Shapes returns copies of all shapes, in drawing order.
func (s *Scene) Shapes() []Shape {
	res := make([]Shape, len(s.shapes))
	for i, shape := range s.shapes {
		res[i] = shape.Clone()
	}
	return res
}

// ShapesOnPage returns copies of the shapes on the given page, in drawing
// order.
func (s *Scene) ShapesOnPage(page int) []Shape {
	var res []Shape
	for _, shape := range s.shapes {
		if shape.PageIndex == page {
			res = append(res, shape.Clone())
		}
	}
	return res
}

// AddMeasurement appends a measurement to the top of the drawing order and
// returns its id.  If m.ID is empty, a new id is generated.
func (s *Scene) AddMeasurement(m Measurement) (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: %s measurement", ErrInvalidGeometry, m.Kind)
	}
	id, err := s.assignID(m.ID)
	if err != nil {
		return "", err
	}
	m = m.Clone()
	m.ID = id
	m.Rotation = NormalizeDegrees(m.Rotation)
	s.measurements = append(s.measurements, m)
	s.revision++
	return id, nil
}

// UpdateMeasurement applies a patch to the measurement with the given id.
// It returns false, and leaves the scene unchanged, if no such measurement
// exists or if the result would not be a valid measurement.
func (s *Scene) UpdateMeasurement(id string, p MeasurementPatch) bool {
	i := s.measurementIndex(id)
	if i < 0 {
		return false
	}
	if p.IsEmpty() {
		return true
	}
	updated := p.Apply(s.measurements[i])
	if !updated.Valid() {
		return false
	}
	s.measurements[i] = updated
	s.revision++
	return true
}

// DeleteMeasurement removes the measurement with the given id.
// Deleting a measurement which does not exist is a no-op.
func (s *Scene) DeleteMeasurement(id string) {
	i := s.measurementIndex(id)
	if i < 0 {
		return
	}
	s.measurements = slices.Delete(s.measurements, i, i+1)
	delete(s.selection, id)
	s.revision++
}

// Measurement returns a copy of the measurement with the given id.
func (s *Scene) Measurement(id string) (Measurement, bool) {
	i := s.measurementIndex(id)
	if i < 0 {
		return Measurement{}, false
	}
	return s.measurements[i].Clone(), true
}

// Measurements returns copies of all measurements, in drawing order.
func (s *Scene) Measurements() []Measurement {
	res := make([]Measurement, len(s.measurements))
	for i, m := range s.measurements {
		res[i] = m.Clone()
	}
	return res
}

// MeasurementsOnPage returns copies of the measurements on the given page,
// in drawing order.
func (s *Scene) MeasurementsOnPage(page int) []Measurement {
	var res []Measurement
	for _, m := range s.measurements {
		if m.PageIndex == page {
			res = append(res, m.Clone())
		}
	}
	return res
}

// Delete removes all objects with the given ids.  Unknown ids are ignored.
// The return value is the number of objects removed.
func (s *Scene) Delete(ids ...string) int {
	n := 0
	for _, id := range ids {
		if i := s.shapeIndex(id); i >= 0 {
			s.DeleteShape(id)
			n++
		} else if i := s.measurementIndex(id); i >= 0 {
			s.DeleteMeasurement(id)
			n++
		}
	}
	return n
}

// Len returns the total number of shapes and measurements.
func (s *Scene) Len() int {
	return len(s.shapes) + len(s.measurements)
}

// SetSelection replaces the selection.  Unknown ids are ignored.
func (s *Scene) SetSelection(ids ...string) {
	clear(s.selection)
	s.AddToSelection(ids...)
}

// AddToSelection adds objects to the selection.  Unknown ids are ignored.
func (s *Scene) AddToSelection(ids ...string) {
	for _, id := range ids {
		if _, ok := s.Lookup(id); ok {
			s.selection[id] = struct{}{}
		}
	}
}

// ToggleSelection adds id to the selection if it is not selected, and
// removes it otherwise.
func (s *Scene) ToggleSelection(id string) {
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
		return
	}
	s.AddToSelection(id)
}

// ClearSelection deselects all objects.
func (s *Scene) ClearSelection() {
	clear(s.selection)
}

// IsSelected reports whether the object with the given id is selected.
func (s *Scene) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// Selection returns the ids of all selected objects, in sorted order.
func (s *Scene) Selection() []string {
	res := make([]string, 0, len(s.selection))
	for id := range s.selection {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// Calibration returns the calibration of the given page.
// Pages without a calibration use [measure.Default].
func (s *Scene) Calibration(page int) measure.Calibration {
	if cal, ok := s.calibration[page]; ok {
		return cal
	}
	return measure.Default()
}

// SetCalibration sets the calibration of a page.
func (s *Scene) SetCalibration(page int, cal measure.Calibration) {
	s.calibration[page] = cal
	s.revision++
}

// Calibrations returns the explicitly set calibrations, indexed by page.
func (s *Scene) Calibrations() map[int]measure.Calibration {
	res := make(map[int]measure.Calibration, len(s.calibration))
	for page, cal := range s.calibration {
		res[page] = cal
	}
	return res
}

// SetViewports sets the calibration viewports of a page.
func (s *Scene) SetViewports(page int, vs measure.Viewports) {
	if len(vs) == 0 {
		delete(s.viewports, page)
	} else {
		s.viewports[page] = vs.Clone()
	}
	s.revision++
}

// Viewports returns the calibration viewports of a page.
func (s *Scene) Viewports(page int) measure.Viewports {
	return s.viewports[page].Clone()
}

// AllViewports returns the calibration viewports of all pages which
// have any, indexed by page.
func (s *Scene) AllViewports() map[int]measure.Viewports {
	res := make(map[int]measure.Viewports, len(s.viewports))
	for page, vs := range s.viewports {
		res[page] = vs.Clone()
	}
	return res
}

// CalibrationAt returns the calibration which applies at point p of the
// given page.  A viewport containing p takes precedence over the page
// calibration.
func (s *Scene) CalibrationAt(page int, p vec.Vec2) measure.Calibration {
	if v := s.viewports[page].Select(p); v != nil && !v.Calibration.IsZero() {
		return v.Calibration
	}
	return s.Calibration(page)
}

// Snapshot is an immutable copy of the shapes and measurements of a scene.
type Snapshot struct {
	Shapes       []Shape
	Measurements []Measurement
}

// Len returns the number of objects in the snapshot.
func (snap Snapshot) Len() int {
	return len(snap.Shapes) + len(snap.Measurements)
}

// Snapshot returns a deep copy of the shapes and measurements.
// Selection and calibration are not included.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Shapes:       s.Shapes(),
		Measurements: s.Measurements(),
	}
}

// Restore replaces the shapes and measurements with the contents of snap.
// Selected objects which no longer exist are removed from the selection.
func (s *Scene) Restore(snap Snapshot) {
	s.shapes = make([]Shape, len(snap.Shapes))
	for i, shape := range snap.Shapes {
		s.shapes[i] = shape.Clone()
	}
	s.measurements = make([]Measurement, len(snap.Measurements))
	for i, m := range snap.Measurements {
		s.measurements[i] = m.Clone()
	}
	for id := range s.selection {
		if _, ok := s.Lookup(id); !ok {
			delete(s.selection, id)
		}
	}
	s.revision++
}

// Load appends objects without validating their geometry.
// This is used when reading stored documents: malformed objects are kept,
// but are ignored by hit-testing and rendering.
// Objects with an empty or duplicate id are rejected.
func (s *Scene) Load(shapes []Shape, measurements []Measurement) error {
	for _, shape := range shapes {
		if shape.ID == "" {
			return fmt.Errorf("%w: empty shape id", ErrInvalidGeometry)
		}
		if _, exists := s.Lookup(shape.ID); exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, shape.ID)
		}
		shape = shape.Clone()
		shape.Rotation = NormalizeDegrees(shape.Rotation)
		s.shapes = append(s.shapes, shape)
	}
	for _, m := range measurements {
		if m.ID == "" {
			return fmt.Errorf("%w: empty measurement id", ErrInvalidGeometry)
		}
		if _, exists := s.Lookup(m.ID); exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, m.ID)
		}
		m = m.Clone()
		m.Rotation = NormalizeDegrees(m.Rotation)
		s.measurements = append(s.measurements, m)
	}
	s.revision++
	return nil
}
