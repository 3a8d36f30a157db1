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

// Package config reads engine settings from TOML files.
//
// Every key is optional.  Missing keys keep the values from
// [tool.DefaultConfig] and the default page view.  An example:
//
//	[engine]
//	handle_radius = 8
//	auto_select = false
//	callout_offset = [40, -80]
//
//	[style]
//	stroke = "#1e88e5"
//	dash = [6, 3]
//
//	[view]
//	page_width = 595
//	page_height = 842
//	rotation = 90
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/tool"
	"seehuhn.de/go/overlay/view"
)

// ErrUnknownKey is returned for keys which are not used by any setting.
var ErrUnknownKey = errors.New("config: unknown key")

// File is the contents of a settings file.
type File struct {
	Engine  Engine  `toml:"engine"`
	Style   Style   `toml:"style"`
	Callout Callout `toml:"callout"`
	View    View    `toml:"view"`
}

// Engine holds the [tool.Config] settings.
type Engine struct {
	HandleRadius         *float64   `toml:"handle_radius"`
	RotationHandleOffset *float64   `toml:"rotation_handle_offset"`
	HitTolerance         *float64   `toml:"hit_tolerance"`
	CountRadius          *float64   `toml:"count_radius"`
	TipRadius            *float64   `toml:"tip_radius"`
	DragThreshold        *float64   `toml:"drag_threshold"`
	TextBoxWidth         *float64   `toml:"text_box_width"`
	TextBoxHeight        *float64   `toml:"text_box_height"`
	CalloutOffset        *[]float64 `toml:"callout_offset"`
	PasteOffset          *float64   `toml:"paste_offset"`
	NudgeStep            *float64   `toml:"nudge_step"`
	HistoryLimit         *int       `toml:"history_limit"`
	AutoSelect           *bool      `toml:"auto_select"`
	SnapRotation         *bool      `toml:"snap_rotation"`
	FontSize             *float64   `toml:"font_size"`
}

// Style is the style of newly drawn objects.
type Style struct {
	Stroke      *string    `toml:"stroke"`
	StrokeWidth *float64   `toml:"stroke_width"`
	Dash        *[]float64 `toml:"dash"`
	Fill        *string    `toml:"fill"`
	Opacity     *float64   `toml:"opacity"`
}

// Callout holds the leader routing settings.
type Callout struct {
	HorizontalBias *float64 `toml:"horizontal_bias"`
	MaxStub        *float64 `toml:"max_stub"`
}

// View describes the initial page view.
type View struct {
	PageWidth  *float64 `toml:"page_width"`
	PageHeight *float64 `toml:"page_height"`
	Zoom       *float64 `toml:"zoom"`
	Rotation   *int     `toml:"rotation"`
}

// Default page size, US letter in PDF points.
const (
	DefaultPageWidth  = 612
	DefaultPageHeight = 792
)

// Read decodes a settings file.
func Read(r io.Reader) (*File, error) {
	f := &File{}
	md, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return f, nil
}

// ReadFile decodes the settings file at path.
func ReadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	f, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// EngineConfig returns the default engine settings, overridden by the
// values given in the file.
func (f *File) EngineConfig() (tool.Config, error) {
	cfg := tool.DefaultConfig()

	e := &f.Engine
	setFloat(&cfg.HandleRadius, e.HandleRadius)
	setFloat(&cfg.RotationHandleOffset, e.RotationHandleOffset)
	setFloat(&cfg.HitTolerance, e.HitTolerance)
	setFloat(&cfg.CountRadius, e.CountRadius)
	setFloat(&cfg.TipRadius, e.TipRadius)
	setFloat(&cfg.DragThreshold, e.DragThreshold)
	setFloat(&cfg.TextBoxWidth, e.TextBoxWidth)
	setFloat(&cfg.TextBoxHeight, e.TextBoxHeight)
	setFloat(&cfg.PasteOffset, e.PasteOffset)
	setFloat(&cfg.NudgeStep, e.NudgeStep)
	setFloat(&cfg.FontSize, e.FontSize)
	if e.CalloutOffset != nil {
		xy := *e.CalloutOffset
		if len(xy) != 2 {
			return cfg, fmt.Errorf("config: callout_offset needs 2 values, got %d", len(xy))
		}
		cfg.CalloutOffset = vec.Vec2{X: xy[0], Y: xy[1]}
	}
	if e.HistoryLimit != nil {
		cfg.HistoryLimit = *e.HistoryLimit
	}
	if e.AutoSelect != nil {
		cfg.AutoSelect = *e.AutoSelect
	}
	if e.SnapRotation != nil {
		cfg.SnapRotation = *e.SnapRotation
	}

	s := &f.Style
	if s.Stroke != nil {
		cfg.Style.Stroke = *s.Stroke
	}
	setFloat(&cfg.Style.StrokeWidth, s.StrokeWidth)
	if s.Dash != nil {
		for _, x := range *s.Dash {
			if x < 0 {
				return cfg, fmt.Errorf("config: negative dash length %g", x)
			}
		}
		cfg.Style.StrokeDashPattern = *s.Dash
	}
	if s.Fill != nil {
		cfg.Style.Fill = *s.Fill
	}
	if s.Opacity != nil {
		if *s.Opacity < 0 || *s.Opacity > 1 {
			return cfg, fmt.Errorf("config: opacity %g outside [0, 1]", *s.Opacity)
		}
		cfg.Style.Opacity = *s.Opacity
	}

	setFloat(&cfg.Callout.HorizontalBias, f.Callout.HorizontalBias)
	setFloat(&cfg.Callout.MaxStub, f.Callout.MaxStub)

	return cfg, nil
}

// PageView returns the initial view described by the file.
func (f *File) PageView() (*view.View, error) {
	w, h := float64(DefaultPageWidth), float64(DefaultPageHeight)
	setFloat(&w, f.View.PageWidth)
	setFloat(&h, f.View.PageHeight)
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("config: invalid page size %gx%g", w, h)
	}

	v := view.New(w, h)
	if f.View.Zoom != nil {
		if !(*f.View.Zoom >= view.MinZoom) {
			return nil, fmt.Errorf("config: invalid zoom %g", *f.View.Zoom)
		}
		v.Zoom = *f.View.Zoom
	}
	if f.View.Rotation != nil {
		rot, err := view.DecodeRotation(*f.View.Rotation)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.Rotation = rot
	}
	return v, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
