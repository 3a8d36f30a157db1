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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/tool"
)

// Script is a recorded sequence of user input.
//
//	{"events": [
//	  {"type": "tool", "tool": "rectangle"},
//	  {"type": "drag", "x": 10, "y": 10, "toX": 110, "toY": 60},
//	  {"type": "key", "key": "z", "mods": ["ctrl"]}
//	]}
//
// Positions are given in screen pixels.
type Script struct {
	Events []Event `json:"events"`
}

// Event is one step of a script.
type Event struct {
	Type string `json:"type"`

	X   float64 `json:"x,omitempty"`
	Y   float64 `json:"y,omitempty"`
	ToX float64 `json:"toX,omitempty"`
	ToY float64 `json:"toY,omitempty"`

	Mods   []string `json:"mods,omitempty"`
	Button string   `json:"button,omitempty"`
	Clicks int      `json:"clicks,omitempty"`

	Tool     string  `json:"tool,omitempty"`
	Key      string  `json:"key,omitempty"`
	Distance float64 `json:"distance,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Text     string  `json:"text,omitempty"`
	Zoom     float64 `json:"zoom,omitempty"`
	Page     int     `json:"page,omitempty"`
}

var errEvent = errors.New("invalid event")

// readScript decodes a script.
func readScript(r io.Reader) (*Script, error) {
	s := &Script{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

// replay feeds the events of s to e.
func replay(e *tool.Engine, s *Script, log logrus.FieldLogger) error {
	for i, ev := range s.Events {
		log.WithFields(logrus.Fields{
			"event": i,
			"type":  ev.Type,
			"tool":  e.Tool(),
			"state": e.State(),
		}).Debug("replay")
		if err := apply(e, ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Type, err)
		}
	}
	return nil
}

func apply(e *tool.Engine, ev Event) error {
	mods, err := parseMods(ev.Mods)
	if err != nil {
		return err
	}
	button, err := parseButton(ev.Button)
	if err != nil {
		return err
	}
	at := vec.Vec2{X: ev.X, Y: ev.Y}
	to := vec.Vec2{X: ev.ToX, Y: ev.ToY}
	pe := tool.PointerEvent{Screen: at, Button: button, Mods: mods, Clicks: ev.Clicks}

	switch ev.Type {
	case "tool":
		return e.SetTool(tool.Tool(ev.Tool))
	case "down":
		e.PointerDown(pe)
	case "move":
		e.PointerMove(pe)
	case "up":
		e.PointerUp(pe)
	case "click":
		e.PointerDown(pe)
		e.PointerUp(pe)
	case "dblclick":
		pe.Clicks = 1
		e.PointerDown(pe)
		e.PointerUp(pe)
		pe.Clicks = 2
		e.PointerDown(pe)
		e.PointerUp(pe)
	case "drag":
		e.PointerDown(pe)
		pe.Clicks = 0
		pe.Screen = at.Add(to.Sub(at).Mul(0.5))
		e.PointerMove(pe)
		pe.Screen = to
		e.PointerMove(pe)
		e.PointerUp(pe)
	case "key":
		if ev.Key == "" {
			return fmt.Errorf("%w: missing key", errEvent)
		}
		e.KeyDown(tool.KeyEvent{Key: tool.Key(ev.Key), Mods: mods})
	case "calibrate":
		return e.ApplyCalibration(ev.Distance, ev.Unit)
	case "text":
		return setText(e, ev.Text)
	case "page":
		if ev.Page < 0 {
			return fmt.Errorf("%w: page %d", errEvent, ev.Page)
		}
		e.Abort()
		e.Page = ev.Page
	case "zoom":
		if !(ev.Zoom > 0) {
			return fmt.Errorf("%w: zoom %g", errEvent, ev.Zoom)
		}
		e.View.ZoomAbout(at, ev.Zoom)
	case "pan":
		e.View.Pan = e.View.Pan.Add(to.Sub(at))
	default:
		return fmt.Errorf("%w: unknown type %q", errEvent, ev.Type)
	}
	return nil
}

// setText replaces the text of the selected text box, comment or callout.
func setText(e *tool.Engine, text string) error {
	sel := e.Scene.Selection()
	if len(sel) != 1 {
		return fmt.Errorf("%w: %d objects selected", errEvent, len(sel))
	}
	m, ok := e.Scene.Measurement(sel[0])
	if !ok || !m.Kind.HasBox() {
		return fmt.Errorf("%w: %s has no text", errEvent, sel[0])
	}
	e.Scene.UpdateMeasurement(m.ID, scene.MeasurementPatch{Text: &text})
	e.Checkpoint()
	return nil
}

func parseMods(names []string) (tool.Modifier, error) {
	var mods tool.Modifier
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= tool.Shift
		case "alt":
			mods |= tool.Alt
		case "ctrl", "cmd", "meta":
			mods |= tool.Ctrl
		default:
			return 0, fmt.Errorf("%w: unknown modifier %q", errEvent, name)
		}
	}
	return mods, nil
}

func parseButton(name string) (tool.Button, error) {
	switch strings.ToLower(name) {
	case "", "primary", "left":
		return tool.Primary, nil
	case "middle":
		return tool.Middle, nil
	case "secondary", "right":
		return tool.Secondary, nil
	}
	return 0, fmt.Errorf("%w: unknown button %q", errEvent, name)
}
