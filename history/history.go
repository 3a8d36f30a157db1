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

// Package history implements an undo/redo stack of scene snapshots.
//
// The stack holds the state after each completed user action.  The entry
// at the current index is the state shown to the user; undo and redo move
// the index and return the snapshot to restore.
package history

import "seehuhn.de/go/overlay/scene"

// DefaultLimit is the number of entries kept by a Manager with limit 0.
const DefaultLimit = 100

// Manager is an undo/redo stack of scene snapshots.
type Manager struct {
	entries []scene.Snapshot
	index   int
	limit   int
}

// New returns a history whose only entry is the initial state.
// At most limit entries are kept; older entries are discarded.
// If limit is less than 1, [DefaultLimit] is used.
func New(initial scene.Snapshot, limit int) *Manager {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Manager{
		entries: []scene.Snapshot{initial},
		limit:   limit,
	}
}

// Reset discards all entries and starts again from the given state.
func (h *Manager) Reset(initial scene.Snapshot) {
	h.entries = append(h.entries[:0], initial)
	h.index = 0
}

// Push records the state after a completed action.
// Entries which could have been redone are discarded.
func (h *Manager) Push(snap scene.Snapshot) {
	h.entries = append(h.entries[:h.index+1], snap)
	if len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
	}
	h.index = len(h.entries) - 1
}

// Undo moves one step back and returns the state to restore.
// The second return value is false if there is nothing to undo.
func (h *Manager) Undo() (scene.Snapshot, bool) {
	if !h.CanUndo() {
		return scene.Snapshot{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo moves one step forward and returns the state to restore.
// The second return value is false if there is nothing to redo.
func (h *Manager) Redo() (scene.Snapshot, bool) {
	if !h.CanRedo() {
		return scene.Snapshot{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// CanUndo reports whether Undo would succeed.
func (h *Manager) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would succeed.
func (h *Manager) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Len returns the number of entries, including the initial state.
func (h *Manager) Len() int {
	return len(h.entries)
}

// Current returns the state at the current position.
func (h *Manager) Current() scene.Snapshot {
	return h.entries[h.index]
}
