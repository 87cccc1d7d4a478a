// Package memento demonstrates the Memento pattern with a text-editor
// domain.
//
// Three roles split the work of undo/redo:
//
//   - Editor is the originator: it owns mutable state (text and cursor) and
//     is the only type that can read a snapshot's captured state back.
//   - Snapshot is the memento: an immutable copy of the editor's state at a
//     moment in time, tagged with an ID, a timestamp, and a description. Its
//     state fields are unexported and never mutated after creation.
//   - History is the caretaker: an ordered list of snapshots with a cursor
//     for undo/redo. It stores and retrieves snapshots by position and never
//     inspects their contents.
package memento

import (
	"time"

	"github.com/google/uuid"
)

// Editor is the originator: a minimal text editor with a cursor position.
type Editor struct {
	text   string
	cursor int
}

// NewEditor returns an empty editor.
func NewEditor() *Editor { return &Editor{} }

// Text returns the current buffer contents.
func (e *Editor) Text() string { return e.text }

// Cursor returns the current cursor offset.
func (e *Editor) Cursor() int { return e.cursor }

// Type appends s to the buffer and moves the cursor past it.
func (e *Editor) Type(s string) {
	e.text += s
	e.cursor = len(e.text)
}

// MoveCursor repositions the cursor, clamped to the buffer bounds.
func (e *Editor) MoveCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.text) {
		pos = len(e.text)
	}
	e.cursor = pos
}

// Save captures the editor's full state in a new immutable Snapshot.
func (e *Editor) Save(description string) Snapshot {
	return Snapshot{
		id:          uuid.New().String(),
		takenAt:     time.Now(),
		description: description,
		text:        e.text,
		cursor:      e.cursor,
	}
}

// Restore overwrites the editor's state with the snapshot's captured state.
func (e *Editor) Restore(s Snapshot) {
	e.text = s.text
	e.cursor = s.cursor
}

// Snapshot is the memento: an immutable value capturing editor state. Only
// metadata is exported; the captured state is readable solely by
// Editor.Restore.
type Snapshot struct {
	id          string
	takenAt     time.Time
	description string

	text   string
	cursor int
}

// ID returns the snapshot's unique identifier.
func (s Snapshot) ID() string { return s.id }

// TakenAt returns the snapshot's creation time.
func (s Snapshot) TakenAt() time.Time { return s.takenAt }

// Description returns the human-readable label given at save time.
func (s Snapshot) Description() string { return s.description }

// History is the caretaker: an ordered sequence of snapshots with a cursor.
// The cursor always points at the snapshot representing the current state.
type History struct {
	snapshots []Snapshot
	cursor    int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Push records a new snapshot as the current state. Any snapshots ahead of
// the cursor (the redo tail left by previous undos) are discarded first,
// matching standard editor behavior.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots[:h.cursor+1], s)
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back one snapshot and returns it. Undoing past the
// oldest snapshot is a no-op: ok is false and the cursor does not move.
func (h *History) Undo() (s Snapshot, ok bool) {
	if h.cursor <= 0 {
		return Snapshot{}, false
	}
	h.cursor--
	return h.snapshots[h.cursor], true
}

// Redo steps the cursor forward one snapshot and returns it. Redoing past
// the newest snapshot is a no-op: ok is false and the cursor does not move.
func (h *History) Redo() (s Snapshot, ok bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	return h.snapshots[h.cursor], true
}

// Entries returns the descriptions of all stored snapshots in order, for
// display purposes. The caretaker exposes metadata only, never captured
// state.
func (h *History) Entries() []string {
	out := make([]string, len(h.snapshots))
	for i, s := range h.snapshots {
		out[i] = s.Description()
	}
	return out
}
