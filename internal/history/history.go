// Package history wraps a canvas snapshot in a bounded undo/redo stack.
//
// Commit records an undo step; Replace swaps the live snapshot without one.
// The split keeps every shape-list change undoable without turning every
// pointer-move or color click into its own history entry.
package history

import (
	"github.com/roughcut/roughcut/backend-go/internal/document"
)

// MaxEntries bounds the past stack. Once full, the oldest entry is
// evicted on each commit.
const MaxEntries = 50

// History holds the past/present/future snapshots. Stored snapshots are
// deep-copied on the way in and never mutated afterwards.
type History struct {
	past    []document.CanvasState // oldest first
	present document.CanvasState
	future  []document.CanvasState // nearest first
}

// New creates a history with the given initial snapshot.
func New(initial document.CanvasState) *History {
	return &History{present: initial.Clone()}
}

// Present returns a copy of the current snapshot. Callers get their own
// shape slice, so nothing they do can reach back into stored history.
func (h *History) Present() document.CanvasState {
	return h.present.Clone()
}

// Commit pushes the current snapshot onto the past, makes state the new
// present and clears any redo entries.
func (h *History) Commit(state document.CanvasState) {
	h.past = append(h.past, h.present)
	if len(h.past) > MaxEntries {
		h.past = h.past[1:]
	}
	h.present = state.Clone()
	h.future = nil
}

// Replace overwrites the present snapshot without recording an undo step.
func (h *History) Replace(state document.CanvasState) {
	h.present = state.Clone()
}

// Undo moves one step back, or returns the present unchanged when the
// past is exhausted. Underflow is a defined no-op, never an error.
func (h *History) Undo() document.CanvasState {
	if len(h.past) == 0 {
		return h.present.Clone()
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]document.CanvasState{h.present}, h.future...)
	h.present = last
	return h.present.Clone()
}

// Redo moves one step forward, or returns the present unchanged when the
// future is empty.
func (h *History) Redo() document.CanvasState {
	if len(h.future) == 0 {
		return h.present.Clone()
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return h.present.Clone()
}

// Clear resets to a single fresh snapshot with no past or future.
func (h *History) Clear(initial document.CanvasState) {
	h.past = nil
	h.future = nil
	h.present = initial.Clone()
}

// CanUndo reports whether an undo step exists.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo step exists.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Depth returns the number of recorded undo steps.
func (h *History) Depth() int { return len(h.past) }
