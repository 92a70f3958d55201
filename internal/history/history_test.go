package history

import (
	"fmt"
	"testing"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

func stateWithShapes(ids ...string) document.CanvasState {
	state := document.NewCanvasState()
	for _, id := range ids {
		state.Shapes = append(state.Shapes, document.Shape{ID: id, Type: document.ShapeRectangle})
	}
	return state
}

func TestCommitAndUndo(t *testing.T) {
	h := New(stateWithShapes())

	if h.CanUndo() {
		t.Error("fresh history should not be undoable")
	}

	h.Commit(stateWithShapes("a"))
	if !h.CanUndo() {
		t.Error("history should be undoable after a commit")
	}

	got := h.Undo()
	if len(got.Shapes) != 0 {
		t.Errorf("undo returned %d shapes, want 0", len(got.Shapes))
	}
	if !h.CanRedo() {
		t.Error("history should be redoable after an undo")
	}

	got = h.Redo()
	if len(got.Shapes) != 1 || got.Shapes[0].ID != "a" {
		t.Errorf("redo returned %+v, want the committed shape", got.Shapes)
	}
}

func TestUndoUnderflowIsNoOp(t *testing.T) {
	h := New(stateWithShapes("a"))

	got := h.Undo()
	if len(got.Shapes) != 1 || got.Shapes[0].ID != "a" {
		t.Error("undo on empty past should return the present unchanged")
	}
	if h.CanRedo() {
		t.Error("a no-op undo must not create a redo entry")
	}
}

func TestRedoUnderflowIsNoOp(t *testing.T) {
	h := New(stateWithShapes("a"))

	got := h.Redo()
	if len(got.Shapes) != 1 {
		t.Error("redo on empty future should return the present unchanged")
	}
	if h.CanUndo() {
		t.Error("a no-op redo must not create an undo entry")
	}
}

func TestUnderflowSnapshotsAreIsolated(t *testing.T) {
	h := New(stateWithShapes("a"))

	// Undo and redo on empty stacks return the present; mutating those
	// returned snapshots must not reach the stored state.
	got := h.Undo()
	got.Shapes[0].ID = "mutated"
	if h.Present().Shapes[0].ID != "a" {
		t.Error("undo underflow snapshot aliases stored state")
	}

	got = h.Redo()
	got.Shapes[0].ID = "mutated"
	if h.Present().Shapes[0].ID != "a" {
		t.Error("redo underflow snapshot aliases stored state")
	}
}

func TestCommitClearsFuture(t *testing.T) {
	h := New(stateWithShapes())
	h.Commit(stateWithShapes("a"))
	h.Undo()

	h.Commit(stateWithShapes("b"))
	if h.CanRedo() {
		t.Error("commit after undo must clear the redo stack")
	}

	got := h.Present()
	if len(got.Shapes) != 1 || got.Shapes[0].ID != "b" {
		t.Errorf("present = %+v, want shape b", got.Shapes)
	}
}

func TestReplaceRecordsNoUndoStep(t *testing.T) {
	h := New(stateWithShapes("a"))

	h.Replace(stateWithShapes("a", "b"))
	if h.CanUndo() {
		t.Error("replace must not record an undo step")
	}
	if got := h.Present(); len(got.Shapes) != 2 {
		t.Errorf("present has %d shapes, want 2", len(got.Shapes))
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	h := New(stateWithShapes())

	for i := 0; i < MaxEntries+10; i++ {
		h.Commit(stateWithShapes(fmt.Sprintf("s%d", i)))
	}

	if got := h.Depth(); got != MaxEntries {
		t.Fatalf("depth = %d, want %d", got, MaxEntries)
	}

	// Walk all the way back: the deepest reachable snapshot is the one
	// committed just before the window, not the initial empty state.
	var last document.CanvasState
	for h.CanUndo() {
		last = h.Undo()
	}
	if len(last.Shapes) != 1 || last.Shapes[0].ID != "s9" {
		t.Errorf("deepest snapshot = %+v, want shape s9", last.Shapes)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	state := stateWithShapes("a")
	h := New(state)

	// Mutating the caller's copy after commit must not reach history.
	state.Shapes[0].ID = "mutated"
	if got := h.Present(); got.Shapes[0].ID != "a" {
		t.Error("history shares shape storage with the caller")
	}

	// Mutating a returned snapshot must not reach history either.
	got := h.Present()
	got.Shapes[0].ID = "mutated"
	if again := h.Present(); again.Shapes[0].ID != "a" {
		t.Error("returned snapshot aliases stored state")
	}
}

func TestClear(t *testing.T) {
	h := New(stateWithShapes())
	h.Commit(stateWithShapes("a"))
	h.Undo()

	h.Clear(stateWithShapes("fresh"))
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear must drop both stacks")
	}
	if got := h.Present(); got.Shapes[0].ID != "fresh" {
		t.Errorf("present = %+v, want the new initial state", got.Shapes)
	}
}
