package store

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

// Autosaver coalesces a burst of snapshot changes into one save once the
// stream has been quiet for the configured window. Gestures emit dozens of
// replace-class snapshots per second; only the settled state is worth a
// snapshot row.
type Autosaver struct {
	mu        sync.Mutex
	latest    document.CanvasState
	dirty     bool
	debounced func(func())
	save      func(document.CanvasState)
}

// NewAutosaver builds an autosaver around a save callback. The callback
// runs on the debounce timer's goroutine.
func NewAutosaver(quiet time.Duration, save func(document.CanvasState)) *Autosaver {
	return &Autosaver{
		debounced: debounce.New(quiet),
		save:      save,
	}
}

// Notify records the newest snapshot and (re)arms the quiescence timer.
func (a *Autosaver) Notify(state document.CanvasState) {
	a.mu.Lock()
	a.latest = state
	a.dirty = true
	a.mu.Unlock()

	a.debounced(a.flush)
}

// Flush saves the pending snapshot immediately, if any. Called on
// shutdown so the tail of a burst is not lost.
func (a *Autosaver) Flush() {
	a.flush()
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	state := a.latest
	a.dirty = false
	a.mu.Unlock()

	a.save(state)
}
