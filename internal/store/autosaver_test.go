package store

import (
	"sync"
	"testing"
	"time"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

func TestAutosaverCoalescesBurst(t *testing.T) {
	var mu sync.Mutex
	var saved []document.CanvasState

	a := NewAutosaver(20*time.Millisecond, func(s document.CanvasState) {
		mu.Lock()
		saved = append(saved, s)
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		state := document.NewCanvasState()
		state.StrokeWidth = float64(i)
		a.Notify(state)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(saved))
	}
	if saved[0].StrokeWidth != 9 {
		t.Errorf("saved snapshot strokeWidth = %v, want the last notified (9)", saved[0].StrokeWidth)
	}
}

func TestAutosaverFlushSavesImmediately(t *testing.T) {
	var mu sync.Mutex
	saves := 0

	a := NewAutosaver(time.Hour, func(document.CanvasState) {
		mu.Lock()
		saves++
		mu.Unlock()
	})

	a.Notify(document.NewCanvasState())
	a.Flush()

	mu.Lock()
	defer mu.Unlock()
	if saves != 1 {
		t.Fatalf("saves after flush = %d, want 1", saves)
	}
}

func TestAutosaverFlushWithoutPendingIsNoOp(t *testing.T) {
	saves := 0
	a := NewAutosaver(time.Hour, func(document.CanvasState) { saves++ })

	a.Flush()
	if saves != 0 {
		t.Errorf("saves = %d, want 0", saves)
	}

	// Pending work is consumed by the first flush.
	a.Notify(document.NewCanvasState())
	a.Flush()
	a.Flush()
	if saves != 1 {
		t.Errorf("saves = %d, want 1", saves)
	}
}
