package collab

import (
	"encoding/json"
	"testing"
)

func TestPresenceManagerUpdateAndRemove(t *testing.T) {
	pm := NewPresenceManager()

	pm.Update("u1", PresencePayload{Tool: "pen", DisplayName: "Ada"})
	pm.Update("u2", PresencePayload{Tool: "select"})

	if got := pm.Count(); got != 2 {
		t.Fatalf("presences = %d, want 2", got)
	}
	if got := pm.Snapshot()["u1"].Tool; got != "pen" {
		t.Errorf("u1 tool = %q, want pen", got)
	}

	// Re-update replaces, not appends.
	pm.Update("u1", PresencePayload{Tool: "circle"})
	if got := pm.Snapshot()["u1"].Tool; got != "circle" {
		t.Errorf("u1 tool after update = %q, want circle", got)
	}

	pm.Remove("u1")
	if got := pm.Count(); got != 1 {
		t.Errorf("presences after remove = %d, want 1", got)
	}
}

func TestPresenceSnapshotIsACopy(t *testing.T) {
	pm := NewPresenceManager()
	pm.Update("u1", PresencePayload{Tool: "pen"})

	snap := pm.Snapshot()
	snap["u1"] = PresencePayload{Tool: "mutated"}
	delete(snap, "u1")

	if got := pm.Snapshot()["u1"].Tool; got != "pen" {
		t.Errorf("u1 tool = %q, want pen; snapshot aliases manager state", got)
	}
}

func TestPresenceStateMessage(t *testing.T) {
	pm := NewPresenceManager()
	pm.Update("u1", PresencePayload{Cursor: &CursorPos{X: 10, Y: 20}, DisplayName: "Ada"})

	msg := pm.StateMessage()
	if msg == nil {
		t.Fatal("StateMessage() returned nil")
	}
	if msg.Type != TypePresenceState {
		t.Errorf("message type = %q, want %q", msg.Type, TypePresenceState)
	}

	var payload PresenceStatePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	p, ok := payload.Presences["u1"]
	if !ok || p.Cursor == nil || p.Cursor.X != 10 {
		t.Errorf("payload presences = %+v", payload.Presences)
	}
}
