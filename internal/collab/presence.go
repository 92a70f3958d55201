package collab

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// PresenceManager tracks the live cursors on one board room. Entries are
// stored and returned by value, matching the snapshot semantics of the
// canvas itself; a caller mutating its copy never reaches room state.
type PresenceManager struct {
	mu      sync.RWMutex
	cursors map[string]PresencePayload // userID -> last reported presence
}

func NewPresenceManager() *PresenceManager {
	return &PresenceManager{cursors: make(map[string]PresencePayload)}
}

// Update replaces a user's presence with their latest report.
func (pm *PresenceManager) Update(userID string, p PresencePayload) {
	pm.mu.Lock()
	pm.cursors[userID] = p
	pm.mu.Unlock()
}

// Remove drops a user's presence when they leave the room.
func (pm *PresenceManager) Remove(userID string) {
	pm.mu.Lock()
	delete(pm.cursors, userID)
	pm.mu.Unlock()
}

// Snapshot returns a copy of every live presence.
func (pm *PresenceManager) Snapshot() map[string]PresencePayload {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	out := make(map[string]PresencePayload, len(pm.cursors))
	for id, p := range pm.cursors {
		out[id] = p
	}
	return out
}

// Count returns the number of users with live presence.
func (pm *PresenceManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.cursors)
}

// StateMessage packages the full presence map for a joining client, so a
// new joiner sees every cursor without waiting for the next updates.
func (pm *PresenceManager) StateMessage() *Message {
	payload, err := json.Marshal(PresenceStatePayload{Presences: pm.Snapshot()})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{Type: TypePresenceState, Payload: payload}
}
