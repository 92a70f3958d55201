package collab

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/store"
)

// saveQuiet is the quiescence window before a board's latest snapshot is
// persisted. Bursts of gesture samples coalesce into one snapshot row.
const saveQuiet = time.Second

// CanvasLoader fetches the latest persisted snapshot for a board.
type CanvasLoader func(boardID string) (json.RawMessage, error)

// CanvasSaver persists a snapshot for a board.
type CanvasSaver func(boardID string, doc json.RawMessage) error

// Room holds the connected clients and live canvas for one board.
type Room struct {
	boardID  string
	clients  map[string]*Client // clientID -> client
	presence *PresenceManager

	mu     sync.RWMutex
	canvas json.RawMessage // latest snapshot, authoritative for new joiners
	saver  *store.Autosaver
}

func NewRoom(boardID string, canvas json.RawMessage, save CanvasSaver) *Room {
	r := &Room{
		boardID:  boardID,
		clients:  make(map[string]*Client),
		presence: NewPresenceManager(),
		canvas:   canvas,
	}
	r.saver = store.NewAutosaver(saveQuiet, func(state document.CanvasState) {
		data, err := document.Serialize(state)
		if err != nil {
			slog.Error("serialize canvas for save", "board", boardID, "error", err)
			return
		}
		if err := save(boardID, data); err != nil {
			slog.Error("save canvas", "board", boardID, "error", err)
		}
	})
	return r
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // boardID -> room
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	loadCanvas CanvasLoader
	saveCanvas CanvasSaver
}

func NewHub(load CanvasLoader, save CanvasSaver) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		loadCanvas: load,
		saveCanvas: save,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop shuts the hub down and flushes every room's pending snapshot.
func (h *Hub) Stop() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		room.saver.Flush()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.BoardID]
	if !ok {
		canvas, err := h.loadCanvas(client.BoardID)
		if err != nil {
			slog.Error("load canvas for room", "board", client.BoardID, "error", err)
			canvas = nil
		}
		room = NewRoom(client.BoardID, canvas, h.saveCanvas)
		h.rooms[client.BoardID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// Send the authoritative canvas to the new client first.
	room.mu.RLock()
	canvas := room.canvas
	room.mu.RUnlock()
	if canvas != nil {
		payload, _ := json.Marshal(CanvasPayload{Canvas: canvas})
		client.Send(&Message{Type: TypeCanvasState, BoardID: client.BoardID, Payload: payload})
	}

	// Then the current presence state.
	stateMsg := room.presence.StateMessage()
	if stateMsg != nil {
		client.Send(stateMsg)
	}

	// Broadcast join to other clients.
	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	joinMsg := &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}
	h.broadcastToRoom(client.BoardID, joinMsg, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "board", client.BoardID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.BoardID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Remove(client.UserID)

	if len(room.clients) == 0 {
		room.saver.Flush()
		delete(h.rooms, client.BoardID)
	}
	h.mu.Unlock()

	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	leaveMsg := &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}
	h.broadcastToRoom(client.BoardID, leaveMsg, "")

	slog.Info("client left", "user", client.UserID, "board", client.BoardID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	case TypeCanvasUpdate:
		h.handleCanvasUpdate(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	h.mu.RLock()
	room, ok := h.rooms[sender.BoardID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	room.presence.Update(sender.UserID, presence)

	outPayload, _ := json.Marshal(presence)
	outMsg := &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}
	h.broadcastToRoom(sender.BoardID, outMsg, sender.ClientID)
}

// handleCanvasUpdate accepts a full snapshot from a client, makes it the
// room's authoritative canvas and fans it out. The payload is round-
// tripped through the document codec so malformed JSON never becomes
// room state.
func (h *Hub) handleCanvasUpdate(sender *Client, msg *Message) {
	var payload CanvasPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.Warn("invalid canvas payload", "error", err, "user", sender.UserID)
		return
	}

	state, err := document.Parse(payload.Canvas)
	if err != nil {
		slog.Warn("invalid canvas document", "error", err, "user", sender.UserID)
		errPayload, _ := json.Marshal(map[string]string{"error": "invalid canvas document"})
		sender.Send(&Message{Type: TypeError, Payload: errPayload})
		return
	}

	h.mu.RLock()
	room, ok := h.rooms[sender.BoardID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	room.mu.Lock()
	room.canvas = payload.Canvas
	room.mu.Unlock()
	room.saver.Notify(state)

	outMsg := &Message{
		Type:    TypeCanvasUpdate,
		UserID:  sender.UserID,
		Payload: msg.Payload,
	}
	h.broadcastToRoom(sender.BoardID, outMsg, sender.ClientID)
}

func (h *Hub) broadcastToRoom(boardID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[boardID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
