package presence

import (
	"sync"

	"go.uber.org/zap"
)

// Conn is the subset of a websocket connection the hub needs. Abstracting
// it keeps tests free of real network connections.
type Conn interface {
	WriteJSON(v interface{}) error
}

// StatusMessage is pushed to every connected client after a roster change
type StatusMessage struct {
	Type  string            `json:"type"`
	Users map[string]string `json:"users"`
}

// Hub tracks live collaborator connections and their presence roster, and
// pushes a full roster snapshot to every connection on join and leave.
// All mutations and the broadcasts they trigger are serialized under one
// mutex, so every broadcast reflects a roster state that actually existed.
type Hub struct {
	mu     sync.Mutex
	conns  map[Conn]struct{}
	roster map[string]string
	logger *zap.Logger
}

// NewHub creates a new presence hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[Conn]struct{}),
		roster: make(map[string]string),
		logger: logger,
	}
}

// Connect registers a connection, marks the username online and broadcasts
// the updated roster to every connection, the new one included.
func (h *Hub) Connect(c Conn, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[c] = struct{}{}
	h.roster[username] = "online"
	h.broadcastLocked()
}

// Disconnect removes a connection, drops the username from the roster and
// broadcasts the updated roster to the remaining connections. The roster
// entry is removed even when another live connection shares the username.
func (h *Hub) Disconnect(c Conn, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, c)
	delete(h.roster, username)
	h.broadcastLocked()
}

// Roster returns a snapshot of the current username -> status map
func (h *Hub) Roster() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// broadcastLocked pushes the roster to every connection. Sends are
// best-effort: a failing connection is skipped, never aborts the loop, and
// gets cleaned up when its read loop observes the closed socket.
func (h *Hub) broadcastLocked() {
	msg := StatusMessage{Type: "users_update", Users: h.snapshotLocked()}
	for c := range h.conns {
		if err := c.WriteJSON(msg); err != nil {
			h.logger.Debug("presence push failed", zap.Error(err))
		}
	}
}

func (h *Hub) snapshotLocked() map[string]string {
	users := make(map[string]string, len(h.roster))
	for name, status := range h.roster {
		users[name] = status
	}
	return users
}
