package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/duskforge/dungeonturn/component"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SpectatorHub fans out each Msg passed to Broadcast to connected
// spectators over a websocket, read-only. The Turn Stepper does not
// call Broadcast itself; the caller feeds the hub. Grounded on fight-club-go's
// WebSocketHub register/unregister/broadcast channel triad, stripped
// of its connection-count rate limiting since a local debug surface
// has no DoS exposure to defend against.
type SpectatorHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewSpectatorHub constructs an empty hub.
func NewSpectatorHub() *SpectatorHub {
	return &SpectatorHub{clients: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection as a spectator until it disconnects.
func (h *SpectatorHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Spectators are read-only: drain and discard any client frame
	// just to detect disconnects promptly.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends msg as JSON to every connected spectator, dropping
// any connection that fails to write.
func (h *SpectatorHub) Broadcast(msg component.Msg) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Count reports the number of currently connected spectators.
func (h *SpectatorHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
