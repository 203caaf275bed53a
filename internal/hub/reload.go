package hub

import (
	"net/http"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is the only message pushed to viewers.
type reloadMessage struct {
	Type string `json:"type"`
}

// Reloader keeps the websocket connections of open viewer pages and tells
// them to refresh when deck files change.
type Reloader struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
	logger  *clog.Logger
}

// NewReloader creates an empty Reloader.
func NewReloader(logger *clog.Logger) *Reloader {
	return &Reloader{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Clients returns the number of connected viewers.
func (rl *Reloader) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Notify sends a reload message to every connected viewer. Connections that
// fail are dropped.
func (rl *Reloader) Notify() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for id, conn := range rl.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(reloadMessage{Type: "reload"}); err != nil {
			rl.logger.Debug("reload: dropping client", "id", id, "err", err)
			conn.Close()
			delete(rl.clients, id)
		}
	}
	rl.logger.Debug("reload: notified viewers", "clients", len(rl.clients))
}

// ServeHTTP upgrades the request and holds the connection until the viewer
// goes away. Messages from the viewer are ignored.
func (rl *Reloader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		rl.logger.Warn("reload: websocket upgrade", "err", err)
		return
	}

	id := uuid.NewString()
	rl.mu.Lock()
	rl.clients[id] = conn
	rl.mu.Unlock()

	defer func() {
		rl.mu.Lock()
		delete(rl.clients, id)
		rl.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				rl.logger.Debug("reload: websocket read", "id", id, "err", err)
			}
			return
		}
	}
}
