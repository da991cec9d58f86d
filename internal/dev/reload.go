package dev

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the websocket endpoint browsers connect to.
const ReloadPath = "/_elt/reload"

// ReloadMessageType is the type of a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers as JSON.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

const reloadWriteWait = 5 * time.Second

// ReloadHub tracks browser connections and broadcasts reload messages.
// A client that connects while a build error is showing receives it
// immediately.
type ReloadHub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu        sync.Mutex
	clients   map[*websocket.Conn]struct{}
	lastError string
}

// NewReloadHub creates a reload hub.
func NewReloadHub(logger *slog.Logger) *ReloadHub {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ReloadHub{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Any origin may connect to the dev server.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	pending := h.lastError
	h.mu.Unlock()
	h.logger.Debug("reload client connected", "remote", r.RemoteAddr)

	if pending != "" {
		h.send(conn, ReloadMessage{Type: ReloadTypeError, Error: pending})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(conn)
}

// NotifyReload asks every browser to reload the page.
func (h *ReloadHub) NotifyReload() {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS asks every browser to reload its stylesheets.
func (h *ReloadHub) NotifyCSS(file string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows a build error overlay until ClearError.
func (h *ReloadHub) NotifyError(msg string) {
	h.mu.Lock()
	h.lastError = msg
	h.mu.Unlock()
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// ClearError removes the error overlay.
func (h *ReloadHub) ClearError() {
	h.mu.Lock()
	had := h.lastError != ""
	h.lastError = ""
	h.mu.Unlock()
	if had {
		h.broadcast(ReloadMessage{Type: ReloadTypeClear})
	}
}

// ClientCount returns the number of connected browsers.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all browsers.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *ReloadHub) broadcast(msg ReloadMessage) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		h.send(conn, msg)
	}
}

// send writes msg to conn and drops the connection on failure. Writes to
// one connection are serialised by the hub lock.
func (h *ReloadHub) send(conn *websocket.Conn, msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	conn.SetWriteDeadline(time.Now().Add(reloadWriteWait))
	err = conn.WriteMessage(websocket.TextMessage, data)
	h.mu.Unlock()

	if err != nil {
		h.logger.Debug("reload write failed", "error", err)
		h.remove(conn)
	}
}

func (h *ReloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}
