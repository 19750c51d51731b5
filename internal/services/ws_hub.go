package services

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"skillswap-backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSMessage is the envelope exchanged over the chat WebSocket
type WSMessage struct {
	Type       string          `json:"type"`
	PeerID     string          `json:"peer_id,omitempty"`
	ReceiverID string          `json:"receiver_id,omitempty"`
	Content    string          `json:"content,omitempty"`
	Room       string          `json:"room,omitempty"`
	Message    *models.Message `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// RoomID returns the canonical room key for a two-user conversation. The
// smaller ID comes first so both sides compute the same key.
func RoomID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return strings.Join([]string{userA, userB}, ":")
}

// Conn is the subset of a WebSocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub is the connection registry for chat rooms. Connections are added on
// join and removed on disconnect or write failure.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]string
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]string),
	}
}

// Join subscribes a connection to a room
func (h *Hub) Join(room, userID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.rooms[room]
	if !ok {
		subs = make(map[Conn]string)
		h.rooms[room] = subs
	}
	subs[conn] = userID

	log.Debug().Str("room", room).Str("user_id", userID).Msg("Joined room")
}

// Leave removes a connection from a room, dropping the room when empty
func (h *Hub) Leave(room string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(room, conn)
}

// LeaveAll removes a connection from every room it joined
func (h *Hub) LeaveAll(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, subs := range h.rooms {
		if _, ok := subs[conn]; ok {
			h.removeLocked(room, conn)
		}
	}
}

func (h *Hub) removeLocked(room string, conn Conn) {
	subs, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(subs, conn)
	if len(subs) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast sends a message to every subscriber of a room except the sender.
// Delivery is best effort: connections that fail to write are dropped.
func (h *Hub) Broadcast(room string, sender Conn, msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("room", room).Msg("Failed to marshal broadcast")
		return
	}

	h.mu.RLock()
	conns := make([]Conn, 0, len(h.rooms[room]))
	for conn := range h.rooms[room] {
		if conn != sender {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn().Err(err).Str("room", room).Msg("Dropping dead connection")
			conn.Close()
			h.Leave(room, conn)
		}
	}
}

// Subscribers returns the number of connections in a room
func (h *Hub) Subscribers(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Rooms returns the identifiers of all active rooms, sorted
func (h *Hub) Rooms() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, 0, len(h.rooms))
	for room := range h.rooms {
		out = append(out, room)
	}
	sort.Strings(out)
	return out
}
