package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"skillswap-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the SPA is served from another origin
	},
}

// WebSocketHandler handles the live chat channel
type WebSocketHandler struct {
	hub            *services.Hub
	userService    *services.UserService
	messageService *services.MessageService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.Hub, userService *services.UserService, messageService *services.MessageService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		userService:    userService,
		messageService: messageService,
	}
}

// HandleWebSocket handles GET /ws?token=...
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	userID, err := h.userService.ValidateJWT(token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()
	defer h.hub.LeaveAll(conn)

	log.Info().Str("user_id", userID).Msg("WebSocket connection established")

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("user_id", userID).Msg("WebSocket error")
			}
			break
		}

		var msg services.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(conn, "Invalid message format")
			continue
		}

		if err := h.handleMessage(ctx, userID, conn, msg); err != nil {
			log.Error().Err(err).Str("user_id", userID).Str("type", msg.Type).Msg("Failed to handle message")
			h.sendError(conn, err.Error())
		}
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, userID string, conn *websocket.Conn, msg services.WSMessage) error {
	switch msg.Type {
	case "join":
		return h.handleJoin(userID, conn, msg)
	case "leave":
		return h.handleLeave(userID, conn, msg)
	case "message":
		return h.handleSend(ctx, userID, conn, msg)
	default:
		h.sendError(conn, "Unknown message type")
		return nil
	}
}

// handleJoin subscribes the connection to the room shared with the peer
func (h *WebSocketHandler) handleJoin(userID string, conn *websocket.Conn, msg services.WSMessage) error {
	if msg.PeerID == "" {
		return services.ValidationError("peer_id is required")
	}
	room := services.RoomID(userID, msg.PeerID)
	h.hub.Join(room, userID, conn)

	ack := services.WSMessage{Type: "joined", Room: room}
	data, _ := json.Marshal(ack)
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *WebSocketHandler) handleLeave(userID string, conn *websocket.Conn, msg services.WSMessage) error {
	if msg.PeerID == "" {
		return services.ValidationError("peer_id is required")
	}
	h.hub.Leave(services.RoomID(userID, msg.PeerID), conn)
	return nil
}

// handleSend persists the message, then relays it to the other subscribers
// of the room
func (h *WebSocketHandler) handleSend(ctx context.Context, userID string, conn *websocket.Conn, msg services.WSMessage) error {
	stored, err := h.messageService.Send(ctx, userID, msg.ReceiverID, msg.Content)
	if err != nil {
		return err
	}

	room := services.RoomID(userID, msg.ReceiverID)
	h.hub.Broadcast(room, conn, services.WSMessage{
		Type:    "message",
		Room:    room,
		Message: stored,
	})
	return nil
}

func (h *WebSocketHandler) sendError(conn *websocket.Conn, message string) {
	msg := services.WSMessage{Type: "error", Error: message}
	data, _ := json.Marshal(msg)
	conn.WriteMessage(websocket.TextMessage, data)
}
