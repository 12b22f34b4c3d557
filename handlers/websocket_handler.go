package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub               *brackets.Hub
	tournamentService services.TournamentService
	logger            *slog.Logger
}

func NewWebSocketHandler(hub *brackets.Hub, ts services.TournamentService, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
		logger:            logger,
	}
}

// ServeWs upgrades the request and subscribes the client to the tournament
// room. The current state is sent first so the client never starts blank.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	view, err := h.tournamentService.GetTournament(r.Context(), key)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade websocket connection", slog.String("tournament", key), slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: brackets.TournamentRoom(key),
	}
	if err := conn.WriteJSON(brackets.WebSocketMessage{
		Type:    brackets.MessageTournamentUpdated,
		Payload: view,
		RoomID:  client.Room,
	}); err != nil {
		h.logger.Warn("failed to send initial snapshot", slog.String("tournament", key), slog.Any("error", err))
		conn.Close()
		return
	}
	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
