package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/league-manager/brackets"
	"github.com/Dosada05/league-manager/middleware"
	"github.com/Dosada05/league-manager/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin проверяется CORS-слоем и токеном, здесь пропускаем всех.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub                 *brackets.Hub
	championshipService services.ChampionshipService
}

func NewWebSocketHandler(hub *brackets.Hub, cs services.ChampionshipService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:                 hub,
		championshipService: cs,
	}
}

// ServeWs подписывает клиента на обновления чемпионата.
// Клиент подключается к /ws/championships/{championshipID}?token=...
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	// подписываться можно только на свой чемпионат
	if _, err := h.championshipService.GetChampionship(r.Context(), currentUserID, championshipID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту
		slog.WarnContext(r.Context(), "failed to upgrade websocket connection",
			slog.Int("championship_id", championshipID), slog.Any("error", err))
		return
	}

	roomID := brackets.ChampionshipRoom(championshipID)
	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	slog.InfoContext(r.Context(), "websocket client connected",
		slog.Int("championship_id", championshipID),
		slog.Int("user_id", currentUserID),
		slog.String("room", roomID))
}
