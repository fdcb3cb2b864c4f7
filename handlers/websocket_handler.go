package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/draws"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict Origin once the frontend domain is fixed.
		return true
	},
}

type WebSocketHandler struct {
	hub    *draws.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *draws.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// ServeWs handles GET /ws/draws/{drawID}: it upgrades the connection and
// subscribes the client to that draw's update room.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	drawID := normalize.ID(chi.URLParam(r, "drawID"))
	if drawID == "" {
		http.Error(w, "missing drawID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade websocket connection",
			slog.String("draw_id", drawID),
			slog.Any("error", err))
		return
	}

	client := h.hub.NewClient(conn, drawID)
	go client.WritePump()
	go client.ReadPump()
}
