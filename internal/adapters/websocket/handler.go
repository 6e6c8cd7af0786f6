package websocket

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
)

// WebSocketHandler faz o upgrade das conexões do fluxo de eventos.
type WebSocketHandler struct {
	hub *Hub
}

func NewWebSocketHandler(hub *Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWS faz o upgrade da conexão HTTP para WebSocket e registra o
// cliente no Hub.
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Falha no upgrade WebSocket", "erro", err)
		return
	}

	client := &Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		ID:   uuid.NewString(),
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
