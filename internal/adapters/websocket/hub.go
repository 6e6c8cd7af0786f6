package websocket

import (
	"encoding/json"
	"sync"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
)

// Hub implementa ports.EventBroadcaster: repassa cada evento do saldo de
// tempo (e da sessão de quiz) para todos os clientes WebSocket conectados.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	outbound   chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan []byte, 64),
	}
}

// Broadcast serializa o evento e o enfileira para todos os clientes.
func (h *Hub) Broadcast(event ledger.Event) {
	bytes, err := json.Marshal(event)
	if err != nil {
		logger.Error("Falha ao serializar evento", "erro", err)
		return
	}

	select {
	case h.outbound <- bytes:
	default:
		// Fila cheia: o evento é descartado em vez de bloquear o emissor
		logger.Warn("Fila de eventos cheia; evento descartado", "evento", event.Event)
	}
}

// Run processa registro, remoção e fan-out. Roda em goroutine própria.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Info("Cliente conectado ao fluxo de eventos", "cliente", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			logger.Info("Cliente desconectado do fluxo de eventos", "cliente", client.ID)

		case bytes := <-h.outbound:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- bytes:
				default:
					// Cliente lento: derruba para não travar os demais
					close(client.Send)
					delete(h.clients, client)
					logger.Warn("Cliente lento removido do fluxo de eventos", "cliente", client.ID)
				}
			}
			h.mu.Unlock()
		}
	}
}
