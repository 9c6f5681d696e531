package ws

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/metrics"
	"bank-portal.backend/pkg/logger"
)

// Envelope is the wire frame pushed to connected clients
type Envelope struct {
	Type string            `json:"type"`
	Data *entities.Message `json:"data"`
}

type publication struct {
	topic   string
	payload []byte
}

// Hub fans persisted messages out to websocket clients. Each conversation
// forms a topic keyed by the customer's user id; customer connections
// subscribe to their own topic while admin connections receive every
// topic. Cross-conversation leakage is prevented at the hub, not at the
// client.
type Hub struct {
	topics     map[string]map[*Client]struct{}
	admins     map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	publish    chan publication
}

// NewHub creates a new hub
func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]struct{}),
		admins:     make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		publish:    make(chan publication, 64),
	}
}

// Run processes registrations and publications until ctx is cancelled.
// It owns all hub state; nothing else touches the maps.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.admins {
				close(client.send)
			}
			for _, clients := range h.topics {
				for client := range clients {
					close(client.send)
				}
			}
			return

		case client := <-h.register:
			if client.isAdmin {
				h.admins[client] = struct{}{}
			} else {
				clients, ok := h.topics[client.topic]
				if !ok {
					clients = make(map[*Client]struct{})
					h.topics[client.topic] = clients
				}
				clients[client] = struct{}{}
			}
			metrics.WSConnectionsActive.Inc()

		case client := <-h.unregister:
			h.drop(client)

		case pub := <-h.publish:
			for client := range h.topics[pub.topic] {
				h.send(client, pub.payload)
			}
			for client := range h.admins {
				h.send(client, pub.payload)
			}
		}
	}
}

// Publish fans a persisted message out to its conversation topic.
// Marshalling happens once here rather than per client.
func (h *Hub) Publish(topic string, message *entities.Message) {
	payload, err := json.Marshal(&Envelope{Type: "message", Data: message})
	if err != nil {
		logger.Error(context.Background(), "failed to marshal websocket envelope", zap.Error(err))
		return
	}

	select {
	case h.publish <- publication{topic: topic, payload: payload}:
	default:
		metrics.BroadcastDroppedTotal.Inc()
		logger.Warn(context.Background(), "hub publish queue full, dropping broadcast",
			zap.String("topic", topic))
	}
}

// send enqueues a payload without blocking the hub loop. A client that
// cannot keep up loses its connection rather than stalling everyone else.
func (h *Hub) send(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		metrics.BroadcastDroppedTotal.Inc()
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	if client.isAdmin {
		if _, ok := h.admins[client]; !ok {
			return
		}
		delete(h.admins, client)
	} else {
		clients, ok := h.topics[client.topic]
		if !ok {
			return
		}
		if _, ok := clients[client]; !ok {
			return
		}
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.topics, client.topic)
		}
	}
	close(client.send)
	metrics.WSConnectionsActive.Dec()
}
