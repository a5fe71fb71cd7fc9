package ws

import (
	"context"
	"time"

	"expansion/internal/domain"
	"go.uber.org/zap"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan StatusEvent
	done       chan struct{}
	log        *zap.Logger
	now        func() time.Time
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan StatusEvent, 64),
		done:       make(chan struct{}),
		log:        log,
		now:        time.Now,
	}
}

// Run owns the client set until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for cl := range h.clients {
				h.drop(cl)
			}
			return

		case cl := <-h.register:
			h.clients[cl] = true

		case cl := <-h.unregister:
			if h.clients[cl] {
				h.drop(cl)
			}

		case ev := <-h.broadcast:
			for cl := range h.clients {
				select {
				case cl.send <- ev:
				default:
					h.log.Warn("cliente lento desconectado")
					h.drop(cl)
				}
			}
		}
	}
}

func (h *Hub) drop(cl *Client) {
	delete(h.clients, cl)
	close(cl.send)
}

// Register reports false when the hub has stopped.
func (h *Hub) Register(cl *Client) bool {
	select {
	case h.register <- cl:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(cl *Client) {
	select {
	case h.unregister <- cl:
	case <-h.done:
	}
}

// NotifyStatus queues a status event. Events are dropped if the queue is full.
func (h *Hub) NotifyStatus(cityID int64, from, to domain.Status) {
	ev := StatusEvent{Type: TypeStatusChanged, CityID: cityID, From: from, To: to, OccurredAt: h.now().UTC()}
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("fila de eventos cheia, evento descartado", zap.Int64("city_id", cityID))
	}
}
