package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	userID  uuid.UUID
	payload []byte
}

// Hub tracks websocket clients per user and fans notification payloads out
// to every connection a user has open. Delivery is best-effort: a client
// that cannot keep up is disconnected, a full hub buffer drops the message.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	outbound   chan envelope
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		outbound:   make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		stop:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns, ok := h.clients[client.userID]
			if !ok {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			total := h.connectionCountLocked()
			h.mutex.Unlock()
			h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
				}
				if len(conns) == 0 {
					delete(h.clients, client.userID)
				}
			}
			total := h.connectionCountLocked()
			h.mutex.Unlock()
			h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)

		case env := <-h.outbound:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[env.userID]))
			for c := range h.clients[env.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- env.payload:
				default:
					h.unregister <- client
				}
			}

		case <-h.stop:
			return
		}
	}
}

// Stop ends the Run loop. Open connections are torn down by their pumps
// when the server closes.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.stop:
	}
}

// SendToUser queues payload for every open connection of one user. It never
// blocks; when the hub buffer is full the message is dropped with a log line.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) {
	if h == nil || userID == uuid.Nil || len(payload) == 0 {
		return
	}
	select {
	case h.outbound <- envelope{userID: userID, payload: payload}:
	default:
		h.logger.Printf("WS send dropped | user=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.connectionCountLocked()
}

func (h *Hub) connectionCountLocked() int {
	total := 0
	for _, conns := range h.clients {
		total += len(conns)
	}
	return total
}
