package realtime

import (
	"encoding/json"
	"sync"
)

// Cache keys the dashboard queries under. Mutating commands broadcast the
// keys they dirty; clients refetch on receipt. This replaces the old
// per-call-site mutate() convention with one explicit contract.
const (
	KeyWallets            = "wallets"
	KeyWalletBalance      = "wallet:balance"
	KeyWalletTransactions = "wallet:transactions"
	KeyTrips              = "trips"
	KeyNotifications      = "notifications"
	KeyChat               = "chat:messages"
)

// Event types pushed over the socket.
const (
	EventInvalidate     = "invalidate"
	EventChatNewMessage = "chat:new-message"
	EventChatSeen       = "chat:seen"
)

type Event struct {
	Type    string      `json:"type"`
	Keys    []string    `json:"keys,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub fans events out to the websocket connections of specific users.
// Delivery is fire-and-forget: a slow consumer's frame is dropped rather
// than blocking the sender.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Invalidate tells each listed user which cached queries a command dirtied.
// Safe on a nil hub so services can run without realtime wiring in tests.
func (h *Hub) Invalidate(userIDs []string, keys ...string) {
	if h == nil || len(keys) == 0 {
		return
	}
	h.send(userIDs, Event{Type: EventInvalidate, Keys: keys})
}

// Notify pushes an arbitrary event to the listed users.
func (h *Hub) Notify(userIDs []string, event Event) {
	if h == nil {
		return
	}
	h.send(userIDs, event)
}

func (h *Hub) send(userIDs []string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range userIDs {
		for client := range h.clients[id] {
			select {
			case client.send <- payload:
			default:
			}
		}
	}
}
