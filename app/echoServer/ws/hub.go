package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub fans chat messages out to websocket subscribers. Messages are written
// over REST; a ws connection only listens on one chat.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound

	mu    sync.Mutex
	rooms map[string]map[*Client]bool
}

type outbound struct {
	chatID string
	data   []byte
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
		rooms:      make(map[string]map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			room := h.rooms[c.ChatID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[c.ChatID] = room
			}
			room[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[c.ChatID]; ok {
				if room[c] {
					delete(room, c)
					close(c.send)
				}
				if len(room) == 0 {
					delete(h.rooms, c.ChatID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			room := h.rooms[msg.chatID]
			for c := range room {
				select {
				case c.send <- msg.data:
				default:
					delete(room, c)
					close(c.send)
				}
			}
			if room != nil && len(room) == 0 {
				delete(h.rooms, msg.chatID)
			}
			h.mu.Unlock()
		}
	}
}

// Publish satisfies the chat service's Publisher interface.
func (h *Hub) Publish(chatID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("ws publish marshal", "err", err)
		return
	}
	h.broadcast <- outbound{chatID: chatID, data: data}
}
