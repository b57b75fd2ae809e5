package session

import "sync"

// Hub tracks every active room. A room entry exists exactly while it has at
// least one connected client; join and leave mutate membership under the hub
// lock so the entry and the membership set move together.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewHub() *Hub { return &Hub{rooms: make(map[string]*Room)} }

// Join adds c to the room, creating the room on first join.
func (h *Hub) Join(id string, c *Client) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[id]
	if !ok {
		room = NewRoom(id)
		h.rooms[id] = room
	}
	room.Join(c)
	return room
}

// Remove drops c from its room, deleting the room when it empties. Removing
// a client that is not registered is a no-op.
func (h *Hub) Remove(id string, c *Client) (evicted, removed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[id]
	if !ok || !room.Contains(c) {
		return false, false
	}
	if room.Leave(c) == 0 {
		delete(h.rooms, id)
		return true, true
	}
	return false, true
}

func (h *Hub) Get(id string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[id]
	return room, ok
}

// CachedCode returns the in-memory document for an active room.
func (h *Hub) CachedCode(id string) (string, bool) {
	h.mu.RLock()
	room, ok := h.rooms[id]
	h.mu.RUnlock()
	if !ok {
		return "", false
	}
	return room.Code(), true
}

func (h *Hub) ActiveRooms() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

func (h *Hub) ActiveClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, room := range h.rooms {
		total += room.ClientCount()
	}
	return total
}
