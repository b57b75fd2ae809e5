package session

import "sync"

// Room holds the live membership set and the cached authoritative document
// for one active room. A single mutex guards both, so membership and cache
// cannot drift apart.
type Room struct {
	ID string

	mu      sync.Mutex
	clients map[*Client]struct{}
	code    string

	seed sync.Once
}

func NewRoom(id string) *Room {
	return &Room{ID: id, clients: make(map[*Client]struct{})}
}

func (r *Room) Join(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
}

// Leave removes c and reports how many clients remain.
func (r *Room) Leave(c *Client) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
	return len(r.clients)
}

func (r *Room) Contains(c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.clients[c]
	return ok
}

func (r *Room) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Seed runs load exactly once per active lifetime to populate the cache.
// Concurrent first joiners block until the document is loaded, so every
// joiner reads the same seeded text.
func (r *Room) Seed(load func() string) {
	r.seed.Do(func() {
		code := load()
		r.mu.Lock()
		r.code = code
		r.mu.Unlock()
	})
}

func (r *Room) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// SetCode overwrites the cached document. Last write wins.
func (r *Room) SetCode(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = code
}

// Broadcast fans a frame out to every client except the sender. Recipients
// that could not accept the frame are returned for cleanup.
func (r *Room) Broadcast(sender *Client, frame []byte) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	var failed []*Client
	for c := range r.clients {
		if c == sender {
			continue
		}
		if !c.Send(frame) {
			failed = append(failed, c)
		}
	}
	return failed
}
