package session

import (
	"encoding/json"

	"go.uber.org/zap"

	"paircode/internal/events"
	"paircode/internal/metrics"
	"paircode/internal/models"
	"paircode/internal/repositories"
)

// Engine orchestrates room sessions: it registers connections, keeps the
// per-room document cache authoritative, fans edits out to peers and writes
// to the room store behind the broadcast path.
type Engine struct {
	hub    *Hub
	rooms  *repositories.RoomRepository
	events *events.Publisher
	log    *zap.Logger
}

func NewEngine(rooms *repositories.RoomRepository, pub *events.Publisher, log *zap.Logger) *Engine {
	return &Engine{hub: NewHub(), rooms: rooms, events: pub, log: log}
}

func (e *Engine) Hub() *Hub { return e.hub }

// Join registers the client, seeding the room cache from the store on first
// join (creating the row for an unknown id), and sends the current document
// to the joiner alone.
func (e *Engine) Join(roomID string, c *Client) {
	room := e.hub.Join(roomID, c)
	room.Seed(func() string {
		row, err := e.rooms.GetOrCreateRoom(roomID)
		if err != nil {
			// Cache stays authoritative for live clients even when the
			// store is down; start from an empty document.
			e.log.Error("load room from store", zap.String("room", roomID), zap.Error(err))
			return ""
		}
		e.events.Publish(events.RoomOpened, roomID)
		return row.Code
	})

	if !c.Send(encode(models.NewCodeBroadcast(roomID, room.Code()))) {
		e.Disconnect(roomID, c)
		return
	}
	metrics.SetSessionGauges(e.hub.ActiveRooms(), e.hub.ActiveClients())
	e.log.Info("client joined", zap.String("room", roomID), zap.String("client", c.ID))
}

// Edit applies code as the authoritative document (last write wins), kicks
// off the write-behind persist and fans the update out to every other client
// in the room. Unresponsive recipients are disconnected; delivery to the
// rest continues.
func (e *Engine) Edit(roomID string, sender *Client, code string) {
	room, ok := e.hub.Get(roomID)
	if !ok {
		return
	}
	room.SetCode(code)
	metrics.EditsApplied.Inc()

	go e.persist(roomID, code)

	frame := encode(models.NewCodeBroadcast(roomID, code))
	for _, c := range room.Broadcast(sender, frame) {
		metrics.BroadcastFailures.Inc()
		e.log.Warn("dropping unresponsive client",
			zap.String("room", roomID), zap.String("client", c.ID))
		e.Disconnect(roomID, c)
	}
}

// Cursor relays a cursor position to the other clients in the room. Pure
// fan-out: no cache or store interaction, failed deliveries are dropped.
func (e *Engine) Cursor(roomID string, sender *Client, position json.RawMessage, userID string) {
	room, ok := e.hub.Get(roomID)
	if !ok {
		return
	}
	room.Broadcast(sender, encode(models.NewCursorBroadcast(position, userID)))
}

// Disconnect removes the client, evicting the room cache when the last
// member leaves. Disconnecting an unregistered client is a no-op.
func (e *Engine) Disconnect(roomID string, c *Client) {
	evicted, removed := e.hub.Remove(roomID, c)
	if !removed {
		return
	}
	c.Close()
	if evicted {
		e.events.Publish(events.RoomClosed, roomID)
		e.log.Info("room inactive, cache evicted", zap.String("room", roomID))
	}
	metrics.SetSessionGauges(e.hub.ActiveRooms(), e.hub.ActiveClients())
	e.log.Info("client left", zap.String("room", roomID), zap.String("client", c.ID))
}

func (e *Engine) persist(roomID, code string) {
	if _, err := e.rooms.UpdateRoomCode(roomID, code); err != nil {
		metrics.StoreWriteFailures.Inc()
		e.log.Error("persist room code", zap.String("room", roomID), zap.Error(err))
		return
	}
	e.events.Publish(events.RoomUpdated, roomID)
}

func encode(v any) []byte { b, _ := json.Marshal(v); return b }
