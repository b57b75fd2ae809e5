package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel carries room lifecycle events for interested services.
const Channel = "room_events"

const (
	RoomOpened  = "room_opened"
	RoomUpdated = "room_updated"
	RoomClosed  = "room_closed"
)

// Event is the payload published on the room_events channel.
type Event struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	At     string `json:"at"`
}

// Publisher pushes room lifecycle events to Redis, fire and forget. A nil
// Publisher or one without a client drops events, so callers never guard.
type Publisher struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewPublisher(rdb *redis.Client, log *zap.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

func (p *Publisher) Publish(eventType, roomID string) {
	if p == nil || p.rdb == nil {
		return
	}
	payload, _ := json.Marshal(Event{
		Type:   eventType,
		RoomID: roomID,
		At:     time.Now().UTC().Format(time.RFC3339),
	})
	if err := p.rdb.Publish(context.Background(), Channel, payload).Err(); err != nil {
		p.log.Warn("publish room event", zap.String("event", eventType), zap.Error(err))
	}
}
