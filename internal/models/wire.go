package models

import "encoding/json"

const (
	TypeCodeUpdate   = "code_update"
	TypeCursorUpdate = "cursor_update"
)

// Inbound is a client-to-server message, one concrete type per wire tag.
type Inbound interface{ isInbound() }

// CodeUpdate replaces the full document text.
type CodeUpdate struct {
	Code string
}

// CursorUpdate relays a cursor position to the other clients in the room.
// The position is kept opaque; the server never interprets it.
type CursorUpdate struct {
	CursorPosition json.RawMessage
	UserID         string
}

func (CodeUpdate) isInbound()   {}
func (CursorUpdate) isInbound() {}

// DecodeInbound parses a raw client payload. Any payload that is not a known
// JSON message degrades to a literal full-document code update.
func DecodeInbound(data []byte) Inbound {
	var probe struct {
		Type           string          `json:"type"`
		Code           string          `json:"code"`
		CursorPosition json.RawMessage `json:"cursorPosition"`
		UserID         string          `json:"userId"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return CodeUpdate{Code: string(data)}
	}
	switch probe.Type {
	case TypeCodeUpdate:
		return CodeUpdate{Code: probe.Code}
	case TypeCursorUpdate:
		userID := probe.UserID
		if userID == "" {
			userID = "unknown"
		}
		return CursorUpdate{CursorPosition: probe.CursorPosition, UserID: userID}
	default:
		return CodeUpdate{Code: string(data)}
	}
}

// CodeBroadcast is the server-to-client document frame, sent to a client on
// join and to the sender's peers on every edit.
type CodeBroadcast struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	RoomID string `json:"roomId"`
}

// CursorBroadcast is the relayed cursor frame, sender excluded.
type CursorBroadcast struct {
	Type           string          `json:"type"`
	CursorPosition json.RawMessage `json:"cursorPosition"`
	UserID         string          `json:"userId"`
}

func NewCodeBroadcast(roomID, code string) CodeBroadcast {
	return CodeBroadcast{Type: TypeCodeUpdate, Code: code, RoomID: roomID}
}

func NewCursorBroadcast(position json.RawMessage, userID string) CursorBroadcast {
	return CursorBroadcast{Type: TypeCursorUpdate, CursorPosition: position, UserID: userID}
}
