package models

import "time"

const DefaultLanguage = "python"

// Room is the durable record for a collaborative editing room. The session
// layer caches Code in memory while the room has live connections; this row
// is the value reloaded on the next first join.
type Room struct {
	ID        string    `gorm:"primaryKey" json:"roomId"`
	Code      string    `gorm:"type:text" json:"code"`
	Language  string    `gorm:"default:python" json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateRoomRequest struct {
	Language string `json:"language"`
}

type CreateRoomResponse struct {
	RoomID string `json:"roomId"`
}

type RoomResponse struct {
	RoomID    string `json:"roomId"`
	Code      string `json:"code"`
	Language  string `json:"language"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type AutocompleteRequest struct {
	Code           string `json:"code"`
	CursorPosition int    `json:"cursorPosition"`
	Language       string `json:"language"`
}

type AutocompleteResponse struct {
	Suggestion    string `json:"suggestion"`
	StartPosition int    `json:"startPosition"`
	EndPosition   int    `json:"endPosition"`
}
