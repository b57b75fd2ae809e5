package repositories

import (
	"errors"

	"gorm.io/gorm"

	"paircode/internal/models"
	"paircode/internal/utils"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomRepository is the durable room store. It only ever creates, reads and
// updates rows; rooms are never deleted, so a document survives after every
// client has left.
type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository { return &RoomRepository{DB: db} }

// CreateRoom inserts a fresh room with a generated id and empty document.
func (r *RoomRepository) CreateRoom(language string) (*models.Room, error) {
	if language == "" {
		language = models.DefaultLanguage
	}
	room := &models.Room{ID: utils.GenerateRoomID(), Code: "", Language: language}
	if err := r.DB.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (r *RoomRepository) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := r.DB.First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetOrCreateRoom returns the room row, creating it with defaults when the
// id is unknown. Joining an arbitrary id therefore always succeeds.
func (r *RoomRepository) GetOrCreateRoom(id string) (*models.Room, error) {
	room, err := r.GetRoom(id)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, ErrRoomNotFound) {
		return nil, err
	}
	room = &models.Room{ID: id, Code: "", Language: models.DefaultLanguage}
	if err := r.DB.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoomCode overwrites the stored document text.
func (r *RoomRepository) UpdateRoomCode(id, code string) (*models.Room, error) {
	var room models.Room
	if err := r.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if err := r.DB.Model(&room).Update("code", code).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
