package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"paircode/internal/autocomplete"
	"paircode/internal/models"
	"paircode/internal/repositories"
	"paircode/internal/session"
	"paircode/internal/utils"
)

type Handlers struct {
	log    *zap.Logger
	rooms  *repositories.RoomRepository
	engine *session.Engine
}

func NewHandlers(log *zap.Logger, rooms *repositories.RoomRepository, engine *session.Engine) *Handlers {
	return &Handlers{log: log, rooms: rooms, engine: engine}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "PairCode API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"create_room":  "POST /api/v1/rooms",
			"get_room":     "GET /api/v1/rooms/{id}",
			"autocomplete": "POST /api/v1/autocomplete",
			"websocket":    "WS /ws/{roomID}",
		},
	})
}

// CreateRoom creates a room row and returns its generated id. An empty body
// is fine; the language defaults to python.
func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	room, err := h.rooms.CreateRoom(req.Language)
	if err != nil {
		h.log.Error("create room", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSON(w, http.StatusCreated, models.CreateRoomResponse{RoomID: room.ID})
}

func (h *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	room, err := h.rooms.GetRoom(id)
	if errors.Is(err, repositories.ErrRoomNotFound) {
		utils.JSONError(w, http.StatusNotFound, "room not found")
		return
	}
	if err != nil {
		h.log.Error("get room", zap.String("room", id), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to fetch room")
		return
	}
	utils.JSON(w, http.StatusOK, models.RoomResponse{
		RoomID:    room.ID,
		Code:      room.Code,
		Language:  room.Language,
		CreatedAt: room.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: room.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// Autocomplete answers the stateless suggestion request.
func (h *Handlers) Autocomplete(w http.ResponseWriter, r *http.Request) {
	var req models.AutocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, autocomplete.Suggest(req))
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// CollabWS upgrades the connection and runs the per-connection read loop.
// Each inbound payload is decoded into a code or cursor message; anything
// unparseable is treated as a literal full-document edit.
func (h *Handlers) CollabWS(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := session.NewClient(conn)
	go client.WritePump()

	h.engine.Join(roomID, client)
	defer h.engine.Disconnect(roomID, client)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		switch msg := models.DecodeInbound(payload).(type) {
		case models.CodeUpdate:
			h.engine.Edit(roomID, client, msg.Code)
		case models.CursorUpdate:
			h.engine.Cursor(roomID, client, msg.CursorPosition, msg.UserID)
		}
	}
}
