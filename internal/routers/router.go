package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"paircode/internal/api"
)

func New(h *api.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Root)
	r.Get("/api/v1/healthz", h.Health)

	r.Post("/api/v1/rooms", h.CreateRoom)
	r.Get("/api/v1/rooms/{id}", h.GetRoom)

	r.Post("/api/v1/autocomplete", h.Autocomplete)

	r.Get("/ws/{roomID}", h.CollabWS)

	return r
}
