package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/store"
)

// AppDataHandler serves the full aggregate in one round trip, which is
// how clients hydrate on startup before listening to the change stream.
type AppDataHandler struct {
	store *store.Store
}

// NewAppDataHandler creates a new app data handler.
func NewAppDataHandler(st *store.Store) *AppDataHandler {
	return &AppDataHandler{store: st}
}

// Snapshot handles GET /v1/data
func (h *AppDataHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.store.Snapshot())
}
