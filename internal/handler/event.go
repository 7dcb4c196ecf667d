package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// EventHandler serves the calendar event endpoints.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.events.ListEvents())
}

// Get handles GET /v1/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.events.GetEvent(r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, ev)
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ev, err := h.events.CreateEvent(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, ev)
}

// Update handles PUT /v1/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ev, err := h.events.UpdateEvent(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, ev)
}

// Delete handles DELETE /v1/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.events.DeleteEvent(r.Context(), r.PathValue("id"))
	WriteNoContent(w)
}
