package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// MagicHandler serves the natural-language input endpoint.
type MagicHandler struct {
	magic *service.MagicService
}

// NewMagicHandler creates a new magic input handler.
func NewMagicHandler(magic *service.MagicService) *MagicHandler {
	return &MagicHandler{magic: magic}
}

type magicRequest struct {
	Input string `json:"input"`
}

// Process handles POST /v1/magic. The response carries the created todo
// or event so the client can highlight it.
func (h *MagicHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req magicRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	res, err := h.magic.Process(r.Context(), req.Input)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, res)
}
