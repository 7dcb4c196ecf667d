package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// MemberHandler serves the roster and onboarding endpoints.
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// List handles GET /v1/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.members.ListMembers())
}

// Onboard handles POST /v1/onboarding. It creates the member and binds
// this device to it.
func (h *MemberHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req model.OnboardMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	m, err := h.members.CompleteOnboarding(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, m)
}

// Me handles GET /v1/me. A 404 tells the client to run onboarding.
func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	m, err := h.members.Me()
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, m)
}
