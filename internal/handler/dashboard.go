package handler

import (
	"net/http"
	"time"

	"github.com/ella-quan/meowhome/internal/service"
)

// DashboardHandler serves the home screen summary.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary handles GET /v1/dashboard
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.dashboard.Summary(time.Now()))
}
