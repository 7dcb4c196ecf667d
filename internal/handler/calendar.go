package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ella-quan/meowhome/internal/calendar"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// CalendarHandler serves the calendar view and export endpoints.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(cal *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: cal}
}

// Grid handles GET /v1/calendar?view={month|week}&date=YYYY-MM-DD.
// The view defaults to month and the date to today. Week view accepts an
// optional pixels_per_hour for the layout scale.
func (h *CalendarHandler) Grid(w http.ResponseWriter, r *http.Request) {
	mode := calendar.ViewMode(r.URL.Query().Get("view"))
	if mode == "" {
		mode = calendar.ViewMonth
	}
	if !mode.Valid() {
		WriteError(w, MapServiceError(service.ErrInvalidViewMode))
		return
	}

	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			WriteError(w, model.NewBadRequestError("date must be YYYY-MM-DD"))
			return
		}
		ref = parsed
	}

	if mode == calendar.ViewWeek {
		pph, _ := strconv.Atoi(r.URL.Query().Get("pixels_per_hour"))
		WriteData(w, http.StatusOK, h.calendar.Week(ref, pph))
		return
	}
	WriteData(w, http.StatusOK, h.calendar.Month(ref.Year(), ref.Month()))
}

// Export handles GET /v1/calendar/export.ics
func (h *CalendarHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="meowhome.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.calendar.ExportICS()))
}
