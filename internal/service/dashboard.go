package service

import (
	"time"

	"github.com/ella-quan/meowhome/internal/calendar"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// MaxRecentPhotos caps the gallery strip on the dashboard.
const MaxRecentPhotos = 3

// DashboardSummary is the at-a-glance view the home screen renders.
type DashboardSummary struct {
	Date         time.Time             `json:"date"`
	TodayEvents  []model.CalendarEvent `json:"today_events"`
	ActiveTodos  []model.TodoItem      `json:"active_todos"`
	HighPriority int                   `json:"high_priority_count"`
	RecentPhotos []model.Photo         `json:"recent_photos"`
}

// DashboardService assembles the home screen summary from the current
// snapshot.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Summary builds the dashboard for the given reference time, normally
// now.
func (s *DashboardService) Summary(now time.Time) DashboardSummary {
	snap := s.store.Snapshot()

	summary := DashboardSummary{
		Date:        now,
		TodayEvents: calendar.EventsOn(snap.Events, now),
	}

	model.SortTodosForDisplay(snap.Todos)
	for _, td := range snap.Todos {
		if td.Completed {
			continue
		}
		summary.ActiveTodos = append(summary.ActiveTodos, td)
		if td.Priority == model.PriorityHigh {
			summary.HighPriority++
		}
	}

	if len(snap.Photos) > MaxRecentPhotos {
		snap.Photos = snap.Photos[:MaxRecentPhotos]
	}
	summary.RecentPhotos = snap.Photos

	return summary
}
