package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/realtime"
	"github.com/ella-quan/meowhome/internal/store"
)

// EventWriter is the persistence surface the event service needs.
type EventWriter interface {
	SetEvent(ctx context.Context, ev model.CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

// EventService handles calendar event business logic.
type EventService struct {
	store    *store.Store
	repo     EventWriter
	notifier realtime.Notifier
	logger   *slog.Logger
}

// NewEventService creates a new event service.
func NewEventService(st *store.Store, repo EventWriter, notifier realtime.Notifier, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{store: st, repo: repo, notifier: notifier, logger: logger}
}

// CreateEvent validates and applies defaults to a create request, then
// stores the event optimistically and persists it best-effort.
func (s *EventService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.CalendarEvent, error) {
	ev, err := s.buildEvent(req)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	if ev.ID == "" {
		ev.ID = newID()
	}

	s.store.PutEvent(ev)
	s.persist(ctx, ev)
	s.changed()
	return ev, nil
}

// UpdateEvent fully replaces an existing event. The event must be
// present in the current snapshot.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req model.CreateEventRequest) (model.CalendarEvent, error) {
	if _, ok := s.store.Event(id); !ok {
		return model.CalendarEvent{}, ErrEventNotFound
	}

	ev, err := s.buildEvent(req)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	ev.ID = id

	s.store.PutEvent(ev)
	s.persist(ctx, ev)
	s.changed()
	return ev, nil
}

// DeleteEvent removes an event. Deleting an unknown id is a no-op.
func (s *EventService) DeleteEvent(ctx context.Context, id string) {
	s.store.DeleteEvent(id)
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		s.logger.Error("event delete not persisted",
			slog.String("event_id", id),
			slog.String("error", err.Error()),
		)
	}
	s.changed()
}

// GetEvent retrieves an event from the current snapshot.
func (s *EventService) GetEvent(id string) (model.CalendarEvent, error) {
	ev, ok := s.store.Event(id)
	if !ok {
		return model.CalendarEvent{}, ErrEventNotFound
	}
	return ev, nil
}

// ListEvents returns the current event snapshot.
func (s *EventService) ListEvents() []model.CalendarEvent {
	return s.store.Events()
}

func (s *EventService) buildEvent(req model.CreateEventRequest) (model.CalendarEvent, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.CalendarEvent{}, ErrEventTitleRequired
	}
	if len(title) > model.MaxEventTitleLength {
		return model.CalendarEvent{}, ErrEventTitleTooLong
	}
	if req.Description != nil && len(*req.Description) > model.MaxEventDescriptionLength {
		return model.CalendarEvent{}, ErrDescriptionTooLong
	}

	category := req.Category
	if category == "" {
		category = model.CategoryGeneral
	}
	if !category.Valid() {
		return model.CalendarEvent{}, ErrInvalidCategory
	}

	start := req.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	var end time.Time
	if req.EndTime != nil {
		end = *req.EndTime
	} else {
		end = start.Add(model.DefaultEventDuration)
	}
	if end.Before(start) && !req.IsAllDay {
		return model.CalendarEvent{}, ErrEventEndsBeforeStart
	}

	return model.CalendarEvent{
		ID:          req.ID,
		Title:       title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   start,
		EndTime:     end,
		IsAllDay:    req.IsAllDay,
		Category:    category,
		AssignedTo:  req.AssignedTo,
	}, nil
}

// persist writes the event through to the database. Failures are logged
// and the optimistic store state stands; the sync layer reconciles once
// the database is reachable again.
func (s *EventService) persist(ctx context.Context, ev model.CalendarEvent) {
	if err := s.repo.SetEvent(ctx, ev); err != nil {
		s.logger.Error("event not persisted",
			slog.String("event_id", ev.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *EventService) changed() {
	if s.notifier != nil {
		s.notifier.CollectionChanged(realtime.CollectionEvents)
	}
}
