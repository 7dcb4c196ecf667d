package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// InputParser turns free text into a structured todo or event draft.
type InputParser interface {
	Parse(ctx context.Context, input string, members []model.FamilyMember) (*model.ParsedInput, error)
}

// MagicResult is the outcome of a magic input: exactly one of Todo or
// Event is set, matching Type.
type MagicResult struct {
	Type  string               `json:"type"`
	Todo  *model.TodoItem      `json:"todo,omitempty"`
	Event *model.CalendarEvent `json:"event,omitempty"`
}

// MagicService routes natural-language input through the parser and
// into the todo or event pipeline.
type MagicService struct {
	store  *store.Store
	parser InputParser
	todos  *TodoService
	events *EventService
	logger *slog.Logger
}

// NewMagicService creates a new magic input service.
func NewMagicService(st *store.Store, p InputParser, todos *TodoService, events *EventService, logger *slog.Logger) *MagicService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MagicService{store: st, parser: p, todos: todos, events: events, logger: logger}
}

// Process parses the input and creates the item it describes. Parser
// output is never trusted: missing or malformed fields fall back to the
// same defaults a manual create request gets.
func (s *MagicService) Process(ctx context.Context, input string) (MagicResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return MagicResult{}, ErrInputRequired
	}
	if s.parser == nil {
		return MagicResult{}, ErrParseFailed
	}

	members := s.store.Members()
	parsed, err := s.parser.Parse(ctx, input, members)
	if err != nil {
		s.logger.Warn("magic input parse failed",
			slog.String("error", err.Error()),
		)
		return MagicResult{}, ErrParseFailed
	}
	if parsed == nil {
		return MagicResult{}, ErrParseFailed
	}

	switch parsed.Type {
	case model.ParsedTypeTodo:
		return s.createTodo(ctx, input, parsed.Data, members)
	case model.ParsedTypeEvent:
		return s.createEvent(ctx, input, parsed.Data, members)
	default:
		return MagicResult{}, ErrParseFailed
	}
}

func (s *MagicService) createTodo(ctx context.Context, input string, data model.ParsedData, members []model.FamilyMember) (MagicResult, error) {
	req := model.CreateTodoRequest{
		Title:      fallbackTitle(data.Title, input),
		AssignedTo: resolveMemberRef(data.AssignedTo, members),
	}
	if p := model.Priority(data.Priority); p.Valid() {
		req.Priority = p
	}

	td, err := s.todos.CreateTodo(ctx, req)
	if err != nil {
		return MagicResult{}, err
	}
	return MagicResult{Type: model.ParsedTypeTodo, Todo: &td}, nil
}

func (s *MagicService) createEvent(ctx context.Context, input string, data model.ParsedData, members []model.FamilyMember) (MagicResult, error) {
	req := model.CreateEventRequest{
		Title:      fallbackTitle(data.Title, input),
		IsAllDay:   data.IsAllDay,
		AssignedTo: resolveMemberRef(data.AssignedTo, members),
	}
	if c := model.EventCategory(data.EventType); c.Valid() {
		req.Category = c
	}
	if data.Location != "" {
		loc := data.Location
		req.Location = &loc
	}
	if t, ok := parseTimestamp(data.StartTime); ok {
		req.StartTime = t
	}
	if t, ok := parseTimestamp(data.EndTime); ok {
		req.EndTime = &t
	}
	// A garbled end time is dropped rather than rejected; the create
	// path fills in the default duration.
	if req.EndTime != nil && !req.StartTime.IsZero() && req.EndTime.Before(req.StartTime) {
		req.EndTime = nil
	}

	ev, err := s.events.CreateEvent(ctx, req)
	if err != nil {
		return MagicResult{}, err
	}
	return MagicResult{Type: model.ParsedTypeEvent, Event: &ev}, nil
}

func fallbackTitle(title, input string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	return input
}

// resolveMemberRef matches a parsed assignee against the roster by id
// first, then by case-insensitive name. Unresolvable references become
// unassigned.
func resolveMemberRef(ref string, members []model.FamilyMember) *string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	if m, ok := model.MemberByID(members, ref); ok {
		return &m.ID
	}
	for _, m := range members {
		if strings.EqualFold(m.Name, ref) {
			id := m.ID
			return &id
		}
	}
	return nil
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
