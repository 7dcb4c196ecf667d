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

// TodoWriter is the persistence surface the todo service needs.
type TodoWriter interface {
	SetTodo(ctx context.Context, td model.TodoItem) error
	PatchTodo(ctx context.Context, id string, patch map[string]interface{}) error
	DeleteTodo(ctx context.Context, id string) error
}

// TodoService handles todo list business logic.
type TodoService struct {
	store    *store.Store
	repo     TodoWriter
	notifier realtime.Notifier
	logger   *slog.Logger
}

// NewTodoService creates a new todo service.
func NewTodoService(st *store.Store, repo TodoWriter, notifier realtime.Notifier, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoService{store: st, repo: repo, notifier: notifier, logger: logger}
}

// CreateTodo validates and applies defaults to a create request, then
// stores the todo optimistically and persists it best-effort.
func (s *TodoService) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.TodoItem, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.TodoItem{}, ErrTodoTitleRequired
	}
	if len(title) > model.MaxTodoTitleLength {
		return model.TodoItem{}, ErrTodoTitleTooLong
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.TodoItem{}, ErrInvalidPriority
	}

	td := model.TodoItem{
		ID:         req.ID,
		Title:      title,
		Completed:  false,
		Priority:   priority,
		AssignedTo: req.AssignedTo,
		CreatedAt:  time.Now(),
	}
	if td.ID == "" {
		td.ID = newID()
	}

	s.store.PutTodo(td)
	if err := s.repo.SetTodo(ctx, td); err != nil {
		s.logger.Error("todo not persisted",
			slog.String("todo_id", td.ID),
			slog.String("error", err.Error()),
		)
	}
	s.changed()
	return td, nil
}

// ToggleTodo flips a todo's completed flag. Only the flag changes; the
// persistence write is a field merge so concurrent edits to other
// fields survive.
func (s *TodoService) ToggleTodo(ctx context.Context, id string) (model.TodoItem, error) {
	td, ok := s.store.Todo(id)
	if !ok {
		return model.TodoItem{}, ErrTodoNotFound
	}

	td.Completed = !td.Completed
	s.store.PutTodo(td)
	if err := s.repo.PatchTodo(ctx, id, map[string]interface{}{"completed": td.Completed}); err != nil {
		s.logger.Error("todo toggle not persisted",
			slog.String("todo_id", id),
			slog.String("error", err.Error()),
		)
	}
	s.changed()
	return td, nil
}

// DeleteTodo removes a todo. Deleting an unknown id is a no-op.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) {
	s.store.DeleteTodo(id)
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		s.logger.Error("todo delete not persisted",
			slog.String("todo_id", id),
			slog.String("error", err.Error()),
		)
	}
	s.changed()
}

// ListTodos returns the current todos in display order: incomplete
// first, high priority first, newest first.
func (s *TodoService) ListTodos() []model.TodoItem {
	todos := s.store.Todos()
	model.SortTodosForDisplay(todos)
	return todos
}

func (s *TodoService) changed() {
	if s.notifier != nil {
		s.notifier.CollectionChanged(realtime.CollectionTodos)
	}
}
