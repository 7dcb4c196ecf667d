package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// TodoHandler serves the todo list endpoints.
type TodoHandler struct {
	todos *service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List handles GET /v1/todos. The response is already in display order.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.todos.ListTodos())
}

// Create handles POST /v1/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTodoRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	td, err := h.todos.CreateTodo(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, td)
}

// Toggle handles POST /v1/todos/{id}/toggle
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	td, err := h.todos.ToggleTodo(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, td)
}

// Delete handles DELETE /v1/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.todos.DeleteTodo(r.Context(), r.PathValue("id"))
	WriteNoContent(w)
}
