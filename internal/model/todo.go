package model

import (
	"sort"
	"time"
)

// Priority is the urgency of a todo item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TodoItem is a task on the family list.
type TodoItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	// AssignedTo is a weak reference to a FamilyMember id.
	AssignedTo *string `json:"assigned_to,omitempty"`
	// CreatedAt is stamped once at creation and never changes; it is the
	// tie-break ordering key for display.
	CreatedAt time.Time `json:"created_at"`
}

// SortTodosForDisplay orders todos in place for list rendering:
// incomplete before completed, high priority first among incomplete,
// newest CreatedAt first within equal priority.
func SortTodosForDisplay(todos []TodoItem) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		aHigh := a.Priority == PriorityHigh
		bHigh := b.Priority == PriorityHigh
		if aHigh != bHigh {
			return aHigh
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// CreateTodoRequest is the payload for creating a todo.
type CreateTodoRequest struct {
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title"`
	Priority   Priority `json:"priority,omitempty"`
	AssignedTo *string  `json:"assigned_to,omitempty"`
}

// Constraints
const (
	MaxTodoTitleLength = 200
)
