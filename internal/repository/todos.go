package repository

import (
	"context"
	"fmt"

	"github.com/ella-quan/meowhome/internal/model"
)

// ListTodos returns all of the family's todos, newest first.
func (r *FamilyRepository) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	query := `SELECT * FROM todo WHERE family = $family ORDER BY created_at DESC`
	vars := map[string]interface{}{"family": r.family}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	todos := make([]model.TodoItem, 0, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		todos = append(todos, parseTodo(data))
	}
	return todos, nil
}

// SetTodo creates or fully replaces a todo record.
func (r *FamilyRepository) SetTodo(ctx context.Context, td model.TodoItem) error {
	query := `
		UPDATE type::thing('todo', $id) CONTENT {
			family: $family,
			title: $title,
			completed: $completed,
			priority: $priority,
			assigned_to: $assigned_to,
			created_at: $created_at
		}`
	vars := map[string]interface{}{
		"id":          td.ID,
		"family":      r.family,
		"title":       td.Title,
		"completed":   td.Completed,
		"priority":    string(td.Priority),
		"assigned_to": td.AssignedTo,
		"created_at":  td.CreatedAt,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("set todo %s: %w", td.ID, err)
	}
	return nil
}

// PatchTodo merges the given fields into an existing todo record.
func (r *FamilyRepository) PatchTodo(ctx context.Context, id string, patch map[string]interface{}) error {
	query := `UPDATE type::thing('todo', $id) MERGE $patch WHERE family = $family`
	vars := map[string]interface{}{
		"id":     id,
		"family": r.family,
		"patch":  patch,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("patch todo %s: %w", id, err)
	}
	return nil
}

// DeleteTodo removes a todo record. Deleting an absent record is a
// no-op.
func (r *FamilyRepository) DeleteTodo(ctx context.Context, id string) error {
	query := `DELETE type::thing('todo', $id) WHERE family = $family`
	vars := map[string]interface{}{"id": id, "family": r.family}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}

func parseTodo(data map[string]interface{}) model.TodoItem {
	return model.TodoItem{
		ID:         recordKey(data["id"]),
		Title:      getString(data, "title"),
		Completed:  getBool(data, "completed"),
		Priority:   model.Priority(getString(data, "priority")),
		AssignedTo: getStringPtr(data, "assigned_to"),
		CreatedAt:  getTime(data, "created_at"),
	}
}
