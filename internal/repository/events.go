package repository

import (
	"context"
	"fmt"

	"github.com/ella-quan/meowhome/internal/model"
)

// ListEvents returns all of the family's calendar events ordered by
// start time.
func (r *FamilyRepository) ListEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	query := `SELECT * FROM event WHERE family = $family ORDER BY start_time ASC`
	vars := map[string]interface{}{"family": r.family}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	events := make([]model.CalendarEvent, 0, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		events = append(events, parseEvent(data))
	}
	return events, nil
}

// SetEvent creates or fully replaces an event record.
func (r *FamilyRepository) SetEvent(ctx context.Context, ev model.CalendarEvent) error {
	query := `
		UPDATE type::thing('event', $id) CONTENT {
			family: $family,
			title: $title,
			description: $description,
			location: $location,
			start_time: $start_time,
			end_time: $end_time,
			is_all_day: $is_all_day,
			category: $category,
			assigned_to: $assigned_to
		}`
	vars := map[string]interface{}{
		"id":          ev.ID,
		"family":      r.family,
		"title":       ev.Title,
		"description": ev.Description,
		"location":    ev.Location,
		"start_time":  ev.StartTime,
		"end_time":    ev.EndTime,
		"is_all_day":  ev.IsAllDay,
		"category":    string(ev.Category),
		"assigned_to": ev.AssignedTo,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("set event %s: %w", ev.ID, err)
	}
	return nil
}

// DeleteEvent removes an event record. Deleting an absent record is a
// no-op.
func (r *FamilyRepository) DeleteEvent(ctx context.Context, id string) error {
	query := `DELETE type::thing('event', $id) WHERE family = $family`
	vars := map[string]interface{}{"id": id, "family": r.family}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func parseEvent(data map[string]interface{}) model.CalendarEvent {
	return model.CalendarEvent{
		ID:          recordKey(data["id"]),
		Title:       getString(data, "title"),
		Description: getStringPtr(data, "description"),
		Location:    getStringPtr(data, "location"),
		StartTime:   getTime(data, "start_time"),
		EndTime:     getTime(data, "end_time"),
		IsAllDay:    getBool(data, "is_all_day"),
		Category:    model.EventCategory(getString(data, "category")),
		AssignedTo:  getStringPtr(data, "assigned_to"),
	}
}
