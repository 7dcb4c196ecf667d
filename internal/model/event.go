package model

import "time"

// EventCategory classifies a calendar event for display.
type EventCategory string

const (
	CategoryAppointment EventCategory = "appointment"
	CategoryActivity    EventCategory = "activity"
	CategoryCelebration EventCategory = "celebration"
	CategoryGeneral     EventCategory = "general"
)

// Valid reports whether c is one of the known categories.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryAppointment, CategoryActivity, CategoryCelebration, CategoryGeneral:
		return true
	}
	return false
}

// CalendarEvent is a scheduled entry on the family calendar.
//
// EndTime must not precede StartTime unless IsAllDay is set, in which case
// the time-of-day components of both instants are ignored for layout.
type CalendarEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Location    *string       `json:"location,omitempty"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	IsAllDay    bool          `json:"is_all_day"`
	Category    EventCategory `json:"category"`
	// AssignedTo is a weak reference to a FamilyMember id.
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// CreateEventRequest is the payload for creating an event.
// Omitted fields are defaulted: EndTime to StartTime plus one hour,
// Category to general.
type CreateEventRequest struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Location    *string       `json:"location,omitempty"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     *time.Time    `json:"end_time,omitempty"`
	IsAllDay    bool          `json:"is_all_day"`
	Category    EventCategory `json:"category,omitempty"`
	AssignedTo  *string       `json:"assigned_to,omitempty"`
}

// Constraints
const (
	MaxEventTitleLength       = 100
	MaxEventDescriptionLength = 2000

	// DefaultEventDuration fills in EndTime when a create request omits it.
	DefaultEventDuration = time.Hour
)
