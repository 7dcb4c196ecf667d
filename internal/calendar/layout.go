package calendar

import (
	"sort"
	"time"

	"github.com/ella-quan/meowhome/internal/model"
)

const (
	// DefaultPixelsPerHour matches the hour-row height of the web client.
	DefaultPixelsPerHour = 60

	// MinDurationMinutes is the rendered floor for timed events, so that
	// zero-length entries stay visible and clickable.
	MinDurationMinutes = 30

	// MaxDayMarkers caps the density dots shown per day in month view.
	// It is a display cap only; the day's event list is never truncated.
	MaxDayMarkers = 4
)

// EventBox is the computed placement of one timed event in a day column.
type EventBox struct {
	Event model.CalendarEvent `json:"event"`

	// StartOffsetMinutes is minutes after midnight of the event's start.
	StartOffsetMinutes int `json:"start_offset_minutes"`
	// DurationMinutes is the rendered duration, floored at
	// MinDurationMinutes.
	DurationMinutes int `json:"duration_minutes"`

	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// DayLayout is the placement of one day's events on a 24-hour timeline:
// all-day entries stack on a shelf above the grid, timed entries get a
// linear position and height.
//
// The mapping is deliberately not a collision-avoiding packing: events that
// overlap in time overlap on screen, and the client disambiguates with
// z-order on hover. Events that cross midnight keep their raw duration and
// may overflow the column.
type DayLayout struct {
	AllDay []model.CalendarEvent `json:"all_day"`
	Timed  []EventBox            `json:"timed"`
}

// EventsOn returns the events whose start falls on the given day, ordered
// by start time. All-day events are included.
func EventsOn(events []model.CalendarEvent, day time.Time) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, ev := range events {
		if SameDay(ev.StartTime, day) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// LayoutDay computes the visual placement of a day's events.
// pixelsPerHour <= 0 falls back to DefaultPixelsPerHour.
func LayoutDay(events []model.CalendarEvent, day time.Time, pixelsPerHour int) DayLayout {
	if pixelsPerHour <= 0 {
		pixelsPerHour = DefaultPixelsPerHour
	}

	var layout DayLayout
	for _, ev := range events {
		if !SameDay(ev.StartTime, day) {
			continue
		}
		if ev.IsAllDay {
			// Stacked in insertion order; time-of-day is meaningless here.
			layout.AllDay = append(layout.AllDay, ev)
			continue
		}
		layout.Timed = append(layout.Timed, layoutEvent(ev, pixelsPerHour))
	}
	return layout
}

func layoutEvent(ev model.CalendarEvent, pixelsPerHour int) EventBox {
	offset := ev.StartTime.Hour()*60 + ev.StartTime.Minute()

	duration := int(ev.EndTime.Sub(ev.StartTime) / time.Minute)
	if duration < MinDurationMinutes {
		duration = MinDurationMinutes
	}

	return EventBox{
		Event:              ev,
		StartOffsetMinutes: offset,
		DurationMinutes:    duration,
		Top:                float64(offset) / 60 * float64(pixelsPerHour),
		Height:             float64(duration) / 60 * float64(pixelsPerHour),
	}
}

// DayMarkers returns the density markers for a day in month view: the
// categories of the day's first events, truncated at MaxDayMarkers.
func DayMarkers(events []model.CalendarEvent, day time.Time) []model.EventCategory {
	var markers []model.EventCategory
	for _, ev := range EventsOn(events, day) {
		markers = append(markers, ev.Category)
		if len(markers) == MaxDayMarkers {
			break
		}
	}
	return markers
}
