package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

func calendarFixture(t *testing.T) *CalendarService {
	t.Helper()

	st := store.New()
	loc := func(s string) *string { return &s }
	st.ReplaceEvents([]model.CalendarEvent{
		{
			ID:        "e1",
			Title:     "Dentist",
			Location:  loc("Main St"),
			StartTime: time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
			Category:  model.CategoryAppointment,
		},
		{
			ID:        "e2",
			Title:     "Birthday",
			StartTime: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 3, 12, 23, 59, 0, 0, time.UTC),
			IsAllDay:  true,
			Category:  model.CategoryCelebration,
		},
	})
	return NewCalendarService(st)
}

func TestCalendarMonth(t *testing.T) {
	view := calendarFixture(t).Month(2024, time.March)

	// March 2024 starts on a Friday and has 31 days.
	require.Len(t, view.Cells, 5+31)
	for _, cell := range view.Cells[:5] {
		assert.True(t, cell.Placeholder)
		assert.Nil(t, cell.Date)
	}

	day12 := view.Cells[5+11]
	require.NotNil(t, day12.Date)
	assert.Equal(t, 12, day12.Date.Day())
	assert.Equal(t, 2, day12.EventCount)
	assert.Equal(t, []model.EventCategory{
		model.CategoryCelebration, model.CategoryAppointment,
	}, day12.Markers, "all-day midnight start sorts first")
}

func TestCalendarWeek(t *testing.T) {
	ref := time.Date(2024, 3, 12, 15, 0, 0, 0, time.UTC) // a Tuesday
	view := calendarFixture(t).Week(ref, 0)

	require.Len(t, view.Days, 7)
	assert.Equal(t, time.Sunday, view.Days[0].Date.Weekday())

	tuesday := view.Days[2]
	assert.Equal(t, 12, tuesday.Date.Day())
	require.Len(t, tuesday.Layout.AllDay, 1)
	require.Len(t, tuesday.Layout.Timed, 1)
	assert.Equal(t, "e1", tuesday.Layout.Timed[0].Event.ID)
	assert.Equal(t, 540, tuesday.Layout.Timed[0].StartOffsetMinutes)

	for _, day := range view.Days[3:] {
		assert.Empty(t, day.Layout.AllDay)
		assert.Empty(t, day.Layout.Timed)
	}
}

func TestCalendarExportICS(t *testing.T) {
	out := calendarFixture(t).ExportICS()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Dentist")
	assert.Contains(t, out, "LOCATION:Main St")
	assert.Contains(t, out, "UID:e1@meowhome.app")
	assert.Contains(t, out, "DTSTART:20240312T090000Z")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240312", "all-day events use DATE values")
	assert.Contains(t, out, "END:VCALENDAR")
}

func TestCalendarExportICSEmpty(t *testing.T) {
	out := NewCalendarService(store.New()).ExportICS()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
