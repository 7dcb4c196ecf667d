package service

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ella-quan/meowhome/internal/calendar"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// MonthCell is one cell of the month view: either a leading placeholder
// or a date with its density markers.
type MonthCell struct {
	Date        *time.Time            `json:"date,omitempty"`
	IsToday     bool                  `json:"is_today,omitempty"`
	Markers     []model.EventCategory `json:"markers,omitempty"`
	EventCount  int                   `json:"event_count,omitempty"`
	Placeholder bool                  `json:"placeholder,omitempty"`
}

// MonthView is the month grid with per-day event density.
type MonthView struct {
	Year  int         `json:"year"`
	Month time.Month  `json:"month"`
	Cells []MonthCell `json:"cells"`
}

// WeekColumn is one day column of the week view.
type WeekColumn struct {
	Date    time.Time          `json:"date"`
	IsToday bool               `json:"is_today,omitempty"`
	Layout  calendar.DayLayout `json:"layout"`
}

// WeekView is the seven-column week strip with laid-out events.
type WeekView struct {
	Days []WeekColumn `json:"days"`
}

// CalendarService renders calendar views from the current snapshot.
type CalendarService struct {
	store *store.Store
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(st *store.Store) *CalendarService {
	return &CalendarService{store: st}
}

// Month builds the month grid for the given year and month.
func (s *CalendarService) Month(year int, month time.Month) MonthView {
	events := s.store.Events()

	view := MonthView{Year: year, Month: month}
	for _, day := range calendar.MonthGrid(year, month) {
		if day.IsPlaceholder() {
			view.Cells = append(view.Cells, MonthCell{Placeholder: true})
			continue
		}
		date := day.Date
		view.Cells = append(view.Cells, MonthCell{
			Date:       &date,
			IsToday:    calendar.IsToday(date),
			Markers:    calendar.DayMarkers(events, date),
			EventCount: len(calendar.EventsOn(events, date)),
		})
	}
	return view
}

// Week builds the week strip containing ref, one laid-out column per
// day. pixelsPerHour <= 0 falls back to the default.
func (s *CalendarService) Week(ref time.Time, pixelsPerHour int) WeekView {
	events := s.store.Events()

	var view WeekView
	for _, date := range calendar.WeekDays(ref) {
		view.Days = append(view.Days, WeekColumn{
			Date:    date,
			IsToday: calendar.IsToday(date),
			Layout:  calendar.LayoutDay(events, date, pixelsPerHour),
		})
	}
	return view
}

// ExportICS serializes the full event collection as an iCalendar
// document. All-day events use DATE values, timed events DATE-TIME.
func (s *CalendarService) ExportICS() string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetName("MeowHome")

	for _, ev := range s.store.Events() {
		ve := cal.AddEvent(ev.ID + "@meowhome.app")
		ve.SetDtStampTime(time.Now())
		ve.SetSummary(ev.Title)
		if ev.Description != nil {
			ve.SetDescription(*ev.Description)
		}
		if ev.Location != nil {
			ve.SetLocation(*ev.Location)
		}
		if ev.IsAllDay {
			ve.SetAllDayStartAt(ev.StartTime)
			ve.SetAllDayEndAt(ev.EndTime)
		} else {
			ve.SetStartAt(ev.StartTime)
			ve.SetEndAt(ev.EndTime)
		}
	}
	return cal.Serialize()
}
