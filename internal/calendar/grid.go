package calendar

import "time"

// ViewMode selects between the month grid and the week strip.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewMonth || m == ViewWeek
}

// Day is a single cell in a month grid. A zero Day (Date.IsZero) is a
// leading placeholder that aligns the 1st of the month with its weekday
// column in a Sunday-first header.
type Day struct {
	Date time.Time `json:"date,omitzero"`
}

// IsPlaceholder reports whether the cell carries no date.
func (d Day) IsPlaceholder() bool {
	return d.Date.IsZero()
}

// MonthGrid produces the cell sequence for a month view: FirstWeekday
// placeholders followed by the month's dates in order. The result always
// starts on a Sunday column, so its length is FirstWeekday + DaysInMonth.
func MonthGrid(year int, month time.Month) []Day {
	lead := FirstWeekday(year, month)
	total := DaysInMonth(year, month)

	grid := make([]Day, 0, lead+total)
	for i := 0; i < lead; i++ {
		grid = append(grid, Day{})
	}
	for d := 1; d <= total; d++ {
		grid = append(grid, Day{Date: time.Date(year, month, d, 0, 0, 0, 0, time.UTC)})
	}
	return grid
}

// WeekDays returns the 7 consecutive dates of the week containing ref,
// starting on Sunday. The reference date is always among them.
func WeekDays(ref time.Time) []time.Time {
	start := ref.AddDate(0, 0, -int(ref.Weekday()))
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, ref.Location())

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Navigate shifts a reference date by delta periods in the given mode:
// whole months in month view, whole weeks in week view. Switching modes is
// not a navigation; the selected date is preserved by the caller.
func Navigate(ref time.Time, mode ViewMode, delta int) time.Time {
	if mode == ViewWeek {
		return ref.AddDate(0, 0, 7*delta)
	}
	return ref.AddDate(0, delta, 0)
}
