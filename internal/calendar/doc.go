// Package calendar contains the pure scheduling math behind the calendar
// views: civil-date utilities, month/week grid generation, and the pixel
// layout of a day's events on a 24-hour timeline.
//
// Everything in this package is a pure function of its inputs (IsToday being
// the one wall-clock exception); all database and transport concerns live
// elsewhere.
package calendar
