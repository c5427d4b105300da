// Package report implements time-windowed rollups over orders and
// expenses. Everything here is pure; repositories feed it slices.
package report

import "time"

type ReportType string

const (
	Daily   ReportType = "daily"
	Monthly ReportType = "monthly"
	Yearly  ReportType = "yearly"
)

func (t ReportType) Valid() bool {
	return t == Daily || t == Monthly || t == Yearly
}

// WindowFor returns the half-open interval [start, end) that buckets
// orders and expenses for the given report type, in now's location.
func WindowFor(reportType ReportType, now time.Time) (start, end time.Time) {
	loc := now.Location()

	switch reportType {
	case Monthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	case Yearly:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default: // Daily
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	}

	return start, end
}

// InWindow reports whether ts falls inside [start, end).
func InWindow(ts, start, end time.Time) bool {
	return !ts.Before(start) && ts.Before(end)
}
