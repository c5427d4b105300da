package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowForDaily(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end := WindowFor(Daily, now)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowForMonthly(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end := WindowFor(Monthly, now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowForYearly(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end := WindowFor(Yearly, now)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowForKeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, loc)

	start, end := WindowFor(Daily, now)
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), end)
}

func TestInWindowHalfOpen(t *testing.T) {
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	// Start is inclusive, end is exclusive
	assert.True(t, InWindow(start, start, end))
	assert.True(t, InWindow(start.Add(time.Hour), start, end))
	assert.False(t, InWindow(end, start, end))
	assert.False(t, InWindow(start.Add(-time.Nanosecond), start, end))
}

func TestReportTypeValid(t *testing.T) {
	assert.True(t, Daily.Valid())
	assert.True(t, Monthly.Valid())
	assert.True(t, Yearly.Valid())
	assert.False(t, ReportType("weekly").Valid())
	assert.False(t, ReportType("").Valid())
}
