package utils_test

import (
	"testing"
	"time"

	"tracker/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), utils.TruncateToDay(ts))
}

func TestTruncateToDay_NormalizesZones(t *testing.T) {
	// The same calendar day in any zone truncates to the same UTC midnight,
	// so day comparisons never depend on where a timestamp came from.
	utcMidnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	east := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("EET", 2*60*60))
	west := time.Date(2024, 3, 1, 22, 0, 0, 0, time.FixedZone("PST", -8*60*60))

	assert.Equal(t, utcMidnight, utils.TruncateToDay(east))
	assert.Equal(t, utcMidnight, utils.TruncateToDay(west))
	assert.Equal(t, utils.TruncateToDay(east), utils.TruncateToDay(utcMidnight))
}

func TestDaysBetween_AcrossZones(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 11, 1, 0, 0, 0, time.FixedZone("EET", 2*60*60))
	assert.Equal(t, 10, utils.DaysBetween(start, end))
}

func TestMonthBounds(t *testing.T) {
	ts := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), utils.MonthStart(ts))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), utils.MonthEnd(ts))
}

func TestYearBounds(t *testing.T) {
	ts := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), utils.YearStart(ts))
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), utils.YearEnd(ts))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, utils.DaysBetween(start, end))
	assert.Equal(t, 0, utils.DaysBetween(end, end))
}

func TestTimeAgo(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", utils.TimeAgo(asOf.Add(-30*time.Second), asOf))
	assert.Equal(t, "1 minute ago", utils.TimeAgo(asOf.Add(-90*time.Second), asOf))
	assert.Equal(t, "5 minutes ago", utils.TimeAgo(asOf.Add(-5*time.Minute), asOf))
	assert.Equal(t, "2 hours ago", utils.TimeAgo(asOf.Add(-2*time.Hour), asOf))
	assert.Equal(t, "3 days ago", utils.TimeAgo(asOf.AddDate(0, 0, -3), asOf))
	assert.Equal(t, "2 months ago", utils.TimeAgo(asOf.AddDate(0, -2, 0), asOf))
	assert.Equal(t, "2 years ago", utils.TimeAgo(asOf.AddDate(-2, 0, 0), asOf))
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 26.67, utils.RoundCurrency(26.666666))
	assert.Equal(t, -20.0, utils.RoundCurrency(-20.0))
	assert.Equal(t, 0.1, utils.RoundCurrency(0.1))
}
