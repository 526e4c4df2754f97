package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, Location)
}

func TestNextSaturday(t *testing.T) {
	// 07.09.2026 — понедельник
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"monday", date(2026, time.September, 7, 12), date(2026, time.September, 12, 12)},
		{"tuesday", date(2026, time.September, 8, 12), date(2026, time.September, 12, 12)},
		{"wednesday", date(2026, time.September, 9, 12), date(2026, time.September, 12, 12)},
		{"thursday", date(2026, time.September, 10, 12), date(2026, time.September, 12, 12)},
		{"friday", date(2026, time.September, 11, 12), date(2026, time.September, 12, 12)},
		{"saturday jumps a full week", date(2026, time.September, 12, 12), date(2026, time.September, 19, 12)},
		{"sunday", date(2026, time.September, 13, 12), date(2026, time.September, 19, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSaturday(tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Saturday, got.Weekday())
		})
	}
}

func TestNextSaturdayAlwaysAhead(t *testing.T) {
	start := date(2026, time.January, 1, 10)
	for i := 0; i < 30; i++ {
		now := start.AddDate(0, 0, i)
		got := NextSaturday(now)

		days := int(got.Sub(now).Hours() / 24)
		assert.True(t, got.After(now), "result must be strictly in the future")
		assert.Equal(t, time.Saturday, got.Weekday())
		if now.Weekday() == time.Saturday {
			assert.Equal(t, 7, days)
		} else {
			assert.GreaterOrEqual(t, days, 1)
			assert.LessOrEqual(t, days, 6)
		}
	}
}

func TestWeekDates(t *testing.T) {
	// Суббота 12.09.2026 -> неделя с понедельника 14.09 по воскресенье 20.09
	saturday := date(2026, time.September, 12, 12)

	dates := WeekDates(saturday)

	require.Len(t, dates, 7)
	assert.Equal(t, []string{"14.09", "15.09", "16.09", "17.09", "18.09", "19.09", "20.09"}, dates)
}

func TestWeekDatesCrossesMonthBoundary(t *testing.T) {
	// Суббота 26.09.2026 -> неделя 28.09 - 04.10, даты с ведущими нулями
	saturday := date(2026, time.September, 26, 12)

	dates := WeekDates(saturday)

	require.Len(t, dates, 7)
	assert.Equal(t, "28.09", dates[0])
	assert.Equal(t, "01.10", dates[3])
	assert.Equal(t, "04.10", dates[6])
}

func TestWeekDatesStrictlyIncreasing(t *testing.T) {
	saturday := date(2026, time.March, 7, 0)
	monday := saturday.AddDate(0, 0, 2)

	dates := WeekDates(saturday)

	require.Len(t, dates, 7)
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday.AddDate(0, 0, i).Format("02.01"), dates[i])
	}
}

func TestTargetWeekStartsAfterNextSaturday(t *testing.T) {
	now := date(2026, time.September, 9, 15) // среда

	dates := TargetWeek(now)

	require.Len(t, dates, 7)
	assert.Equal(t, "14.09", dates[0])
	assert.Equal(t, "20.09", dates[6])
}

func TestNextOccurrence(t *testing.T) {
	// Среда 09.09.2026 15:00
	now := date(2026, time.September, 9, 15)

	t.Run("later this week", func(t *testing.T) {
		got := NextOccurrence(now, time.Saturday, 10, 0)
		assert.Equal(t, date(2026, time.September, 12, 10), got)
	})

	t.Run("same day later hour", func(t *testing.T) {
		got := NextOccurrence(now, time.Wednesday, 18, 30)
		assert.Equal(t, time.Date(2026, time.September, 9, 18, 30, 0, 0, Location), got)
	})

	t.Run("same day passed hour rolls a week", func(t *testing.T) {
		got := NextOccurrence(now, time.Wednesday, 10, 0)
		assert.Equal(t, date(2026, time.September, 16, 10), got)
	})

	t.Run("earlier weekday rolls to next week", func(t *testing.T) {
		got := NextOccurrence(now, time.Monday, 9, 0)
		assert.Equal(t, date(2026, time.September, 14, 9), got)
	})
}

func TestFormat(t *testing.T) {
	moment := time.Date(2026, time.September, 9, 8, 5, 0, 0, time.UTC)
	// UTC+7: 08:05 UTC -> 15:05 по Барнаулу
	assert.Equal(t, "09.09.2026 15:05", Format(moment))
}
