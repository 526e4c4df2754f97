package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftStartTimes(t *testing.T) {
	times := ShiftStartTimes()

	// От 9:00 до 21:00 включительно с шагом 30 минут
	require.Len(t, times, 25)
	assert.Equal(t, "9:00", times[0])
	assert.Equal(t, "9:30", times[1])
	assert.Equal(t, "20:30", times[23])
	assert.Equal(t, "21:00", times[24])
}

func TestShiftEndTimes(t *testing.T) {
	tests := []struct {
		start string
		want  []string
	}{
		{"20:30", []string{"21:00"}},
		{"20:00", []string{"20:30", "21:00"}},
		{"21:00", nil}, // После закрытия вариантов нет
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := ShiftEndTimes(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftEndTimesStrictlyAfterStart(t *testing.T) {
	got, err := ShiftEndTimes("9:00")
	require.NoError(t, err)

	// 9:30 ... 21:00 — начало в список не попадает
	require.Len(t, got, 24)
	assert.Equal(t, "9:30", got[0])
	assert.Equal(t, "21:00", got[23])
	assert.NotContains(t, got, "9:00")
}

func TestShiftEndTimesMalformedStart(t *testing.T) {
	_, err := ShiftEndTimes("вечером")
	assert.Error(t, err)
}
