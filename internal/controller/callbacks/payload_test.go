package callbacks

import (
	"testing"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotCallback(t *testing.T) {
	tests := []struct {
		data      string
		dayIndex  int
		slotKey   string
		wantLabel string
	}{
		{"day_0_9-15", 0, SlotKeyMorning, model.SlotMorning},
		{"day_3_15-21", 3, SlotKeyEvening, model.SlotEvening},
		{"day_6_asneeded", 6, SlotKeyAsNeeded, model.SlotAsNeeded},
		{"day_2_dayoff", 2, SlotKeyDayOff, model.SlotDayOff},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			payload, err := Parse(tt.data)
			require.NoError(t, err)

			assert.Equal(t, KindSlot, payload.Kind)
			assert.Equal(t, tt.dayIndex, payload.DayIndex)
			assert.Equal(t, tt.slotKey, payload.SlotKey)

			label, ok := payload.SlotLabel()
			require.True(t, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestParseExactTimeCallbacks(t *testing.T) {
	payload, err := Parse("day_1_exact")
	require.NoError(t, err)
	assert.Equal(t, KindSlot, payload.Kind)
	assert.Equal(t, SlotKeyExact, payload.SlotKey)

	// У варианта "Точное время" нет сохраняемого значения смены
	_, ok := payload.SlotLabel()
	assert.False(t, ok)

	payload, err = Parse("start_1_9:30")
	require.NoError(t, err)
	assert.Equal(t, KindStart, payload.Kind)
	assert.Equal(t, 1, payload.DayIndex)
	assert.Equal(t, "9:30", payload.StartTime)

	payload, err = Parse("end_1_9:30_18:00")
	require.NoError(t, err)
	assert.Equal(t, KindEnd, payload.Kind)
	assert.Equal(t, "9:30", payload.StartTime)
	assert.Equal(t, "18:00", payload.EndTime)

	payload, err = Parse("cancel_4")
	require.NoError(t, err)
	assert.Equal(t, KindCancel, payload.Kind)
	assert.Equal(t, 4, payload.DayIndex)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	tests := []string{
		SlotData(0, SlotKeyMorning),
		SlotData(6, SlotKeyExact),
		StartData(2, "10:30"),
		EndData(2, "10:30", "21:00"),
		CancelData(5),
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := Parse(data)
			assert.NoError(t, err)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"",
		"garbage",
		"day_0",
		"day_0_unknown",
		"day_7_dayoff",  // день за пределами недели
		"day_-1_dayoff", // отрицательный индекс
		"day_x_dayoff",
		"start_0",
		"end_0_9:30",
		"cancel_0_extra",
		"noop",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := Parse(data)
			assert.Error(t, err)
		})
	}
}
