package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainKeyboardForEmployee(t *testing.T) {
	markup := Main(false)

	require.Len(t, markup.Keyboard, 1)
	require.Len(t, markup.Keyboard[0], 1)
	assert.Equal(t, FillFormButton, markup.Keyboard[0][0].Text)
	assert.True(t, markup.ResizeKeyboard)
}

func TestMainKeyboardForAdmin(t *testing.T) {
	markup := Main(true)

	require.Len(t, markup.Keyboard, 2)
	assert.Equal(t, FillFormButton, markup.Keyboard[0][0].Text)

	require.Len(t, markup.Keyboard[1], 2)
	assert.Equal(t, GetReportButton, markup.Keyboard[1][0].Text)
	assert.Equal(t, SendRemindersButton, markup.Keyboard[1][1].Text)
}

func TestBuilderGrid(t *testing.T) {
	markup := NewBuilder().
		Grid(3,
			Button("9:00", "start_0_9:00"),
			Button("9:30", "start_0_9:30"),
			Button("10:00", "start_0_10:00"),
			Button("10:30", "start_0_10:30"),
		).
		Row(Button("❌ Отмена", "cancel_0")).
		Build()

	require.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 3)
	assert.Len(t, markup.InlineKeyboard[1], 1)
	assert.Equal(t, "10:30", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "cancel_0", markup.InlineKeyboard[2][0].CallbackData)
}

func TestBuilderSkipsEmptyRow(t *testing.T) {
	markup := NewBuilder().Row().Row(Button("x", "y")).Build()

	require.Len(t, markup.InlineKeyboard, 1)
}
