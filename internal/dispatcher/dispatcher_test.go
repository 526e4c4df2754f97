package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNonCompletionMessage(t *testing.T) {
	message := buildNonCompletionMessage([]string{"Глеб Самарин", "Оля Петрова"})

	assert.Contains(t, message, "Ещё не заполнили анкету")
	assert.Contains(t, message, "1. Глеб Самарин")
	assert.Contains(t, message, "2. Оля Петрова")
}

func TestBuildNonCompletionMessageAllDone(t *testing.T) {
	message := buildNonCompletionMessage(nil)

	assert.Contains(t, message, "Все сотрудники заполнили анкету")
	assert.NotContains(t, message, "Ещё не заполнили")
}
