package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerRegistrationFlow(t *testing.T) {
	m := NewManager()
	const telegramID int64 = 100500

	// Без активного диалога состояние пустое
	assert.Equal(t, StateNone, m.Get(telegramID).State)

	m.AwaitPassword(telegramID)
	assert.Equal(t, StateAwaitingPassword, m.Get(telegramID).State)

	m.AwaitFullName(telegramID, 7, "Промышленная_6")
	reg := m.Get(telegramID)
	assert.Equal(t, StateAwaitingFullName, reg.State)
	assert.Equal(t, int64(7), reg.PointID)
	assert.Equal(t, "Промышленная_6", reg.PointName)

	m.Clear(telegramID)
	assert.Equal(t, StateNone, m.Get(telegramID).State)
}

func TestManagerIsolatesUsers(t *testing.T) {
	m := NewManager()

	m.AwaitPassword(1)
	m.AwaitFullName(2, 5, "Тестовый ПВЗ")

	assert.Equal(t, StateAwaitingPassword, m.Get(1).State)
	assert.Equal(t, StateAwaitingFullName, m.Get(2).State)
	assert.Equal(t, StateNone, m.Get(3).State)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	m := NewManager()
	m.AwaitFullName(1, 5, "Тестовый ПВЗ")

	reg := m.Get(1)
	reg.PointName = "изменено"

	assert.Equal(t, "Тестовый ПВЗ", m.Get(1).PointName)
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.AwaitPassword(id)
			m.AwaitFullName(id, id, "ПВЗ")
			m.Get(id)
			m.Clear(id)
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		assert.Equal(t, StateNone, m.Get(i).State)
	}
}
