package state

import (
	"sync"
)

// RegistrationState — состояние сотрудника в диалоге регистрации
type RegistrationState string

const (
	StateNone             RegistrationState = "" // Нет активного диалога
	StateAwaitingPassword RegistrationState = "awaiting_password"
	StateAwaitingFullName RegistrationState = "awaiting_full_name"
)

// Registration хранит данные незавершённой регистрации
type Registration struct {
	State     RegistrationState
	PointID   int64 // ПВЗ, выбранный паролем (после ввода пароля)
	PointName string
}

// Manager хранит состояния регистрации в памяти.
// Состояния теряются при перезапуске процесса: регистрация короткая,
// сотрудник просто начнёт её заново через /start.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*Registration // telegramID -> Registration
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*Registration),
	}
}

// Get получает текущее состояние регистрации пользователя
func (m *Manager) Get(telegramID int64) *Registration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if reg, exists := m.states[telegramID]; exists {
		copied := *reg
		return &copied
	}
	return &Registration{State: StateNone}
}

// AwaitPassword переводит пользователя в ожидание пароля
func (m *Manager) AwaitPassword(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[telegramID] = &Registration{State: StateAwaitingPassword}
}

// AwaitFullName фиксирует выбранный паролем ПВЗ и переводит в ожидание имени
func (m *Manager) AwaitFullName(telegramID int64, pointID int64, pointName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[telegramID] = &Registration{
		State:     StateAwaitingFullName,
		PointID:   pointID,
		PointName: pointName,
	}
}

// Clear завершает диалог регистрации
func (m *Manager) Clear(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, telegramID)
}
