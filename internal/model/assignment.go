package model

import "time"

// Фиксированные варианты смен
const (
	SlotMorning  = "9.00-15.00"
	SlotEvening  = "15.00-21.00"
	SlotAsNeeded = "Как нужно ПВЗ"
	SlotDayOff   = "Выходной"
)

// Assignment — смена сотрудника на одну дату целевой недели.
// Дата хранится как "ДД.ММ" без года, логический ключ — (TelegramID, Date).
type Assignment struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	CreatedAt  time.Time `json:"created_at"`
}
