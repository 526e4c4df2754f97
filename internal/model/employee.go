package model

// Employee — сотрудник ПВЗ
type Employee struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	PointID    int64  `json:"point_id"`
	FullName   string `json:"full_name"`

	// Заполняется join-ом при чтении
	PointName string `json:"point_name"`
}

// DisplayName возвращает имя для отчётов: полное имя, иначе имя из Telegram,
// иначе username
func (e *Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	if e.FirstName != "" {
		return e.FirstName
	}
	return e.Username
}
