package model

// Point — пункт выдачи заказов (ПВЗ). Сотрудники регистрируются по паролю ПВЗ.
type Point struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	ChatID   *int64 `json:"chat_id"` // Чат для напоминаний, nil если не настроен
}

// HasChat сообщает, настроен ли у ПВЗ чат для напоминаний
func (p *Point) HasChat() bool {
	return p.ChatID != nil
}
