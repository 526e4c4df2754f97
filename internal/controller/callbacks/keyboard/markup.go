package keyboard

import "github.com/go-telegram/bot/models"

// Надписи на кнопках основной клавиатуры
const (
	FillFormButton      = "📝 Заполнить анкету"
	GetReportButton     = "📊 Получить отчет"
	SendRemindersButton = "📢 Отправить напоминания"
)

// Main возвращает основную reply-клавиатуру. Администратору дополнительно
// показываются кнопки отчёта и напоминаний.
func Main(isAdmin bool) *models.ReplyKeyboardMarkup {
	rows := [][]models.KeyboardButton{
		{{Text: FillFormButton}},
	}

	if isAdmin {
		rows = append(rows, []models.KeyboardButton{
			{Text: GetReportButton},
			{Text: SendRemindersButton},
		})
	}

	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}

// Remove скрывает reply-клавиатуру (на время диалога регистрации)
func Remove() *models.ReplyKeyboardRemove {
	return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
}
