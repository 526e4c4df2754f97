package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/controller/callbacks/keyboard"
	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

// RenderDay отправляет форму выбора смены на один день целевой недели.
// При dayIndex == 0 сначала уходит заголовок анкеты, при dayIndex >= 7
// анкета завершается: сотруднику — итог, администратору — уведомление.
func (h *Handler) RenderDay(ctx context.Context, b *bot.Bot, employee *model.Employee, dayIndex int) {
	chatID := employee.TelegramID
	weekDates := h.Schedule.TargetWeek()

	if dayIndex >= len(weekDates) {
		h.finishForm(ctx, b, employee, weekDates)
		return
	}

	if dayIndex == 0 {
		headerText := fmt.Sprintf(
			"📋 Заполните расписание на следующую неделю!\n\n"+
				"Период: %s - %s\n"+
				"Ваш ПВЗ: %s\n\n"+
				"Заполняйте по одному дню:",
			weekDates[0], weekDates[len(weekDates)-1], employee.PointName,
		)
		h.send(ctx, b, chatID, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        headerText,
			ReplyMarkup: keyboard.Main(h.isAdmin(employee.TelegramID)),
		})
	}

	date := weekDates[dayIndex]
	dayName := timetable.DayNames[dayIndex]

	saved, err := h.Schedule.WeekSchedule(ctx, chatID, []string{date})
	if err != nil {
		h.Logger.Error("Failed to load saved slot", zap.String("date", date), zap.Error(err))
		saved = map[string]string{}
	}

	indicator := ""
	if slot, ok := saved[date]; ok {
		indicator = fmt.Sprintf(" ✅ %s", slot)
	}

	markup := keyboard.NewBuilder().
		Row(
			keyboard.Button(model.SlotMorning, SlotData(dayIndex, SlotKeyMorning)),
			keyboard.Button(model.SlotEvening, SlotData(dayIndex, SlotKeyEvening)),
		).
		Row(
			keyboard.Button(model.SlotAsNeeded, SlotData(dayIndex, SlotKeyAsNeeded)),
			keyboard.Button(model.SlotDayOff, SlotData(dayIndex, SlotKeyDayOff)),
		).
		Row(
			keyboard.Button("Точное время", SlotData(dayIndex, SlotKeyExact)),
		).
		Build()

	h.send(ctx, b, chatID, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("%s - %s%s\nВыберите вариант:", date, dayName, indicator),
		ReplyMarkup: markup,
	})
}

// finishForm завершает анкету: считает заполненные дни и уведомляет
// администратора. Сбой уведомления не откатывает заполнение.
func (h *Handler) finishForm(ctx context.Context, b *bot.Bot, employee *model.Employee, weekDates []string) {
	filled, err := h.Schedule.FilledDays(ctx, employee.TelegramID, weekDates)
	if err != nil {
		h.Logger.Error("Failed to count filled days",
			zap.Int64("telegram_id", employee.TelegramID), zap.Error(err))
	}

	h.send(ctx, b, employee.TelegramID, &bot.SendMessageParams{
		ChatID: employee.TelegramID,
		Text: fmt.Sprintf(
			"✅ Отлично! Вы заполнили расписание на %d из %d дней!\n\n"+
				"Посмотреть свое расписание: /myschedule\n"+
				"Перезаполнить анкету: /form",
			filled, len(weekDates),
		),
		ReplyMarkup: keyboard.Main(h.isAdmin(employee.TelegramID)),
	})

	adminMessage := fmt.Sprintf(
		"📋 Новое заполненное расписание!\n\n"+
			"👤 Сотрудник: %s\n"+
			"🏪 ПВЗ: %s\n"+
			"📅 Заполнено дней: %d/%d\n"+
			"🕒 Время заполнения: %s",
		employee.DisplayName(), employee.PointName, filled, len(weekDates),
		timetable.Format(timetable.Now()),
	)

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: h.AdminChatID,
		Text:   adminMessage,
	})
	if err != nil {
		h.Logger.Error("Failed to notify admin about completed form",
			zap.String("employee", employee.DisplayName()), zap.Error(err))
	}
}

// showStartTimeSelection показывает выбор начала смены с шагом 30 минут
func (h *Handler) showStartTimeSelection(ctx context.Context, b *bot.Bot, chatID int64, dayIndex int) {
	weekDates := h.Schedule.TargetWeek()
	date := weekDates[dayIndex]
	dayName := timetable.DayNames[dayIndex]

	buttons := make([]models.InlineKeyboardButton, 0)
	for _, t := range timetable.ShiftStartTimes() {
		buttons = append(buttons, keyboard.Button(t, StartData(dayIndex, t)))
	}

	markup := keyboard.NewBuilder().
		Grid(3, buttons...).
		Row(keyboard.Button("❌ Отмена", CancelData(dayIndex))).
		Build()

	h.send(ctx, b, chatID, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("⏰ %s - %s\n\nВыберите время начала смены:", date, dayName),
		ReplyMarkup: markup,
	})
}

// showEndTimeSelection показывает выбор окончания смены: только времена
// строго позже начала, до закрытия включительно
func (h *Handler) showEndTimeSelection(ctx context.Context, b *bot.Bot, employee *model.Employee, dayIndex int, startTime string) {
	chatID := employee.TelegramID
	weekDates := h.Schedule.TargetWeek()
	date := weekDates[dayIndex]
	dayName := timetable.DayNames[dayIndex]

	endTimes, err := timetable.ShiftEndTimes(startTime)
	if err != nil {
		h.Logger.Error("Failed to build end times", zap.String("start", startTime), zap.Error(err))
		h.RenderDay(ctx, b, employee, dayIndex)
		return
	}

	buttons := make([]models.InlineKeyboardButton, 0)
	for _, t := range endTimes {
		buttons = append(buttons, keyboard.Button(t, EndData(dayIndex, startTime, t)))
	}

	markup := keyboard.NewBuilder().
		Grid(3, buttons...).
		Row(keyboard.Button("❌ Отмена", CancelData(dayIndex))).
		Build()

	h.send(ctx, b, chatID, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("⏰ %s - %s\nНачало: %s\n\nВыберите время окончания смены:",
			date, dayName, startTime),
		ReplyMarkup: markup,
	})
}
