package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/service"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start: зарегистрированному сотруднику —
// приветствие с клавиатурой, новому — диалог регистрации с вводом пароля
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	from := update.Message.From
	telegramID := from.ID

	employee, err := h.registrationService.GetEmployee(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get employee on /start", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	if employee != nil {
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID, fmt.Sprintf(
			"👋 С возвращением, %s!\n\n"+
				"Ваш ПВЗ: %s\n\n"+
				"Используйте кнопки ниже для работы с ботом:",
			from.FirstName, employee.PointName,
		))

		// Переход по ссылке из напоминания: /start form
		if strings.HasSuffix(update.Message.Text, " form") {
			h.HandleForm(ctx, b, update)
		}
		return
	}

	h.stateManager.AwaitPassword(telegramID)

	h.sendPlain(ctx, b, update.Message.Chat.ID,
		"👋 Добро пожаловать!\n\n"+
			"Для регистрации введите пароль вашего ПВЗ.\n"+
			"Пароль можно получить у администратора.")
}

// HandleForm начинает заполнение анкеты: смены целевой недели удаляются
// и анкета стартует с первого дня
func (h *Handlers) HandleForm(ctx context.Context, b *bot.Bot, update *models.Update) {
	employee, ok := h.requireEmployee(ctx, b, update)
	if !ok {
		return
	}

	weekDates := h.scheduleService.TargetWeek()
	if err := h.scheduleService.ResetWeek(ctx, employee.TelegramID, weekDates); err != nil {
		h.logger.Error("Failed to reset week schedule",
			zap.Int64("telegram_id", employee.TelegramID), zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.formHandler.RenderDay(ctx, b, employee, 0)
}

// HandleMySchedule показывает расписание сотрудника на целевую неделю
func (h *Handlers) HandleMySchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	employee, ok := h.requireEmployee(ctx, b, update)
	if !ok {
		return
	}

	weekDates := h.scheduleService.TargetWeek()
	schedule, err := h.scheduleService.WeekSchedule(ctx, employee.TelegramID, weekDates)
	if err != nil {
		h.logger.Error("Failed to load week schedule",
			zap.Int64("telegram_id", employee.TelegramID), zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📋 Ваше расписание на неделю:\nПВЗ: %s\n\n", employee.PointName)

	hasData := false
	for i, date := range weekDates {
		if slot, ok := schedule[date]; ok {
			hasData = true
			fmt.Fprintf(&text, "✅ %s - %s: %s\n", date, timetable.DayNames[i], slot)
		} else {
			fmt.Fprintf(&text, "❌ %s - %s: Не заполнено\n", date, timetable.DayNames[i])
		}
	}

	if hasData {
		text.WriteString("\nИзменить расписание: нажмите кнопку '📝 Заполнить анкету'")
	} else {
		text.WriteString("\nЗаполнить расписание: нажмите кнопку '📝 Заполнить анкету'")
	}

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID, text.String())
}

// HandleSetChat привязывает текущий чат к ПВЗ администратора для напоминаний
func (h *Handlers) HandleSetChat(ctx context.Context, b *bot.Bot, update *models.Update) {
	employee, ok := h.requireEmployee(ctx, b, update)
	if !ok {
		return
	}

	if !h.isAdmin(employee.TelegramID) {
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID,
			"❌ Только администратор может настраивать чат для напоминаний")
		return
	}

	chatID := update.Message.Chat.ID
	if err := h.reportService.SetPointChat(ctx, employee.PointID, chatID); err != nil {
		h.logger.Error("Failed to set point chat",
			zap.Int64("point_id", employee.PointID), zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, employee.TelegramID, fmt.Sprintf(
		"✅ Чат настроен для получения напоминаний!\n"+
			"ПВЗ: %s\n"+
			"Chat ID: %d\n\n"+
			"Теперь бот будет отправлять сюда напоминания о заполнении анкет каждую субботу в 10:00 по Барнаулу.",
		employee.PointName, chatID,
	))
}

// HandleHelp показывает справку по командам
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📋 Бот для составления расписания\n\n" +
		"Используйте кнопки ниже для работы:\n" +
		"• 📝 Заполнить анкету - составить расписание на неделю\n" +
		"• 📊 Получить отчет - для администратора\n" +
		"• 📢 Отправить напоминания - для администратора\n\n" +
		"Команды:\n" +
		"/myschedule - посмотреть мое расписание\n" +
		"/setchat - настроить чат для напоминаний (администратор)\n" +
		"/help - эта справка"

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID, helpText)
}

// HandleReport — ручная отправка отчёта администратору
func (h *Handlers) HandleReport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	h.dispatcher.SendAdminReport(ctx)
	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID, "✅ Отчет отправлен!")
}

// HandleCollect — ручная рассылка напоминаний о заполнении анкеты
func (h *Handlers) HandleCollect(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	h.dispatcher.SendCollectionReminders(ctx)
	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID, "✅ Напоминания отправлены!")
}

// HandleRemind — ручная рассылка списков незаполнивших по чатам ПВЗ
func (h *Handlers) HandleRemind(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	h.dispatcher.SendNonCompletionReminders(ctx)
	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID, "✅ Напоминания отправлены!")
}

// HandleStats показывает администратору статистику по ПВЗ
func (h *Handlers) HandleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	weekDates := h.scheduleService.TargetWeek()
	stats, err := h.reportService.Stats(ctx, weekDates)
	if err != nil {
		h.logger.Error("Failed to collect stats", zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, update.Message.From.ID,
		service.BuildStatsMessage(stats))
}
