package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/controller/callbacks/keyboard"
	"github.com/gsamarin/schedule_bot/internal/controller/state"
	"github.com/gsamarin/schedule_bot/internal/service"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает текстовые сообщения: сначала диалог
// регистрации, затем кнопки основной клавиатуры. Текст зарегистрированного
// сотрудника никогда не трактуется как пароль или имя.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handler-ами
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID

	switch h.stateManager.Get(telegramID).State {
	case state.StateAwaitingPassword:
		h.handlePassword(ctx, b, update)
		return
	case state.StateAwaitingFullName:
		h.handleFullName(ctx, b, update)
		return
	}

	switch update.Message.Text {
	case keyboard.FillFormButton:
		h.HandleForm(ctx, b, update)
	case keyboard.GetReportButton:
		h.HandleReport(ctx, b, update)
	case keyboard.SendRemindersButton:
		h.HandleCollect(ctx, b, update)
	default:
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID,
			"Используйте кнопки ниже для работы с ботом:")
	}
}

// handlePassword проверяет введённый пароль ПВЗ
func (h *Handlers) handlePassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	password := strings.TrimSpace(update.Message.Text)

	point, err := h.registrationService.CheckPassword(ctx, password)
	if err != nil {
		h.logger.Error("Failed to check password", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendPlain(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	if point == nil {
		// Количество попыток не ограничено
		h.sendPlain(ctx, b, update.Message.Chat.ID,
			"❌ Неверный пароль.\n"+
				"Пожалуйста, проверьте пароль и попробуйте еще раз.\n"+
				"Пароль можно получить у администратора.")
		return
	}

	h.stateManager.AwaitFullName(telegramID, point.ID, point.Name)

	h.sendPlain(ctx, b, update.Message.Chat.ID,
		"✅ Пароль принят!\n\n"+
			"Теперь введите ваше Имя и Фамилию:\n"+
			"Например: Глеб Самарин")
}

// handleFullName завершает регистрацию после ввода имени и фамилии
func (h *Handlers) handleFullName(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	fullName := strings.TrimSpace(update.Message.Text)

	if !service.ValidFullName(fullName) {
		h.sendPlain(ctx, b, update.Message.Chat.ID,
			"❌ Пожалуйста, введите и Имя и Фамилию.\n"+
				"Например: Глеб Самарин\n\n"+
				"Попробуйте еще раз:")
		return
	}

	registration := h.stateManager.Get(telegramID)

	employee, err := h.registrationService.Register(
		ctx,
		telegramID,
		update.Message.From.Username,
		update.Message.From.FirstName,
		registration.PointID,
		fullName,
	)
	if err != nil {
		h.logger.Error("Failed to register employee", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendPlain(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	h.stateManager.Clear(telegramID)

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID, fmt.Sprintf(
		"✅ Регистрация успешна!\n\n"+
			"👤 Ваше имя: %s\n"+
			"🏪 Ваш ПВЗ: %s\n\n"+
			"Теперь вы можете заполнить анкету расписания, нажав на кнопку ниже:",
		employee.FullName, registration.PointName,
	))

	// Уведомление администратора best-effort: его сбой не откатывает регистрацию
	go func() {
		adminMessage := fmt.Sprintf(
			"👤 Новый сотрудник зарегистрировался!\n\n"+
				"Имя: %s\n"+
				"ПВЗ: %s\n"+
				"Время: %s",
			employee.FullName, registration.PointName, timetable.Format(timetable.Now()),
		)

		_, err := b.SendMessage(context.WithoutCancel(ctx), &bot.SendMessageParams{
			ChatID: h.adminChatID,
			Text:   adminMessage,
		})
		if err != nil {
			h.logger.Error("Failed to notify admin about registration",
				zap.String("full_name", employee.FullName), zap.Error(err))
		}
	}()
}
