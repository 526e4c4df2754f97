package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/controller/callbacks/keyboard"
	"github.com/gsamarin/schedule_bot/internal/model"
	"go.uber.org/zap"
)

// requireEmployee проверяет что сотрудник зарегистрирован.
// Возвращает employee и true если OK, nil и false если нет.
func (h *Handlers) requireEmployee(ctx context.Context, b *bot.Bot, update *models.Update) (*model.Employee, bool) {
	if update.Message == nil {
		return nil, false
	}

	telegramID := update.Message.From.ID
	employee, err := h.registrationService.GetEmployee(ctx, telegramID)

	if err != nil {
		h.logger.Error("Failed to get employee", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID,
			"❌ Произошла ошибка. Попробуйте позже.")
		return nil, false
	}

	if employee == nil {
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID,
			"❌ Сначала зарегистрируйтесь с помощью /start")
		return nil, false
	}

	return employee, true
}

// requireAdmin проверяет что команду вызвал администратор
func (h *Handlers) requireAdmin(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	if update.Message == nil {
		return false
	}

	telegramID := update.Message.From.ID
	if !h.isAdmin(telegramID) {
		h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, telegramID,
			"❌ У вас нет прав для этой команды.")
		return false
	}

	return true
}

// sendWithKeyboard отправляет сообщение с основной клавиатурой
func (h *Handlers) sendWithKeyboard(ctx context.Context, b *bot.Bot, chatID, telegramID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard.Main(h.isAdmin(telegramID)),
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendPlain отправляет сообщение со скрытой клавиатурой (диалог регистрации)
func (h *Handlers) sendPlain(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard.Remove(),
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
