package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

// HandleCallbackQuery — единая точка входа для callback-ов анкеты.
// Данные разбираются в типизированный Payload один раз, дальше идёт
// маршрутизация по виду callback-а.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callback.ID,
	})

	telegramID := callback.From.ID

	payload, err := Parse(callback.Data)
	if err != nil {
		h.Logger.Warn("Malformed callback data",
			zap.String("data", callback.Data),
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: callback.ID,
			Text:            "❌ Неверный формат",
			ShowAlert:       true,
		})
		return
	}

	h.Logger.Info("Routing form callback",
		zap.String("kind", string(payload.Kind)),
		zap.Int("day_index", payload.DayIndex),
		zap.Int64("telegram_id", telegramID),
	)

	employee, err := h.Registration.GetEmployee(ctx, telegramID)
	if err != nil {
		h.Logger.Error("Failed to get employee in callback",
			zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.editMessage(ctx, b, callback, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}
	if employee == nil {
		h.editMessage(ctx, b, callback, "❌ Сначала зарегистрируйтесь с помощью /start")
		return
	}

	weekDates := h.Schedule.TargetWeek()
	date := weekDates[payload.DayIndex]
	dayName := timetable.DayNames[payload.DayIndex]

	switch payload.Kind {
	case KindSlot:
		if payload.SlotKey == SlotKeyExact {
			h.editMessage(ctx, b, callback,
				fmt.Sprintf("⏰ %s - %s\nВыбран вариант: Точное время", date, dayName))
			h.showStartTimeSelection(ctx, b, telegramID, payload.DayIndex)
			return
		}

		slot, ok := payload.SlotLabel()
		if !ok {
			// Parse уже проверил ключ, сюда попасть нельзя
			return
		}

		if err := h.Schedule.SaveSlot(ctx, telegramID, date, slot); err != nil {
			h.Logger.Error("Failed to save slot", zap.Error(err))
			h.editMessage(ctx, b, callback, "❌ Не удалось сохранить выбор. Попробуйте еще раз.")
			return
		}

		h.editMessage(ctx, b, callback,
			fmt.Sprintf("✅ %s - %s\nСохранено: %s", date, dayName, slot))
		h.RenderDay(ctx, b, employee, payload.DayIndex+1)

	case KindStart:
		h.editMessage(ctx, b, callback,
			fmt.Sprintf("⏰ Выбрано начало: %s", payload.StartTime))
		h.showEndTimeSelection(ctx, b, employee, payload.DayIndex, payload.StartTime)

	case KindEnd:
		slot := fmt.Sprintf("%s-%s", payload.StartTime, payload.EndTime)
		if err := h.Schedule.SaveSlot(ctx, telegramID, date, slot); err != nil {
			h.Logger.Error("Failed to save exact time slot", zap.Error(err))
			h.editMessage(ctx, b, callback, "❌ Не удалось сохранить выбор. Попробуйте еще раз.")
			return
		}

		h.editMessage(ctx, b, callback,
			fmt.Sprintf("✅ %s - %s\nСохранено: %s", date, dayName, slot))
		h.RenderDay(ctx, b, employee, payload.DayIndex+1)

	case KindCancel:
		h.editMessage(ctx, b, callback, "❌ Выбор времени отменен")
		h.RenderDay(ctx, b, employee, payload.DayIndex)
	}
}

// editMessage заменяет текст сообщения, из которого пришёл callback
func (h *Handler) editMessage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string) {
	message := callback.Message.Message
	if message == nil {
		return
	}

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    message.Chat.ID,
		MessageID: message.ID,
		Text:      text,
	})
	if err != nil {
		h.Logger.Error("Failed to edit message",
			zap.Int64("chat_id", message.Chat.ID),
			zap.Error(err),
		)
	}
}
