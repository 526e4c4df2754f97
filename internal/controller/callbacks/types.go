package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/gsamarin/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит зависимости обработчиков callback-ов анкеты
type Handler struct {
	Registration *service.RegistrationService
	Schedule     *service.ScheduleService
	AdminChatID  int64
	Logger       *zap.Logger
}

// NewHandler создаёт обработчик callback-ов с зависимостями
func NewHandler(
	registration *service.RegistrationService,
	schedule *service.ScheduleService,
	adminChatID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Registration: registration,
		Schedule:     schedule,
		AdminChatID:  adminChatID,
		Logger:       logger,
	}
}

func (h *Handler) isAdmin(telegramID int64) bool {
	return telegramID == h.AdminChatID
}

// send отправляет сообщение и логирует сбой доставки
func (h *Handler) send(ctx context.Context, b *bot.Bot, chatID int64, params *bot.SendMessageParams) {
	_, err := b.SendMessage(ctx, params)
	if err != nil {
		h.Logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
