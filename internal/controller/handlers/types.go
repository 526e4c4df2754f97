package handlers

import (
	"github.com/gsamarin/schedule_bot/internal/controller/callbacks"
	"github.com/gsamarin/schedule_bot/internal/controller/state"
	"github.com/gsamarin/schedule_bot/internal/dispatcher"
	"github.com/gsamarin/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	registrationService *service.RegistrationService
	scheduleService     *service.ScheduleService
	reportService       *service.ReportService
	stateManager        *state.Manager
	formHandler         *callbacks.Handler
	dispatcher          *dispatcher.Dispatcher
	adminChatID         int64
	logger              *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	registrationService *service.RegistrationService,
	scheduleService *service.ScheduleService,
	reportService *service.ReportService,
	stateManager *state.Manager,
	formHandler *callbacks.Handler,
	dsp *dispatcher.Dispatcher,
	adminChatID int64,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		registrationService: registrationService,
		scheduleService:     scheduleService,
		reportService:       reportService,
		stateManager:        stateManager,
		formHandler:         formHandler,
		dispatcher:          dsp,
		adminChatID:         adminChatID,
		logger:              logger,
	}
}

func (h *Handlers) isAdmin(telegramID int64) bool {
	return telegramID == h.adminChatID
}
