package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gsamarin/schedule_bot/internal/controller/callbacks"
	"github.com/gsamarin/schedule_bot/internal/controller/handlers"
	"github.com/gsamarin/schedule_bot/internal/controller/state"
	"github.com/gsamarin/schedule_bot/internal/dispatcher"
	"github.com/gsamarin/schedule_bot/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	registrationService *service.RegistrationService,
	scheduleService *service.ScheduleService,
	reportService *service.ReportService,
	dsp *dispatcher.Dispatcher,
	adminChatID int64,
	logger *zap.Logger,
) *BotController {
	// Состояния регистрации живут в памяти процесса
	stateManager := state.NewManager()

	callbackHandler := callbacks.NewHandler(
		registrationService,
		scheduleService,
		adminChatID,
		logger,
	)

	cmdHandlers := handlers.NewHandlers(
		registrationService,
		scheduleService,
		reportService,
		stateManager,
		callbackHandler,
		dsp,
		adminChatID,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// /start регистрируется по префиксу: ссылка из напоминания даёт "/start form"
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/form", bot.MatchTypeExact, c.handlers.HandleForm)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myschedule", bot.MatchTypeExact, c.handlers.HandleMySchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/setchat", bot.MatchTypeExact, c.handlers.HandleSetChat)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)

	// Команды администратора
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/report", bot.MatchTypeExact, c.handlers.HandleReport)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/collect", bot.MatchTypeExact, c.handlers.HandleCollect)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/remind", bot.MatchTypeExact, c.handlers.HandleRemind)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypeExact, c.handlers.HandleStats)

	// Обработчик текстовых сообщений (диалог регистрации и кнопки клавиатуры)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки анкеты
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "Начать работу"},
		{Command: "form", Description: "Заполнить анкету"},
		{Command: "myschedule", Description: "Мое расписание"},
		{Command: "setchat", Description: "Настроить чат для напоминаний (админ)"},
		{Command: "help", Description: "Помощь"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
