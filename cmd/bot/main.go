package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/gsamarin/schedule_bot/internal/app"
	"github.com/gsamarin/schedule_bot/internal/config"
	"github.com/gsamarin/schedule_bot/internal/controller"
	"github.com/gsamarin/schedule_bot/internal/dispatcher"
	"github.com/gsamarin/schedule_bot/internal/repository"
	"github.com/gsamarin/schedule_bot/internal/service"
	"github.com/gsamarin/schedule_bot/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting schedule bot",
		"environment", cfg.Environment,
		"admin_chat_id", cfg.AdminChatID)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, migrations.FS)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		logger.Fatal("Failed to get bot identity", zap.Error(err))
	}

	// Репозитории
	pointRepo := repository.NewPointRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)

	// Сервисы
	registrationService := service.NewRegistrationService(pointRepo, employeeRepo, logger)
	scheduleService := service.NewScheduleService(assignmentRepo, logger)
	reportService := service.NewReportService(pointRepo, employeeRepo, assignmentRepo, logger)

	// Рассыльщик напоминаний и отчётов
	dsp := dispatcher.NewDispatcher(b, reportService, me.Username, cfg.AdminChatID, logger)

	botController := controller.NewBotController(
		b,
		registrationService,
		scheduleService,
		reportService,
		dsp,
		cfg.AdminChatID,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	scheduler := app.NewScheduler(dsp, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logger.Info("Бот запущен с часовым поясом Барнаул (UTC+7)",
		zap.String("bot_username", me.Username))

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
