package dispatcher

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/gsamarin/schedule_bot/internal/service"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Таймаут одной отправки: медленный чат одного ПВЗ не должен задерживать
// рассылку остальным
const sendTimeout = 15 * time.Second

// Dispatcher рассылает напоминания по чатам ПВЗ и отчёты администратору.
// Все отправки best-effort: сбой по одному ПВЗ логируется, рассылка
// остальным продолжается.
type Dispatcher struct {
	bot           *bot.Bot
	reportService *service.ReportService
	botUsername   string
	adminChatID   int64
	logger        *zap.Logger
}

func NewDispatcher(
	b *bot.Bot,
	reportService *service.ReportService,
	botUsername string,
	adminChatID int64,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		bot:           b,
		reportService: reportService,
		botUsername:   botUsername,
		adminChatID:   adminChatID,
		logger:        logger,
	}
}

// sendWithRetry отправляет сообщение с таймаутом и ограниченным повтором
// на случай временных сбоев Telegram API
func (d *Dispatcher) sendWithRetry(ctx context.Context, params *bot.SendMessageParams) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	return retry.Do(sendCtx, backoff, func(ctx context.Context) error {
		_, err := d.bot.SendMessage(ctx, params)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// SendCollectionReminders отправляет в чаты ПВЗ приглашение заполнить анкету
// с кнопкой-ссылкой на бота. Запускается по субботам и вручную командой
// администратора.
func (d *Dispatcher) SendCollectionReminders(ctx context.Context) {
	runID := uuid.NewString()
	logger := d.logger.With(zap.String("run_id", runID))
	logger.Info("Sending collection reminders")

	points, err := d.reportService.AllPoints(ctx)
	if err != nil {
		logger.Error("Failed to load points for reminders", zap.Error(err))
		return
	}

	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{
				Text: "📝 Заполнить анкету",
				URL:  fmt.Sprintf("https://t.me/%s?start=form", d.botUsername),
			},
		}},
	}

	messageText := "📋 Напоминание!\n\n" +
		"Пора заполнить анкету расписания на следующую неделю.\n" +
		"Нажмите на кнопку ниже чтобы перейти к заполнению."

	var g errgroup.Group
	for _, point := range points {
		if !point.HasChat() {
			continue
		}

		point := point
		g.Go(func() error {
			err := d.sendWithRetry(ctx, &bot.SendMessageParams{
				ChatID:      *point.ChatID,
				Text:        messageText,
				ReplyMarkup: markup,
			})
			if err != nil {
				logger.Error("Failed to send collection reminder",
					zap.String("point", point.Name), zap.Error(err))
				return nil // Сбой одного ПВЗ не прерывает рассылку
			}

			logger.Info("Collection reminder sent", zap.String("point", point.Name))
			return nil
		})
	}
	g.Wait()
}

// SendNonCompletionReminders отправляет в чаты ПВЗ список сотрудников,
// не заполнивших анкету на целевую неделю. Администратор в список не
// попадает. Если все заполнили — уходит поздравление.
func (d *Dispatcher) SendNonCompletionReminders(ctx context.Context) {
	runID := uuid.NewString()
	logger := d.logger.With(zap.String("run_id", runID))
	logger.Info("Sending non-completion reminders")

	points, err := d.reportService.AllPoints(ctx)
	if err != nil {
		logger.Error("Failed to load points for non-completion reminders", zap.Error(err))
		return
	}

	weekDates := timetable.TargetWeek(timetable.Now())

	var g errgroup.Group
	for _, point := range points {
		if !point.HasChat() {
			continue
		}

		point := point
		g.Go(func() error {
			names, err := d.reportService.PointNotCompleted(ctx, point, weekDates, d.adminChatID)
			if err != nil {
				logger.Error("Failed to compute non-completed employees",
					zap.String("point", point.Name), zap.Error(err))
				return nil
			}

			err = d.sendWithRetry(ctx, &bot.SendMessageParams{
				ChatID: *point.ChatID,
				Text:   buildNonCompletionMessage(names),
			})
			if err != nil {
				logger.Error("Failed to send non-completion reminder",
					zap.String("point", point.Name), zap.Error(err))
				return nil
			}

			logger.Info("Non-completion reminder sent",
				zap.String("point", point.Name), zap.Int("not_completed", len(names)))
			return nil
		})
	}
	g.Wait()
}

// buildNonCompletionMessage собирает текст напоминания для чата ПВЗ
func buildNonCompletionMessage(names []string) string {
	if len(names) == 0 {
		return "🎉 Все сотрудники заполнили анкету расписания. Так держать!"
	}

	var b strings.Builder
	b.WriteString("⚠️ Напоминание!\n\nЕщё не заполнили анкету расписания:\n")
	for i, name := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	b.WriteString("\nПожалуйста, заполните анкету сегодня.")
	return b.String()
}

// SendAdminReport отправляет администратору отчёт по каждому ПВЗ:
// текст со сменами по дням и график заполненности недели
func (d *Dispatcher) SendAdminReport(ctx context.Context) {
	runID := uuid.NewString()
	logger := d.logger.With(zap.String("run_id", runID))
	logger.Info("Sending admin report")

	points, err := d.reportService.AllPoints(ctx)
	if err != nil {
		logger.Error("Failed to load points for report", zap.Error(err))
		return
	}

	weekDates := timetable.TargetWeek(timetable.Now())

	for _, point := range points {
		report, err := d.reportService.PointReport(ctx, point, weekDates)
		if err != nil {
			logger.Error("Failed to build point report",
				zap.String("point", point.Name), zap.Error(err))
			continue
		}

		err = d.sendWithRetry(ctx, &bot.SendMessageParams{
			ChatID: d.adminChatID,
			Text:   report,
		})
		if err != nil {
			logger.Error("Failed to send point report",
				zap.String("point", point.Name), zap.Error(err))
			continue
		}

		d.sendCoverageChart(ctx, logger, point, weekDates)

		logger.Info("Point report sent", zap.String("point", point.Name))
	}
}

// sendCoverageChart отправляет администратору график заполненности недели.
// График — дополнение к текстовому отчёту, его сбой не считается сбоем отчёта.
func (d *Dispatcher) sendCoverageChart(ctx context.Context, logger *zap.Logger, point *model.Point, weekDates []string) {
	counts, err := d.reportService.CoverageCounts(ctx, point, weekDates)
	if err != nil {
		logger.Error("Failed to load coverage counts",
			zap.String("point", point.Name), zap.Error(err))
		return
	}

	employeeCount, err := d.reportService.PointEmployeeCount(ctx, point)
	if err != nil {
		logger.Error("Failed to load employee count",
			zap.String("point", point.Name), zap.Error(err))
		return
	}

	png, err := service.RenderCoverageChart(weekDates, counts, employeeCount)
	if err != nil {
		logger.Error("Failed to render coverage chart",
			zap.String("point", point.Name), zap.Error(err))
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err = d.bot.SendPhoto(sendCtx, &bot.SendPhotoParams{
		ChatID: d.adminChatID,
		Photo: &models.InputFileUpload{
			Filename: fmt.Sprintf("coverage_%s.png", weekDates[0]),
			Data:     bytes.NewReader(png),
		},
		Caption: fmt.Sprintf("Заполненность недели: %s", point.Name),
	})
	if err != nil {
		logger.Error("Failed to send coverage chart",
			zap.String("point", point.Name), zap.Error(err))
	}
}
