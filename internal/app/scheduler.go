package app

import (
	"context"
	"time"

	"github.com/gsamarin/schedule_bot/internal/dispatcher"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

// Расписание рассылок по барнаульскому времени
const (
	collectionHour = 10 // Суббота 10:00 — приглашение заполнить анкету
	reportHour     = 9  // Воскресенье 09:00 — отчёт и список незаполнивших
)

// Scheduler управляет еженедельными фоновыми рассылками.
// Рассылки выполняются в своих горутинах и не блокируют обработку сообщений;
// любой их сбой логируется и не роняет процесс.
type Scheduler struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
	stopChan   chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(d *dispatcher.Dispatcher, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		dispatcher: d,
		logger:     logger,
		stopChan:   make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	// Суббота: приглашение заполнить анкету в чаты ПВЗ
	go s.runWeekly(ctx, "collection_reminder", time.Saturday, collectionHour,
		s.dispatcher.SendCollectionReminders)

	// Воскресенье: отчёт администратору и списки незаполнивших в чаты ПВЗ
	go s.runWeekly(ctx, "admin_report", time.Sunday, reportHour,
		s.dispatcher.SendAdminReport)
	go s.runWeekly(ctx, "non_completion_reminder", time.Sunday, reportHour,
		s.dispatcher.SendNonCompletionReminders)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runWeekly выполняет задачу раз в неделю в заданный день и час по Барнаулу
func (s *Scheduler) runWeekly(ctx context.Context, name string, weekday time.Weekday, hour int, job func(context.Context)) {
	for {
		now := timetable.Now()
		next := timetable.NextOccurrence(now, weekday, hour, 0)

		s.logger.Info("Weekly job scheduled",
			zap.String("job", name),
			zap.Time("next_run", next),
		)

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
			s.logger.Info("Running weekly job", zap.String("job", name))
			job(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Weekly job stopped", zap.String("job", name))
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Weekly job cancelled", zap.String("job", name))
			return
		}
	}
}
