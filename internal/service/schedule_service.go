package service

import (
	"context"
	"fmt"

	"github.com/gsamarin/schedule_bot/internal/repository"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

type ScheduleService struct {
	assignmentRepo *repository.AssignmentRepository
	logger         *zap.Logger
}

func NewScheduleService(assignmentRepo *repository.AssignmentRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// SaveSlot сохраняет выбор смены на дату, перезаписывая прежний
func (s *ScheduleService) SaveSlot(ctx context.Context, telegramID int64, date, timeSlot string) error {
	if err := s.assignmentRepo.Save(ctx, telegramID, date, timeSlot); err != nil {
		return fmt.Errorf("save slot: %w", err)
	}

	s.logger.Info("Slot saved",
		zap.Int64("telegram_id", telegramID),
		zap.String("date", date),
		zap.String("time_slot", timeSlot),
	)

	return nil
}

// WeekSchedule возвращает смены сотрудника на целевую неделю (date -> слот)
func (s *ScheduleService) WeekSchedule(ctx context.Context, telegramID int64, weekDates []string) (map[string]string, error) {
	return s.assignmentRepo.GetForEmployee(ctx, telegramID, weekDates)
}

// FilledDays возвращает количество заполненных дней целевой недели
func (s *ScheduleService) FilledDays(ctx context.Context, telegramID int64, weekDates []string) (int, error) {
	schedule, err := s.assignmentRepo.GetForEmployee(ctx, telegramID, weekDates)
	if err != nil {
		return 0, err
	}

	filled := 0
	for _, date := range weekDates {
		if _, ok := schedule[date]; ok {
			filled++
		}
	}
	return filled, nil
}

// ResetWeek удаляет смены сотрудника на целевую неделю перед перезаполнением
// анкеты. Чистится только целевая неделя: история прошлых недель сохраняется.
func (s *ScheduleService) ResetWeek(ctx context.Context, telegramID int64, weekDates []string) error {
	if err := s.assignmentRepo.DeleteForEmployee(ctx, telegramID, weekDates); err != nil {
		return fmt.Errorf("reset week: %w", err)
	}

	s.logger.Info("Week schedule reset",
		zap.Int64("telegram_id", telegramID),
		zap.Strings("dates", weekDates),
	)

	return nil
}

// TargetWeek возвращает даты недели, на которую сейчас собирается расписание
func (s *ScheduleService) TargetWeek() []string {
	return timetable.TargetWeek(timetable.Now())
}
