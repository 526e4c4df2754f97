package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/gsamarin/schedule_bot/internal/repository"
	"github.com/gsamarin/schedule_bot/internal/timetable"
	"go.uber.org/zap"
)

type ReportService struct {
	pointRepo      *repository.PointRepository
	employeeRepo   *repository.EmployeeRepository
	assignmentRepo *repository.AssignmentRepository
	logger         *zap.Logger
}

func NewReportService(
	pointRepo *repository.PointRepository,
	employeeRepo *repository.EmployeeRepository,
	assignmentRepo *repository.AssignmentRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		pointRepo:      pointRepo,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// AllPoints возвращает все ПВЗ
func (s *ReportService) AllPoints(ctx context.Context) ([]*model.Point, error) {
	return s.pointRepo.GetAll(ctx)
}

// SetPointChat привязывает чат напоминаний к ПВЗ
func (s *ReportService) SetPointChat(ctx context.Context, pointID, chatID int64) error {
	if err := s.pointRepo.SetChatID(ctx, pointID, chatID); err != nil {
		return fmt.Errorf("set point chat: %w", err)
	}

	s.logger.Info("Point reminder chat configured",
		zap.Int64("point_id", pointID),
		zap.Int64("chat_id", chatID),
	)

	return nil
}

// BuildPointReport собирает текст отчёта по ПВЗ: на каждую дату недели —
// список "имя - смена" либо отметка об отсутствии данных
func BuildPointReport(pointName string, weekDates []string, rows []*repository.ReportRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 ОТЧЕТ ПО РАСПИСАНИЮ\nПВЗ: %s\nПериод: %s - %s\n\n",
		pointName, weekDates[0], weekDates[len(weekDates)-1])

	byDate := make(map[string][]string)
	for _, row := range rows {
		byDate[row.Date] = append(byDate[row.Date], fmt.Sprintf("%s - %s", row.DisplayName(), row.TimeSlot))
	}

	for i, date := range weekDates {
		fmt.Fprintf(&b, "📅 %s - %s:\n", date, timetable.DayNames[i])

		entries := byDate[date]
		if len(entries) == 0 {
			b.WriteString("  ❌ Нет данных\n")
		} else {
			for _, entry := range entries {
				fmt.Fprintf(&b, "  👤 %s\n", entry)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// PointReport строит отчёт по одному ПВЗ на указанные даты
func (s *ReportService) PointReport(ctx context.Context, point *model.Point, weekDates []string) (string, error) {
	rows, err := s.assignmentRepo.GetPointReport(ctx, point.ID, weekDates)
	if err != nil {
		return "", fmt.Errorf("point report for %s: %w", point.Name, err)
	}

	return BuildPointReport(point.Name, weekDates, rows), nil
}

// NotCompleted возвращает имена сотрудников, не заполнивших ни одного дня
// целевой недели. Администратор исключается из списка, даже если числится
// сотрудником ПВЗ.
func NotCompleted(employees []*model.Employee, assigned map[int64]bool, adminTelegramID int64) []string {
	var names []string
	for _, employee := range employees {
		if employee.TelegramID == adminTelegramID {
			continue
		}
		if !assigned[employee.TelegramID] {
			names = append(names, employee.DisplayName())
		}
	}
	return names
}

// PointNotCompleted возвращает список незаполнивших сотрудников ПВЗ
func (s *ReportService) PointNotCompleted(ctx context.Context, point *model.Point, weekDates []string, adminTelegramID int64) ([]string, error) {
	employees, err := s.employeeRepo.GetByPoint(ctx, point.ID)
	if err != nil {
		return nil, fmt.Errorf("not completed for %s: %w", point.Name, err)
	}

	assigned, err := s.assignmentRepo.GetAssignedTelegramIDs(ctx, point.ID, weekDates)
	if err != nil {
		return nil, fmt.Errorf("not completed for %s: %w", point.Name, err)
	}

	return NotCompleted(employees, assigned, adminTelegramID), nil
}

// PointStats — статистика по одному ПВЗ
type PointStats struct {
	Point         *model.Point
	EmployeeCount int
	FilledCount   int
}

// Stats собирает по каждому ПВЗ количество сотрудников и количество
// заполнивших анкету на целевую неделю
func (s *ReportService) Stats(ctx context.Context, weekDates []string) ([]*PointStats, error) {
	points, err := s.pointRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	var stats []*PointStats
	for _, point := range points {
		employeeCount, err := s.employeeRepo.CountByPoint(ctx, point.ID)
		if err != nil {
			return nil, fmt.Errorf("stats for %s: %w", point.Name, err)
		}

		assigned, err := s.assignmentRepo.GetAssignedTelegramIDs(ctx, point.ID, weekDates)
		if err != nil {
			return nil, fmt.Errorf("stats for %s: %w", point.Name, err)
		}

		stats = append(stats, &PointStats{
			Point:         point,
			EmployeeCount: employeeCount,
			FilledCount:   len(assigned),
		})
	}

	return stats, nil
}

// BuildStatsMessage собирает текст статистики для администратора
func BuildStatsMessage(stats []*PointStats) string {
	var b strings.Builder
	b.WriteString("📈 Статистика бота:\n\n")

	for _, s := range stats {
		chatMark := "❌"
		if s.Point.HasChat() {
			chatMark = "✅"
		}
		fmt.Fprintf(&b, "🏪 %s:\n", s.Point.Name)
		fmt.Fprintf(&b, "  👥 Сотрудников: %d\n", s.EmployeeCount)
		fmt.Fprintf(&b, "  📝 Заполнили анкету: %d\n", s.FilledCount)
		fmt.Fprintf(&b, "  💬 Чат для напоминаний: %s\n\n", chatMark)
	}

	return b.String()
}

// CoverageCounts возвращает количество смен на каждую дату недели для графика
func (s *ReportService) CoverageCounts(ctx context.Context, point *model.Point, weekDates []string) (map[string]int, error) {
	return s.assignmentRepo.CountDailyByPoint(ctx, point.ID, weekDates)
}

// PointEmployeeCount возвращает количество сотрудников ПВЗ
func (s *ReportService) PointEmployeeCount(ctx context.Context, point *model.Point) (int, error) {
	return s.employeeRepo.CountByPoint(ctx, point.ID)
}
