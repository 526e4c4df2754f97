package service

import (
	"strings"
	"testing"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/gsamarin/schedule_bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWeek = []string{"14.09", "15.09", "16.09", "17.09", "18.09", "19.09", "20.09"}

func TestBuildPointReport(t *testing.T) {
	rows := []*repository.ReportRow{
		{TelegramID: 1, FullName: "Анна Иванова", Date: "14.09", TimeSlot: model.SlotMorning},
		{TelegramID: 2, FullName: "Глеб Самарин", Date: "14.09", TimeSlot: model.SlotDayOff},
		{TelegramID: 1, FullName: "Анна Иванова", Date: "16.09", TimeSlot: "9:30-18:00"},
	}

	report := BuildPointReport("Промышленная_6", testWeek, rows)

	assert.Contains(t, report, "ПВЗ: Промышленная_6")
	assert.Contains(t, report, "Период: 14.09 - 20.09")
	assert.Contains(t, report, "Анна Иванова - 9.00-15.00")
	assert.Contains(t, report, "Глеб Самарин - Выходной")
	assert.Contains(t, report, "Анна Иванова - 9:30-18:00")

	// Дни без смен отмечаются отдельно: 5 пустых дней из 7
	assert.Equal(t, 5, strings.Count(report, "Нет данных"))

	// Каждая дата недели присутствует со своим днём
	assert.Contains(t, report, "14.09 - Понедельник")
	assert.Contains(t, report, "20.09 - Воскресенье")
}

func TestBuildPointReportFallsBackToFirstName(t *testing.T) {
	rows := []*repository.ReportRow{
		{TelegramID: 3, FirstName: "Оля", Date: "15.09", TimeSlot: model.SlotAsNeeded},
	}

	report := BuildPointReport("Промышленная_6", testWeek, rows)

	assert.Contains(t, report, "Оля - Как нужно ПВЗ")
}

func TestNotCompleted(t *testing.T) {
	const adminID int64 = 457081438

	employees := []*model.Employee{
		{TelegramID: 1, FullName: "Анна Иванова"},
		{TelegramID: 2, FullName: "Глеб Самарин"},
		{TelegramID: 3, FullName: "Оля Петрова"},
		{TelegramID: adminID, FullName: "Администратор"},
	}

	// Заполнила только Анна
	assigned := map[int64]bool{1: true}

	names := NotCompleted(employees, assigned, adminID)

	require.Len(t, names, 2)
	assert.Equal(t, []string{"Глеб Самарин", "Оля Петрова"}, names)
}

func TestNotCompletedAllDone(t *testing.T) {
	employees := []*model.Employee{
		{TelegramID: 1, FullName: "Анна Иванова"},
	}

	names := NotCompleted(employees, map[int64]bool{1: true}, 42)

	assert.Empty(t, names)
}

func TestBuildStatsMessage(t *testing.T) {
	chatID := int64(-100123)
	stats := []*PointStats{
		{
			Point:         &model.Point{Name: "Промышленная_6", ChatID: &chatID},
			EmployeeCount: 5,
			FilledCount:   3,
		},
		{
			Point:         &model.Point{Name: "Ленина_12"},
			EmployeeCount: 2,
			FilledCount:   0,
		},
	}

	message := BuildStatsMessage(stats)

	assert.Contains(t, message, "🏪 Промышленная_6:")
	assert.Contains(t, message, "Сотрудников: 5")
	assert.Contains(t, message, "Заполнили анкету: 3")
	assert.Contains(t, message, "Чат для напоминаний: ✅")

	assert.Contains(t, message, "🏪 Ленина_12:")
	assert.Contains(t, message, "Чат для напоминаний: ❌")
}
