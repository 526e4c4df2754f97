package timetable

import "fmt"

// Границы рабочего дня ПВЗ для выбора точного времени смены
const (
	shiftOpenHour  = 9
	shiftCloseHour = 21
	shiftStepMin   = 30
)

func formatMinutes(totalMinutes int) string {
	return fmt.Sprintf("%d:%02d", totalMinutes/60, totalMinutes%60)
}

// ShiftStartTimes возвращает варианты начала смены с шагом 30 минут,
// от открытия до закрытия включительно ("9:00" ... "21:00")
func ShiftStartTimes() []string {
	var times []string
	for m := shiftOpenHour * 60; m <= shiftCloseHour*60; m += shiftStepMin {
		times = append(times, formatMinutes(m))
	}
	return times
}

// ShiftEndTimes возвращает варианты окончания смены: строго позже начала,
// с шагом 30 минут, до закрытия включительно. Для начала "20:30" остаётся
// единственный вариант "21:00".
func ShiftEndTimes(startTime string) ([]string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(startTime, "%d:%d", &hour, &minute); err != nil {
		return nil, fmt.Errorf("parse start time %q: %w", startTime, err)
	}

	start := hour*60 + minute
	var times []string
	for m := start + shiftStepMin; m <= shiftCloseHour*60; m += shiftStepMin {
		times = append(times, formatMinutes(m))
	}
	return times, nil
}
