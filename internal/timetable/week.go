package timetable

import (
	"time"
)

// Барнаульский часовой пояс (UTC+7), без перехода на летнее время
var Location = time.FixedZone("Asia/Barnaul", 7*60*60)

// DayNames названия дней недели целевой недели (понедельник — первый)
var DayNames = []string{
	"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье",
}

// Now возвращает текущее время в Барнауле
func Now() time.Time {
	return time.Now().In(Location)
}

// Format форматирует время для сообщений (барнаульское)
func Format(t time.Time) string {
	return t.In(Location).Format("02.01.2006 15:04")
}

// NextSaturday возвращает ближайшую будущую субботу.
// Если сегодня суббота, возвращается суббота следующей недели —
// функция никогда не возвращает "сегодня".
func NextSaturday(now time.Time) time.Time {
	// weekday: понедельник = 0 ... воскресенье = 6
	weekday := (int(now.Weekday()) + 6) % 7
	delta := 5 - weekday
	if delta <= 0 {
		delta += 7
	}
	return now.AddDate(0, 0, delta)
}

// WeekDates возвращает 7 дат целевой недели в формате "ДД.ММ".
// Целевая неделя начинается с понедельника через два дня после субботы-якоря.
func WeekDates(saturday time.Time) []string {
	monday := saturday.AddDate(0, 0, 2)
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, monday.AddDate(0, 0, i).Format("02.01"))
	}
	return dates
}

// TargetWeek возвращает даты недели, на которую собирается расписание
func TargetWeek(now time.Time) []string {
	return WeekDates(NextSaturday(now))
}

// NextOccurrence возвращает ближайший будущий момент с указанным днём недели
// и временем в зоне now. Если момент уже прошёл сегодня, берётся следующая неделя.
func NextOccurrence(now time.Time, weekday time.Weekday, hour, minute int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, daysAhead)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}
