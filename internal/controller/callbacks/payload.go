package callbacks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gsamarin/schedule_bot/internal/model"
)

// Kind — вид callback-а анкеты
type Kind string

const (
	KindSlot   Kind = "day"    // Выбор варианта смены на день
	KindStart  Kind = "start"  // Выбор времени начала точной смены
	KindEnd    Kind = "end"    // Выбор времени окончания точной смены
	KindCancel Kind = "cancel" // Отмена выбора точного времени
)

// Ключи фиксированных вариантов в callback data
const (
	SlotKeyMorning  = "9-15"
	SlotKeyEvening  = "15-21"
	SlotKeyAsNeeded = "asneeded"
	SlotKeyDayOff   = "dayoff"
	SlotKeyExact    = "exact"
)

// slotLabels сопоставляет ключ варианта с сохраняемым значением смены
var slotLabels = map[string]string{
	SlotKeyMorning:  model.SlotMorning,
	SlotKeyEvening:  model.SlotEvening,
	SlotKeyAsNeeded: model.SlotAsNeeded,
	SlotKeyDayOff:   model.SlotDayOff,
}

// Payload — разобранный callback анкеты. Индекс дня зашит в каждый callback,
// поэтому анкету можно продолжить с любого места и после перезапуска бота.
type Payload struct {
	Kind      Kind
	DayIndex  int
	SlotKey   string // только для KindSlot
	StartTime string // для KindStart и KindEnd
	EndTime   string // только для KindEnd
}

// SlotLabel возвращает сохраняемое значение смены для выбранного варианта
func (p *Payload) SlotLabel() (string, bool) {
	label, ok := slotLabels[p.SlotKey]
	return label, ok
}

// SlotData кодирует выбор варианта смены: "day_2_dayoff"
func SlotData(dayIndex int, slotKey string) string {
	return fmt.Sprintf("day_%d_%s", dayIndex, slotKey)
}

// StartData кодирует выбор начала смены: "start_2_9:30"
func StartData(dayIndex int, startTime string) string {
	return fmt.Sprintf("start_%d_%s", dayIndex, startTime)
}

// EndData кодирует выбор окончания смены: "end_2_9:30_18:00"
func EndData(dayIndex int, startTime, endTime string) string {
	return fmt.Sprintf("end_%d_%s_%s", dayIndex, startTime, endTime)
}

// CancelData кодирует отмену выбора точного времени: "cancel_2"
func CancelData(dayIndex int) string {
	return fmt.Sprintf("cancel_%d", dayIndex)
}

func parseDayIndex(s string) (int, error) {
	dayIndex, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse day index %q: %w", s, err)
	}
	if dayIndex < 0 || dayIndex > 6 {
		return 0, fmt.Errorf("day index %d out of range", dayIndex)
	}
	return dayIndex, nil
}

// Parse разбирает callback data в типизированный Payload.
// Разбор выполняется один раз на границе, дальше обработчики работают
// только с типизированным значением.
func Parse(data string) (*Payload, error) {
	parts := strings.Split(data, "_")

	switch Kind(parts[0]) {
	case KindSlot:
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed slot callback %q", data)
		}
		dayIndex, err := parseDayIndex(parts[1])
		if err != nil {
			return nil, err
		}
		if _, ok := slotLabels[parts[2]]; !ok && parts[2] != SlotKeyExact {
			return nil, fmt.Errorf("unknown slot key %q", parts[2])
		}
		return &Payload{Kind: KindSlot, DayIndex: dayIndex, SlotKey: parts[2]}, nil

	case KindStart:
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed start callback %q", data)
		}
		dayIndex, err := parseDayIndex(parts[1])
		if err != nil {
			return nil, err
		}
		return &Payload{Kind: KindStart, DayIndex: dayIndex, StartTime: parts[2]}, nil

	case KindEnd:
		if len(parts) != 4 {
			return nil, fmt.Errorf("malformed end callback %q", data)
		}
		dayIndex, err := parseDayIndex(parts[1])
		if err != nil {
			return nil, err
		}
		return &Payload{Kind: KindEnd, DayIndex: dayIndex, StartTime: parts[2], EndTime: parts[3]}, nil

	case KindCancel:
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed cancel callback %q", data)
		}
		dayIndex, err := parseDayIndex(parts[1])
		if err != nil {
			return nil, err
		}
		return &Payload{Kind: KindCancel, DayIndex: dayIndex}, nil
	}

	return nil, fmt.Errorf("unknown callback %q", data)
}
