package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrSlotDuration           = errors.New("slot duration must be positive")
	ErrMissingDurationOrPrice = errors.New("either service or custom duration and price are required")
)

// Гранулярность окна записи.
const SlotDuration = 30 * time.Minute

// TimeRange представляет полуоткрытый интервал [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeRange создаёт интервал и делает простую валидацию.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRange{}, ErrInvalidTimeRange
	}
	if !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Duration возвращает длину интервала.
func (tr TimeRange) Duration() time.Duration {
	return tr.End.Sub(tr.Start)
}

// Overlaps проверяет пересечение полуоткрытых интервалов:
// a.Start < b.End && b.Start < a.End. Касание концами пересечением не считается,
// поэтому записи «встык» не конфликтуют.
func Overlaps(a, b TimeRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// SplitToTimeSlots разбивает интервал на последовательные слоты фиксированной
// длительности, начиная с tr.Start. «Хвост» короче slotDuration отбрасывается.
func SplitToTimeSlots(tr TimeRange, slotDuration time.Duration) ([]TimeRange, error) {
	if slotDuration <= 0 {
		return nil, ErrSlotDuration
	}
	if !tr.End.After(tr.Start) {
		return []TimeRange{}, nil
	}

	var slots []TimeRange
	for cur := tr.Start; ; cur = cur.Add(slotDuration) {
		slotEnd := cur.Add(slotDuration)
		if slotEnd.After(tr.End) {
			break
		}
		slots = append(slots, TimeRange{Start: cur, End: slotEnd})
	}

	return slots, nil
}

// CombineDateTime строит момент из календарного дня date и времени суток
// в формате "HH:MM" (часовой пояс берётся у date).
func CombineDateTime(date time.Time, hhmm string) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, ErrInvalidTimeRange
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, tod.Hour(), tod.Minute(), 0, 0, date.Location()), nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
