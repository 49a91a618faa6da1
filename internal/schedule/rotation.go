package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Тип смены. Дублирует model.ShiftType, чтобы ядро не зависело от ORM-моделей.
type ShiftType string

const (
	ShiftTypeFirst  ShiftType = "first"
	ShiftTypeSecond ShiftType = "second"
)

// Границы смен по времени суток, формат "HH:MM".
type ShiftTimes struct {
	Start string
	End   string
}

// DefaultShiftTimes — фиксированная таблица границ смен.
var DefaultShiftTimes = map[ShiftType]ShiftTimes{
	ShiftTypeFirst:  {Start: "08:00", End: "13:00"},
	ShiftTypeSecond: {Start: "13:00", End: "20:00"},
}

// WorkingInterval строит рабочий интервал смены на конкретную дату.
func (st ShiftTimes) WorkingInterval(date time.Time) (TimeRange, error) {
	start, err := CombineDateTime(date, st.Start)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := CombineDateTime(date, st.End)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(start, end)
}

// ShiftKey — одна ячейка недельной сетки смен.
type ShiftKey struct {
	DayOfWeek int // 0=Пн .. 5=Сб
	Type      ShiftType
	Times     ShiftTimes
}

// WeekStartDate возвращает понедельник недели week (1–52) года year.
// Неделя 1 начинается с первого понедельника, приходящегося на 1 января
// или позже; неделя N — смещение +7*(N-1) дней. Номера недель вызывающая
// сторона обязана передавать в этой же конвенции.
func WeekStartDate(week, year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	daysAhead := (8 - int(jan1.Weekday())) % 7 // Weekday: 0=Вс .. 6=Сб
	firstMonday := jan1.AddDate(0, 0, daysAhead)

	return firstMonday.AddDate(0, 0, 7*(week-1))
}

// WeekGrid возвращает сетку смен недели: Пн–Пт по две смены, Сб — только первая.
// Итого 11 ячеек.
func WeekGrid() []ShiftKey {
	grid := make([]ShiftKey, 0, 11)
	for day := 0; day < 6; day++ {
		types := []ShiftType{ShiftTypeFirst, ShiftTypeSecond}
		if day == 5 {
			types = []ShiftType{ShiftTypeFirst}
		}
		for _, st := range types {
			grid = append(grid, ShiftKey{
				DayOfWeek: day,
				Type:      st,
				Times:     DefaultShiftTimes[st],
			})
		}
	}
	return grid
}

// WeekOfDate возвращает (номер недели, день недели 0=Пн..6=Вс) даты в той же
// конвенции, что и WeekStartDate. Дни до первого понедельника года получают
// неделю 0 — смены для них не генерируются.
func WeekOfDate(date time.Time) (week, dayOfWeek int) {
	day := dateOnly(date.UTC())
	dayOfWeek = (int(day.Weekday()) + 6) % 7

	firstMonday := WeekStartDate(1, day.Year())
	if day.Before(firstMonday) {
		return 0, dayOfWeek
	}
	week = int(day.Sub(firstMonday).Hours()/(24*7)) + 1
	return week, dayOfWeek
}

// ShiftDate возвращает календарную дату ячейки сетки внутри недели week.
func ShiftDate(week, year, dayOfWeek int) time.Time {
	return WeekStartDate(week, year).AddDate(0, 0, dayOfWeek)
}

// ShouldAssignDoctor решает, попадает ли врач в конкретную смену.
//
// Сейчас каждый врач назначается на каждую смену. Это осознанно сохранённая
// заглушка: задумана была понедельная ротация (врач с первой смены недели N
// уходит на вторую в неделе N+1), но правило так и не было определено
// продуктом. Не изобретать ротацию здесь — вопрос открыт.
// TODO: понедельная ротация first/second после решения по продукту.
func ShouldAssignDoctor(doctorID uuid.UUID, week, dayOfWeek int, shiftType ShiftType) bool {
	return true
}
