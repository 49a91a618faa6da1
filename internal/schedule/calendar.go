package schedule

import "time"

// Формат ключа дня в календарных представлениях.
const DayKeyLayout = "2006-01-02"

// DaysOfWeek возвращает 7 календарных дней начиная с weekStart.
func DaysOfWeek(weekStart time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	start := dateOnly(weekStart)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// DaysOfMonth возвращает все календарные дни месяца.
func DaysOfMonth(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// GroupByDay раскладывает элементы по ключам дней. Каждому дню из days
// соответствует запись в результате, даже пустая — представлению не нужно
// дополнять карту самому. Чистая проекция, без побочных эффектов.
func GroupByDay[T any](days []time.Time, items []T, dayOf func(T) time.Time) map[string][]T {
	out := make(map[string][]T, len(days))
	for _, d := range days {
		out[d.Format(DayKeyLayout)] = []T{}
	}
	for _, it := range items {
		key := dayOf(it).Format(DayKeyLayout)
		if _, ok := out[key]; ok {
			out[key] = append(out[key], it)
		}
	}
	return out
}

// SameDay проверяет совпадение календарного дня двух моментов.
func SameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
