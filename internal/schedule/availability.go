package schedule

import "time"

// FreeSlots разбивает рабочий интервал врача на слоты фиксированной ширины
// и оставляет те, что не пересекаются ни с одной занятой записью
// (полуоткрытая проверка, как в FindConflict). Слоты идут хронологически,
// начиная с начала рабочего интервала.
//
// Отсутствие рабочего интервала на дату — это пустой результат, а не ошибка:
// вызывающая сторона передаёт work только когда смена определена.
func FreeSlots(work TimeRange, busy []TimeRange, slotDuration time.Duration) ([]TimeRange, error) {
	all, err := SplitToTimeSlots(work, slotDuration)
	if err != nil {
		return nil, err
	}

	free := make([]TimeRange, 0, len(all))
	for _, slot := range all {
		occupied := false
		for _, b := range busy {
			if Overlaps(slot, b) {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, slot)
		}
	}

	return free, nil
}
