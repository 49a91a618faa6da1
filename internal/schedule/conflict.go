package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

// BookedInterval — занятый интервал врача с идентификатором записи.
type BookedInterval struct {
	AppointmentID uuid.UUID
	TimeRange
}

// ConflictError — кандидат пересекается с существующей записью.
// Несёт идентификатор конфликтующей записи, чтобы вызывающая сторона
// могла показать её пользователю.
type ConflictError struct {
	AppointmentID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("appointment conflicts with existing appointment %s", e.AppointmentID)
}

// FindConflict ищет пересечение кандидата с занятыми интервалами врача.
// excludeID — идентификатор обновляемой записи, её из сравнения исключаем
// (uuid.Nil — ничего не исключать). Возвращает nil, если конфликтов нет.
//
// Принятые записи врача образуют множество попарно непересекающихся
// полуоткрытых интервалов — но только если все мутации проходят через эту
// проверку под per-doctor блокировкой (см. service.AppointmentService).
func FindConflict(candidate TimeRange, existing []BookedInterval, excludeID uuid.UUID) *ConflictError {
	for _, b := range existing {
		if excludeID != uuid.Nil && b.AppointmentID == excludeID {
			continue
		}
		if Overlaps(candidate, b.TimeRange) {
			return &ConflictError{AppointmentID: b.AppointmentID}
		}
	}
	return nil
}
