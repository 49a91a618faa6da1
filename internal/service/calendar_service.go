package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/schedule"
)

// CalendarEntry — денормализованная запись для календарных представлений:
// всё нужное для показа без дополнительных обращений.
type CalendarEntry struct {
	ID              uuid.UUID `json:"id"`
	DoctorName      string    `json:"doctor_name"`
	ServiceName     string    `json:"service_name"`
	PatientFullName string    `json:"patient_full_name"`
	Price           float64   `json:"price"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
}

// CalendarService — read-side проекции записей по дням недели или месяца.
// Только чтение зафиксированного состояния, блокировок не берёт.
type CalendarService struct {
	appointmentRepo repository.AppointmentRepository

	log zerolog.Logger
}

func NewCalendarService(appointmentRepo repository.AppointmentRepository, log zerolog.Logger) *CalendarService {
	return &CalendarService{appointmentRepo: appointmentRepo, log: log}
}

// WeekView — записи 7 дней начиная с weekStart, сгруппированные по дням.
// doctorID == uuid.Nil — все врачи.
func (s *CalendarService) WeekView(ctx context.Context, weekStart time.Time, doctorID uuid.UUID) (map[string][]CalendarEntry, error) {
	days := schedule.DaysOfWeek(weekStart)
	from := days[0]
	to := days[6].AddDate(0, 0, 1)

	return s.view(ctx, days, from, to, doctorID)
}

// MonthView — записи календарного месяца, сгруппированные по дням.
func (s *CalendarService) MonthView(ctx context.Context, year int, month time.Month, doctorID uuid.UUID) (map[string][]CalendarEntry, error) {
	days := schedule.DaysOfMonth(year, month)
	from := days[0]
	to := from.AddDate(0, 1, 0)

	return s.view(ctx, days, from, to, doctorID)
}

func (s *CalendarService) view(
	ctx context.Context,
	days []time.Time,
	from, to time.Time,
	doctorID uuid.UUID,
) (map[string][]CalendarEntry, error) {
	filter := ""
	if doctorID != uuid.Nil {
		filter = doctorID.String()
	}

	appts, err := s.appointmentRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]CalendarEntry, 0, len(appts))
	for _, a := range appts {
		entries = append(entries, newCalendarEntry(a))
	}

	return schedule.GroupByDay(days, entries, func(e CalendarEntry) time.Time { return e.StartsAt }), nil
}

func newCalendarEntry(a model.Appointment) CalendarEntry {
	e := CalendarEntry{
		ID:              a.ID,
		PatientFullName: a.PatientFullName(),
		Price:           a.Price,
		StartsAt:        a.StartsAt,
		EndsAt:          a.EndsAt,
	}
	if a.Doctor != nil {
		e.DoctorName = a.Doctor.FullName
	}
	switch {
	case a.Service != nil:
		e.ServiceName = a.Service.Name
	default:
		e.ServiceName = a.CustomServiceName
	}
	return e
}
