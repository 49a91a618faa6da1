package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/schedule"
)

// AvailabilityService производит свободные 30-минутные окна врача на дату
// из его смен и существующих записей.
type AvailabilityService struct {
	shiftRepo       repository.ShiftRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository

	log zerolog.Logger
}

func NewAvailabilityService(
	shiftRepo repository.ShiftRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	log zerolog.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		shiftRepo:       shiftRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		log:             log,
	}
}

// AvailableSlots возвращает свободные слоты врача на дату в хронологическом
// порядке. Нет смены на дату (или врач в неё не назначен) — пустой список,
// не ошибка.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]schedule.TimeRange, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID.String()); err != nil {
		return nil, err
	}

	week, day := schedule.WeekOfDate(date)
	if week == 0 || day > 5 {
		// До первого понедельника года или воскресенье: смен не бывает.
		return []schedule.TimeRange{}, nil
	}

	shifts, err := s.shiftRepo.ListByWeekDay(ctx, week, day)
	if err != nil {
		return nil, err
	}

	slots := make([]schedule.TimeRange, 0)
	for _, shift := range shifts {
		assigned := false
		for _, d := range shift.Doctors {
			if d.ID == doctorID {
				assigned = true
				break
			}
		}
		if !assigned {
			continue
		}

		work, err := schedule.ShiftTimes{Start: shift.StartTime, End: shift.EndTime}.WorkingInterval(date)
		if err != nil {
			return nil, err
		}

		appts, err := s.appointmentRepo.ListByDoctorAndRange(ctx, doctorID.String(), work.Start, work.End)
		if err != nil {
			return nil, err
		}
		busy := make([]schedule.TimeRange, 0, len(appts))
		for _, a := range appts {
			busy = append(busy, schedule.TimeRange{Start: a.StartsAt, End: a.EndsAt})
		}

		free, err := schedule.FreeSlots(work, busy, schedule.SlotDuration)
		if err != nil {
			return nil, err
		}
		slots = append(slots, free...)
	}

	return slots, nil
}
