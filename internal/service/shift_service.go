package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/schedule"
)

var dayNames = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
}

// ShiftScheduleEntry — одна смена в недельном расписании.
type ShiftScheduleEntry struct {
	ID        uuid.UUID      `json:"id"`
	Date      string         `json:"date"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Doctors   []model.Doctor `json:"doctors"`
}

// ShiftService — генерация недельной сетки смен и её представления.
type ShiftService struct {
	shiftRepo  repository.ShiftRepository
	doctorRepo repository.DoctorRepository
	eventRepo  repository.EventRepository

	log zerolog.Logger
}

func NewShiftService(
	shiftRepo repository.ShiftRepository,
	doctorRepo repository.DoctorRepository,
	eventRepo repository.EventRepository,
	log zerolog.Logger,
) *ShiftService {
	return &ShiftService{
		shiftRepo:  shiftRepo,
		doctorRepo: doctorRepo,
		eventRepo:  eventRepo,
		log:        log,
	}
}

// GenerateWeek идемпотентно создаёт сетку смен недели week (1–52):
// Пн–Пт по две смены, Сб — только первая, итого 11. Повторный вызов не
// плодит дубликаты, только переназначает врачей.
func (s *ShiftService) GenerateWeek(ctx context.Context, week, year int) ([]model.Shift, error) {
	if week < 1 || week > 52 {
		return nil, fmt.Errorf("%w: week must be in 1..52", ErrInvalidInput)
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return []model.Shift{}, nil
	}

	shifts := make([]model.Shift, 0, 11)
	for _, cell := range schedule.WeekGrid() {
		shift, created, err := s.shiftRepo.GetOrCreate(
			ctx,
			week,
			cell.DayOfWeek,
			model.ShiftType(cell.Type),
			cell.Times.Start,
			cell.Times.End,
		)
		if err != nil {
			return nil, err
		}
		if created {
			s.log.Debug().
				Int("week", week).
				Int("day", cell.DayOfWeek).
				Str("type", string(cell.Type)).
				Msg("shift created")
		}

		assigned := make([]model.Doctor, 0, len(doctors))
		for _, d := range doctors {
			if schedule.ShouldAssignDoctor(d.ID, week, cell.DayOfWeek, cell.Type) {
				assigned = append(assigned, d)
			}
		}
		if err := s.shiftRepo.ReplaceDoctors(ctx, shift, assigned); err != nil {
			return nil, err
		}
		shift.Doctors = assigned

		shifts = append(shifts, *shift)
	}

	s.auditGenerated(ctx, week, year, len(shifts))
	return shifts, nil
}

// WeekSchedule возвращает расписание недели: день → тип смены → смена с
// датой и назначенными врачами. Чистая проекция.
func (s *ShiftService) WeekSchedule(ctx context.Context, week, year int) (map[string]map[string]ShiftScheduleEntry, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	shifts, err := s.shiftRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]ShiftScheduleEntry)
	for _, shift := range shifts {
		day := dayNames[shift.DayOfWeek]
		if _, ok := out[day]; !ok {
			out[day] = make(map[string]ShiftScheduleEntry)
		}
		out[day][string(shift.ShiftType)] = ShiftScheduleEntry{
			ID:        shift.ID,
			Date:      schedule.ShiftDate(week, year, shift.DayOfWeek).Format(schedule.DayKeyLayout),
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			Doctors:   shift.Doctors,
		}
	}
	return out, nil
}

func (s *ShiftService) Get(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id.String())
}

func (s *ShiftService) ListByWeek(ctx context.Context, week int) ([]model.Shift, error) {
	return s.shiftRepo.ListByWeek(ctx, week)
}

// AssignDoctors вручную заменяет состав врачей смены.
func (s *ShiftService) AssignDoctors(ctx context.Context, shiftID uuid.UUID, doctorIDs []uuid.UUID) (*model.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID.String())
	if err != nil {
		return nil, err
	}

	doctors := make([]model.Doctor, 0, len(doctorIDs))
	for _, id := range doctorIDs {
		d, err := s.doctorRepo.GetByID(ctx, id.String())
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *d)
	}

	if err := s.shiftRepo.ReplaceDoctors(ctx, shift, doctors); err != nil {
		return nil, err
	}
	shift.Doctors = doctors
	return shift, nil
}

func (s *ShiftService) auditGenerated(ctx context.Context, week, year, count int) {
	details, _ := json.Marshal(map[string]any{
		"week":  week,
		"year":  year,
		"count": count,
	})
	ev := &model.Event{
		EventType: model.EventTypeShiftsGenerated,
		Details:   datatypes.JSON(details),
	}
	if err := s.eventRepo.Create(ctx, ev); err != nil {
		s.log.Warn().Err(err).Msg("audit event write failed")
	}
}
