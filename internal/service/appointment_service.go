package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/schedule"
)

// ErrInvalidInput — некорректный вход мутации (отсутствует обязательное
// поле, неверный формат). Конкретика добавляется обёрткой fmt.Errorf.
var ErrInvalidInput = errors.New("invalid input")

// AppointmentInput — черновик записи. EndsAt не принимается: конец всегда
// вычисляется из начала и разрешённой длительности.
type AppointmentInput struct {
	DoctorID          uuid.UUID  `json:"doctor_id"`
	PatientFirstName  string     `json:"patient_first_name"`
	PatientLastName   string     `json:"patient_last_name"`
	PatientPhone      string     `json:"patient_phone"`
	ServiceID         *uuid.UUID `json:"service_id"`
	CustomServiceName string     `json:"custom_service_name"`
	CustomDurationMin *int       `json:"custom_duration_min"`
	CustomPrice       *float64   `json:"custom_price"`
	StartsAt          time.Time  `json:"starts_at"`
}

// AppointmentService — бронирование и изменение записей с проверкой
// конфликтов. Все мутации по одному врачу сериализуются через doctorLocks
// и выполняются в одной транзакции.
type AppointmentService struct {
	db *gorm.DB

	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	doctorRepo      repository.DoctorRepository
	eventRepo       repository.EventRepository

	locks *doctorLocks
	log   zerolog.Logger
}

func NewAppointmentService(
	db *gorm.DB,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	doctorRepo repository.DoctorRepository,
	eventRepo repository.EventRepository,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		db:              db,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		doctorRepo:      doctorRepo,
		eventRepo:       eventRepo,
		locks:           newDoctorLocks(),
		log:             log,
	}
}

func (s *AppointmentService) validateInput(in AppointmentInput) error {
	if in.DoctorID == uuid.Nil {
		return fmt.Errorf("%w: doctor_id is required", ErrInvalidInput)
	}
	if in.PatientFirstName == "" || in.PatientLastName == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}
	if in.StartsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", ErrInvalidInput)
	}
	if in.ServiceID == nil && in.CustomServiceName == "" {
		return fmt.Errorf("%w: either service_id or custom_service_name is required", ErrInvalidInput)
	}
	return nil
}

// resolve загружает услугу (если указана) и вычисляет длительность, цену
// и производный конец записи.
func (s *AppointmentService) resolve(ctx context.Context, in AppointmentInput) (schedule.ResolvedAppointment, error) {
	var priced *schedule.PricedService
	if in.ServiceID != nil {
		svc, err := s.serviceRepo.GetByID(ctx, in.ServiceID.String())
		if err != nil {
			return schedule.ResolvedAppointment{}, err
		}
		priced = &schedule.PricedService{DurationMin: svc.DurationMin, Price: svc.Price}
	}
	return schedule.ResolveAppointment(in.StartsAt, priced, in.CustomDurationMin, in.CustomPrice)
}

// Create бронирует запись. Возвращает сохранённую запись с производным
// концом или *schedule.ConflictError при пересечении.
func (s *AppointmentService) Create(ctx context.Context, in AppointmentInput) (*model.Appointment, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, in.DoctorID.String()); err != nil {
		return nil, err
	}

	resolved, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		ID:                uuid.New(),
		DoctorID:          in.DoctorID,
		PatientFirstName:  in.PatientFirstName,
		PatientLastName:   in.PatientLastName,
		PatientPhone:      in.PatientPhone,
		ServiceID:         in.ServiceID,
		CustomServiceName: in.CustomServiceName,
		DurationMin:       resolved.DurationMin,
		Price:             resolved.Price,
		StartsAt:          in.StartsAt,
		EndsAt:            resolved.EndsAt,
	}

	// Критическая секция врача: check-then-insert атомарен.
	mu := s.locks.forDoctor(in.DoctorID)
	mu.Lock()
	defer mu.Unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewGormAppointmentRepository(tx)

		conflictErr, err := s.checkConflict(ctx, txRepo, in.DoctorID, appt.StartsAt, appt.EndsAt, uuid.Nil)
		if err != nil {
			return err
		}
		if conflictErr != nil {
			return conflictErr
		}
		return txRepo.Create(ctx, appt)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, model.EventTypeAppointmentCreated, appt)
	return appt, nil
}

// Update переносит или переоформляет запись. Обновляемая запись исключается
// из сравнения конфликтов.
func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, in AppointmentInput) (*model.Appointment, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	current, err := s.appointmentRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, in.DoctorID.String()); err != nil {
		return nil, err
	}

	resolved, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	current.DoctorID = in.DoctorID
	current.PatientFirstName = in.PatientFirstName
	current.PatientLastName = in.PatientLastName
	current.PatientPhone = in.PatientPhone
	current.ServiceID = in.ServiceID
	current.CustomServiceName = in.CustomServiceName
	current.DurationMin = resolved.DurationMin
	current.Price = resolved.Price
	current.StartsAt = in.StartsAt
	current.EndsAt = resolved.EndsAt

	mu := s.locks.forDoctor(in.DoctorID)
	mu.Lock()
	defer mu.Unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewGormAppointmentRepository(tx)

		conflictErr, err := s.checkConflict(ctx, txRepo, in.DoctorID, current.StartsAt, current.EndsAt, id)
		if err != nil {
			return err
		}
		if conflictErr != nil {
			return conflictErr
		}
		return txRepo.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, model.EventTypeAppointmentUpdated, current)
	return current, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id.String())
}

// List возвращает страницу записей за период; doctorID == uuid.Nil — все врачи.
func (s *AppointmentService) List(
	ctx context.Context,
	doctorID uuid.UUID,
	from, to time.Time,
	page, pageSize int,
) (schedule.Page[model.Appointment], error) {
	filter := ""
	if doctorID != uuid.Nil {
		filter = doctorID.String()
	}

	appts, err := s.appointmentRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return schedule.Page[model.Appointment]{}, err
	}
	return schedule.Paginate(appts, page, pageSize), nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	appt, err := s.appointmentRepo.GetByID(ctx, id.String())
	if err != nil {
		return err
	}
	if err := s.appointmentRepo.Delete(ctx, id.String()); err != nil {
		return err
	}
	s.audit(ctx, model.EventTypeAppointmentDeleted, appt)
	return nil
}

// checkConflict загружает занятые интервалы врача вокруг кандидата и
// прогоняет полуоткрытую проверку пересечения.
func (s *AppointmentService) checkConflict(
	ctx context.Context,
	repo repository.AppointmentRepository,
	doctorID uuid.UUID,
	startsAt, endsAt time.Time,
	excludeID uuid.UUID,
) (*schedule.ConflictError, error) {
	existing, err := repo.ListByDoctorAndRange(ctx, doctorID.String(), startsAt, endsAt)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.BookedInterval, 0, len(existing))
	for _, a := range existing {
		booked = append(booked, schedule.BookedInterval{
			AppointmentID: a.ID,
			TimeRange:     schedule.TimeRange{Start: a.StartsAt, End: a.EndsAt},
		})
	}

	candidate := schedule.TimeRange{Start: startsAt, End: endsAt}
	return schedule.FindConflict(candidate, booked, excludeID), nil
}

// audit пишет событие в ленту; сбой аудита бронирование не откатывает.
func (s *AppointmentService) audit(ctx context.Context, eventType model.EventType, appt *model.Appointment) {
	details, _ := json.Marshal(map[string]any{
		"patient":   appt.PatientFullName(),
		"starts_at": appt.StartsAt,
		"ends_at":   appt.EndsAt,
	})

	ev := &model.Event{
		EventType:     eventType,
		DoctorID:      &appt.DoctorID,
		AppointmentID: &appt.ID,
		Details:       datatypes.JSON(details),
	}
	if err := s.eventRepo.Create(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("event", string(eventType)).Msg("audit event write failed")
	}
}
