package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/schedule"
)

// DoctorInput — редактируемые поля врача.
type DoctorInput struct {
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	PhotoURL  string     `json:"photo_url"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
}

// ServiceInput — редактируемые поля услуги прейскуранта.
type ServiceInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

// ScheduleSlotInput — ручной слот доступности врача.
type ScheduleSlotInput struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable *bool     `json:"is_available,omitempty"`
}

// CatalogService — справочники клиники: врачи, услуги, ручные слоты.
type CatalogService struct {
	doctorRepo  repository.DoctorRepository
	serviceRepo repository.ServiceRepository
	slotRepo    repository.ScheduleSlotRepository

	log zerolog.Logger
}

func NewCatalogService(
	doctorRepo repository.DoctorRepository,
	serviceRepo repository.ServiceRepository,
	slotRepo repository.ScheduleSlotRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		doctorRepo:  doctorRepo,
		serviceRepo: serviceRepo,
		slotRepo:    slotRepo,
		log:         log,
	}
}

func (s *CatalogService) CreateDoctor(ctx context.Context, in DoctorInput) (*model.Doctor, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, ErrInvalidInput
	}

	doctor := &model.Doctor{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Phone:     in.Phone,
		Email:     in.Email,
		PhotoURL:  in.PhotoURL,
		AccountID: in.AccountID,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}

	s.log.Info().Str("doctor_id", doctor.ID.String()).Msg("врач создан")
	return doctor, nil
}

func (s *CatalogService) UpdateDoctor(ctx context.Context, id uuid.UUID, in DoctorInput) (*model.Doctor, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, ErrInvalidInput
	}

	doctor, err := s.doctorRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	doctor.FullName = in.FullName
	doctor.Phone = in.Phone
	doctor.Email = in.Email
	doctor.PhotoURL = in.PhotoURL
	doctor.AccountID = in.AccountID

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *CatalogService) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	return s.doctorRepo.GetByID(ctx, id.String())
}

func (s *CatalogService) ListDoctors(ctx context.Context, page, pageSize int) (schedule.Page[model.Doctor], error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return schedule.Page[model.Doctor]{}, err
	}
	return schedule.Paginate(doctors, page, pageSize), nil
}

// DeleteDoctor удаляет врача; его записи и слоты уходят каскадом на уровне БД.
func (s *CatalogService) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.doctorRepo.GetByID(ctx, id.String()); err != nil {
		return err
	}
	if err := s.doctorRepo.Delete(ctx, id.String()); err != nil {
		return err
	}

	s.log.Info().Str("doctor_id", id.String()).Msg("врач удалён")
	return nil
}

func (s *CatalogService) CreateService(ctx context.Context, in ServiceInput) (*model.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.DurationMin <= 0 || in.Price < 0 {
		return nil, ErrInvalidInput
	}

	svc := &model.Service{
		ID:          uuid.New(),
		Name:        in.Name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, in ServiceInput) (*model.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.DurationMin <= 0 || in.Price < 0 {
		return nil, ErrInvalidInput
	}

	svc, err := s.serviceRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	svc.Name = in.Name
	svc.Price = in.Price
	svc.DurationMin = in.DurationMin

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.serviceRepo.GetByID(ctx, id.String())
}

func (s *CatalogService) ListServices(ctx context.Context, page, pageSize int) (schedule.Page[model.Service], error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return schedule.Page[model.Service]{}, err
	}
	return schedule.Paginate(services, page, pageSize), nil
}

// DeleteService удаляет услугу; записи на неё остаются со снимком цены
// и длительности, ссылка обнуляется на уровне БД.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.serviceRepo.GetByID(ctx, id.String()); err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, id.String())
}

func (s *CatalogService) CreateSlot(ctx context.Context, in ScheduleSlotInput) (*model.ScheduleSlot, error) {
	date, err := parseSlotInput(in)
	if err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, in.DoctorID.String()); err != nil {
		return nil, err
	}

	slot := &model.ScheduleSlot{
		ID:          uuid.New(),
		DoctorID:    in.DoctorID,
		Date:        datatypes.Date(date),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		slot.IsAvailable = *in.IsAvailable
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *CatalogService) UpdateSlot(ctx context.Context, id uuid.UUID, in ScheduleSlotInput) (*model.ScheduleSlot, error) {
	date, err := parseSlotInput(in)
	if err != nil {
		return nil, err
	}

	slot, err := s.slotRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	slot.DoctorID = in.DoctorID
	slot.Date = datatypes.Date(date)
	slot.StartTime = in.StartTime
	slot.EndTime = in.EndTime
	if in.IsAvailable != nil {
		slot.IsAvailable = *in.IsAvailable
	}

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *CatalogService) GetSlot(ctx context.Context, id uuid.UUID) (*model.ScheduleSlot, error) {
	return s.slotRepo.GetByID(ctx, id.String())
}

func (s *CatalogService) ListSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]model.ScheduleSlot, error) {
	return s.slotRepo.ListByDoctorAndDate(ctx, doctorID.String(), datatypes.Date(date))
}

func (s *CatalogService) SetSlotAvailability(ctx context.Context, id uuid.UUID, available bool) (*model.ScheduleSlot, error) {
	if _, err := s.slotRepo.GetByID(ctx, id.String()); err != nil {
		return nil, err
	}
	if err := s.slotRepo.SetAvailability(ctx, id.String(), available); err != nil {
		return nil, err
	}
	return s.slotRepo.GetByID(ctx, id.String())
}

func (s *CatalogService) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	if _, err := s.slotRepo.GetByID(ctx, id.String()); err != nil {
		return err
	}
	return s.slotRepo.Delete(ctx, id.String())
}

func parseSlotInput(in ScheduleSlotInput) (time.Time, error) {
	if in.DoctorID == uuid.Nil {
		return time.Time{}, ErrInvalidInput
	}
	date, err := time.Parse(schedule.DayKeyLayout, in.Date)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	// Проверяем интервал на корректность, сам интервал хранится строками.
	if _, err := (schedule.ShiftTimes{Start: in.StartTime, End: in.EndTime}).WorkingInterval(date); err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return date, nil
}
