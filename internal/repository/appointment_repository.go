package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
)

type AppointmentRepository interface {
	// Создать запись.
	Create(ctx context.Context, appt *model.Appointment) error
	// Запись по ID вместе с врачом и услугой.
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	// Полное обновление полей записи.
	Update(ctx context.Context, appt *model.Appointment) error
	// Удалить запись.
	Delete(ctx context.Context, id string) error
	// Записи врача, пересекающие интервал [from, to) — вход проверки конфликтов.
	ListByDoctorAndRange(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error)
	// Записи за период, опционально отфильтрованные по врачу — вход календаря.
	ListByRange(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error)
}

// Реализация на GORM.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Service").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, appt *model.Appointment) error {
	updates := map[string]any{
		"doctor_id":           appt.DoctorID,
		"patient_first_name":  appt.PatientFirstName,
		"patient_last_name":   appt.PatientLastName,
		"patient_phone":       appt.PatientPhone,
		"service_id":          appt.ServiceID,
		"custom_service_name": appt.CustomServiceName,
		"duration_min":        appt.DurationMin,
		"price":               appt.Price,
		"starts_at":           appt.StartsAt,
		"ends_at":             appt.EndsAt,
	}
	return r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", appt.ID).
		Updates(updates).
		Error
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", id).Error
}

func (r *GormAppointmentRepository) ListByDoctorAndRange(
	ctx context.Context,
	doctorID string,
	from, to time.Time,
) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		// Полуоткрытое пересечение с [from, to).
		Where("starts_at < ? AND ends_at > ?", to, from).
		Order("starts_at ASC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *GormAppointmentRepository) ListByRange(
	ctx context.Context,
	doctorID string,
	from, to time.Time,
) ([]model.Appointment, error) {
	q := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Service").
		Where("starts_at < ? AND ends_at > ?", to, from)

	if doctorID != "" {
		q = q.Where("doctor_id = ?", doctorID)
	}

	var appts []model.Appointment
	if err := q.Order("starts_at ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}
