package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
)

type ScheduleSlotRepository interface {
	GetByID(ctx context.Context, id string) (*model.ScheduleSlot, error)
	Create(ctx context.Context, slot *model.ScheduleSlot) error
	Update(ctx context.Context, slot *model.ScheduleSlot) error
	Delete(ctx context.Context, id string) error
	// Слоты врача на дату; doctorID == "" — все врачи.
	ListByDoctorAndDate(ctx context.Context, doctorID string, date datatypes.Date) ([]model.ScheduleSlot, error)
	// Переключить флаг доступности.
	SetAvailability(ctx context.Context, id string, available bool) error
}

type GormScheduleSlotRepository struct {
	db *gorm.DB
}

func NewGormScheduleSlotRepository(db *gorm.DB) *GormScheduleSlotRepository {
	return &GormScheduleSlotRepository{db: db}
}

func (r *GormScheduleSlotRepository) GetByID(ctx context.Context, id string) (*model.ScheduleSlot, error) {
	var s model.ScheduleSlot
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormScheduleSlotRepository) Create(ctx context.Context, slot *model.ScheduleSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *GormScheduleSlotRepository) Update(ctx context.Context, slot *model.ScheduleSlot) error {
	updates := map[string]any{
		"date":         slot.Date,
		"start_time":   slot.StartTime,
		"end_time":     slot.EndTime,
		"is_available": slot.IsAvailable,
	}
	return r.db.WithContext(ctx).
		Model(&model.ScheduleSlot{}).
		Where("id = ?", slot.ID).
		Updates(updates).
		Error
}

func (r *GormScheduleSlotRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ScheduleSlot{}, "id = ?", id).Error
}

func (r *GormScheduleSlotRepository) ListByDoctorAndDate(
	ctx context.Context,
	doctorID string,
	date datatypes.Date,
) ([]model.ScheduleSlot, error) {
	q := r.db.WithContext(ctx).Where("date = ?", date)
	if doctorID != "" {
		q = q.Where("doctor_id = ?", doctorID)
	}

	var slots []model.ScheduleSlot
	if err := q.Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *GormScheduleSlotRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.db.WithContext(ctx).
		Model(&model.ScheduleSlot{}).
		Where("id = ?", id).
		Update("is_available", available).
		Error
}
