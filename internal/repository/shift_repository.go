package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
)

type ShiftRepository interface {
	// Get-or-create по тройке (week, day, type): повторный вызов не плодит
	// дубликаты, только возвращает существующую смену.
	GetOrCreate(ctx context.Context, week, day int, shiftType model.ShiftType, startTime, endTime string) (*model.Shift, bool, error)
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	// Смены недели с назначенными врачами.
	ListByWeek(ctx context.Context, week int) ([]model.Shift, error)
	// Смены ячейки (week, day) с врачами — вход генератора доступности.
	ListByWeekDay(ctx context.Context, week, day int) ([]model.Shift, error)
	// Полная замена состава врачей смены.
	ReplaceDoctors(ctx context.Context, shift *model.Shift, doctors []model.Doctor) error
}

type GormShiftRepository struct {
	db *gorm.DB
}

func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

func (r *GormShiftRepository) GetOrCreate(
	ctx context.Context,
	week, day int,
	shiftType model.ShiftType,
	startTime, endTime string,
) (*model.Shift, bool, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("week_of_year = ? AND day_of_week = ? AND shift_type = ?", week, day, shiftType).
		First(&shift).Error
	if err == nil {
		return &shift, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	shift = model.Shift{
		ID:         uuid.New(),
		WeekOfYear: week,
		DayOfWeek:  day,
		ShiftType:  shiftType,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	if err := r.db.WithContext(ctx).Create(&shift).Error; err != nil {
		return nil, false, err
	}
	return &shift, true, nil
}

func (r *GormShiftRepository) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Preload("Doctors").
		First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *GormShiftRepository) ListByWeek(ctx context.Context, week int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Doctors").
		Where("week_of_year = ?", week).
		Order("day_of_week ASC, shift_type ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *GormShiftRepository) ListByWeekDay(ctx context.Context, week, day int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Doctors").
		Where("week_of_year = ? AND day_of_week = ?", week, day).
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *GormShiftRepository) ReplaceDoctors(ctx context.Context, shift *model.Shift, doctors []model.Doctor) error {
	return r.db.WithContext(ctx).Model(shift).Association("Doctors").Replace(doctors)
}
