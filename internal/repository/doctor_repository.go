package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
)

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Doctor, error)
	// Создать врача.
	Create(ctx context.Context, doctor *model.Doctor) error
	// Обновить контактные поля (идентичность неизменна).
	Update(ctx context.Context, doctor *model.Doctor) error
	// Удалить врача. Каскад на записи и слоты задан constraint-ами модели.
	Delete(ctx context.Context, id string) error
	// Все врачи клиники (ростер для генератора смен).
	List(ctx context.Context) ([]model.Doctor, error)
}

type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, id string) (*model.Doctor, error) {
	var d model.Doctor
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *GormDoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	updates := map[string]any{
		"full_name": doctor.FullName,
		"phone":     doctor.Phone,
		"email":     doctor.Email,
		"photo_url": doctor.PhotoURL,
	}
	return r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("id = ?", doctor.ID).
		Updates(updates).
		Error
}

func (r *GormDoctorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Doctor{}, "id = ?", id).Error
}

func (r *GormDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Order("full_name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
