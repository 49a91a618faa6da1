package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	// Удалить услугу. Ссылки из записей обнуляются (SET NULL), записи остаются.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Service, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var s model.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) Update(ctx context.Context, service *model.Service) error {
	updates := map[string]any{
		"name":         service.Name,
		"price":        service.Price,
		"duration_min": service.DurationMin,
	}
	return r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("id = ?", service.ID).
		Updates(updates).
		Error
}

func (r *GormServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id).Error
}

func (r *GormServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
