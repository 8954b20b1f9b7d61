package catalog

import (
	"context"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes service catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new service row.
func (r *Repository) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

// FindByID loads a service by UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// FindBySlug loads a service by its public slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// List returns a page of services with the total count for the filter set.
// Ordered by display position, then newest first.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Service, int64, error) {
	page := input.Pagination.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.Service{})
	if input.Filters.Category != nil {
		qb = qb.Where("category = ?", *input.Filters.Category)
	}
	if input.Filters.IsActive != nil {
		qb = qb.Where("is_active = ?", *input.Filters.IsActive)
	}
	if input.Filters.IsPopular != nil {
		qb = qb.Where("is_popular = ?", *input.Filters.IsPopular)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Service
	err := qb.
		Order("display_order ASC").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(input.Pagination.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update saves the full service row.
func (r *Repository) Update(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := r.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes a service by ID, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
