package bookings

import (
	"context"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes booking persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking row.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// FindByID loads a booking with its service preloaded.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Service").First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns a page of bookings (newest appointment date first) with the
// total count for the filter set. Services are preloaded for display.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Booking, int64, error) {
	page := input.Pagination.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.Booking{})
	if input.Filters.Status != nil {
		qb = qb.Where("status = ?", *input.Filters.Status)
	}
	if input.Filters.ServiceID != nil {
		qb = qb.Where("service_id = ?", *input.Filters.ServiceID)
	}
	if input.Filters.DateFrom != nil {
		qb = qb.Where("date >= ?", *input.Filters.DateFrom)
	}
	if input.Filters.DateTo != nil {
		qb = qb.Where("date <= ?", *input.Filters.DateTo)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Booking
	err := qb.
		Preload("Service").
		Order("date DESC").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(input.Pagination.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatus transitions a booking, reporting whether a row matched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a booking by ID, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
