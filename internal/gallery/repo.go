package gallery

import (
	"context"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes gallery persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new item, assigning the next display position. The max
// lookup and the insert run in one transaction so concurrent creates cannot
// claim the same slot.
func (r *Repository) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next *int
		if err := tx.Model(&models.GalleryItem{}).
			Select("MAX(display_order) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		if next != nil {
			item.DisplayOrder = *next
		} else {
			item.DisplayOrder = 0
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads a single item.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns a page of items with the total row count for the filter set.
// Items come back in display order; ties fall back to newest first.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.GalleryItem, int64, error) {
	page := input.Pagination.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.GalleryItem{})
	qb = applyFilters(qb, input.Filters)

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.GalleryItem
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

// Update saves the full item row.
func (r *Repository) Update(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item by ID, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Reorder applies the supplied positions in a single transaction; either
// every item moves or none do.
func (r *Repository) Reorder(ctx context.Context, entries []ReorderEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			res := tx.Model(&models.GalleryItem{}).
				Where("id = ?", entry.ID).
				UpdateColumn("display_order", entry.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// IncrementViews bumps the view counter without touching updated_at.
func (r *Repository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func applyFilters(qb *gorm.DB, f ListFilters) *gorm.DB {
	if f.Category != nil {
		qb = qb.Where("category = ?", *f.Category)
	}
	if f.Type != nil {
		qb = qb.Where("type = ?", *f.Type)
	}
	if f.IsActive != nil {
		qb = qb.Where("is_active = ?", *f.IsActive)
	}
	if f.Featured != nil {
		qb = qb.Where("featured = ?", *f.Featured)
	}
	return qb
}
