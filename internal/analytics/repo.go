package analytics

import (
	"context"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes analytics persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts one event row.
func (r *Repository) Create(ctx context.Context, event *models.AnalyticsEvent) (*models.AnalyticsEvent, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// CountByType aggregates events per type inside the window. Zero bounds are
// left open.
func (r *Repository) CountByType(ctx context.Context, from, to time.Time) ([]TypeCount, error) {
	qb := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("type, COUNT(*) AS count").
		Group("type")
	if !from.IsZero() {
		qb = qb.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		qb = qb.Where("created_at <= ?", to)
	}

	var rows []TypeCount
	if err := qb.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
