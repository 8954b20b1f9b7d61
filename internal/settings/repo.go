package settings

import (
	"context"
	"errors"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes settings persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByKey loads one setting. Returns (nil, nil) when the key is absent.
func (r *Repository) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	var row models.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert inserts the setting or, when the key already exists, replaces its
// value and description.
func (r *Repository) Upsert(ctx context.Context, setting *models.Setting) (*models.Setting, error) {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return nil, err
	}
	return r.FindByKey(ctx, setting.Key)
}

// List returns every setting ordered by key.
func (r *Repository) List(ctx context.Context) ([]models.Setting, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
