package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Setting is a keyed configuration value editable from the dashboard.
type Setting struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key         string         `gorm:"type:text;not null;uniqueIndex:idx_settings_key"`
	Value       datatypes.JSON `gorm:"column:value"`
	Description *string        `gorm:"column:description"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
