package models

import (
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service is a bookable offering. Slug uniqueness is enforced at the
// storage level.
type Service struct {
	ID                uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string                       `gorm:"type:text;not null"`
	Slug              string                       `gorm:"type:text;not null;uniqueIndex:idx_services_slug"`
	Description       string                       `gorm:"type:text;not null"`
	ShortDescription  *string                      `gorm:"column:short_description"`
	DurationMinutes   int                          `gorm:"column:duration_minutes;not null"`
	PriceCents        int64                        `gorm:"column:price_cents;not null"`
	Category          enums.ServiceCategory        `gorm:"type:text;not null;index"`
	Features          datatypes.JSONSlice[string]  `gorm:"column:features"`
	Preparation       datatypes.JSONSlice[string]  `gorm:"column:preparation"`
	Aftercare         datatypes.JSONSlice[string]  `gorm:"column:aftercare"`
	Contraindications datatypes.JSONSlice[string]  `gorm:"column:contraindications"`
	ImageURL          *string                      `gorm:"column:image_url"`
	ImageKey          *string                      `gorm:"column:image_key"`
	IsActive          bool                         `gorm:"column:is_active;not null;default:true"`
	IsPopular         bool                         `gorm:"column:is_popular;not null;default:false"`
	DisplayOrder      int                          `gorm:"column:display_order;not null;default:0"`
	CreatedAt         time.Time                    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time                    `gorm:"column:updated_at;autoUpdateTime"`
}
