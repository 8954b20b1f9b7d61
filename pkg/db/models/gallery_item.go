package models

import (
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImageRef pairs a publicly resolvable URL with the storage key needed to
// retrieve or delete the blob later.
type ImageRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// GalleryImageSet holds the image variants attached to a gallery item.
// Before and After are both present or both absent; presence implies the
// before-after type.
type GalleryImageSet struct {
	Before    *ImageRef `json:"before,omitempty"`
	After     *ImageRef `json:"after,omitempty"`
	Full      *ImageRef `json:"full,omitempty"`
	Thumbnail *ImageRef `json:"thumbnail,omitempty"`
}

// GalleryMetadata captures the client-facing context shown with an item.
type GalleryMetadata struct {
	Sessions    int    `json:"sessions,omitempty"`
	Timeframe   string `json:"timeframe,omitempty"`
	ClientQuote string `json:"client_quote,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	HasConsent  bool   `json:"has_consent"`
}

// GalleryItem is a showcased media record on the public site.
type GalleryItem struct {
	ID           uuid.UUID                            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title        string                               `gorm:"type:text;not null"`
	Description  *string                              `gorm:"column:description"`
	Category     enums.GalleryCategory                `gorm:"type:text;not null;index:idx_gallery_category_order,priority:1"`
	Type         enums.GalleryType                    `gorm:"type:text;not null;default:'studio'"`
	Images       datatypes.JSONType[GalleryImageSet]  `gorm:"column:images"`
	Metadata     datatypes.JSONType[GalleryMetadata]  `gorm:"column:metadata"`
	DisplayOrder int                                  `gorm:"column:display_order;not null;default:0;index:idx_gallery_category_order,priority:2"`
	IsActive     bool                                 `gorm:"column:is_active;not null;default:true"`
	Featured     bool                                 `gorm:"column:featured;not null;default:false"`
	Views        int64                                `gorm:"column:views;not null;default:0"`
	CreatedAt    time.Time                            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time                            `gorm:"column:updated_at;autoUpdateTime"`
}
