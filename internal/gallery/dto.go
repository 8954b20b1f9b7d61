package gallery

import (
	"time"

	"github.com/google/uuid"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
)

// GalleryItemDTO is the transport shape for a gallery item.
type GalleryItemDTO struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	Category    enums.GalleryCategory  `json:"category"`
	Type        enums.GalleryType      `json:"type"`
	Images      models.GalleryImageSet `json:"images"`
	Metadata    models.GalleryMetadata `json:"metadata"`
	Order       int                    `json:"order"`
	IsActive    bool                   `json:"is_active"`
	Featured    bool                   `json:"featured"`
	Views       int64                  `json:"views"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// CreateInput carries the fields needed to persist a new gallery item. The
// image set is built by the upload pipeline before the service is called.
type CreateInput struct {
	Title       string
	Description *string
	Category    enums.GalleryCategory
	Type        enums.GalleryType
	Images      models.GalleryImageSet
	Metadata    models.GalleryMetadata
	IsActive    *bool
	Featured    bool
}

// UpdateInput describes a partial update. Nil fields are left untouched;
// a non-nil Images replaces the whole image set.
type UpdateInput struct {
	Title       *string
	Description *string
	Category    *enums.GalleryCategory
	Type        *enums.GalleryType
	Images      *models.GalleryImageSet
	Metadata    *models.GalleryMetadata
	IsActive    *bool
	Featured    *bool
}

// ListFilters describe the supported filter knobs for gallery listings.
// Nil values mean "no filter"; the public surface pins IsActive to true.
type ListFilters struct {
	Category *enums.GalleryCategory
	Type     *enums.GalleryType
	IsActive *bool
	Featured *bool
}

// ListInput bundles filters with pagination for list queries.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult carries a page of items plus pagination metadata.
type ListResult struct {
	Items []GalleryItemDTO
	Meta  pagination.Meta
}

// ReorderEntry assigns an explicit display position to one item.
type ReorderEntry struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order int       `json:"order" validate:"min=0"`
}

func FromModel(m *models.GalleryItem) *GalleryItemDTO {
	if m == nil {
		return nil
	}
	return &GalleryItemDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Type:        m.Type,
		Images:      m.Images.Data(),
		Metadata:    m.Metadata.Data(),
		Order:       m.DisplayOrder,
		IsActive:    m.IsActive,
		Featured:    m.Featured,
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromModels(rows []models.GalleryItem) []GalleryItemDTO {
	out := make([]GalleryItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
