package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
)

// ServiceDTO is the transport shape for a bookable service.
type ServiceDTO struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Slug              string                `json:"slug"`
	Description       string                `json:"description"`
	ShortDescription  *string               `json:"short_description,omitempty"`
	DurationMinutes   int                   `json:"duration_minutes"`
	PriceCents        int64                 `json:"price_cents"`
	Category          enums.ServiceCategory `json:"category"`
	Features          []string              `json:"features"`
	Preparation       []string              `json:"preparation"`
	Aftercare         []string              `json:"aftercare"`
	Contraindications []string              `json:"contraindications"`
	ImageURL          *string               `json:"image_url,omitempty"`
	IsActive          bool                  `json:"is_active"`
	IsPopular         bool                  `json:"is_popular"`
	Order             int                   `json:"order"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// CreateInput carries the fields needed to persist a new service. An empty
// Slug is derived from the name.
type CreateInput struct {
	Name              string
	Slug              string
	Description       string
	ShortDescription  *string
	DurationMinutes   int
	PriceCents        int64
	Category          enums.ServiceCategory
	Features          []string
	Preparation       []string
	Aftercare         []string
	Contraindications []string
	Image             *models.ImageRef
	IsActive          *bool
	IsPopular         bool
	Order             int
}

// UpdateInput describes a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name              *string
	Slug              *string
	Description       *string
	ShortDescription  *string
	DurationMinutes   *int
	PriceCents        *int64
	Category          *enums.ServiceCategory
	Features          *[]string
	Preparation       *[]string
	Aftercare         *[]string
	Contraindications *[]string
	Image             *models.ImageRef
	IsActive          *bool
	IsPopular         *bool
	Order             *int
}

// ListFilters describe the supported filter knobs for service listings.
type ListFilters struct {
	Category  *enums.ServiceCategory
	IsActive  *bool
	IsPopular *bool
}

// ListInput bundles filters with pagination for list queries.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult carries a page of services plus pagination metadata.
type ListResult struct {
	Items []ServiceDTO
	Meta  pagination.Meta
}

func FromModel(m *models.Service) *ServiceDTO {
	if m == nil {
		return nil
	}
	return &ServiceDTO{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		ShortDescription:  m.ShortDescription,
		DurationMinutes:   m.DurationMinutes,
		PriceCents:        m.PriceCents,
		Category:          m.Category,
		Features:          emptyIfNil(m.Features),
		Preparation:       emptyIfNil(m.Preparation),
		Aftercare:         emptyIfNil(m.Aftercare),
		Contraindications: emptyIfNil(m.Contraindications),
		ImageURL:          m.ImageURL,
		IsActive:          m.IsActive,
		IsPopular:         m.IsPopular,
		Order:             m.DisplayOrder,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromModels(rows []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
