package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/anasbeautylab/beautylab-backend/internal/catalog"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
)

// BookingDTO is the transport shape for an appointment request.
type BookingDTO struct {
	ID          uuid.UUID           `json:"id"`
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email"`
	ClientPhone string              `json:"client_phone"`
	ServiceID   uuid.UUID           `json:"service_id"`
	Service     *catalog.ServiceDTO `json:"service,omitempty"`
	Date        time.Time           `json:"date"`
	Time        string              `json:"time"`
	Status      enums.BookingStatus `json:"status"`
	Notes       *string             `json:"notes,omitempty"`
	Source      enums.BookingSource `json:"source"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateInput carries a public booking request. Provenance fields are
// captured from the request, never from the payload.
type CreateInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	ServiceID   uuid.UUID
	Date        time.Time
	Time        string
	Notes       *string
	Source      enums.BookingSource
	IPAddress   *string
	UserAgent   *string
}

// ListFilters describe the admin booking list knobs.
type ListFilters struct {
	Status    *enums.BookingStatus
	ServiceID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
}

// ListInput bundles filters with pagination.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult carries a page of bookings plus pagination metadata.
type ListResult struct {
	Items []BookingDTO
	Meta  pagination.Meta
}

func FromModel(m *models.Booking) *BookingDTO {
	if m == nil {
		return nil
	}
	return &BookingDTO{
		ID:          m.ID,
		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		ClientPhone: m.ClientPhone,
		ServiceID:   m.ServiceID,
		Service:     catalog.FromModel(m.Service),
		Date:        m.Date,
		Time:        m.Time,
		Status:      m.Status,
		Notes:       m.Notes,
		Source:      m.Source,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromModels(rows []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
