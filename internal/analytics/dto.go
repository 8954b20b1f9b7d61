package analytics

import (
	"encoding/json"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
)

// RecordInput captures one tracked event. Data is kept as raw JSON; known
// event types get their payload shape checked before storage.
type RecordInput struct {
	Type      enums.AnalyticsEventType
	Data      json.RawMessage
	SessionID *string
	IPAddress *string
	UserAgent *string
	Referrer  *string
}

// PageviewPayload is the expected shape for pageview events.
type PageviewPayload struct {
	Path  string `json:"path" validate:"required"`
	Title string `json:"title,omitempty"`
}

// GalleryViewPayload is the expected shape for gallery_view events.
type GalleryViewPayload struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Category string    `json:"category,omitempty"`
}

// ServiceViewPayload is the expected shape for service_view events.
type ServiceViewPayload struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Slug      string    `json:"slug,omitempty"`
}

// RecordedEvent acknowledges a stored event.
type RecordedEvent struct {
	ID        uuid.UUID                `json:"id"`
	Type      enums.AnalyticsEventType `json:"type"`
	CreatedAt time.Time                `json:"created_at"`
}

// SummaryInput bounds the reporting window. Zero values mean an open end.
type SummaryInput struct {
	From time.Time
	To   time.Time
}

// Summary aggregates event counts for a window.
type Summary struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"by_type"`
	From   *time.Time       `json:"from,omitempty"`
	To     *time.Time       `json:"to,omitempty"`
}

// TypeCount is one aggregation row.
type TypeCount struct {
	Type  string
	Count int64
}
