package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service defines the behavior needed by the analytics controllers.
type Service interface {
	Record(ctx context.Context, input RecordInput) (*RecordedEvent, error)
	Summarize(ctx context.Context, input SummaryInput) (*Summary, error)
}

type repository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) (*models.AnalyticsEvent, error)
	CountByType(ctx context.Context, from, to time.Time) ([]TypeCount, error)
}

type service struct {
	repo repository
}

// NewService constructs an analytics service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository is required")
	}
	return &service{repo: repo}, nil
}

// Record validates and stores one event. Payloads for known event types
// must decode into their expected shape; unknown extra fields are rejected
// so typos surface instead of rotting in storage.
func (s *service) Record(ctx context.Context, input RecordInput) (*RecordedEvent, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown analytics event type %q", input.Type))
	}
	if err := validatePayload(input.Type, input.Data); err != nil {
		return nil, err
	}

	event := &models.AnalyticsEvent{
		Type:      input.Type,
		Data:      datatypes.JSON(input.Data),
		SessionID: input.SessionID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Referrer:  input.Referrer,
	}
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record analytics event")
	}
	return &RecordedEvent{
		ID:        created.ID,
		Type:      created.Type,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (s *service) Summarize(ctx context.Context, input SummaryInput) (*Summary, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "summary window end precedes start")
	}

	rows, err := s.repo.CountByType(ctx, input.From, input.To)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summarize analytics events")
	}

	summary := &Summary{ByType: make(map[string]int64, len(rows))}
	for _, row := range rows {
		summary.ByType[row.Type] = row.Count
		summary.Total += row.Count
	}
	if !input.From.IsZero() {
		summary.From = &input.From
	}
	if !input.To.IsZero() {
		summary.To = &input.To
	}
	return summary, nil
}

func validatePayload(eventType enums.AnalyticsEventType, data json.RawMessage) error {
	if len(data) == 0 {
		if eventType == enums.AnalyticsEventPageview ||
			eventType == enums.AnalyticsEventGalleryView ||
			eventType == enums.AnalyticsEventServiceView {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s events require a payload", eventType))
		}
		return nil
	}

	switch eventType {
	case enums.AnalyticsEventPageview:
		var payload PageviewPayload
		if err := decodeStrict(data, &payload); err != nil {
			return err
		}
		if payload.Path == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "pageview payload requires a path")
		}
	case enums.AnalyticsEventGalleryView:
		var payload GalleryViewPayload
		if err := decodeStrict(data, &payload); err != nil {
			return err
		}
		if payload.ItemID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "gallery_view payload requires an item_id")
		}
	case enums.AnalyticsEventServiceView:
		var payload ServiceViewPayload
		if err := decodeStrict(data, &payload); err != nil {
			return err
		}
		if payload.ServiceID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "service_view payload requires a service_id")
		}
	default:
		// booking and contact events carry free-form context; it only needs
		// to be valid JSON
		if !json.Valid(data) {
			return pkgerrors.New(pkgerrors.CodeValidation, "event payload is not valid json")
		}
	}
	return nil
}

func decodeStrict(data json.RawMessage, target any) error {
	if err := json.Unmarshal(data, target); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "event payload does not match expected shape")
	}
	return nil
}
