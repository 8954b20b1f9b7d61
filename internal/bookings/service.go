package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the booking controllers.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*BookingDTO, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*BookingDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) (*BookingDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, input ListInput) ([]models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type serviceFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

type service struct {
	repo     repository
	services serviceFinder
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build a booking service.
type ServiceParams struct {
	Repo        repository
	CatalogRepo serviceFinder
	Now         func() time.Time
}

// NewService constructs a booking service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("booking repository is required")
	}
	if params.CatalogRepo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, services: params.CatalogRepo, now: now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*BookingDTO, error) {
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "requested service does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service for booking")
	}
	if !svc.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "requested service is not currently offered")
	}

	if startOfDay(input.Date).Before(startOfDay(s.now().UTC())) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking date must not be in the past")
	}

	source := input.Source
	if source == "" {
		source = enums.BookingSourceWebsite
	}

	booking := &models.Booking{
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		ServiceID:   input.ServiceID,
		Date:        input.Date,
		Time:        input.Time,
		Status:      enums.BookingStatusPending,
		Notes:       input.Notes,
		Source:      source,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking")
	}
	created.Service = svc
	return FromModel(created), nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings")
	}
	return &ListResult{
		Items: fromModels(rows),
		Meta:  pagination.MetaFor(input.Pagination, total),
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(booking), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) (*BookingDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid booking status %q", status))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update booking status")
	}
	if !updated {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete booking")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load booking")
	}
	return booking, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
