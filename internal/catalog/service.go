package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const minDurationMinutes = 15

// Service defines the behavior needed by the catalog controllers.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*ServiceDTO, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*ServiceDTO, error)
	GetBySlug(ctx context.Context, slug string) (*ServiceDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*ServiceDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	FindBySlug(ctx context.Context, slug string) (*models.Service, error)
	List(ctx context.Context, input ListInput) ([]models.Service, int64, error)
	Update(ctx context.Context, svc *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo repository
}

// NewService constructs a catalog service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ServiceDTO, error) {
	if input.DurationMinutes < minDurationMinutes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("duration must be at least %d minutes", minDurationMinutes))
	}
	if input.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	}
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service name does not produce a usable slug")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	svc := &models.Service{
		Name:              input.Name,
		Slug:              slug,
		Description:       input.Description,
		ShortDescription:  input.ShortDescription,
		DurationMinutes:   input.DurationMinutes,
		PriceCents:        input.PriceCents,
		Category:          input.Category,
		Features:          input.Features,
		Preparation:       input.Preparation,
		Aftercare:         input.Aftercare,
		Contraindications: input.Contraindications,
		IsActive:          isActive,
		IsPopular:         input.IsPopular,
		DisplayOrder:      input.Order,
	}
	if input.Image != nil {
		svc.ImageURL = &input.Image.URL
		svc.ImageKey = &input.Image.Key
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("a service with slug %q already exists", slug))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create service")
	}
	return FromModel(created), nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list services")
	}
	return &ListResult{
		Items: fromModels(rows),
		Meta:  pagination.MetaFor(input.Pagination, total),
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ServiceDTO, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(svc), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*ServiceDTO, error) {
	svc, err := s.repo.FindBySlug(ctx, strings.TrimSpace(strings.ToLower(slug)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service by slug")
	}
	return FromModel(svc), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*ServiceDTO, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Slug != nil {
		slug := Slugify(*input.Slug)
		if slug == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug must not be empty")
		}
		svc.Slug = slug
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.ShortDescription != nil {
		svc.ShortDescription = input.ShortDescription
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes < minDurationMinutes {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("duration must be at least %d minutes", minDurationMinutes))
		}
		svc.DurationMinutes = *input.DurationMinutes
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
		}
		svc.PriceCents = *input.PriceCents
	}
	if input.Category != nil {
		svc.Category = *input.Category
	}
	if input.Features != nil {
		svc.Features = *input.Features
	}
	if input.Preparation != nil {
		svc.Preparation = *input.Preparation
	}
	if input.Aftercare != nil {
		svc.Aftercare = *input.Aftercare
	}
	if input.Contraindications != nil {
		svc.Contraindications = *input.Contraindications
	}
	if input.Image != nil {
		svc.ImageURL = &input.Image.URL
		svc.ImageKey = &input.Image.Key
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	if input.IsPopular != nil {
		svc.IsPopular = *input.IsPopular
	}
	if input.Order != nil {
		svc.DisplayOrder = *input.Order
	}

	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("a service with slug %q already exists", svc.Slug))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update service")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete service")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service")
	}
	return svc, nil
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses everything outside [a-z0-9] into
// single hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
