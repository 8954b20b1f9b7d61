package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the gallery controllers.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*GalleryItemDTO, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID, countView bool) (*GalleryItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*GalleryItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, entries []ReorderEntry) error
}

type repository interface {
	Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	List(ctx context.Context, input ListInput) ([]models.GalleryItem, int64, error)
	Update(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Reorder(ctx context.Context, entries []ReorderEntry) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a gallery service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("gallery repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*GalleryItemDTO, error) {
	if err := validateImageSet(input.Type, input.Images); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	itemType := input.Type
	if itemType == "" {
		itemType = enums.GalleryTypeStudio
	}

	item := &models.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Type:        itemType,
		Images:      datatypes.NewJSONType(input.Images),
		Metadata:    datatypes.NewJSONType(input.Metadata),
		IsActive:    isActive,
		Featured:    input.Featured,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create gallery item")
	}
	return FromModel(created), nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list gallery items")
	}
	return &ListResult{
		Items: fromModels(rows),
		Meta:  pagination.MetaFor(input.Pagination, total),
	}, nil
}

// Get loads one item. countView bumps the view counter and is set only on
// the public read path.
func (s *service) Get(ctx context.Context, id uuid.UUID, countView bool) (*GalleryItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if countView {
		if err := s.repo.IncrementViews(ctx, id); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment views")
		}
		item.Views++
	}
	return FromModel(item), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*GalleryItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Type != nil {
		item.Type = *input.Type
	}
	if input.Images != nil {
		item.Images = datatypes.NewJSONType(*input.Images)
	}
	if input.Metadata != nil {
		item.Metadata = datatypes.NewJSONType(*input.Metadata)
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}

	if err := validateImageSet(item.Type, item.Images.Data()); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update gallery item")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete gallery item")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
	}
	return nil
}

func (s *service) Reorder(ctx context.Context, entries []ReorderEntry) error {
	if len(entries) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no reorder entries provided")
	}
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.ID]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate gallery item %s in reorder", entry.ID))
		}
		seen[entry.ID] = struct{}{}
	}

	if err := s.repo.Reorder(ctx, entries); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item in reorder not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reorder gallery items")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load gallery item")
	}
	return item, nil
}

// validateImageSet enforces the pairing rule: before and after images travel
// together, and the before-after type requires them.
func validateImageSet(itemType enums.GalleryType, images models.GalleryImageSet) error {
	hasBefore := images.Before != nil
	hasAfter := images.After != nil

	if hasBefore != hasAfter {
		return pkgerrors.New(pkgerrors.CodeValidation, "before and after images must be provided together")
	}
	if itemType == enums.GalleryTypeBeforeAfter && !hasBefore {
		return pkgerrors.New(pkgerrors.CodeValidation, "before-after items require both before and after images")
	}
	if itemType != enums.GalleryTypeBeforeAfter && hasBefore {
		return pkgerrors.New(pkgerrors.CodeValidation, "only before-after items may carry before and after images")
	}
	return nil
}
