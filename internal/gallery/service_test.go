package gallery

import (
	"context"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestServiceCreateRejectsUnpairedBeforeImage(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:    "half a pair",
		Category: enums.GalleryCategoryAcne,
		Type:     enums.GalleryTypeBeforeAfter,
		Images: models.GalleryImageSet{
			Before: &models.ImageRef{URL: "/b.jpg", Key: "gallery/b.jpg"},
		},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateRequiresPairForBeforeAfterType(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:    "no images",
		Category: enums.GalleryCategoryAcne,
		Type:     enums.GalleryTypeBeforeAfter,
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateRejectsPairOnStudioType(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:    "studio with pair",
		Category: enums.GalleryCategoryStudio,
		Type:     enums.GalleryTypeStudio,
		Images: models.GalleryImageSet{
			Before: &models.ImageRef{URL: "/b.jpg", Key: "gallery/b.jpg"},
			After:  &models.ImageRef{URL: "/a.jpg", Key: "gallery/a.jpg"},
		},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateDefaultsTypeAndActive(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	dto, err := svc.Create(context.Background(), CreateInput{
		Title:    "plain studio shot",
		Category: enums.GalleryCategoryStudio,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Type != enums.GalleryTypeStudio {
		t.Fatalf("expected studio default, got %s", dto.Type)
	}
	if !dto.IsActive {
		t.Fatalf("expected active by default")
	}
}

func TestServiceGetCountsViewOnlyWhenAsked(t *testing.T) {
	item := &models.GalleryItem{
		ID:       uuid.New(),
		Title:    "viewed",
		Category: enums.GalleryCategoryGlow,
		Type:     enums.GalleryTypeStudio,
		IsActive: true,
	}
	repo := &stubRepo{item: item}
	svc := newTestService(t, repo)

	if _, err := svc.Get(context.Background(), item.ID, false); err != nil {
		t.Fatalf("get: %v", err)
	}
	if repo.viewIncrements != 0 {
		t.Fatalf("admin read must not count views")
	}

	dto, err := svc.Get(context.Background(), item.ID, true)
	if err != nil {
		t.Fatalf("get with view: %v", err)
	}
	if repo.viewIncrements != 1 {
		t.Fatalf("expected one view increment, got %d", repo.viewIncrements)
	}
	if dto.Views != 1 {
		t.Fatalf("expected view reflected in dto, got %d", dto.Views)
	}
}

func TestServiceGetUnknownID(t *testing.T) {
	svc := newTestService(t, &stubRepo{})
	_, err := svc.Get(context.Background(), uuid.New(), false)
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateValidatesResultingImageSet(t *testing.T) {
	item := &models.GalleryItem{
		ID:       uuid.New(),
		Title:    "studio",
		Category: enums.GalleryCategoryStudio,
		Type:     enums.GalleryTypeStudio,
		IsActive: true,
	}
	svc := newTestService(t, &stubRepo{item: item})

	// switching type to before-after without providing the pair must fail
	newType := enums.GalleryTypeBeforeAfter
	_, err := svc.Update(context.Background(), item.ID, UpdateInput{Type: &newType})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceReorderRejectsDuplicates(t *testing.T) {
	svc := newTestService(t, &stubRepo{})
	id := uuid.New()

	err := svc.Reorder(context.Background(), []ReorderEntry{
		{ID: id, Order: 0},
		{ID: id, Order: 1},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceReorderEmptyPayload(t *testing.T) {
	svc := newTestService(t, &stubRepo{})
	err := svc.Reorder(context.Background(), nil)
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceDeleteMissingItem(t *testing.T) {
	svc := newTestService(t, &stubRepo{})
	err := svc.Delete(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error", code)
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

type stubRepo struct {
	item           *models.GalleryItem
	viewIncrements int
}

func (s *stubRepo) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	item.ID = uuid.New()
	s.item = item
	return item, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	if s.item == nil || s.item.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s.item
	return &copy, nil
}

func (s *stubRepo) List(ctx context.Context, input ListInput) ([]models.GalleryItem, int64, error) {
	if s.item == nil {
		return nil, 0, nil
	}
	return []models.GalleryItem{*s.item}, 1, nil
}

func (s *stubRepo) Update(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	s.item = item
	return item, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.item == nil || s.item.ID != id {
		return false, nil
	}
	s.item = nil
	return true, nil
}

func (s *stubRepo) Reorder(ctx context.Context, entries []ReorderEntry) error {
	for _, entry := range entries {
		if s.item == nil || s.item.ID != entry.ID {
			return gorm.ErrRecordNotFound
		}
		s.item.DisplayOrder = entry.Order
	}
	return nil
}

func (s *stubRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	s.viewIncrements++
	if s.item != nil && s.item.ID == id {
		s.item.Views++
	}
	return nil
}
