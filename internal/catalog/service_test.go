package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Signature Facial":       "signature-facial",
		"  Lash Lift & Tint  ":   "lash-lift-tint",
		"Glow!!! Package (2024)": "glow-package-2024",
		"---":                    "",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestServiceCreateDerivesSlugFromName(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := newTestCatalogService(t, repo)

	dto, err := svc.Create(context.Background(), CreateInput{
		Name:            "Signature Facial",
		Description:     "our flagship treatment",
		DurationMinutes: 60,
		PriceCents:      9500,
		Category:        enums.ServiceCategoryFacial,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Slug != "signature-facial" {
		t.Fatalf("expected derived slug, got %q", dto.Slug)
	}
	if !dto.IsActive {
		t.Fatalf("expected active by default")
	}
}

func TestServiceCreateRejectsShortDuration(t *testing.T) {
	svc := newTestCatalogService(t, &stubCatalogRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:            "Quick Fix",
		Description:     "too short",
		DurationMinutes: 10,
		PriceCents:      1000,
		Category:        enums.ServiceCategoryFacial,
	})
	assertCatalogCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateRejectsNegativePrice(t *testing.T) {
	svc := newTestCatalogService(t, &stubCatalogRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:            "Negative",
		Description:     "bad price",
		DurationMinutes: 30,
		PriceCents:      -1,
		Category:        enums.ServiceCategoryFacial,
	})
	assertCatalogCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateMapsSlugConflict(t *testing.T) {
	repo := &stubCatalogRepo{createErr: errors.New(`duplicate key value violates unique constraint "idx_services_slug"`)}
	svc := newTestCatalogService(t, repo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:            "Signature Facial",
		Description:     "duplicate",
		DurationMinutes: 60,
		PriceCents:      9500,
		Category:        enums.ServiceCategoryFacial,
	})
	assertCatalogCode(t, err, pkgerrors.CodeConflict)
}

func TestServiceUpdateUnknownID(t *testing.T) {
	svc := newTestCatalogService(t, &stubCatalogRepo{})
	name := "new name"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Name: &name})
	assertCatalogCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateValidatesDuration(t *testing.T) {
	existing := &models.Service{
		ID:              uuid.New(),
		Name:            "Peel",
		Slug:            "peel",
		Description:     "resurfacing",
		DurationMinutes: 45,
		PriceCents:      12000,
		Category:        enums.ServiceCategoryPeel,
		IsActive:        true,
	}
	svc := newTestCatalogService(t, &stubCatalogRepo{svc: existing})

	tooShort := 5
	_, err := svc.Update(context.Background(), existing.ID, UpdateInput{DurationMinutes: &tooShort})
	assertCatalogCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceGetBySlugNormalizesInput(t *testing.T) {
	existing := &models.Service{
		ID:              uuid.New(),
		Name:            "Lash Lift",
		Slug:            "lash-lift",
		Description:     "lift and tint",
		DurationMinutes: 45,
		PriceCents:      8000,
		Category:        enums.ServiceCategoryLash,
		IsActive:        true,
	}
	repo := &stubCatalogRepo{svc: existing}
	svc := newTestCatalogService(t, repo)

	dto, err := svc.GetBySlug(context.Background(), "  LASH-LIFT ")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if dto.ID != existing.ID {
		t.Fatalf("unexpected service %v", dto.ID)
	}
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := newTestCatalogService(t, &stubCatalogRepo{})
	err := svc.Delete(context.Background(), uuid.New())
	assertCatalogCode(t, err, pkgerrors.CodeNotFound)
}

func newTestCatalogService(t *testing.T, repo *stubCatalogRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func assertCatalogCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error", code)
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

type stubCatalogRepo struct {
	svc       *models.Service
	createErr error
}

func (s *stubCatalogRepo) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	svc.ID = uuid.New()
	s.svc = svc
	return svc, nil
}

func (s *stubCatalogRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if s.svc == nil || s.svc.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s.svc
	return &copy, nil
}

func (s *stubCatalogRepo) FindBySlug(ctx context.Context, slug string) (*models.Service, error) {
	if s.svc == nil || s.svc.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s.svc
	return &copy, nil
}

func (s *stubCatalogRepo) List(ctx context.Context, input ListInput) ([]models.Service, int64, error) {
	if s.svc == nil {
		return nil, 0, nil
	}
	return []models.Service{*s.svc}, 1, nil
}

func (s *stubCatalogRepo) Update(ctx context.Context, svc *models.Service) (*models.Service, error) {
	s.svc = svc
	return svc, nil
}

func (s *stubCatalogRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.svc == nil || s.svc.ID != id {
		return false, nil
	}
	s.svc = nil
	return true, nil
}
