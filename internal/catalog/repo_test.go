package catalog

import (
	"context"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS services (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL,
  short_description TEXT,
  duration_minutes INTEGER NOT NULL,
  price_cents INTEGER NOT NULL,
  category TEXT NOT NULL,
  features TEXT,
  preparation TEXT,
  aftercare TEXT,
  contraindications TEXT,
  image_url TEXT,
  image_key TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_popular INTEGER NOT NULL DEFAULT 0,
  display_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func mustCreateService(t *testing.T, repo *Repository, name, slug string, category enums.ServiceCategory) *models.Service {
	t.Helper()
	svc := &models.Service{
		ID:              uuid.New(),
		Name:            name,
		Slug:            slug,
		Description:     "test service",
		DurationMinutes: 60,
		PriceCents:      9500,
		Category:        category,
		Features:        []string{"deep cleanse"},
		IsActive:        true,
	}
	created, err := repo.Create(context.Background(), svc)
	require.NoError(t, err)
	return created
}

func TestRepositorySlugUniqueness(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	mustCreateService(t, repo, "Signature Facial", "signature-facial", enums.ServiceCategoryFacial)

	dup := &models.Service{
		ID:              uuid.New(),
		Name:            "Another Facial",
		Slug:            "signature-facial",
		Description:     "duplicate slug",
		DurationMinutes: 30,
		PriceCents:      5000,
		Category:        enums.ServiceCategoryFacial,
		IsActive:        true,
	}
	_, err := repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err), "expected unique violation, got %v", err)
}

func TestRepositoryFindBySlug(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	created := mustCreateService(t, repo, "Lash Lift", "lash-lift", enums.ServiceCategoryLash)

	found, err := repo.FindBySlug(context.Background(), "lash-lift")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListFilters(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	mustCreateService(t, repo, "Facial A", "facial-a", enums.ServiceCategoryFacial)
	mustCreateService(t, repo, "Facial B", "facial-b", enums.ServiceCategoryFacial)
	peel := mustCreateService(t, repo, "Peel", "peel", enums.ServiceCategoryPeel)

	peel.IsActive = false
	_, err := repo.Update(context.Background(), peel)
	require.NoError(t, err)

	category := enums.ServiceCategoryFacial
	rows, total, err := repo.List(context.Background(), ListInput{
		Filters:    ListFilters{Category: &category},
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	active := true
	_, total, err = repo.List(context.Background(), ListInput{
		Filters:    ListFilters{IsActive: &active},
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestRepositoryStringListsRoundTrip(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	svc := &models.Service{
		ID:              uuid.New(),
		Name:            "Chemical Peel",
		Slug:            "chemical-peel",
		Description:     "resurfacing treatment",
		DurationMinutes: 45,
		PriceCents:      12000,
		Category:        enums.ServiceCategoryPeel,
		Features:        []string{"medical grade", "customized depth"},
		Preparation:     []string{"avoid retinoids for 5 days"},
		Aftercare:       []string{"spf 50 daily", "no picking"},
		IsActive:        true,
	}
	_, err := repo.Create(context.Background(), svc)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(context.Background(), svc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"medical grade", "customized depth"}, []string(reloaded.Features))
	assert.Equal(t, []string{"spf 50 daily", "no picking"}, []string(reloaded.Aftercare))
}
