package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBookingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	services := `
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
	bookings := `
CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  client_email TEXT NOT NULL,
  client_phone TEXT NOT NULL,
  service_id TEXT NOT NULL,
  date DATETIME NOT NULL,
  time TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  source TEXT NOT NULL DEFAULT 'website',
  reminder_email_sent INTEGER NOT NULL DEFAULT 0,
  reminder_sms_sent INTEGER NOT NULL DEFAULT 0,
  ip_address TEXT,
  user_agent TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(services).Error)
	require.NoError(t, conn.Exec(bookings).Error)
	return conn
}

func mustCreateBookingService(t *testing.T, conn *gorm.DB) *models.Service {
	t.Helper()
	svc := &models.Service{
		ID:              uuid.New(),
		Name:            "Signature Facial",
		Slug:            "signature-facial-" + uuid.NewString()[:8],
		Description:     "flagship",
		DurationMinutes: 60,
		PriceCents:      9500,
		Category:        enums.ServiceCategoryFacial,
		IsActive:        true,
	}
	require.NoError(t, conn.Create(svc).Error)
	return svc
}

func mustCreateBooking(t *testing.T, repo *Repository, serviceID uuid.UUID, date time.Time, status enums.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		ID:          uuid.New(),
		ClientName:  "Dana Client",
		ClientEmail: "dana@example.com",
		ClientPhone: "+15550100",
		ServiceID:   serviceID,
		Date:        date,
		Time:        "14:30",
		Status:      status,
		Source:      enums.BookingSourceWebsite,
	}
	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	return created
}

func TestRepositoryListFiltersByStatusAndDate(t *testing.T) {
	conn := setupBookingsTestDB(t)
	repo := NewRepository(conn)
	svc := mustCreateBookingService(t, conn)

	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
	mustCreateBooking(t, repo, svc.ID, day, enums.BookingStatusPending)
	mustCreateBooking(t, repo, svc.ID, day.AddDate(0, 0, 1), enums.BookingStatusConfirmed)
	mustCreateBooking(t, repo, svc.ID, day.AddDate(0, 0, 10), enums.BookingStatusPending)

	pending := enums.BookingStatusPending
	rows, total, err := repo.List(context.Background(), ListInput{
		Filters:    ListFilters{Status: &pending},
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	from := day
	to := day.AddDate(0, 0, 2)
	_, total, err = repo.List(context.Background(), ListInput{
		Filters:    ListFilters{DateFrom: &from, DateTo: &to},
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestRepositoryListPreloadsService(t *testing.T) {
	conn := setupBookingsTestDB(t)
	repo := NewRepository(conn)
	svc := mustCreateBookingService(t, conn)

	mustCreateBooking(t, repo, svc.ID, time.Now().UTC(), enums.BookingStatusPending)

	rows, _, err := repo.List(context.Background(), ListInput{
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Service)
	assert.Equal(t, svc.Name, rows[0].Service.Name)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	conn := setupBookingsTestDB(t)
	repo := NewRepository(conn)
	svc := mustCreateBookingService(t, conn)
	booking := mustCreateBooking(t, repo, svc.ID, time.Now().UTC(), enums.BookingStatusPending)

	updated, err := repo.UpdateStatus(context.Background(), booking.ID, enums.BookingStatusNoShow.String())
	require.NoError(t, err)
	assert.True(t, updated)

	reloaded, err := repo.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.BookingStatusNoShow, reloaded.Status)

	updated, err = repo.UpdateStatus(context.Background(), uuid.New(), enums.BookingStatusConfirmed.String())
	require.NoError(t, err)
	assert.False(t, updated)
}
