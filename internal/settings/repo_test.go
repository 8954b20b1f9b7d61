package settings

import (
	"context"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS settings (
  id TEXT PRIMARY KEY,
  key TEXT NOT NULL UNIQUE,
  value TEXT,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func TestRepositoryUpsertInsertsThenReplaces(t *testing.T) {
	conn := setupSettingsTestDB(t)
	repo := NewRepository(conn)

	desc := "hours shown on the contact page"
	first, err := repo.Upsert(context.Background(), &models.Setting{
		Key:         "business_hours",
		Value:       datatypes.JSON(`{"mon":"9-17"}`),
		Description: &desc,
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := repo.Upsert(context.Background(), &models.Setting{
		Key:   "business_hours",
		Value: datatypes.JSON(`{"mon":"10-18"}`),
	})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.JSONEq(t, `{"mon":"10-18"}`, string(second.Value))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRepositoryFindByKeyMissing(t *testing.T) {
	conn := setupSettingsTestDB(t)
	repo := NewRepository(conn)

	row, err := repo.FindByKey(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRepositoryListOrdersByKey(t *testing.T) {
	conn := setupSettingsTestDB(t)
	repo := NewRepository(conn)

	for _, key := range []string{"zeta", "alpha", "mid"} {
		_, err := repo.Upsert(context.Background(), &models.Setting{
			Key:   key,
			Value: datatypes.JSON(`true`),
		})
		require.NoError(t, err)
	}

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "alpha", rows[0].Key)
	assert.Equal(t, "mid", rows[1].Key)
	assert.Equal(t, "zeta", rows[2].Key)
}
