package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nestegg/internal/database"
	"github.com/MrJamesThe3rd/nestegg/internal/settings/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db
}

func countSettingsRows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM app_settings`).Scan(&n))

	return n
}

func TestStore_GetOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)

	first, err := s.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Nil(t, first.TotalTarget)

	second, err := s.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.Equal(t, 1, countSettingsRows(t, db))
}

func TestStore_Upsert_SingleRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)

	for _, target := range []float64{100.0, 250.0, 420.0} {
		row, err := s.Upsert(ctx, target)
		require.NoError(t, err)
		require.NotNil(t, row.TotalTarget)
		assert.Equal(t, target, *row.TotalTarget)
	}

	assert.Equal(t, 1, countSettingsRows(t, db))

	row, err := s.GetOrCreate(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.TotalTarget)
	assert.Equal(t, 420.0, *row.TotalTarget)
}

func TestStore_Upsert_AfterGetKeepsID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)

	created, err := s.GetOrCreate(ctx)
	require.NoError(t, err)

	updated, err := s.Upsert(ctx, 50.0)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, countSettingsRows(t, db))
}
