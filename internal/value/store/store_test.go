package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
	accountStore "github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
	"github.com/MrJamesThe3rd/nestegg/internal/value"
	"github.com/MrJamesThe3rd/nestegg/internal/value/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db
}

func newTestAccount(t *testing.T, db *sql.DB, name string) *account.Account {
	t.Helper()

	acct := &account.Account{Name: name}
	require.NoError(t, accountStore.New(db).CreateAccount(context.Background(), acct))

	return acct
}

func TestStore_CreateRecord_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	err := s.CreateRecord(ctx, &value.Record{
		AccountID: uuid.New(),
		Value:     42.0,
		Date:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, value.ErrAccountNotFound)

	recs, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_ListRecords_SortedByDate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)
	acct := newTestAccount(t, db, "ISA")

	// Insert out of order on purpose.
	dates := []string{"2026-03-01", "2026-01-01", "2026-02-01"}
	for i, d := range dates {
		date, err := time.Parse(time.DateOnly, d)
		require.NoError(t, err)
		require.NoError(t, s.CreateRecord(ctx, &value.Record{
			AccountID: acct.ID,
			Value:     float64(i),
			Date:      date,
		}))
	}

	recs, err := s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "2026-01-01", recs[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2026-02-01", recs[1].Date.Format(time.DateOnly))
	assert.Equal(t, "2026-03-01", recs[2].Date.Format(time.DateOnly))
}

func TestStore_DeleteRecord(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)
	acct := newTestAccount(t, db, "ISA")

	rec := &value.Record{
		AccountID: acct.ID,
		Value:     42.0,
		Date:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateRecord(ctx, rec))

	require.NoError(t, s.DeleteRecord(ctx, rec.ID))

	recs, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.ErrorIs(t, s.DeleteRecord(ctx, rec.ID), value.ErrNotFound)
}
