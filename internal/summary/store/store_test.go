package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
	accountStore "github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
	settingsStore "github.com/MrJamesThe3rd/nestegg/internal/settings/store"
	"github.com/MrJamesThe3rd/nestegg/internal/summary/store"
	"github.com/MrJamesThe3rd/nestegg/internal/value"
	valueStore "github.com/MrJamesThe3rd/nestegg/internal/value/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db
}

func addRecord(t *testing.T, db *sql.DB, acct *account.Account, val float64, date string) {
	t.Helper()

	d, err := time.Parse(time.DateOnly, date)
	require.NoError(t, err)

	require.NoError(t, valueStore.New(db).CreateRecord(context.Background(), &value.Record{
		AccountID: acct.ID,
		Value:     val,
		Date:      d,
	}))
}

func TestStore_AccountTotals_LatestValueWins(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	acct := &account.Account{Name: "ISA"}
	require.NoError(t, accountStore.New(db).CreateAccount(ctx, acct))

	addRecord(t, db, acct, 7.0, "2026-01-01")
	addRecord(t, db, acct, 42.0, "2026-02-01")
	addRecord(t, db, acct, 69.0, "2026-03-01")

	totals, err := store.New(db).AccountTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 69.0, totals[0].Total)
	assert.Equal(t, "ISA", totals[0].Name)
}

func TestStore_AccountTotals_EmptyAccountIsZero(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	withRecords := &account.Account{Name: "Funded"}
	require.NoError(t, accountStore.New(db).CreateAccount(ctx, withRecords))

	empty := &account.Account{Name: "Empty"}
	require.NoError(t, accountStore.New(db).CreateAccount(ctx, empty))

	addRecord(t, db, withRecords, 42.0, "2026-01-01")

	totals, err := store.New(db).AccountTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, 42.0, totals[0].Total)
	assert.Equal(t, 0.0, totals[1].Total)
}

// On a date tie, the record inserted last wins.
func TestStore_AccountTotals_TieBreak(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	acct := &account.Account{Name: "ISA"}
	require.NoError(t, accountStore.New(db).CreateAccount(ctx, acct))

	addRecord(t, db, acct, 10.0, "2026-01-01")
	addRecord(t, db, acct, 20.0, "2026-01-01")

	totals, err := store.New(db).AccountTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 20.0, totals[0].Total)
}

func TestStore_Target(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)

	// No settings row at all.
	target, err := s.Target(ctx)
	require.NoError(t, err)
	assert.Nil(t, target)

	// Row exists but target unset.
	_, err = settingsStore.New(db).GetOrCreate(ctx)
	require.NoError(t, err)

	target, err = s.Target(ctx)
	require.NoError(t, err)
	assert.Nil(t, target)

	// Target set.
	_, err = settingsStore.New(db).Upsert(ctx, 1000.0)
	require.NoError(t, err)

	target, err = s.Target(ctx)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, 1000.0, *target)
}
