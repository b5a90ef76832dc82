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
	"github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
	contributionStore "github.com/MrJamesThe3rd/nestegg/internal/contribution/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
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

func TestStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	first := &account.Account{Name: "Stocks ISA"}
	require.NoError(t, s.CreateAccount(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &account.Account{Name: "Cash"}
	require.NoError(t, s.CreateAccount(ctx, second))

	accts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accts, 2)
	assert.Equal(t, "Stocks ISA", accts[0].Name)
	assert.Equal(t, "Cash", accts[1].Name)
}

func TestStore_Rename(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	acct := &account.Account{Name: "Old"}
	require.NoError(t, s.CreateAccount(ctx, acct))

	renamed, err := s.RenameAccount(ctx, acct.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)
	assert.Equal(t, acct.ID, renamed.ID)

	_, err = s.RenameAccount(ctx, uuid.New(), "Nope")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestStore_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	s := store.New(db)
	vs := valueStore.New(db)
	cs := contributionStore.New(db)

	doomed := &account.Account{Name: "Doomed"}
	require.NoError(t, s.CreateAccount(ctx, doomed))

	survivor := &account.Account{Name: "Survivor"}
	require.NoError(t, s.CreateAccount(ctx, survivor))

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, vs.CreateRecord(ctx, &value.Record{AccountID: doomed.ID, Value: 10, Date: date}))
	require.NoError(t, vs.CreateRecord(ctx, &value.Record{AccountID: doomed.ID, Value: 20, Date: date.AddDate(0, 1, 0)}))
	require.NoError(t, vs.CreateRecord(ctx, &value.Record{AccountID: survivor.ID, Value: 30, Date: date}))

	startDate := "2026-06-01"
	require.NoError(t, cs.CreateContribution(ctx, &contribution.Contribution{AccountID: &doomed.ID, Amount: 100, Date: &startDate, Recurring: true}))
	require.NoError(t, cs.CreateContribution(ctx, &contribution.Contribution{AccountID: &doomed.ID, Amount: 50, Date: &startDate}))
	require.NoError(t, cs.CreateContribution(ctx, &contribution.Contribution{AccountID: &survivor.ID, Amount: 75, Date: &startDate}))

	require.NoError(t, s.DeleteAccount(ctx, doomed.ID))

	accts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accts, 1)
	assert.Equal(t, survivor.ID, accts[0].ID)

	recs, err := vs.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, survivor.ID, recs[0].AccountID)

	contribs, err := cs.ListContributions(ctx)
	require.NoError(t, err)
	require.Len(t, contribs, 1)
	assert.Equal(t, survivor.ID, *contribs[0].AccountID)

	assert.ErrorIs(t, s.DeleteAccount(ctx, doomed.ID), account.ErrNotFound)
}
