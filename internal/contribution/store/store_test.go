package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
	accountStore "github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
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

func strPtr(s string) *string { return &s }

func TestStore_CreateContribution_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	missing := uuid.New()
	err := s.CreateContribution(ctx, &contribution.Contribution{
		AccountID: &missing,
		Amount:    100.0,
	})
	assert.ErrorIs(t, err, contribution.ErrAccountNotFound)

	cs, err := s.ListContributions(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

// A new recurring contribution replaces the account's previous recurring one
// while leaving one-off entries and other accounts alone.
func TestStore_RecurringReplace(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := store.New(db)

	acct := newTestAccount(t, db, "ISA")
	other := newTestAccount(t, db, "Pension")

	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{
		AccountID: &acct.ID, Amount: 7.0, Date: strPtr("2026-01-01"), Recurring: true,
	}))
	oneOff := &contribution.Contribution{
		AccountID: &acct.ID, Amount: 500.0, Date: strPtr("2026-02-01"),
	}
	require.NoError(t, s.CreateContribution(ctx, oneOff))
	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{
		AccountID: &other.ID, Amount: 99.0, Date: strPtr("2026-01-01"), Recurring: true,
	}))

	// Posting again replaces the first recurring entry.
	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{
		AccountID: &acct.ID, Amount: 42.0, Date: strPtr("2026-03-01"), Recurring: true,
	}))

	cs, err := s.ListContributions(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 3)

	var recurring []*contribution.Contribution

	for _, c := range cs {
		if c.Recurring && c.AccountID != nil && *c.AccountID == acct.ID {
			recurring = append(recurring, c)
		}
	}

	require.Len(t, recurring, 1)
	assert.Equal(t, 42.0, recurring[0].Amount)

	// The one-off and the other account's recurring entry survived.
	var foundOneOff, foundOther bool

	for _, c := range cs {
		if c.ID == oneOff.ID {
			foundOneOff = true
		}

		if c.AccountID != nil && *c.AccountID == other.ID && c.Recurring {
			foundOther = true
			assert.Equal(t, 99.0, c.Amount)
		}
	}

	assert.True(t, foundOneOff)
	assert.True(t, foundOther)
}

// Unallocated recurring contributions are never deduplicated.
func TestStore_UnallocatedRecurringNotReplaced(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{
		Amount: 10.0, Recurring: true,
	}))
	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{
		Amount: 20.0, Recurring: true,
	}))

	cs, err := s.ListContributions(ctx)
	require.NoError(t, err)
	assert.Len(t, cs, 2)
}

// Dateless entries sort before dated ones, dated ones ascend.
func TestStore_ListContributions_NullDatesFirst(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{Amount: 1.0, Date: strPtr("2026-02-01")}))
	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{Amount: 2.0}))
	require.NoError(t, s.CreateContribution(ctx, &contribution.Contribution{Amount: 3.0, Date: strPtr("2026-01-01")}))

	cs, err := s.ListContributions(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Nil(t, cs[0].Date)
	assert.Equal(t, "2026-01-01", *cs[1].Date)
	assert.Equal(t, "2026-02-01", *cs[2].Date)
}

func TestStore_DeleteContribution(t *testing.T) {
	ctx := context.Background()
	s := store.New(newTestDB(t))

	c := &contribution.Contribution{Amount: 10.0}
	require.NoError(t, s.CreateContribution(ctx, c))
	require.NoError(t, s.DeleteContribution(ctx, c.ID))

	assert.ErrorIs(t, s.DeleteContribution(ctx, c.ID), contribution.ErrNotFound)
}
