package contribution_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acctID := uuid.New()
	date := "2026-06-01"

	repo := contribution.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *contribution.Contribution) error {
			c.ID = uuid.New()
			return nil
		})

	svc := contribution.NewService(repo)
	got, err := svc.Create(context.Background(), contribution.CreateParams{
		AccountID: &acctID,
		Amount:    250.0,
		Date:      &date,
		Recurring: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, &acctID, got.AccountID)
	assert.Equal(t, 250.0, got.Amount)
	assert.True(t, got.Recurring)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := contribution.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteContribution(gomock.Any(), id).
		Return(contribution.ErrNotFound)

	svc := contribution.NewService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), contribution.ErrNotFound)
}
