package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		acctName  string
		setupMock func(m *account.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:     "Success",
			acctName: "Stocks ISA",
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, acct *account.Account) error {
						acct.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name:     "RepoError",
			acctName: "Cash",
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			got, err := svc.Create(context.Background(), tt.acctName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.acctName, got.Name)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteAccount(gomock.Any(), id).
		Return(account.ErrNotFound)

	svc := account.NewService(repo)
	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().
		RenameAccount(gomock.Any(), id, "Renamed").
		Return(&account.Account{ID: id, Name: "Renamed"}, nil)

	svc := account.NewService(repo)
	got, err := svc.Rename(context.Background(), id, "Renamed")

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}
