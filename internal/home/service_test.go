package home_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := home.NewMockRepository(ctrl)
	svc := home.NewService(repo)

	ownerID := uuid.New()

	repo.EXPECT().
		CreateHome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *home.Home) error {
			h.ID = uuid.New()
			return nil
		})

	got, err := svc.Create(context.Background(), ownerID, home.CreateParams{
		AddressLine1: "12 Maple Street",
		City:         "Portland",
		State:        "OR",
		PostalCode:   "97201",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, got.OwnerID)
	assert.Equal(t, home.StatusUnverified, got.VerificationStatus)
}

func TestService_Authorize(t *testing.T) {
	homeID := uuid.New()
	ownerID := uuid.New()
	granteeID := uuid.New()
	strangerID := uuid.New()

	testHome := &home.Home{ID: homeID, OwnerID: ownerID}

	type testCase struct {
		name      string
		userID    uuid.UUID
		setupMock func(m *home.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Owner",
			userID: ownerID,
			setupMock: func(m *home.MockRepository) {
				m.EXPECT().GetHome(gomock.Any(), homeID).Return(testHome, nil)
			},
		},
		{
			name:   "Grantee",
			userID: granteeID,
			setupMock: func(m *home.MockRepository) {
				m.EXPECT().GetHome(gomock.Any(), homeID).Return(testHome, nil)
				m.EXPECT().HasAccess(gomock.Any(), homeID, granteeID).Return(true, nil)
			},
		},
		{
			name:   "Stranger",
			userID: strangerID,
			setupMock: func(m *home.MockRepository) {
				m.EXPECT().GetHome(gomock.Any(), homeID).Return(testHome, nil)
				m.EXPECT().HasAccess(gomock.Any(), homeID, strangerID).Return(false, nil)
			},
			wantErr: home.ErrForbidden,
		},
		{
			name:   "UnknownHome",
			userID: ownerID,
			setupMock: func(m *home.MockRepository) {
				m.EXPECT().GetHome(gomock.Any(), homeID).Return(nil, home.ErrNotFound)
			},
			wantErr: home.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := home.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := home.NewService(repo)
			got, err := svc.Authorize(context.Background(), homeID, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testHome, got)
		})
	}
}

func TestService_RequireOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	homeID := uuid.New()
	ownerID := uuid.New()
	otherID := uuid.New()
	testHome := &home.Home{ID: homeID, OwnerID: ownerID}

	repo := home.NewMockRepository(ctrl)
	svc := home.NewService(repo)

	repo.EXPECT().GetHome(gomock.Any(), homeID).Return(testHome, nil)
	got, err := svc.RequireOwner(context.Background(), homeID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, testHome, got)

	// non-owners are told the home does not exist
	repo.EXPECT().GetHome(gomock.Any(), homeID).Return(testHome, nil)
	got, err = svc.RequireOwner(context.Background(), homeID, otherID)
	assert.ErrorIs(t, err, home.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_Grant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	homeID := uuid.New()
	ownerID := uuid.New()
	granteeID := uuid.New()

	repo := home.NewMockRepository(ctrl)
	svc := home.NewService(repo)

	repo.EXPECT().GetHome(gomock.Any(), homeID).Return(&home.Home{ID: homeID, OwnerID: ownerID}, nil)
	repo.EXPECT().GrantAccess(gomock.Any(), homeID, granteeID).Return(nil)

	require.NoError(t, svc.Grant(context.Background(), homeID, ownerID, granteeID))

	// only the owner can grant
	repo.EXPECT().GetHome(gomock.Any(), homeID).Return(&home.Home{ID: homeID, OwnerID: ownerID}, nil)
	err := svc.Grant(context.Background(), homeID, granteeID, granteeID)
	assert.ErrorIs(t, err, home.ErrNotFound)
}
