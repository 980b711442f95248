package verification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
)

var testConfig = verification.Config{
	CodeLength:  6,
	MaxAttempts: 5,
	Throttle:    24 * time.Hour,
	TTL:         30 * 24 * time.Hour,
}

type serviceMocks struct {
	repo      *verification.MockRepository
	homes     *verification.MockHomes
	postcards *verification.MockPostcards
	notifier  *verification.MockNotifier
}

func newService(t *testing.T, hasher *verification.Hasher) (*verification.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      verification.NewMockRepository(ctrl),
		homes:     verification.NewMockHomes(ctrl),
		postcards: verification.NewMockPostcards(ctrl),
		notifier:  verification.NewMockNotifier(ctrl),
	}

	svc := verification.NewService(m.repo, m.homes, m.postcards, m.notifier, hasher, testConfig)

	return svc, m
}

func TestService_Issue(t *testing.T) {
	homeID := uuid.New()
	ownerID := uuid.New()
	testHome := &home.Home{
		ID:           homeID,
		OwnerID:      ownerID,
		AddressLine1: "12 Maple Street",
		City:         "Portland",
		State:        "OR",
		PostalCode:   "97201",
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestByHome(gomock.Any(), homeID, verification.MethodPostcard).Return(nil, nil)
		m.repo.EXPECT().
			CreateVerification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *verification.HomeVerification) error {
				v.ID = uuid.New()
				v.CreatedAt = time.Now().UTC()
				return nil
			})
		m.postcards.EXPECT().
			SendCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req verification.PostcardRequest) (string, error) {
				assert.Equal(t, homeID, req.HomeID)
				assert.Equal(t, "12 Maple Street", req.AddressLine1)
				assert.Len(t, req.Code, 6)
				return "psc_abc123", nil
			})
		m.repo.EXPECT().SetProviderID(gomock.Any(), gomock.Any(), "psc_abc123").Return(nil)

		got, err := svc.Issue(context.Background(), homeID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, verification.StatusPending, got.Status)
		assert.Equal(t, verification.MethodPostcard, got.Method)
		assert.Equal(t, "psc_abc123", got.ProviderID)
		assert.Equal(t, testConfig.MaxAttempts, got.MaxAttempts)
		assert.NotEmpty(t, got.CodeHash)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(nil, home.ErrNotFound)

		got, err := svc.Issue(context.Background(), homeID, ownerID)
		assert.ErrorIs(t, err, home.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("Throttled", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().
			LatestByHome(gomock.Any(), homeID, verification.MethodPostcard).
			Return(&verification.HomeVerification{
				ID:        uuid.New(),
				Status:    verification.StatusCancelled,
				CreatedAt: time.Now().UTC().Add(-1 * time.Hour),
			}, nil)

		got, err := svc.Issue(context.Background(), homeID, ownerID)
		assert.ErrorIs(t, err, verification.ErrRateLimited)
		assert.Nil(t, got)
	})

	t.Run("ThrottleWindowPassed", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().
			LatestByHome(gomock.Any(), homeID, verification.MethodPostcard).
			Return(&verification.HomeVerification{
				ID:        uuid.New(),
				Status:    verification.StatusExpired,
				CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
			}, nil)
		m.repo.EXPECT().
			CreateVerification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *verification.HomeVerification) error {
				v.ID = uuid.New()
				return nil
			})
		m.postcards.EXPECT().SendCode(gomock.Any(), gomock.Any()).Return("psc_next", nil)
		m.repo.EXPECT().SetProviderID(gomock.Any(), gomock.Any(), "psc_next").Return(nil)

		got, err := svc.Issue(context.Background(), homeID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, "psc_next", got.ProviderID)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestByHome(gomock.Any(), homeID, verification.MethodPostcard).Return(nil, nil)
		m.repo.EXPECT().
			CreateVerification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *verification.HomeVerification) error {
				v.ID = uuid.New()
				return nil
			})
		m.postcards.EXPECT().SendCode(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))
		m.repo.EXPECT().MarkCancelled(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Issue(context.Background(), homeID, ownerID)
		assert.ErrorIs(t, err, verification.ErrDeliveryFailed)
		assert.Nil(t, got)
	})
}

func TestService_Validate(t *testing.T) {
	homeID := uuid.New()
	ownerID := uuid.New()
	hasher := verification.NewHasher("test-secret")
	testHome := &home.Home{
		ID:                 homeID,
		OwnerID:            ownerID,
		VerificationStatus: home.StatusUnverified,
	}

	pending := func() *verification.HomeVerification {
		return &verification.HomeVerification{
			ID:          uuid.New(),
			HomeID:      homeID,
			Method:      verification.MethodPostcard,
			Status:      verification.StatusPending,
			CodeHash:    hasher.Hash("123456"),
			Attempts:    0,
			MaxAttempts: 5,
			ExpiresAt:   time.Now().UTC().Add(time.Hour),
			RequestedBy: ownerID,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t, hasher)

		v := pending()
		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(&home.Home{
			ID:                 homeID,
			OwnerID:            ownerID,
			VerificationStatus: home.StatusUnverified,
		}, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(v, nil)
		m.repo.EXPECT().Complete(gomock.Any(), v, ownerID, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		require.NoError(t, err)
		assert.Equal(t, home.StatusVerifiedByPostcard, got.VerificationStatus)
		assert.Equal(t, string(verification.MethodPostcard), got.VerificationMethod)
		require.NotNil(t, got.VerifiedAt)
		require.NotNil(t, got.VerifiedBy)
		assert.Equal(t, ownerID, *got.VerifiedBy)
	})

	t.Run("NotifyFailureDoesNotFail", func(t *testing.T) {
		svc, m := newService(t, hasher)

		v := pending()
		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(v, nil)
		m.repo.EXPECT().Complete(gomock.Any(), v, ownerID, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		require.NoError(t, err)
		assert.Equal(t, home.StatusVerifiedByPostcard, got.VerificationStatus)
	})

	t.Run("NoPending", func(t *testing.T) {
		svc, m := newService(t, hasher)

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(nil, nil)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		assert.ErrorIs(t, err, verification.ErrNoPending)
		assert.Nil(t, got)
	})

	t.Run("Expired", func(t *testing.T) {
		svc, m := newService(t, hasher)

		v := pending()
		v.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(v, nil)
		m.repo.EXPECT().MarkExpired(gomock.Any(), v.ID).Return(nil)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		assert.ErrorIs(t, err, verification.ErrExpired)
		assert.Nil(t, got)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		svc, m := newService(t, hasher)

		v := pending()
		v.Attempts = 5
		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(v, nil)
		m.repo.EXPECT().MarkCancelled(gomock.Any(), v.ID).Return(nil)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		assert.ErrorIs(t, err, verification.ErrTooManyAttempts)
		assert.Nil(t, got)
	})

	t.Run("WrongCode", func(t *testing.T) {
		svc, m := newService(t, hasher)

		v := pending()
		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().LatestPending(gomock.Any(), homeID, verification.MethodPostcard).Return(v, nil)
		m.repo.EXPECT().RecordAttempt(gomock.Any(), v.ID, gomock.Any()).Return(nil)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "999999")
		assert.ErrorIs(t, err, verification.ErrIncorrectCode)
		assert.Nil(t, got)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, m := newService(t, hasher)

		m.homes.EXPECT().RequireOwner(gomock.Any(), homeID, ownerID).Return(nil, home.ErrNotFound)

		got, err := svc.Validate(context.Background(), homeID, ownerID, "123456")
		assert.ErrorIs(t, err, home.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestService_RecordVendorEvent(t *testing.T) {
	homeID := uuid.New()
	adminID := uuid.New()
	vendorID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().Lookup(gomock.Any(), homeID).Return(&home.Home{ID: homeID}, nil)
		m.repo.EXPECT().
			CreateVerification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *verification.HomeVerification) error {
				v.ID = uuid.New()
				return nil
			})
		m.repo.EXPECT().
			Complete(gomock.Any(), gomock.Any(), adminID, gomock.Any()).
			DoAndReturn(func(_ context.Context, v *verification.HomeVerification, _ uuid.UUID, at time.Time) error {
				v.Status = verification.StatusCompleted
				v.CompletedAt = &at
				return nil
			})

		got, err := svc.RecordVendorEvent(context.Background(), homeID, adminID, vendorID)
		require.NoError(t, err)
		assert.Equal(t, verification.MethodVendor, got.Method)
		assert.Equal(t, verification.StatusCompleted, got.Status)
		assert.Empty(t, got.CodeHash)
		require.NotNil(t, got.VendorID)
		assert.Equal(t, vendorID, *got.VendorID)
	})

	t.Run("HomeNotFound", func(t *testing.T) {
		svc, m := newService(t, verification.NewHasher("test-secret"))

		m.homes.EXPECT().Lookup(gomock.Any(), homeID).Return(nil, home.ErrNotFound)

		got, err := svc.RecordVendorEvent(context.Background(), homeID, adminID, vendorID)
		assert.ErrorIs(t, err, home.ErrNotFound)
		assert.Nil(t, got)
	})
}
