package record_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
)

func newService(t *testing.T) (*record.Service, *record.MockRepository, *record.MockHomes) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := record.NewMockRepository(ctrl)
	homes := record.NewMockHomes(ctrl)

	return record.NewService(repo, homes), repo, homes
}

func TestService_Create(t *testing.T) {
	homeID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, repo, homes := newService(t)

		homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID, OwnerID: userID}, nil)
		repo.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *record.Record, atts []*record.Attachment) error {
				rec.ID = uuid.New()
				assert.Len(t, atts, 1)
				assert.Equal(t, "receipt.pdf", atts[0].FileName)
				return nil
			})

		got, err := svc.Create(context.Background(), homeID, userID, record.CreateParams{
			Title: "Furnace tune-up",
			Date:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Cost:  22000,
		}, []record.AttachmentParams{
			{FileName: "receipt.pdf", URL: "https://files.example.com/receipt.pdf", ContentType: "application/pdf"},
		})
		require.NoError(t, err)
		assert.Equal(t, record.KindService, got.Kind)
		assert.Equal(t, userID, got.CreatedBy)
		assert.Nil(t, got.VerifiedBy)
	})

	t.Run("NotAuthorized", func(t *testing.T) {
		svc, _, homes := newService(t)

		homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(nil, home.ErrForbidden)

		got, err := svc.Create(context.Background(), homeID, userID, record.CreateParams{Title: "Furnace tune-up"}, nil)
		assert.ErrorIs(t, err, home.ErrForbidden)
		assert.Nil(t, got)
	})
}

func TestService_Get(t *testing.T) {
	homeID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, repo, homes := newService(t)

		homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID}, nil)
		repo.EXPECT().GetRecord(gomock.Any(), recordID).Return(&record.Record{ID: recordID, HomeID: homeID}, nil)

		got, err := svc.Get(context.Background(), homeID, recordID, userID)
		require.NoError(t, err)
		assert.Equal(t, recordID, got.ID)
	})

	t.Run("WrongHome", func(t *testing.T) {
		svc, repo, homes := newService(t)

		homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID}, nil)
		repo.EXPECT().GetRecord(gomock.Any(), recordID).Return(&record.Record{ID: recordID, HomeID: uuid.New()}, nil)

		got, err := svc.Get(context.Background(), homeID, recordID, userID)
		assert.ErrorIs(t, err, record.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestService_ListAttachments(t *testing.T) {
	svc, repo, homes := newService(t)

	homeID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()

	homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID}, nil)
	repo.EXPECT().GetRecord(gomock.Any(), recordID).Return(&record.Record{ID: recordID, HomeID: homeID}, nil)
	repo.EXPECT().
		ListAttachments(gomock.Any(), record.ParentRef{Type: record.ParentRecord, ID: recordID}).
		Return([]*record.Attachment{{ID: uuid.New(), FileName: "receipt.pdf"}}, nil)

	got, err := svc.ListAttachments(context.Background(), homeID, recordID, userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
