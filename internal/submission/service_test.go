package submission_test

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
	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
	"github.com/RyanHagen77/dwella-app-sub003/internal/submission"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

type serviceMocks struct {
	repo     *submission.MockRepository
	homes    *submission.MockHomes
	users    *submission.MockDirectory
	notifier *submission.MockNotifier
}

func newService(t *testing.T) (*submission.Service, serviceMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:     submission.NewMockRepository(ctrl),
		homes:    submission.NewMockHomes(ctrl),
		users:    submission.NewMockDirectory(ctrl),
		notifier: submission.NewMockNotifier(ctrl),
	}

	svc := submission.NewService(m.repo, m.homes, m.users, m.notifier)

	return svc, m, ctrl
}

func TestService_Submit(t *testing.T) {
	svc, m, _ := newService(t)

	homeID := uuid.New()
	contractorID := uuid.New()

	m.repo.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sr *submission.ServiceRecord, atts []*record.Attachment) error {
			sr.ID = uuid.New()
			sr.CreatedAt = time.Now().UTC()
			assert.Len(t, atts, 1)
			return nil
		})

	got, err := svc.Submit(context.Background(), homeID, contractorID, submission.SubmitParams{
		ServiceType: "Water heater replacement",
		Description: "Replaced 40gal unit",
		ServiceDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Cost:        185000,
	}, []submission.AttachmentParams{
		{FileName: "invoice.pdf", URL: "https://files.example.com/invoice.pdf", ContentType: "application/pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusPendingReview, got.Status)
	assert.Equal(t, contractorID, got.ContractorID)
	assert.False(t, got.IsVerified)
}

func TestService_Approve(t *testing.T) {
	homeID := uuid.New()
	ownerID := uuid.New()
	contractorID := uuid.New()
	submissionID := uuid.New()

	testHome := &home.Home{ID: homeID, OwnerID: ownerID}
	contractor := &user.User{ID: contractorID, Email: "pro@example.com", BusinessName: "Apex Plumbing", Role: user.RolePro}

	pendingSubmission := func() *submission.ServiceRecord {
		return &submission.ServiceRecord{
			ID:           submissionID,
			HomeID:       homeID,
			ContractorID: contractorID,
			ServiceType:  "Water heater replacement",
			Description:  "Replaced 40gal unit",
			ServiceDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Cost:         185000,
			Status:       submission.StatusPendingReview,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, m, ctrl := newService(t)
		atx := submission.NewMockApprovalTx(ctrl)

		sr := pendingSubmission()
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)
		m.users.EXPECT().Get(gomock.Any(), contractorID).Return(contractor, nil)
		m.repo.EXPECT().BeginApproval(gomock.Any()).Return(atx, nil)

		atx.EXPECT().MarkApproved(gomock.Any(), submissionID, ownerID, gomock.Any()).Return(nil)
		atx.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *record.Record) error {
				rec.ID = uuid.New()
				assert.Equal(t, "Water heater replacement", rec.Title)
				assert.Equal(t, "Replaced 40gal unit", rec.Note)
				assert.Equal(t, record.KindService, rec.Kind)
				assert.Equal(t, "Apex Plumbing", rec.VendorName)
				assert.Equal(t, int64(185000), rec.Cost)
				require.NotNil(t, rec.VerifiedBy)
				assert.Equal(t, ownerID, *rec.VerifiedBy)
				return nil
			})
		atx.EXPECT().
			ReparentAttachments(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to record.ParentRef) (int64, error) {
				assert.Equal(t, record.ParentServiceRecord, from.Type)
				assert.Equal(t, submissionID, from.ID)
				assert.Equal(t, record.ParentRecord, to.Type)
				return 1, nil
			})
		atx.EXPECT().SetFinalRecord(gomock.Any(), submissionID, gomock.Any()).Return(nil)
		atx.EXPECT().
			UpsertConnection(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, conn *submission.Connection) error {
				assert.Equal(t, ownerID, conn.HomeownerID)
				assert.Equal(t, contractorID, conn.ContractorID)
				assert.Equal(t, submission.ConnectionActive, conn.Status)
				assert.Equal(t, submission.EstablishedViaApproval, conn.EstablishedVia)
				assert.Equal(t, 1, conn.VerifiedServiceCount)
				assert.Equal(t, int64(185000), conn.TotalSpent)
				return nil
			})
		atx.EXPECT().Commit().Return(nil)
		atx.EXPECT().Rollback().Return(errors.New("tx already committed"))

		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		gotSR, gotRec, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusApproved, gotSR.Status)
		assert.True(t, gotSR.IsVerified)
		require.NotNil(t, gotSR.ApprovedBy)
		assert.Equal(t, ownerID, *gotSR.ApprovedBy)
		require.NotNil(t, gotSR.FinalRecordID)
		assert.Equal(t, gotRec.ID, *gotSR.FinalRecordID)
	})

	t.Run("NotifyFailureDoesNotFail", func(t *testing.T) {
		svc, m, ctrl := newService(t)
		atx := submission.NewMockApprovalTx(ctrl)

		sr := pendingSubmission()
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)
		m.users.EXPECT().Get(gomock.Any(), contractorID).Return(contractor, nil)
		m.repo.EXPECT().BeginApproval(gomock.Any()).Return(atx, nil)

		atx.EXPECT().MarkApproved(gomock.Any(), submissionID, ownerID, gomock.Any()).Return(nil)
		atx.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *record.Record) error {
				rec.ID = uuid.New()
				return nil
			})
		atx.EXPECT().ReparentAttachments(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		atx.EXPECT().SetFinalRecord(gomock.Any(), submissionID, gomock.Any()).Return(nil)
		atx.EXPECT().UpsertConnection(gomock.Any(), gomock.Any()).Return(nil)
		atx.EXPECT().Commit().Return(nil)
		atx.EXPECT().Rollback().Return(nil)

		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		gotSR, _, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusApproved, gotSR.Status)
	})

	t.Run("NotAuthorized", func(t *testing.T) {
		svc, m, _ := newService(t)

		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(nil, home.ErrForbidden)

		_, _, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		assert.ErrorIs(t, err, home.ErrForbidden)
	})

	t.Run("WrongHome", func(t *testing.T) {
		svc, m, _ := newService(t)

		sr := pendingSubmission()
		sr.HomeID = uuid.New()
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)

		_, _, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		assert.ErrorIs(t, err, submission.ErrWrongHome)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		svc, m, _ := newService(t)

		sr := pendingSubmission()
		sr.Status = submission.StatusApproved
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)

		_, _, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		assert.ErrorIs(t, err, submission.ErrAlreadyResolved)
	})

	t.Run("StepFailureRollsBack", func(t *testing.T) {
		svc, m, ctrl := newService(t)
		atx := submission.NewMockApprovalTx(ctrl)

		sr := pendingSubmission()
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)
		m.users.EXPECT().Get(gomock.Any(), contractorID).Return(contractor, nil)
		m.repo.EXPECT().BeginApproval(gomock.Any()).Return(atx, nil)

		atx.EXPECT().MarkApproved(gomock.Any(), submissionID, ownerID, gomock.Any()).Return(nil)
		atx.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		atx.EXPECT().Rollback().Return(nil)

		_, _, err := svc.Approve(context.Background(), homeID, submissionID, ownerID)
		assert.Error(t, err)
	})
}

func TestService_Reject(t *testing.T) {
	homeID := uuid.New()
	ownerID := uuid.New()
	contractorID := uuid.New()
	submissionID := uuid.New()

	testHome := &home.Home{ID: homeID, OwnerID: ownerID}

	pendingSubmission := func() *submission.ServiceRecord {
		return &submission.ServiceRecord{
			ID:           submissionID,
			HomeID:       homeID,
			ContractorID: contractorID,
			Status:       submission.StatusPendingReview,
		}
	}

	t.Run("WithReason", func(t *testing.T) {
		svc, m, _ := newService(t)

		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(pendingSubmission(), nil)
		m.repo.EXPECT().Reject(gomock.Any(), submissionID, ownerID, "Work was never done", gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Reject(context.Background(), homeID, submissionID, ownerID, "Work was never done")
		require.NoError(t, err)
		assert.Equal(t, submission.StatusRejected, got.Status)
		assert.Equal(t, "Work was never done", got.RejectionReason)
	})

	t.Run("DefaultReason", func(t *testing.T) {
		svc, m, _ := newService(t)

		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(pendingSubmission(), nil)
		m.repo.EXPECT().Reject(gomock.Any(), submissionID, ownerID, submission.DefaultRejectionReason, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Reject(context.Background(), homeID, submissionID, ownerID, "")
		require.NoError(t, err)
		assert.Equal(t, submission.DefaultRejectionReason, got.RejectionReason)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		svc, m, _ := newService(t)

		sr := pendingSubmission()
		sr.Status = submission.StatusRejected
		m.homes.EXPECT().Authorize(gomock.Any(), homeID, ownerID).Return(testHome, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(sr, nil)

		_, err := svc.Reject(context.Background(), homeID, submissionID, ownerID, "")
		assert.ErrorIs(t, err, submission.ErrAlreadyResolved)
	})
}

func TestService_Get(t *testing.T) {
	homeID := uuid.New()
	userID := uuid.New()
	submissionID := uuid.New()

	t.Run("WrongHome", func(t *testing.T) {
		svc, m, _ := newService(t)

		m.homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID}, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(&submission.ServiceRecord{
			ID:     submissionID,
			HomeID: uuid.New(),
		}, nil)

		_, err := svc.Get(context.Background(), homeID, submissionID, userID)
		assert.ErrorIs(t, err, submission.ErrWrongHome)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m, _ := newService(t)

		m.homes.EXPECT().Authorize(gomock.Any(), homeID, userID).Return(&home.Home{ID: homeID}, nil)
		m.repo.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(nil, submission.ErrNotFound)

		_, err := svc.Get(context.Background(), homeID, submissionID, userID)
		assert.ErrorIs(t, err, submission.ErrNotFound)
	})
}
