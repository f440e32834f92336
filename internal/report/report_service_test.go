package report_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"
	kafkaMock "go-payslip/internal/messaging/kafka/mock"
	"go-payslip/internal/payslip"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/period"
	"go-payslip/internal/report"
	reporterrors "go-payslip/internal/report/errors"
	reportMock "go-payslip/internal/report/mock"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const ownerID = "owner-1"

var fixedNow = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *reportMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	payslips  *reportMock.MockPayslipReader
	reportDir string
	service   report.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      reportMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		payslips:  reportMock.NewMockPayslipReader(ctrl),
		reportDir: filepath.Join(t.TempDir(), "reports"),
	}
	deps.service = report.NewService(report.Deps{
		DB:        db,
		Repo:      deps.repo,
		Outbox:    deps.outbox,
		Payslips:  deps.payslips,
		ReportDir: deps.reportDir,
		Now:       func() time.Time { return fixedNow },
		Logger:    zap.NewNop(),
	})
	return deps
}

func TestService_RenderPayslip(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := samplePayslip(2025, 6, report.FormatCompact)
		deps.payslips.EXPECT().GetByID(ctx, ownerID, p.ID).Return(p, nil)

		doc, got, err := deps.service.RenderPayslip(ctx, ownerID, p.ID)
		assert.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.NotEmpty(t, doc)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.payslips.EXPECT().GetByID(ctx, ownerID, "missing").
			Return(payslip.Payslip{}, paysliperrors.ErrPayslipNotFound)

		_, _, err := deps.service.RenderPayslip(ctx, ownerID, "missing")
		assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
	})
}

func TestService_RequestSemiAnnual(t *testing.T) {
	start := period.New(2025, 1)

	t.Run("success writes report and outbox event in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-42")

		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, start, report.SemiAnnualMonths).
			Return([]payslip.Payslip{samplePayslip(2025, 2, 1)}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r report.Report) error {
				assert.Equal(t, ownerID, r.OwnerID)
				assert.Equal(t, report.StatusPending, r.Status)
				assert.Equal(t, 6, r.Count)
				assert.Equal(t, fixedNow, r.CreatedAt)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.SemiAnnualReportRequestedTopic, e.Topic)
				assert.Equal(t, "REQ-42", e.RequestID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)

				var payload events.SemiAnnualReportRequestedEvent
				assert.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, e.AggregateID, payload.ReportID)
				assert.Equal(t, 2025, payload.StartYear)
				assert.Equal(t, 1, payload.StartMonth)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		rep, err := deps.service.RequestSemiAnnual(ctx, ownerID, start)
		assert.NoError(t, err)
		assert.NotEmpty(t, rep.ID)
		assert.Equal(t, report.StatusPending, rep.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty window", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, start, 6).Return([]payslip.Payslip{}, nil)

		_, err := deps.service.RequestSemiAnnual(ctx, ownerID, start)
		assert.ErrorIs(t, err, reporterrors.ErrEmptyWindow)
	})

	t.Run("invalid start", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		bad := period.New(2025, 13)
		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, bad, 6).Return(nil, paysliperrors.ErrInvalidPeriod)

		_, err := deps.service.RequestSemiAnnual(ctx, ownerID, bad)
		assert.ErrorIs(t, err, paysliperrors.ErrInvalidPeriod)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, start, 6).
			Return([]payslip.Payslip{samplePayslip(2025, 1, 1)}, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.RequestSemiAnnual(ctx, ownerID, start)
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_GetSemiAnnual(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		status  string
		wantErr error
	}{
		{"ready", report.StatusReady, nil},
		{"pending", report.StatusPending, reporterrors.ErrReportPending},
		{"failed", report.StatusFailed, reporterrors.ErrReportFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			deps.repo.EXPECT().FindByIDAndOwner(ctx, ownerID, "rep-1").
				Return(&report.Report{ID: "rep-1", OwnerID: ownerID, Status: tc.status}, nil)

			rep, err := deps.service.GetSemiAnnual(ctx, ownerID, "rep-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "rep-1", rep.ID)
		})
	}

	t.Run("pending is reported as not found", func(t *testing.T) {
		assert.Equal(t, apperror.CodeNotFound, apperror.ToHTTP(reporterrors.ErrReportPending).Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndOwner(ctx, ownerID, "rep-1").Return(nil, errors.New("conn reset"))

		_, err := deps.service.GetSemiAnnual(ctx, ownerID, "rep-1")
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	event := events.SemiAnnualReportRequestedEvent{
		ReportID:   "rep-1",
		OwnerID:    ownerID,
		StartYear:  2025,
		StartMonth: 1,
		Count:      6,
	}

	t.Run("writes pdf and marks ready", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectedPath := report.OutputPath(deps.reportDir, "rep-1")

		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, period.New(2025, 1), 6).
			Return([]payslip.Payslip{samplePayslip(2025, 1, 1), samplePayslip(2025, 4, 2)}, nil)
		deps.repo.EXPECT().MarkReady(ctx, "rep-1", expectedPath).Return(nil)

		assert.NoError(t, deps.service.Generate(ctx, event))

		data, err := os.ReadFile(expectedPath)
		assert.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]))
	})

	t.Run("read failure marks the report failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, period.New(2025, 1), 6).
			Return(nil, apperror.StorageUnavailable(errors.New("db down")))
		deps.repo.EXPECT().MarkFailed(ctx, "rep-1", gomock.Any()).Return(nil)

		assert.NoError(t, deps.service.Generate(ctx, event))
	})

	t.Run("read failure is returned when the report cannot be marked", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, period.New(2025, 1), 6).
			Return(nil, apperror.StorageUnavailable(errors.New("db down")))
		deps.repo.EXPECT().MarkFailed(ctx, "rep-1", gomock.Any()).Return(errors.New("db down"))

		err := deps.service.Generate(ctx, event)
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})

	t.Run("cancelled read is returned without marking", func(t *testing.T) {
		deps := setupServiceTest(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		deps.payslips.EXPECT().GetByPeriod(cancelled, ownerID, period.New(2025, 1), 6).
			Return(nil, context.Canceled)

		err := deps.service.Generate(cancelled, event)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("write failure is recorded on the report", func(t *testing.T) {
		deps := setupServiceTest(t)
		blocked := filepath.Join(t.TempDir(), "file")
		assert.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

		svc := report.NewService(report.Deps{
			DB:        deps.db,
			Repo:      deps.repo,
			Outbox:    deps.outbox,
			Payslips:  deps.payslips,
			ReportDir: filepath.Join(blocked, "reports"),
			Logger:    zap.NewNop(),
		})

		deps.payslips.EXPECT().GetByPeriod(ctx, ownerID, period.New(2025, 1), 6).
			Return([]payslip.Payslip{samplePayslip(2025, 1, 1)}, nil)
		deps.repo.EXPECT().MarkFailed(ctx, "rep-1", gomock.Any()).Return(nil)

		assert.NoError(t, svc.Generate(ctx, event))
	})
}
