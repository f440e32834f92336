package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/payslip"
	"go-payslip/internal/period"
	reporterrors "go-payslip/internal/report/errors"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PayslipReader is the part of the payslip service reports are built from.
type PayslipReader interface {
	GetByID(ctx context.Context, ownerID, id string) (payslip.Payslip, error)
	GetByPeriod(ctx context.Context, ownerID string, start period.YearMonth, count int) ([]payslip.Payslip, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	RenderPayslip(ctx context.Context, ownerID, payslipID string) ([]byte, payslip.Payslip, error)
	RequestSemiAnnual(ctx context.Context, ownerID string, start period.YearMonth) (Report, error)
	GetSemiAnnual(ctx context.Context, ownerID, id string) (Report, error)
	Generate(ctx context.Context, event events.SemiAnnualReportRequestedEvent) error
}

type Deps struct {
	DB        *sql.DB
	Repo      Repository
	Outbox    kafka.OutboxRepository
	Payslips  PayslipReader
	Renderer  *Renderer
	ReportDir string
	Now       func() time.Time
	Logger    *zap.Logger
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	payslips  PayslipReader
	renderer  *Renderer
	reportDir string
	now       func() time.Time
	logger    *zap.Logger

	// renders collapses concurrent PDF requests for the same payslip.
	renders singleflight.Group
}

type renderedPayslip struct {
	doc []byte
	p   payslip.Payslip
}

func NewService(deps Deps) Service {
	l := zap.L().Named("report.service")
	if deps.Logger != nil {
		l = deps.Logger.Named("report.service")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &service{
		db:        deps.DB,
		repo:      deps.Repo,
		outbox:    deps.Outbox,
		payslips:  deps.Payslips,
		renderer:  renderer,
		reportDir: deps.ReportDir,
		now:       now,
		logger:    l,
	}
}

func (s *service) RenderPayslip(ctx context.Context, ownerID, payslipID string) ([]byte, payslip.Payslip, error) {
	v, err, shared := s.renders.Do(ownerID+"/"+payslipID, func() (any, error) {
		p, err := s.payslips.GetByID(ctx, ownerID, payslipID)
		if err != nil {
			return nil, err
		}
		doc, err := s.renderer.Payslip(p)
		if err != nil {
			s.logger.Error("render payslip failed", zap.String("payslip_id", payslipID), zap.Error(err))
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to render payslip", 500)
		}
		return renderedPayslip{doc: doc, p: p}, nil
	})
	if err != nil {
		return nil, payslip.Payslip{}, err
	}
	if shared {
		s.logger.Debug("payslip render shared", zap.String("payslip_id", payslipID))
	}
	out := v.(renderedPayslip)
	return out.doc, out.p, nil
}

// RequestSemiAnnual records a pending report and queues its generation in the
// same transaction. The window must contain at least one payslip.
func (s *service) RequestSemiAnnual(ctx context.Context, ownerID string, start period.YearMonth) (Report, error) {
	rid := contextutil.RequestID(ctx)

	payslips, err := s.payslips.GetByPeriod(ctx, ownerID, start, SemiAnnualMonths)
	if err != nil {
		return Report{}, err
	}
	if len(payslips) == 0 {
		return Report{}, reporterrors.ErrEmptyWindow
	}

	now := s.now().UTC()
	rep := Report{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Kind:       KindSemiAnnual,
		StartYear:  start.Year,
		StartMonth: start.Month,
		Count:      SemiAnnualMonths,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	event := events.SemiAnnualReportRequestedEvent{
		EventType:  "semi_annual_report_requested",
		RequestID:  rid,
		ReportID:   rep.ID,
		OwnerID:    ownerID,
		StartYear:  rep.StartYear,
		StartMonth: rep.StartMonth,
		Count:      rep.Count,
		OccurredAt: now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return Report{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Report{}, apperror.StorageUnavailable(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rep); err != nil {
		s.logger.Error("create report persist failed", zap.String("request_id", rid), zap.Error(err))
		return Report{}, apperror.StorageUnavailable(err)
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "report",
		AggregateID:   rep.ID,
		EventType:     event.EventType,
		Topic:         events.SemiAnnualReportRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("create report outbox persist failed",
			zap.String("report_id", rep.ID),
			zap.Error(err),
		)
		return Report{}, apperror.StorageUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return Report{}, apperror.StorageUnavailable(err)
	}

	s.logger.Info("semi-annual report queued",
		zap.String("request_id", rid),
		zap.String("report_id", rep.ID),
		zap.String("start", start.String()),
	)
	return rep, nil
}

// GetSemiAnnual returns a finished report. Pending reports are reported as not found.
func (s *service) GetSemiAnnual(ctx context.Context, ownerID, id string) (Report, error) {
	rep, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return Report{}, mapRepositoryError(err)
	}

	switch rep.Status {
	case StatusReady:
		return *rep, nil
	case StatusFailed:
		return Report{}, reporterrors.ErrReportFailed
	default:
		return Report{}, reporterrors.ErrReportPending
	}
}

// Generate renders the requested window to <ReportDir>/<id>.pdf. Read, render and
// write failures are recorded on the report. An error is returned only when the
// report row cannot be updated or ctx was cancelled, and the message must then be
// processed again.
func (s *service) Generate(ctx context.Context, event events.SemiAnnualReportRequestedEvent) error {
	start := period.New(event.StartYear, event.StartMonth)
	count := event.Count
	if count <= 0 {
		count = SemiAnnualMonths
	}

	payslips, err := s.payslips.GetByPeriod(ctx, event.OwnerID, start, count)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("load payslips for report %s: %w", event.ReportID, err)
		}
		return s.fail(ctx, event.ReportID, err)
	}

	doc, err := s.renderer.SemiAnnual(start, count, payslips)
	if err != nil {
		return s.fail(ctx, event.ReportID, err)
	}

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return s.fail(ctx, event.ReportID, err)
	}
	path := OutputPath(s.reportDir, event.ReportID)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return s.fail(ctx, event.ReportID, err)
	}

	if err := s.repo.MarkReady(ctx, event.ReportID, path); err != nil {
		return fmt.Errorf("mark report %s ready: %w", event.ReportID, err)
	}

	s.logger.Info("semi-annual report generated",
		zap.String("request_id", event.RequestID),
		zap.String("report_id", event.ReportID),
		zap.Int("months_with_data", len(payslips)),
	)
	return nil
}

func (s *service) fail(ctx context.Context, reportID string, cause error) error {
	s.logger.Error("generate report failed", zap.String("report_id", reportID), zap.Error(cause))
	if err := s.repo.MarkFailed(ctx, reportID, cause.Error()); err != nil {
		return errors.Join(cause, err)
	}
	return nil
}
