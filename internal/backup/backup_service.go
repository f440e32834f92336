package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	backuperrors "go-payslip/internal/backup/errors"
	"go-payslip/internal/bootstrap"
	"go-payslip/internal/payslip"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/contextutil"
	"go-payslip/internal/template"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=backup_service.go -destination=mock/backup_service_mock.go -package=mock
type Service interface {
	Export(ctx context.Context, ownerID string) (Payload, error)
	Import(ctx context.Context, ownerID string, payload ImportPayload) (ImportResult, error)
	ClearAll(ctx context.Context, ownerID string) error
}

type service struct {
	db           *gorm.DB
	payslips     payslip.Service
	templates    template.Service
	payslipRepo  payslip.Repository
	templateRepo template.Repository
	audit        bootstrap.AuditLogger
	now          func() time.Time
}

type Deps struct {
	DB           *gorm.DB
	Payslips     payslip.Service
	Templates    template.Service
	PayslipRepo  payslip.Repository
	TemplateRepo template.Repository
	Audit        bootstrap.AuditLogger
	Now          func() time.Time
}

func NewService(deps Deps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	audit := deps.Audit
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger()
	}
	return &service{
		db:           deps.DB,
		payslips:     deps.Payslips,
		templates:    deps.Templates,
		payslipRepo:  deps.PayslipRepo,
		templateRepo: deps.TemplateRepo,
		audit:        audit,
		now:          now,
	}
}

func (s *service) Export(ctx context.Context, ownerID string) (Payload, error) {
	payslips, err := s.payslips.GetAll(ctx, ownerID)
	if err != nil {
		return Payload{}, err
	}
	templates, err := s.templates.GetAll(ctx, ownerID)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Version:    FormatVersion,
		ExportedAt: s.now().UTC(),
		Payslips:   payslip.ToRecords(payslips),
		Templates:  template.ToRecords(templates),
	}, nil
}

// Import upserts every record of payload by id. The payload shape and each record
// are checked before the first write. A storage failure midway returns the counts
// written so far together with IMPORT_PARTIAL.
func (s *service) Import(ctx context.Context, ownerID string, payload ImportPayload) (ImportResult, error) {
	if payload.Payslips == nil || payload.Templates == nil {
		return ImportResult{}, backuperrors.ErrInvalidFormat
	}
	if err := checkVersion(payload); err != nil {
		return ImportResult{}, err
	}

	payslips := make([]payslip.Payslip, len(*payload.Payslips))
	for i, rec := range *payload.Payslips {
		payslips[i] = rec.ToEntity()
		if err := payslip.Validate(payslips[i]); err != nil {
			return ImportResult{}, recordError(err, "payslips", i)
		}
	}
	templates := make([]template.Template, len(*payload.Templates))
	for i, rec := range *payload.Templates {
		templates[i] = rec.ToEntity()
		if err := template.Validate(templates[i]); err != nil {
			return ImportResult{}, recordError(err, "templates", i)
		}
	}

	var result ImportResult
	for _, p := range payslips {
		if _, err := s.payslips.Import(ctx, ownerID, p); err != nil {
			return result, s.partial(ctx, ownerID, result, err)
		}
		result.PayslipsCount++
	}
	for _, t := range templates {
		if _, err := s.templates.Import(ctx, ownerID, t); err != nil {
			return result, s.partial(ctx, ownerID, result, err)
		}
		result.TemplatesCount++
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "DATA_IMPORTED",
		Message: "Backup imported",
		ActorID: ownerID,
		Meta: map[string]any{
			"payslips":  result.PayslipsCount,
			"templates": result.TemplatesCount,
		},
	})
	return result, nil
}

// ClearAll removes every payslip and template of the owner in one transaction.
func (s *service) ClearAll(ctx context.Context, ownerID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.payslipRepo.WithTx(tx).DeleteAllByOwner(ctx, ownerID); err != nil {
			return err
		}
		return s.templateRepo.WithTx(tx).DeleteAllByOwner(ctx, ownerID)
	})
	if err != nil {
		contextutil.Logger(ctx).Error("clear all failed", zap.Error(err))
		return apperror.StorageUnavailable(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "DATA_CLEARED",
		Message: "All payslips and templates removed",
		ActorID: ownerID,
	})
	return nil
}

// partial answers with the status of the cause, so a conflicting record stays a
// client error. Unclassified causes keep ErrImportPartial's 503.
func (s *service) partial(ctx context.Context, ownerID string, result ImportResult, cause error) error {
	contextutil.Logger(ctx).Warn("import stopped",
		zap.Int("payslips_written", result.PayslipsCount),
		zap.Int("templates_written", result.TemplatesCount),
		zap.Error(cause),
	)
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "DATA_IMPORT_PARTIAL",
		Message: "Backup import stopped before completion",
		ActorID: ownerID,
		Meta: map[string]any{
			"payslips":  result.PayslipsCount,
			"templates": result.TemplatesCount,
			"cause":     cause.Error(),
		},
	})
	partial := apperror.WithCause(backuperrors.ErrImportPartial, cause)
	var appErr *apperror.AppError
	if errors.As(cause, &appErr) {
		partial.HTTPStatus = appErr.HTTPStatus
	}
	return partial
}

func checkVersion(payload ImportPayload) error {
	if payload.Version == "" {
		return nil
	}
	v, err := payload.Version.Int64()
	if err != nil || v < 1 || v > FormatVersion {
		return backuperrors.ErrUnsupportedVersion
	}
	return nil
}

func recordError(err error, kind string, index int) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return apperror.WithCause(appErr, fmt.Errorf("%s[%d]", kind, index))
	}
	return err
}
