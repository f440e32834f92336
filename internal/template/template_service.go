package template

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-payslip/internal/payslip"
	"go-payslip/internal/shared/contextutil"
	"go-payslip/internal/shared/idgen"
	templateerrors "go-payslip/internal/template/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=template_service.go -destination=mock/template_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, ownerID string, template Template) (Template, error)
	Import(ctx context.Context, ownerID string, template Template) (Template, error)
	GetAll(ctx context.Context, ownerID string) ([]Template, error)
	GetByID(ctx context.Context, ownerID, id string) (Template, error)
	Delete(ctx context.Context, ownerID, id string) error
	Apply(ctx context.Context, ownerID, id string) (payslip.Payslip, error)
	Duplicate(ctx context.Context, ownerID, id string) (Template, error)
}

type service struct {
	repo Repository
	ids  *idgen.Allocator
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return NewServiceWithClock(repo, idgen.NewAllocator(), time.Now)
}

func NewServiceWithClock(repo Repository, ids *idgen.Allocator, now func() time.Time) Service {
	return &service{repo: repo, ids: ids, now: now}
}

// Save validates and persists a copy of template. A missing id allocates a new
// record; an existing id keeps its createdAt.
func (s *service) Save(ctx context.Context, ownerID string, template Template) (Template, error) {
	return s.save(ctx, ownerID, template, false)
}

// Import is Save for restored records: timestamps carried by the payload are kept.
func (s *service) Import(ctx context.Context, ownerID string, template Template) (Template, error) {
	return s.save(ctx, ownerID, template, true)
}

func (s *service) save(ctx context.Context, ownerID string, template Template, keepTimestamps bool) (Template, error) {
	if err := Validate(template); err != nil {
		return Template{}, err
	}

	record := template
	record.OwnerID = ownerID
	record.Name = strings.TrimSpace(record.Name)
	if record.SelectedFormat < 1 {
		record.SelectedFormat = payslip.DefaultFormat
	}

	now := s.now()
	if record.ID == "" {
		record.ID = s.ids.New()
		if !keepTimestamps || record.CreatedAt.IsZero() {
			record.CreatedAt = now
		}
	} else {
		existing, err := s.repo.FindByIDAndOwner(ctx, ownerID, record.ID)
		err = mapRepositoryError(err)
		switch {
		case err == nil:
			if !keepTimestamps || record.CreatedAt.IsZero() {
				record.CreatedAt = existing.CreatedAt
			}
		case errors.Is(err, templateerrors.ErrTemplateNotFound):
			if !keepTimestamps || record.CreatedAt.IsZero() {
				record.CreatedAt = now
			}
		default:
			return Template{}, err
		}
	}
	if !keepTimestamps || record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}

	if err := s.repo.Upsert(ctx, &record); err != nil {
		contextutil.Logger(ctx).Warn("template save failed",
			zap.String("template_id", record.ID),
			zap.Error(err),
		)
		return Template{}, mapRepositoryError(err)
	}

	return record, nil
}

func (s *service) GetAll(ctx context.Context, ownerID string) ([]Template, error) {
	templates, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return templates, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id string) (Template, error) {
	template, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return Template{}, mapRepositoryError(err)
	}
	return *template, nil
}

// Delete removes the template. Unknown ids are not an error.
func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, ownerID, id))
}

func (s *service) Apply(ctx context.Context, ownerID, id string) (payslip.Payslip, error) {
	template, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return payslip.Payslip{}, err
	}
	return Apply(template, s.now()), nil
}

func (s *service) Duplicate(ctx context.Context, ownerID, id string) (Template, error) {
	template, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return Template{}, err
	}
	return s.Save(ctx, ownerID, Duplicate(template))
}

// Validate enforces a non-empty name and at least one included field. Keys outside
// the template field set are rejected.
func Validate(t Template) error {
	if strings.TrimSpace(t.Name) == "" {
		return templateerrors.ErrNameRequired
	}

	included := 0
	for name, on := range t.IncludedFields.Data() {
		if _, ok := LookupField(name); !ok {
			return templateerrors.ErrUnknownField
		}
		if on {
			included++
		}
	}
	if included == 0 {
		return templateerrors.ErrNoIncludedFields
	}

	for name, v := range t.DefaultValues.Data() {
		if _, ok := LookupField(name); !ok {
			return templateerrors.ErrUnknownField
		}
		if v < 0 {
			return templateerrors.ErrNegativeDefault
		}
		if v > payslip.MaxAmount {
			return templateerrors.ErrDefaultTooLarge
		}
	}
	return nil
}
