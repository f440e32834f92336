package payslip

import (
	"context"
	"errors"
	"time"

	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/period"
	"go-payslip/internal/shared/contextutil"
	"go-payslip/internal/shared/idgen"

	"go.uber.org/zap"
)

const (
	DefaultWindow  = 6
	MaxWindowCount = 120

	// MaxAmount is the largest yen amount one line item may carry.
	MaxAmount int64 = 1_000_000_000_000_000
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, ownerID string, payslip Payslip) (Payslip, error)
	Import(ctx context.Context, ownerID string, payslip Payslip) (Payslip, error)
	GetAll(ctx context.Context, ownerID string) ([]Payslip, error)
	GetByID(ctx context.Context, ownerID, id string) (Payslip, error)
	GetLatest(ctx context.Context, ownerID string) (Payslip, error)
	Delete(ctx context.Context, ownerID, id string) error
	GetByPeriod(ctx context.Context, ownerID string, start period.YearMonth, count int) ([]Payslip, error)
	GetByPeriodEndingAt(ctx context.Context, ownerID string, end period.YearMonth, count int) ([]Payslip, error)
	CopyFromPrevious(ctx context.Context, ownerID, sourceID string) (Payslip, error)
	NewDraft(ctx context.Context) Payslip
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

// Save persists a copy of payslip. A missing id allocates a new record; an existing
// id keeps its createdAt. Totals are recomputed before writing.
func (s *service) Save(ctx context.Context, ownerID string, payslip Payslip) (Payslip, error) {
	return s.save(ctx, ownerID, payslip, false)
}

// Import is Save for restored records: timestamps carried by the payload are kept.
func (s *service) Import(ctx context.Context, ownerID string, payslip Payslip) (Payslip, error) {
	return s.save(ctx, ownerID, payslip, true)
}

func (s *service) save(ctx context.Context, ownerID string, payslip Payslip, keepTimestamps bool) (Payslip, error) {
	if err := Validate(payslip); err != nil {
		return Payslip{}, err
	}

	record := payslip
	record.OwnerID = ownerID
	record.SelectedFormat = normalizeFormat(record.SelectedFormat)
	record.Recalculate()

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
		case errors.Is(err, paysliperrors.ErrPayslipNotFound):
			if !keepTimestamps || record.CreatedAt.IsZero() {
				record.CreatedAt = now
			}
		default:
			return Payslip{}, err
		}
	}
	if !keepTimestamps || record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}

	if err := s.repo.Upsert(ctx, &record); err != nil {
		contextutil.Logger(ctx).Warn("payslip save failed",
			zap.String("payslip_id", record.ID),
			zap.Error(err),
		)
		return Payslip{}, mapRepositoryError(err)
	}

	return record, nil
}

func (s *service) GetAll(ctx context.Context, ownerID string) ([]Payslip, error) {
	payslips, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return payslips, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id string) (Payslip, error) {
	payslip, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return Payslip{}, mapRepositoryError(err)
	}
	return *payslip, nil
}

func (s *service) GetLatest(ctx context.Context, ownerID string) (Payslip, error) {
	payslip, err := s.repo.FindLatestByOwner(ctx, ownerID)
	if err != nil {
		return Payslip{}, mapRepositoryError(err)
	}
	return *payslip, nil
}

// Delete removes the payslip. Unknown ids are not an error.
func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, ownerID, id))
}

// GetByPeriod returns, oldest first, one payslip per month of the window starting
// at start. Each month resolves to its first payslip in list order; empty months
// are omitted.
func (s *service) GetByPeriod(ctx context.Context, ownerID string, start period.YearMonth, count int) ([]Payslip, error) {
	if !start.Valid() {
		return nil, paysliperrors.ErrInvalidPeriod
	}
	if count < 0 || count > MaxWindowCount {
		return nil, paysliperrors.ErrInvalidCount
	}
	if count == 0 {
		return []Payslip{}, nil
	}

	window := period.Window(start, count)
	candidates, err := s.repo.FindInRange(ctx, ownerID, window[0], window[len(window)-1])
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	bySlot := make(map[period.YearMonth]Payslip, len(window))
	for _, p := range candidates {
		slot := period.New(p.IssueYear, p.IssueMonth)
		if _, taken := bySlot[slot]; !taken {
			bySlot[slot] = p
		}
	}

	result := make([]Payslip, 0, len(window))
	for _, ym := range window {
		if p, ok := bySlot[ym]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *service) GetByPeriodEndingAt(ctx context.Context, ownerID string, end period.YearMonth, count int) ([]Payslip, error) {
	if count < 0 || count > MaxWindowCount {
		return nil, paysliperrors.ErrInvalidCount
	}
	if count == 0 {
		return []Payslip{}, nil
	}
	return s.GetByPeriod(ctx, ownerID, end.AddMonths(-(count - 1)), count)
}

// CopyFromPrevious builds next month's draft from sourceID, or from the latest
// payslip when sourceID is empty.
func (s *service) CopyFromPrevious(ctx context.Context, ownerID, sourceID string) (Payslip, error) {
	var (
		source Payslip
		err    error
	)
	if sourceID == "" {
		source, err = s.GetLatest(ctx, ownerID)
	} else {
		source, err = s.GetByID(ctx, ownerID, sourceID)
	}
	if err != nil {
		return Payslip{}, err
	}
	return CopyForward(source), nil
}

func (s *service) NewDraft(ctx context.Context) Payslip {
	return NewDraft(s.now())
}

// Validate checks the issue month, work dates and that no amount or hour count is negative.
func Validate(p Payslip) error {
	if !period.New(p.IssueYear, p.IssueMonth).Valid() {
		return paysliperrors.ErrInvalidIssuePeriod
	}
	if err := validateWorkDate(p.WorkStartYear, p.WorkStartMonth, p.WorkStartDay); err != nil {
		return err
	}
	if err := validateWorkDate(p.WorkEndYear, p.WorkEndMonth, p.WorkEndDay); err != nil {
		return err
	}

	if p.WorkingDays < 0 || p.WorkingHours < 0 || p.OvertimeHours < 0 {
		return paysliperrors.ErrNegativeAmount
	}
	return ValidateLineItems(p.LineItems())
}

// ValidateLineItems bounds every amount to 0..MaxAmount so the totals cannot overflow.
func ValidateLineItems(items LineItems) error {
	for _, amount := range []int64{
		items.BasicSalary, items.TaxFreeCommute, items.OvertimePay, items.OtherAllowance,
		items.IncomeTax, items.ResidentTax, items.HealthInsurance, items.PensionInsurance,
		items.EmploymentInsurance, items.OtherDeduction,
	} {
		if amount < 0 {
			return paysliperrors.ErrNegativeAmount
		}
		if amount > MaxAmount {
			return paysliperrors.ErrAmountTooLarge
		}
	}
	return nil
}

// validateWorkDate accepts unset parts. Set parts must form a real calendar date
// once all three are present.
func validateWorkDate(year, month, day *int) error {
	if month != nil && (*month < 1 || *month > 12) {
		return paysliperrors.ErrInvalidWorkPeriod
	}
	if day == nil {
		return nil
	}
	if *day < 1 || *day > 31 {
		return paysliperrors.ErrInvalidWorkPeriod
	}
	if year != nil && month != nil && *day > period.New(*year, *month).LastDay() {
		return paysliperrors.ErrInvalidWorkPeriod
	}
	return nil
}
