package payslip

import (
	"context"

	"go-payslip/internal/owner"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/period"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listOrder = "issue_year DESC, issue_month DESC, updated_at DESC, id DESC"

// upsertColumns are overwritten when an id already exists. owner_id and created_at stay fixed.
var upsertColumns = []string{
	"issue_year", "issue_month",
	"employee_name", "company_name", "company_logo",
	"work_start_year", "work_start_month", "work_start_day",
	"work_end_year", "work_end_month", "work_end_day",
	"working_days", "working_hours", "overtime_hours",
	"basic_salary", "tax_free_commute", "overtime_pay", "other_allowance",
	"income_tax", "resident_tax", "health_insurance", "pension_insurance",
	"employment_insurance", "other_deduction",
	"total_earnings", "total_deductions", "net_pay",
	"selected_format", "updated_at",
}

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Upsert(ctx context.Context, payslip *Payslip) error
	FindAllByOwner(ctx context.Context, ownerID string) ([]Payslip, error)
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Payslip, error)
	FindLatestByOwner(ctx context.Context, ownerID string) (*Payslip, error)
	FindInRange(ctx context.Context, ownerID string, from, to period.YearMonth) ([]Payslip, error)
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Upsert inserts the payslip or overwrites the row with the same id. A row owned by
// someone else is left untouched and reported as an id conflict.
func (r *repository) Upsert(ctx context.Context, payslip *Payslip) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Table: payslip.TableName(), Name: "owner_id"}, Value: payslip.OwnerID},
			}},
		}).
		Create(payslip)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return paysliperrors.ErrIDConflict
	}
	return nil
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Order(listOrder).
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		First(&payslip, "id = ?", id).Error
	return &payslip, err
}

func (r *repository) FindLatestByOwner(ctx context.Context, ownerID string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Order(listOrder).
		Take(&payslip).Error
	return &payslip, err
}

// FindInRange returns the payslips issued between from and to inclusive, in list order.
func (r *repository) FindInRange(ctx context.Context, ownerID string, from, to period.YearMonth) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Where("issue_year * 12 + issue_month BETWEEN ? AND ?", monthIndex(from), monthIndex(to)).
		Order(listOrder).
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Delete(&Payslip{}, "id = ?", id).Error
}

func (r *repository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Delete(&Payslip{}).Error
}

func monthIndex(ym period.YearMonth) int {
	return ym.Year*12 + ym.Month
}
