package template

import (
	"context"

	"go-payslip/internal/owner"
	templateerrors "go-payslip/internal/template/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listOrder = "created_at DESC, id DESC"

var upsertColumns = []string{
	"name", "company_name", "included_fields", "default_values", "selected_format", "updated_at",
}

//go:generate mockgen -source=template_repo.go -destination=mock/template_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Upsert(ctx context.Context, template *Template) error
	FindAllByOwner(ctx context.Context, ownerID string) ([]Template, error)
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Template, error)
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

func (r *repository) Upsert(ctx context.Context, template *Template) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Table: template.TableName(), Name: "owner_id"}, Value: template.OwnerID},
			}},
		}).
		Create(template)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return templateerrors.ErrIDConflict
	}
	return nil
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Template, error) {
	var templates []Template
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Order(listOrder).
		Find(&templates).Error
	return templates, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Template, error) {
	var template Template
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		First(&template, "id = ?", id).Error
	return &template, err
}

func (r *repository) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Delete(&Template{}, "id = ?", id).Error
}

func (r *repository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(ownerID)).
		Delete(&Template{}).Error
}
