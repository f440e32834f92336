package backup_test

import (
	"context"
	"errors"
	"sort"

	"go-payslip/internal/bootstrap"
	"go-payslip/internal/payslip"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/period"
	"go-payslip/internal/template"
	templateerrors "go-payslip/internal/template/errors"

	"gorm.io/gorm"
)

var errDiskFull = errors.New("disk full")

// memPayslipRepo is an in-memory payslip.Repository. failOnWrite makes the n-th
// upsert (1-based) fail.
type memPayslipRepo struct {
	rows        map[string]payslip.Payslip
	writes      int
	failOnWrite int
}

func newMemPayslipRepo() *memPayslipRepo {
	return &memPayslipRepo{rows: map[string]payslip.Payslip{}}
}

func (r *memPayslipRepo) WithTx(tx *gorm.DB) payslip.Repository { return r }

func (r *memPayslipRepo) Upsert(ctx context.Context, p *payslip.Payslip) error {
	r.writes++
	if r.failOnWrite > 0 && r.writes == r.failOnWrite {
		return errDiskFull
	}
	if existing, ok := r.rows[p.ID]; ok {
		if existing.OwnerID != p.OwnerID {
			return paysliperrors.ErrIDConflict
		}
		p.CreatedAt = existing.CreatedAt
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *memPayslipRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]payslip.Payslip, error) {
	var out []payslip.Payslip
	for _, p := range r.rows {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IssueYear != b.IssueYear {
			return a.IssueYear > b.IssueYear
		}
		if a.IssueMonth != b.IssueMonth {
			return a.IssueMonth > b.IssueMonth
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (r *memPayslipRepo) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*payslip.Payslip, error) {
	p, ok := r.rows[id]
	if !ok || p.OwnerID != ownerID {
		return &payslip.Payslip{}, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memPayslipRepo) FindLatestByOwner(ctx context.Context, ownerID string) (*payslip.Payslip, error) {
	all, _ := r.FindAllByOwner(ctx, ownerID)
	if len(all) == 0 {
		return &payslip.Payslip{}, gorm.ErrRecordNotFound
	}
	return &all[0], nil
}

func (r *memPayslipRepo) FindInRange(ctx context.Context, ownerID string, from, to period.YearMonth) ([]payslip.Payslip, error) {
	all, _ := r.FindAllByOwner(ctx, ownerID)
	var out []payslip.Payslip
	for _, p := range all {
		ym := period.New(p.IssueYear, p.IssueMonth)
		if !ym.Before(from) && !to.Before(ym) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPayslipRepo) Delete(ctx context.Context, ownerID, id string) error {
	if p, ok := r.rows[id]; ok && p.OwnerID == ownerID {
		delete(r.rows, id)
	}
	return nil
}

func (r *memPayslipRepo) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	for id, p := range r.rows {
		if p.OwnerID == ownerID {
			delete(r.rows, id)
		}
	}
	return nil
}

type memTemplateRepo struct {
	rows map[string]template.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{rows: map[string]template.Template{}}
}

func (r *memTemplateRepo) WithTx(tx *gorm.DB) template.Repository { return r }

func (r *memTemplateRepo) Upsert(ctx context.Context, t *template.Template) error {
	if existing, ok := r.rows[t.ID]; ok {
		if existing.OwnerID != t.OwnerID {
			return templateerrors.ErrIDConflict
		}
		t.CreatedAt = existing.CreatedAt
	}
	r.rows[t.ID] = *t
	return nil
}

func (r *memTemplateRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]template.Template, error) {
	var out []template.Template
	for _, t := range r.rows {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memTemplateRepo) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*template.Template, error) {
	t, ok := r.rows[id]
	if !ok || t.OwnerID != ownerID {
		return &template.Template{}, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *memTemplateRepo) Delete(ctx context.Context, ownerID, id string) error {
	if t, ok := r.rows[id]; ok && t.OwnerID == ownerID {
		delete(r.rows, id)
	}
	return nil
}

func (r *memTemplateRepo) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	for id, t := range r.rows {
		if t.OwnerID == ownerID {
			delete(r.rows, id)
		}
	}
	return nil
}

type recordingAuditLogger struct {
	entries []bootstrap.AuditLog
}

func (l *recordingAuditLogger) Log(ctx context.Context, entry bootstrap.AuditLog) {
	l.entries = append(l.entries, entry)
}
