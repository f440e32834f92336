package report

import (
	"context"
	"database/sql"
	"errors"

	reporterrors "go-payslip/internal/report/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id VARCHAR(64) PRIMARY KEY,
	owner_id VARCHAR(64) NOT NULL,
	kind VARCHAR(32) NOT NULL,
	start_year INT NOT NULL,
	start_month INT NOT NULL,
	count INT NOT NULL,
	status VARCHAR(16) NOT NULL,
	file_path TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_owner ON reports (owner_id);
`

// EnsureSchema creates the reports table when it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, report Report) error
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Report, error)
	MarkReady(ctx context.Context, id, filePath string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, report Report) error {
	query := `
INSERT INTO reports (
	id, owner_id, kind, start_year, start_month, count, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.execer().ExecContext(
		ctx, query,
		report.ID, report.OwnerID, report.Kind, report.StartYear, report.StartMonth,
		report.Count, report.Status, report.CreatedAt, report.UpdatedAt,
	)
	return err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Report, error) {
	query := `
SELECT
	id, owner_id, kind, start_year, start_month, count, status,
	file_path, error_message, created_at, updated_at
FROM reports
WHERE id = $1 AND owner_id = $2
`
	var rep Report
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&rep.ID,
		&rep.OwnerID,
		&rep.Kind,
		&rep.StartYear,
		&rep.StartMonth,
		&rep.Count,
		&rep.Status,
		&rep.FilePath,
		&rep.ErrorMessage,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reporterrors.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) MarkReady(ctx context.Context, id, filePath string) error {
	query := `
UPDATE reports
SET
	status = $2,
	file_path = $3,
	error_message = '',
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, StatusReady, filePath)
	return err
}

func (r *repository) MarkFailed(ctx context.Context, id, reason string) error {
	query := `
UPDATE reports
SET
	status = $2,
	error_message = LEFT($3, 500),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, StatusFailed, reason)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
