package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/concily/reconciliation/internal/pkg/constants"
	"github.com/concily/reconciliation/internal/pkg/database"
	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/pkg/errors"
	"github.com/concily/reconciliation/services/reconciliation"
)

// ReportRepo implements the reconciliation.ReportRepo interface on PostgreSQL
// with a Redis read-through cache.
type ReportRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewReportRepo creates a new report repository
func NewReportRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) reconciliation.ReportRepo {
	return &ReportRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateReport persists one reconciliation report. Reports are append-only
// audit artifacts; concurrent runs may each create their own.
func (r *ReportRepo) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO reconciliation_reports (
			id, window_start, window_end, total_transactions, mismatches,
			summary, ai_explanation, created_at
		) VALUES (
			:id, :window_start, :window_end, :total_transactions, :mismatches,
			:summary, :ai_explanation, :created_at
		)
	`, report)

	if err != nil {
		return errors.Wrap(err, errors.KindPersistence, "failed to create report")
	}

	r.cacheReport(ctx, report)
	return nil
}

// GetReport fetches a report by id, trying the cache before the database
func (r *ReportRepo) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	if cached := r.cachedReport(ctx, id); cached != nil {
		return cached, nil
	}

	query := `
		SELECT id, window_start, window_end, total_transactions, mismatches,
		       summary, ai_explanation, created_at
		FROM reconciliation_reports
		WHERE id = $1
	`

	var report models.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("report %s not found", id)
		}
		return nil, errors.Wrap(err, errors.KindFetch, "failed to get report")
	}

	r.cacheReport(ctx, &report)
	return &report, nil
}

// UpdateExplanation attaches the generated explanation to a report. This is
// the single permitted update on a report row.
func (r *ReportRepo) UpdateExplanation(ctx context.Context, id uuid.UUID, explanation string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE reconciliation_reports
		SET ai_explanation = $1
		WHERE id = $2
	`, explanation, id)

	if err != nil {
		return errors.Wrap(err, errors.KindPersistence, "failed to update explanation")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.KindPersistence, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return errors.NotFoundf("report %s not found", id)
	}

	r.invalidateReport(ctx, id)
	return nil
}

// Cache helpers. Cache failures are deliberately not surfaced: the database
// row is the source of truth.

func (r *ReportRepo) cacheReport(ctx context.Context, report *models.Report) {
	if r.redis == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = r.redis.Set(ctx, constants.KeyReportPrefix+report.ID.String(), data, constants.ReportCacheTTL)
}

func (r *ReportRepo) cachedReport(ctx context.Context, id uuid.UUID) *models.Report {
	if r.redis == nil {
		return nil
	}
	data, err := r.redis.Get(ctx, constants.KeyReportPrefix+id.String())
	if err != nil {
		return nil
	}
	var report models.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil
	}
	return &report
}

func (r *ReportRepo) invalidateReport(ctx context.Context, id uuid.UUID) {
	if r.redis == nil {
		return
	}
	_ = r.redis.Delete(ctx, constants.KeyReportPrefix+id.String())
}
