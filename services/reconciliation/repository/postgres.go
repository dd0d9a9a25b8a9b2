package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/concily/reconciliation/internal/pkg/constants"
	"github.com/concily/reconciliation/internal/pkg/database"
	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/pkg/errors"
	"github.com/concily/reconciliation/services/reconciliation"
)

const pgUniqueViolation = "23505"

// TransactionRepo implements the reconciliation.TransactionRepo interface on
// PostgreSQL, with Redis for processed-event markers.
type TransactionRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) reconciliation.TransactionRepo {
	return &TransactionRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateTransaction inserts one normalized transaction. The store assigns the
// id; rows are immutable after insert.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, source, external_id, amount, currency, status,
			customer_id, created_at, metadata
		) VALUES (
			:id, :source, :external_id, :amount, :currency, :status,
			:customer_id, :created_at, :metadata
		)
	`, tx)

	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errors.Wrap(err, errors.KindValidation,
				"transaction %s already recorded for source %s", tx.ExternalID, tx.Source)
		}
		return errors.Wrap(err, errors.KindPersistence, "failed to create transaction")
	}

	return nil
}

// GetTransactionsInWindow returns transactions with created_at in [start, end),
// ordered by created_at then id so fetch order is deterministic.
func (r *TransactionRepo) GetTransactionsInWindow(ctx context.Context, start, end time.Time) ([]*models.Transaction, error) {
	query := `
		SELECT id, source, external_id, amount, currency, status,
		       customer_id, created_at, metadata
		FROM transactions
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at, id
	`

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, start, end); err != nil {
		return nil, errors.Wrap(err, errors.KindFetch, "failed to fetch transactions")
	}

	return txs, nil
}

// MarkEventProcessed records a provider event id and reports whether this was
// the first delivery. With no Redis configured every delivery counts as first;
// the unique constraint on (source, external_id) still protects the store.
func (r *TransactionRepo) MarkEventProcessed(ctx context.Context, eventID string) (bool, error) {
	if r.redis == nil {
		return true, nil
	}

	key := constants.KeyProviderEventPrefix + eventID
	first, err := r.redis.SetNX(ctx, key, time.Now().Format(time.RFC3339), constants.ProviderEventTTL)
	if err != nil {
		return false, errors.Wrap(err, errors.KindPersistence, "failed to mark event processed")
	}

	return first, nil
}

// UnmarkEventProcessed removes a processed-event marker, letting the
// provider's retry of a failed delivery through.
func (r *TransactionRepo) UnmarkEventProcessed(ctx context.Context, eventID string) error {
	if r.redis == nil {
		return nil
	}

	if err := r.redis.Delete(ctx, constants.KeyProviderEventPrefix+eventID); err != nil {
		return errors.Wrap(err, errors.KindPersistence, "failed to unmark event processed")
	}

	return nil
}
