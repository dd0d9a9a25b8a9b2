package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/concily/reconciliation/internal/pkg/models"
)

// TransactionRepo is the append-only transaction store. Rows are never
// updated or deleted; reconciliation only reads committed records.
type TransactionRepo interface {
	// CreateTransaction inserts one normalized transaction. The store assigns
	// the id. Inserting a duplicate (source, external_id) fails.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransactionsInWindow returns transactions with created_at in the
	// half-open range [start, end), in deterministic fetch order.
	GetTransactionsInWindow(ctx context.Context, start, end time.Time) ([]*models.Transaction, error)

	// MarkEventProcessed records a provider event id as processed and reports
	// whether this was its first delivery.
	MarkEventProcessed(ctx context.Context, eventID string) (bool, error)

	// UnmarkEventProcessed removes a processed-event marker so a retried
	// delivery is processed again after a failed insert.
	UnmarkEventProcessed(ctx context.Context, eventID string) error
}

// ReportRepo persists reconciliation reports: append plus the single later
// write of the explanation.
type ReportRepo interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	UpdateExplanation(ctx context.Context, id uuid.UUID, explanation string) error
}
