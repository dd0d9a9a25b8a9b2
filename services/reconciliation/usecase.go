package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/concily/reconciliation/internal/pkg/models"
)

// ReconciliationUseCase defines the core operations of the service
type ReconciliationUseCase interface {
	// IngestProviderEvent normalizes a provider payment event into one stored
	// transaction. The returned bool reports whether a transaction was stored;
	// unrecognized event types and redelivered events are acknowledged
	// without storing.
	IngestProviderEvent(ctx context.Context, event *models.ProviderEvent) (*models.Transaction, bool, error)

	// IngestLocalTransaction normalizes an ERP/local-side transaction event
	IngestLocalTransaction(ctx context.Context, event *models.LocalTransactionEvent) (*models.Transaction, error)

	// Reconcile matches provider against local transactions inside the
	// half-open window and persists the resulting report.
	Reconcile(ctx context.Context, window models.TimeWindow) (*models.Report, error)

	// GetReport fetches a persisted report by id
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)

	// Explain generates the templated explanation for a report in the given
	// locale and persists it onto the report.
	Explain(ctx context.Context, id uuid.UUID, locale string) (string, error)

	// SeedDemo inserts a demo provider transaction and, most of the time, a
	// linked local counterpart.
	SeedDemo(ctx context.Context) (*models.DemoSeedResult, error)
}
