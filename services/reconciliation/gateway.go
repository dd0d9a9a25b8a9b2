package reconciliation

import (
	"context"

	"github.com/concily/reconciliation/internal/pkg/models"
)

// ReconciliationGW publishes reconciliation events to downstream consumers
type ReconciliationGW interface {
	PublishReconciliationCompleted(ctx context.Context, event models.ReconciliationCompletedEvent) error
}
