package gateway

import (
	"context"

	"github.com/concily/reconciliation/internal/pkg/constants"
	"github.com/concily/reconciliation/internal/pkg/models"
	nsqpkg "github.com/concily/reconciliation/internal/pkg/nsq"
	"github.com/concily/reconciliation/services/reconciliation"
)

// ReconciliationGW publishes reconciliation events over NSQ
type ReconciliationGW struct {
	producer *nsqpkg.Producer
}

// NewReconciliationGW creates a new reconciliation gateway
func NewReconciliationGW(producer *nsqpkg.Producer) reconciliation.ReconciliationGW {
	return &ReconciliationGW{producer: producer}
}

// PublishReconciliationCompleted announces a persisted report
func (g *ReconciliationGW) PublishReconciliationCompleted(_ context.Context, event models.ReconciliationCompletedEvent) error {
	return g.producer.Publish(constants.TopicReconciliationCompleted, event)
}
