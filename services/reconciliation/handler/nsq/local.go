// Package nsq consumes the local/ERP transaction feed. It is the
// source=local counterpart of the provider webhook: structurally the same
// normalization path, different transport.
package nsq

import (
	"context"

	"github.com/concily/reconciliation/internal/pkg/logger"
	"github.com/concily/reconciliation/internal/pkg/models"
	nsqpkg "github.com/concily/reconciliation/internal/pkg/nsq"
	"github.com/concily/reconciliation/pkg/errors"
	"github.com/concily/reconciliation/services/reconciliation"
)

// LocalTransactionHandler consumes ERP transaction events from NSQ
type LocalTransactionHandler struct {
	uc  reconciliation.ReconciliationUseCase
	log *logger.AppLogger
}

// NewLocalTransactionHandler creates a new local transaction consumer handler
func NewLocalTransactionHandler(uc reconciliation.ReconciliationUseCase, log *logger.AppLogger) *LocalTransactionHandler {
	return &LocalTransactionHandler{
		uc:  uc,
		log: log,
	}
}

// HandleMessage processes one local transaction event. Malformed events are
// logged and dropped; store failures are returned so NSQ requeues the
// message, because a dropped local record shows up as a false mismatch.
func (h *LocalTransactionHandler) HandleMessage(message []byte) error {
	var event models.LocalTransactionEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		h.log.WithError(err).Warn("dropping malformed local transaction event")
		return nil
	}

	tx, err := h.uc.IngestLocalTransaction(context.Background(), &event)
	if err != nil {
		if errors.Is(err, errors.KindValidation) {
			h.log.WithField("external_id", event.ExternalID).WithError(err).Warn("dropping invalid local transaction event")
			return nil
		}
		return err
	}

	h.log.WithField("transaction_id", tx.ID).Debug("local transaction recorded")
	return nil
}
