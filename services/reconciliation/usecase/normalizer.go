package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/pkg/errors"
)

// IngestProviderEvent converts a provider payment event into the canonical
// transaction shape and stores it. Only the recognized payment-succeeded
// event type produces a transaction; everything else is acknowledged without
// storing. A failure here is surfaced to the caller: a dropped provider event
// becomes an unrecoverable reconciliation mismatch.
func (uc *ReconciliationUC) IngestProviderEvent(ctx context.Context, event *models.ProviderEvent) (*models.Transaction, bool, error) {
	if event == nil {
		return nil, false, errors.Validationf("event payload is required")
	}

	if event.Type != models.ProviderEventPaymentSucceeded {
		uc.log.WithField("event_type", event.Type).Debug("acknowledged provider event without storing")
		return nil, false, nil
	}

	payment := event.Data.Object
	if err := validatePayment(payment.ID, payment.Amount, payment.Currency); err != nil {
		return nil, false, err
	}

	// Redelivered webhooks are absorbed here rather than surfacing the store's
	// uniqueness violation to the provider.
	if event.ID != "" {
		first, err := uc.transactionRepo.MarkEventProcessed(ctx, event.ID)
		if err != nil {
			return nil, false, err
		}
		if !first {
			uc.log.WithField("event_id", event.ID).Info("duplicate provider event acknowledged")
			return nil, false, nil
		}
	}

	tx := &models.Transaction{
		Source:     models.SourceProvider,
		ExternalID: payment.ID,
		Amount:     payment.Amount,
		Currency:   strings.ToUpper(payment.Currency),
		Status:     models.StatusSucceeded,
		CustomerID: payment.Customer,
		CreatedAt:  time.Now(),
		Metadata:   payment.Metadata,
	}

	if err := uc.transactionRepo.CreateTransaction(ctx, tx); err != nil {
		// A uniqueness violation means another delivery already stored this
		// payment; acknowledge it as a duplicate.
		if errors.Is(err, errors.KindValidation) {
			uc.log.WithField("external_id", payment.ID).Info("transaction already recorded, acknowledging")
			return nil, false, nil
		}
		// The marker must not outlive a failed insert, or the provider's
		// retry would be absorbed without the payment ever being stored.
		if event.ID != "" {
			if unmarkErr := uc.transactionRepo.UnmarkEventProcessed(ctx, event.ID); unmarkErr != nil {
				uc.log.WithField("event_id", event.ID).WithError(unmarkErr).Error("failed to unmark event after insert failure")
			}
		}
		return nil, false, err
	}

	return tx, true, nil
}

// IngestLocalTransaction is the ERP-side normalization path, structurally
// identical to the provider path but with source=local and an optional link
// back to a provider external id.
func (uc *ReconciliationUC) IngestLocalTransaction(ctx context.Context, event *models.LocalTransactionEvent) (*models.Transaction, error) {
	if event == nil {
		return nil, errors.Validationf("event payload is required")
	}

	if err := validatePayment(event.ExternalID, event.Amount, event.Currency); err != nil {
		return nil, err
	}

	metadata := models.Metadata{}
	for key, value := range event.Metadata {
		metadata[key] = value
	}
	if event.Link != "" {
		metadata[models.MetadataKeyLink] = event.Link
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	tx := &models.Transaction{
		Source:     models.SourceLocal,
		ExternalID: event.ExternalID,
		Amount:     event.Amount,
		Currency:   strings.ToUpper(event.Currency),
		Status:     deriveStatus(event.Status),
		CustomerID: event.CustomerID,
		CreatedAt:  time.Now(),
		Metadata:   metadata,
	}

	if err := uc.transactionRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func validatePayment(externalID string, amount int64, currency string) error {
	if strings.TrimSpace(externalID) == "" {
		return errors.Validationf("external id is required")
	}
	if amount <= 0 {
		return errors.Validationf("amount must be a positive minor-unit value, got %d", amount)
	}
	if !isCurrencyCode(currency) {
		return errors.Validationf("currency %q is not a valid ISO-4217 code", currency)
	}
	return nil
}

func isCurrencyCode(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func deriveStatus(status string) models.TransactionStatus {
	switch strings.ToLower(status) {
	case "", "succeeded", "completed", "settled":
		return models.StatusSucceeded
	case "pending", "processing":
		return models.StatusPending
	default:
		return models.StatusFailed
	}
}
