package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/concily/reconciliation/internal/pkg/models"
)

// SeedDemo inserts one demo provider transaction and, 90% of the time, a
// linked local counterpart, so a subsequent reconciliation run occasionally
// shows a discrepancy.
func (uc *ReconciliationUC) SeedDemo(ctx context.Context) (*models.DemoSeedResult, error) {
	providerID := fmt.Sprintf("pi_%s", uuid.New().String()[:8])

	event := &models.ProviderEvent{
		ID:   fmt.Sprintf("evt_%s", uuid.New().String()[:8]),
		Type: models.ProviderEventPaymentSucceeded,
		Data: models.ProviderEventData{
			Object: models.ProviderPayment{
				ID:       providerID,
				Amount:   1_000_000,
				Currency: "VND",
				Metadata: map[string]interface{}{"demo": true},
			},
		},
	}

	if _, _, err := uc.IngestProviderEvent(ctx, event); err != nil {
		return nil, err
	}

	result := &models.DemoSeedResult{ProviderExternalID: providerID}

	if rand.Float64() > 0.1 {
		local := &models.LocalTransactionEvent{
			ExternalID: fmt.Sprintf("erp_%s", providerID),
			Amount:     1_000_000,
			Currency:   "VND",
			Link:       providerID,
			Metadata:   map[string]interface{}{"demo": true},
		}
		if _, err := uc.IngestLocalTransaction(ctx, local); err != nil {
			return nil, err
		}
		result.LocalRecorded = true
	}

	return result, nil
}
