package models

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEventPaymentSucceeded is the only provider event type that results
// in a stored transaction; every other type is acknowledged without storing.
const ProviderEventPaymentSucceeded = "payment_intent.succeeded"

// ProviderEvent is the provider-specific webhook payload. Signature
// verification happens in front of this service and is not modeled here.
type ProviderEvent struct {
	ID   string            `json:"id"`
	Type string            `json:"type"`
	Data ProviderEventData `json:"data"`
}

// ProviderEventData wraps the event payload object
type ProviderEventData struct {
	Object ProviderPayment `json:"object"`
}

// ProviderPayment is the payment object carried by a provider event.
// Amount is in integer minor units.
type ProviderPayment struct {
	ID       string                 `json:"id"`
	Amount   int64                  `json:"amount"`
	Currency string                 `json:"currency"`
	Status   string                 `json:"status,omitempty"`
	Customer string                 `json:"customer,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// LocalTransactionEvent is the ERP-side ingestion payload consumed from NSQ.
// Link, when present, references a provider transaction's external id.
type LocalTransactionEvent struct {
	ExternalID string                 `json:"external_id"`
	Amount     int64                  `json:"amount"`
	Currency   string                 `json:"currency"`
	Status     string                 `json:"status,omitempty"`
	CustomerID string                 `json:"customer_id,omitempty"`
	Link       string                 `json:"link,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// ReconciliationCompletedEvent is published after a report has been persisted
type ReconciliationCompletedEvent struct {
	ReportID          uuid.UUID `json:"report_id"`
	WindowStart       time.Time `json:"window_start"`
	WindowEnd         time.Time `json:"window_end"`
	TotalTransactions int       `json:"total_transactions"`
	Mismatches        int       `json:"mismatches"`
	Timestamp         time.Time `json:"timestamp"`
}

// DemoSeedResult reports what the demo trigger inserted
type DemoSeedResult struct {
	ProviderExternalID string `json:"provider_external_id"`
	LocalRecorded      bool   `json:"local_recorded"`
}
