package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionSource identifies which feed produced a transaction record
type TransactionSource string

const (
	// SourceProvider marks transactions from the external payment provider feed
	SourceProvider TransactionSource = "provider"
	// SourceLocal marks transactions from the local/ERP feed
	SourceLocal TransactionSource = "local"
)

// IsValid checks if the transaction source is valid
func (s TransactionSource) IsValid() bool {
	return s == SourceProvider || s == SourceLocal
}

// TransactionStatus represents the outcome of a payment
type TransactionStatus string

const (
	StatusSucceeded TransactionStatus = "succeeded"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// MetadataKeyLink is the metadata field carrying the cross-reference to a
// provider transaction's external id.
const MetadataKeyLink = "link"

// Metadata is an open mapping for source-specific extension fields,
// stored as jsonb.
type Metadata map[string]interface{}

// Value implements driver.Valuer for jsonb columns
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb columns
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
}

// Transaction represents a single payment event as seen by one source.
// Rows are immutable after insert; reconciliation never mutates them.
type Transaction struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	Source     TransactionSource `json:"source" db:"source"`
	ExternalID string            `json:"external_id" db:"external_id"`
	Amount     int64             `json:"amount" db:"amount"`
	Currency   string            `json:"currency" db:"currency"`
	Status     TransactionStatus `json:"status" db:"status"`
	CustomerID string            `json:"customer_id,omitempty" db:"customer_id"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	Metadata   Metadata          `json:"metadata,omitempty" db:"metadata"`
}

// Link returns the cross-reference to a provider external id supplied by the
// originating system, or "" when absent.
func (t *Transaction) Link() string {
	if t.Metadata == nil {
		return ""
	}
	if link, ok := t.Metadata[MetadataKeyLink].(string); ok {
		return link
	}
	return ""
}

// IsSucceeded reports whether the transaction participates in matching
func (t *Transaction) IsSucceeded() bool {
	return t.Status == StatusSucceeded
}
