package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeWindow is a half-open [Start, End) range of transaction timestamps
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks that the window is well-formed
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("window start and end are required")
	}
	if !w.Start.Before(w.End) {
		return fmt.Errorf("window start %s must be before end %s",
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t falls inside the half-open window
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DailyWindow returns the default reconciliation window: the calendar day of
// now in its location, from midnight up to now.
func DailyWindow(now time.Time) TimeWindow {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return TimeWindow{Start: midnight, End: now}
}

// ReportSummary is the structured breakdown of one reconciliation run.
// Ordering of the mismatch slices reflects input order, not significance.
type ReportSummary struct {
	MatchedCount      int      `json:"matched_count"`
	MismatchedIDs     []string `json:"mismatched_ids"`
	MismatchedDetails []string `json:"mismatched_details"`
}

// Value implements driver.Valuer for jsonb columns
func (s ReportSummary) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb columns
func (s *ReportSummary) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported summary type %T", src)
	}
}

// Report is the persisted result of one reconciliation run. It is immutable
// except for the single later write of AIExplanation, and is retained as an
// audit record.
type Report struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	WindowStart       time.Time     `json:"window_start" db:"window_start"`
	WindowEnd         time.Time     `json:"window_end" db:"window_end"`
	TotalTransactions int           `json:"total_transactions" db:"total_transactions"`
	Mismatches        int           `json:"mismatches" db:"mismatches"`
	Summary           ReportSummary `json:"summary" db:"summary"`
	AIExplanation     *string       `json:"ai_explanation,omitempty" db:"ai_explanation"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}
