package constants

import "time"

// Redis key prefixes and expirations
const (
	// KeyProviderEventPrefix marks provider webhook events that have already
	// been normalized, so redelivered webhooks are absorbed.
	KeyProviderEventPrefix = "reconciliation:provider-event:"

	// KeyReportPrefix caches persisted reports by id for the read path.
	KeyReportPrefix = "reconciliation:report:"

	// ProviderEventTTL bounds how long processed-event markers are kept.
	ProviderEventTTL = 72 * time.Hour

	// ReportCacheTTL bounds how long report rows are cached.
	ReportCacheTTL = 24 * time.Hour
)
