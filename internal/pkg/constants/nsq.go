package constants

// NSQ topics used by the reconciliation service
const (
	// TopicLocalTransactions carries ERP/local-side transaction events into
	// the normalization path.
	TopicLocalTransactions = "transactions.local"

	// TopicReconciliationCompleted announces a persisted reconciliation report.
	TopicReconciliationCompleted = "reconciliation.completed"
)
