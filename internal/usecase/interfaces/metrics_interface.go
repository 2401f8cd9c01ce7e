package interfaces

// IReconciliationMetrics records workflow outcomes.
type IReconciliationMetrics interface {
	ObserveReconciliation(operation, outcome string)
	IncOrphanedRemoteUser()
}
