package interfaces

// IPortalMetrics records business counters and the dashboard aggregates.
type IPortalMetrics interface {
	OrderPlaced()
	OrderPlacementFailed()
	StatusWriteFailed()
	CartRestoreCorrupted()
	SetDashboard(pendingCount int, bookedRevenue float64)
}
