package domain

// DashboardSummary cherry-picks headline figures from the five category
// reports for quick display. It is pure composition: no field is computed
// from anything but the reports it accompanies.
type DashboardSummary struct {
	TotalTransactions        int
	TotalUniquePassengers    int
	HighLoyaltyPercentage    float64
	BusiestGate              string
	MorningPeakPercentage    float64
	EveningPeakPercentage    float64
	AverageAge               float64
	DominantOriginStation    string
	DominantOriginPercentage float64
}

// CompositeReport bundles the five category reports for one date. The
// transaction and passenger totals of the individual reports are drawn
// independently and are intentionally never reconciled.
type CompositeReport struct {
	Date         string
	Operational  OperationalReport
	Demographics DemographicsReport
	Trips        TripReport
	Loyalty      LoyaltyReport
	Behavior     BehaviorReport
	Dashboard    DashboardSummary
}
