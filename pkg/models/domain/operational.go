package domain

// HourlyTraffic is the transaction count for one hour of the service day.
// Period labels the peak window the hour falls into; off-peak hours carry an
// empty label.
type HourlyTraffic struct {
	Hour   int
	Count  int
	Period string
}

type GateUtilization struct {
	GateID          string
	Zone            string
	Count           int
	UtilizationRate float64
}

type ZoneTraffic struct {
	Zone       string
	Count      int
	Percentage float64
}

type DirectionBalance struct {
	Zone       string
	Direction  string
	Count      int
	Percentage float64
}

type OperationalSummary struct {
	MorningPeakTransactions int
	MorningPeakPercentage   float64
	EveningPeakTransactions int
	EveningPeakPercentage   float64
	AvgGateUtilizationRate  float64
	BusiestGate             string
	BusiestZone             string
}

// OperationalReport covers gate-level traffic for one day: hourly volumes,
// per-gate utilization, zone aggregates and the tap-in/tap-out balance per
// zone. Every summary field is derivable from the record groups above it.
type OperationalReport struct {
	Date              string
	TotalTransactions int
	TrafficPerHour    []HourlyTraffic
	GateUtilization   []GateUtilization
	TrafficByZone     []ZoneTraffic
	BalanceDirection  []DirectionBalance
	Summary           OperationalSummary
}
