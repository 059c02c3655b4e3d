package api

import "github.com/transit-tools/station-insights/pkg/models/domain"

type HourlyTraffic struct {
	Hour   int    `json:"hour"`
	Count  int    `json:"count"`
	Period string `json:"period"`
}

type GateUtilization struct {
	GateID          string  `json:"gate_id"`
	Zone            string  `json:"zone"`
	Count           int     `json:"count"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type ZoneTraffic struct {
	Zone       string  `json:"zone"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DirectionBalance struct {
	Zone       string  `json:"zone"`
	Direction  string  `json:"direction"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type OperationalSummary struct {
	MorningPeakTransactions int     `json:"morning_peak_transactions"`
	MorningPeakPercentage   float64 `json:"morning_peak_percentage"`
	EveningPeakTransactions int     `json:"evening_peak_transactions"`
	EveningPeakPercentage   float64 `json:"evening_peak_percentage"`
	AvgGateUtilizationRate  float64 `json:"avg_gate_utilization_rate"`
	BusiestGate             string  `json:"busiest_gate"`
	BusiestZone             string  `json:"busiest_zone"`
}

type OperationalReport struct {
	Date              string             `json:"date"`
	TotalTransactions int                `json:"total_transactions"`
	TrafficPerHour    []HourlyTraffic    `json:"traffic_per_hour"`
	GateUtilization   []GateUtilization  `json:"gate_utilization"`
	TrafficByZone     []ZoneTraffic      `json:"traffic_by_zone"`
	BalanceDirection  []DirectionBalance `json:"balance_direction"`
	Summary           OperationalSummary `json:"summary"`
}

func NewOperationalReport(r domain.OperationalReport) OperationalReport {
	traffic := make([]HourlyTraffic, 0, len(r.TrafficPerHour))
	for _, h := range r.TrafficPerHour {
		traffic = append(traffic, HourlyTraffic{Hour: h.Hour, Count: h.Count, Period: h.Period})
	}
	gates := make([]GateUtilization, 0, len(r.GateUtilization))
	for _, g := range r.GateUtilization {
		gates = append(gates, GateUtilization{
			GateID: g.GateID, Zone: g.Zone, Count: g.Count, UtilizationRate: g.UtilizationRate,
		})
	}
	byZone := make([]ZoneTraffic, 0, len(r.TrafficByZone))
	for _, z := range r.TrafficByZone {
		byZone = append(byZone, ZoneTraffic{Zone: z.Zone, Count: z.Count, Percentage: z.Percentage})
	}
	balance := make([]DirectionBalance, 0, len(r.BalanceDirection))
	for _, b := range r.BalanceDirection {
		balance = append(balance, DirectionBalance{
			Zone: b.Zone, Direction: b.Direction, Count: b.Count, Percentage: b.Percentage,
		})
	}
	return OperationalReport{
		Date:              r.Date,
		TotalTransactions: r.TotalTransactions,
		TrafficPerHour:    traffic,
		GateUtilization:   gates,
		TrafficByZone:     byZone,
		BalanceDirection:  balance,
		Summary: OperationalSummary{
			MorningPeakTransactions: r.Summary.MorningPeakTransactions,
			MorningPeakPercentage:   r.Summary.MorningPeakPercentage,
			EveningPeakTransactions: r.Summary.EveningPeakTransactions,
			EveningPeakPercentage:   r.Summary.EveningPeakPercentage,
			AvgGateUtilizationRate:  r.Summary.AvgGateUtilizationRate,
			BusiestGate:             r.Summary.BusiestGate,
			BusiestZone:             r.Summary.BusiestZone,
		},
	}
}
