package report

import (
	"fmt"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// Service day runs 06:00 through 22:00 inclusive.
const (
	firstHour = 6
	lastHour  = 22
)

var zones = []string{"North", "West"}

func isMorningPeak(hour int) bool { return hour >= 7 && hour <= 9 }
func isEveningPeak(hour int) bool { return hour >= 16 && hour <= 19 }

// OperationalEfficiency generates one day of gate traffic: hourly volumes,
// per-gate utilization against the day's transaction total, zone aggregates
// summed from the gates, and an IN/OUT balance per zone where OUT is the
// exact complement of the drawn IN share.
func (g *Generator) OperationalEfficiency(date string) domain.OperationalReport {
	totalTransactions := g.rnd.UniformInt(4000, 6000)

	traffic := make([]domain.HourlyTraffic, 0, lastHour-firstHour+1)
	for hour := firstHour; hour <= lastHour; hour++ {
		var base int
		var period string
		switch {
		case isMorningPeak(hour):
			base = g.rnd.UniformInt(400, 600)
			period = "Morning Peak"
		case isEveningPeak(hour):
			base = g.rnd.UniformInt(400, 600)
			period = "Evening Peak"
		default:
			base = g.rnd.UniformInt(50, 200)
		}
		traffic = append(traffic, domain.HourlyTraffic{
			Hour:   hour,
			Count:  g.rnd.Jitter(base, 0.15),
			Period: period,
		})
	}

	gates := make([]domain.GateUtilization, 0, 4*len(zones))
	for _, zone := range zones {
		for i := 1; i <= 4; i++ {
			var base int
			if zone == "North" {
				base = g.rnd.UniformInt(450, 650)
			} else {
				base = g.rnd.UniformInt(400, 600)
			}
			count := g.rnd.Jitter(base, 0.2)
			gates = append(gates, domain.GateUtilization{
				GateID:          fmt.Sprintf("TAP-%s-00%d", strings.ToUpper(zone), i),
				Zone:            zone,
				Count:           count,
				UtilizationRate: percentOf(count, totalTransactions, 2),
			})
		}
	}

	byZone := make([]domain.ZoneTraffic, 0, len(zones))
	for _, zone := range zones {
		var count int
		for _, gate := range gates {
			if gate.Zone == zone {
				count += gate.Count
			}
		}
		byZone = append(byZone, domain.ZoneTraffic{
			Zone:       "TAP-" + strings.ToUpper(zone),
			Count:      count,
			Percentage: percentOf(count, totalTransactions, 1),
		})
	}

	balance := make([]domain.DirectionBalance, 0, 2*len(byZone))
	for _, zt := range byZone {
		zone := strings.TrimPrefix(zt.Zone, "TAP-")
		in := int(float64(zt.Count) * g.rnd.UniformFloat(0.45, 0.55))
		out := zt.Count - in
		balance = append(balance,
			domain.DirectionBalance{Zone: zone, Direction: "IN", Count: in, Percentage: percentOf(in, zt.Count, 1)},
			domain.DirectionBalance{Zone: zone, Direction: "OUT", Count: out, Percentage: percentOf(out, zt.Count, 1)},
		)
	}

	var morning, evening int
	for _, h := range traffic {
		switch {
		case isMorningPeak(h.Hour):
			morning += h.Count
		case isEveningPeak(h.Hour):
			evening += h.Count
		}
	}

	var utilSum float64
	busiestGate := gates[0]
	for _, gate := range gates {
		utilSum += gate.UtilizationRate
		if gate.Count > busiestGate.Count {
			busiestGate = gate
		}
	}
	busiestZone := byZone[0]
	for _, zt := range byZone[1:] {
		if zt.Count > busiestZone.Count {
			busiestZone = zt
		}
	}

	return domain.OperationalReport{
		Date:              reportDate(date),
		TotalTransactions: totalTransactions,
		TrafficPerHour:    traffic,
		GateUtilization:   gates,
		TrafficByZone:     byZone,
		BalanceDirection:  balance,
		Summary: domain.OperationalSummary{
			MorningPeakTransactions: morning,
			MorningPeakPercentage:   percentOf(morning, totalTransactions, 1),
			EveningPeakTransactions: evening,
			EveningPeakPercentage:   percentOf(evening, totalTransactions, 1),
			AvgGateUtilizationRate:  roundTo(utilSum/float64(len(gates)), 2),
			BusiestGate:             busiestGate.GateID,
			BusiestZone:             busiestZone.Zone,
		},
	}
}
