package report

import (
	"time"

	"github.com/transit-tools/station-insights/pkg/models/domain"
	"github.com/transit-tools/station-insights/pkg/services/variate"
)

// Generator produces the synthetic category reports. All randomness flows
// through the injected variate.Provider.
type Generator struct {
	rnd variate.Provider
}

func NewGenerator(rnd variate.Provider) *Generator {
	return &Generator{rnd: rnd}
}

// reportDate returns the caller-supplied date unchanged, or today's date when
// empty. The value is an opaque label and is never parsed.
func reportDate(date string) string {
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}

// AllData runs every category generator for the same date and composes the
// dashboard view from fields the reports already carry. No new randomization
// happens here.
func (g *Generator) AllData(date string) domain.CompositeReport {
	target := reportDate(date)

	operational := g.OperationalEfficiency(target)
	demographics := g.Demographics(target)
	trips := g.TripSegmentation(target)
	loyalty := g.LoyaltySegmentation(target)
	behavior := g.BehaviorCorrelation(target)

	return domain.CompositeReport{
		Date:         target,
		Operational:  operational,
		Demographics: demographics,
		Trips:        trips,
		Loyalty:      loyalty,
		Behavior:     behavior,
		Dashboard: domain.DashboardSummary{
			TotalTransactions:        operational.TotalTransactions,
			TotalUniquePassengers:    demographics.TotalPassengers,
			HighLoyaltyPercentage:    loyalty.Summary.HighLoyaltyPercentage,
			BusiestGate:              operational.Summary.BusiestGate,
			MorningPeakPercentage:    operational.Summary.MorningPeakPercentage,
			EveningPeakPercentage:    operational.Summary.EveningPeakPercentage,
			AverageAge:               demographics.Summary.AverageAge,
			DominantOriginStation:    trips.Summary.TopOriginStation,
			DominantOriginPercentage: trips.Summary.TopOriginPercentage,
		},
	}
}
