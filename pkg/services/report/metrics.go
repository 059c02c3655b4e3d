package report

import (
	"math"

	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// percentOf converts a count into a percentage of total, rounded to the given
// number of decimals. A zero total yields 0 so callers never divide by zero.
func percentOf(count, total, decimals int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(float64(count)/float64(total)*100, decimals)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// weightedAvgFrequency is the count-weighted mean loyalty frequency across
// the given age buckets.
func weightedAvgFrequency(buckets []domain.AgeLoyaltyCorrelation) float64 {
	var weighted float64
	var count int
	for _, b := range buckets {
		weighted += b.AvgLoyaltyFrequency * float64(b.Count)
		count += b.Count
	}
	if count == 0 {
		return 0
	}
	return weighted / float64(count)
}
