package report

import (
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// TripSegmentation generates one day of journey segmentation. The transaction
// total is re-rolled independently of the operational report. The IN/OUT
// split is an exact partition of the total; the time-of-day segments are
// drawn from their own bases and only approximate it.
func (g *Generator) TripSegmentation(date string) domain.TripReport {
	totalTransactions := g.rnd.UniformInt(4000, 6000)

	origins := make([]domain.StationDistribution, 0, len(originStations))
	for _, b := range originStations {
		count := g.rnd.Jitter(g.rnd.UniformInt(b.low, b.high), 0.2)
		origins = append(origins, domain.StationDistribution{
			Station:    b.label,
			Count:      count,
			Percentage: percentOf(count, totalTransactions, 1),
		})
	}

	in := g.rnd.Jitter(int(float64(totalTransactions)*0.51), 0.03)
	out := totalTransactions - in
	directions := []domain.DirectionDistribution{
		{Direction: "IN", Count: in, Percentage: percentOf(in, totalTransactions, 1)},
		{Direction: "OUT", Count: out, Percentage: percentOf(out, totalTransactions, 1)},
	}

	morning := g.rnd.Jitter(g.rnd.UniformInt(1200, 1800), 0.15)
	evening := g.rnd.Jitter(g.rnd.UniformInt(1200, 1800), 0.15)
	offPeak := g.rnd.Jitter(g.rnd.UniformInt(600, 1000), 0.2)
	segments := []domain.TimeSegmentDistribution{
		{TimeSegment: "Morning (07:00-09:00)", Count: morning, Percentage: percentOf(morning, totalTransactions, 1)},
		{TimeSegment: "Evening (16:00-19:00)", Count: evening, Percentage: percentOf(evening, totalTransactions, 1)},
		{TimeSegment: "Off-Peak", Count: offPeak, Percentage: percentOf(offPeak, totalTransactions, 1)},
	}

	topOrigin := origins[0]
	for _, o := range origins[1:] {
		if o.Count > topOrigin.Count {
			topOrigin = o
		}
	}
	dominantDirection := directions[0]
	for _, d := range directions[1:] {
		if d.Count > dominantDirection.Count {
			dominantDirection = d
		}
	}
	dominantSegment := segments[0]
	for _, s := range segments[1:] {
		if s.Count > dominantSegment.Count {
			dominantSegment = s
		}
	}

	return domain.TripReport{
		Date:                   reportDate(date),
		TotalTransactions:      totalTransactions,
		OriginDistribution:     origins,
		DirectionDistribution:  directions,
		TimeTravelDistribution: segments,
		Summary: domain.TripSummary{
			TopOriginStation:       topOrigin.Station,
			TopOriginCount:         topOrigin.Count,
			TopOriginPercentage:    topOrigin.Percentage,
			DominantDirection:      dominantDirection.Direction,
			DominantTimeSegment:    dominantSegment.TimeSegment,
			DominantTimePercentage: dominantSegment.Percentage,
		},
	}
}
