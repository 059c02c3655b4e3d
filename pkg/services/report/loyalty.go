package report

import (
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/domain"
)

type loyaltyTierBase struct {
	segment          string
	low, high        int
	variance         float64
	minFreq, maxFreq int
}

var loyaltyTiers = []loyaltyTierBase{
	{"High Loyalty (≥12x)", 1200, 1800, 0.15, 12, 14},
	{"Medium Loyalty (7-11x)", 1000, 1500, 0.15, 7, 11},
	{"Low Loyalty (<7x)", 800, 1200, 0.2, 1, 6},
}

type occupationLoyaltyBase struct {
	occupation          string
	freqLow, freqHigh   float64
	countLow, countHigh int
}

var occupationLoyaltyBases = []occupationLoyaltyBase{
	{"Karyawan Swasta", 8.0, 10.0, 1500, 2200},
	{"PNS/BUMN", 8.5, 10.5, 600, 900},
	{"Pelajar/Mahasiswa", 5.0, 7.0, 400, 700},
	{"Wiraswasta", 6.0, 8.0, 500, 800},
	{"Wisatawan", 2.0, 4.0, 100, 300},
}

// LoyaltySegmentation generates one day of loyalty-tier segmentation. Tier
// percentages are relative to the sum of the three tier counts, a locally
// consistent sub-total distinct from the passenger total.
func (g *Generator) LoyaltySegmentation(date string) domain.LoyaltyReport {
	totalPassengers := g.rnd.UniformInt(3500, 5000)

	segments := make([]domain.LoyaltySegment, 0, len(loyaltyTiers))
	for _, tier := range loyaltyTiers {
		segments = append(segments, domain.LoyaltySegment{
			Segment: tier.segment,
			Count:   g.rnd.Jitter(g.rnd.UniformInt(tier.low, tier.high), tier.variance),
			MinFreq: tier.minFreq,
			MaxFreq: tier.maxFreq,
		})
	}
	var tierTotal int
	for _, s := range segments {
		tierTotal += s.Count
	}
	for i := range segments {
		segments[i].Percentage = percentOf(segments[i].Count, tierTotal, 1)
	}

	byOccupation := make([]domain.OccupationLoyalty, 0, len(occupationLoyaltyBases))
	for _, b := range occupationLoyaltyBases {
		baseFreq := roundTo(g.rnd.UniformFloat(b.freqLow, b.freqHigh), 1)
		byOccupation = append(byOccupation, domain.OccupationLoyalty{
			Occupation:   b.occupation,
			AvgFrequency: roundTo(baseFreq+g.rnd.UniformFloat(-0.5, 0.5), 1),
			Count:        g.rnd.Jitter(g.rnd.UniformInt(b.countLow, b.countHigh), 0.1),
		})
	}

	var high domain.LoyaltySegment
	for _, s := range segments {
		if strings.Contains(s.Segment, "High") {
			high = s
			break
		}
	}
	var loyalWorkers int
	for _, o := range byOccupation {
		if workerOccupations[o.Occupation] {
			loyalWorkers += o.Count
		}
	}
	mostLoyal := byOccupation[0]
	for _, o := range byOccupation[1:] {
		if o.AvgFrequency > mostLoyal.AvgFrequency {
			mostLoyal = o
		}
	}

	return domain.LoyaltyReport{
		Date:                reportDate(date),
		TotalPassengers:     totalPassengers,
		LoyaltySegments:     segments,
		LoyaltyByOccupation: byOccupation,
		Summary: domain.LoyaltySummary{
			HighLoyaltyCount:           high.Count,
			HighLoyaltyPercentage:      high.Percentage,
			LoyalWorkersCount:          loyalWorkers,
			LoyalWorkersPercentage:     percentOf(loyalWorkers, totalPassengers, 1),
			MostLoyalOccupation:        mostLoyal.Occupation,
			MostLoyalOccupationAvgFreq: mostLoyal.AvgFrequency,
		},
	}
}
