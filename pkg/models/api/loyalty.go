package api

import "github.com/transit-tools/station-insights/pkg/models/domain"

type LoyaltySegment struct {
	Segment    string  `json:"segment"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	MinFreq    int     `json:"min_freq"`
	MaxFreq    int     `json:"max_freq"`
}

type OccupationLoyalty struct {
	Occupation   string  `json:"occupation"`
	AvgFrequency float64 `json:"avg_frequency"`
	Count        int     `json:"count"`
}

type LoyaltySummary struct {
	HighLoyaltyCount           int     `json:"high_loyalty_count"`
	HighLoyaltyPercentage      float64 `json:"high_loyalty_percentage"`
	LoyalWorkersCount          int     `json:"loyal_workers_count"`
	LoyalWorkersPercentage     float64 `json:"loyal_workers_percentage"`
	MostLoyalOccupation        string  `json:"most_loyal_occupation"`
	MostLoyalOccupationAvgFreq float64 `json:"most_loyal_occupation_avg_freq"`
}

type LoyaltyReport struct {
	Date                string              `json:"date"`
	TotalPassengers     int                 `json:"total_passengers"`
	LoyaltySegments     []LoyaltySegment    `json:"loyalty_segments"`
	LoyaltyByOccupation []OccupationLoyalty `json:"loyalty_by_occupation"`
	Summary             LoyaltySummary      `json:"summary"`
}

func NewLoyaltyReport(r domain.LoyaltyReport) LoyaltyReport {
	segments := make([]LoyaltySegment, 0, len(r.LoyaltySegments))
	for _, s := range r.LoyaltySegments {
		segments = append(segments, LoyaltySegment{
			Segment: s.Segment, Count: s.Count, Percentage: s.Percentage,
			MinFreq: s.MinFreq, MaxFreq: s.MaxFreq,
		})
	}
	byOccupation := make([]OccupationLoyalty, 0, len(r.LoyaltyByOccupation))
	for _, o := range r.LoyaltyByOccupation {
		byOccupation = append(byOccupation, OccupationLoyalty{
			Occupation: o.Occupation, AvgFrequency: o.AvgFrequency, Count: o.Count,
		})
	}
	return LoyaltyReport{
		Date:                r.Date,
		TotalPassengers:     r.TotalPassengers,
		LoyaltySegments:     segments,
		LoyaltyByOccupation: byOccupation,
		Summary: LoyaltySummary{
			HighLoyaltyCount:           r.Summary.HighLoyaltyCount,
			HighLoyaltyPercentage:      r.Summary.HighLoyaltyPercentage,
			LoyalWorkersCount:          r.Summary.LoyalWorkersCount,
			LoyalWorkersPercentage:     r.Summary.LoyalWorkersPercentage,
			MostLoyalOccupation:        r.Summary.MostLoyalOccupation,
			MostLoyalOccupationAvgFreq: r.Summary.MostLoyalOccupationAvgFreq,
		},
	}
}
