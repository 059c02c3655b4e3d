package api

import "github.com/transit-tools/station-insights/pkg/models/domain"

type DirectionDistribution struct {
	Direction  string  `json:"direction"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TimeSegmentDistribution struct {
	TimeSegment string  `json:"time_segment"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type TripSummary struct {
	TopOriginStation       string  `json:"top_origin_station"`
	TopOriginCount         int     `json:"top_origin_count"`
	TopOriginPercentage    float64 `json:"top_origin_percentage"`
	DominantDirection      string  `json:"dominant_direction"`
	DominantTimeSegment    string  `json:"dominant_time_segment"`
	DominantTimePercentage float64 `json:"dominant_time_percentage"`
}

type TripReport struct {
	Date                   string                    `json:"date"`
	TotalTransactions      int                       `json:"total_transactions"`
	OriginDistribution     []StationDistribution     `json:"origin_distribution"`
	DirectionDistribution  []DirectionDistribution   `json:"direction_distribution"`
	TimeTravelDistribution []TimeSegmentDistribution `json:"time_travel_distribution"`
	Summary                TripSummary               `json:"summary"`
}

func NewTripReport(r domain.TripReport) TripReport {
	directions := make([]DirectionDistribution, 0, len(r.DirectionDistribution))
	for _, d := range r.DirectionDistribution {
		directions = append(directions, DirectionDistribution{Direction: d.Direction, Count: d.Count, Percentage: d.Percentage})
	}
	segments := make([]TimeSegmentDistribution, 0, len(r.TimeTravelDistribution))
	for _, s := range r.TimeTravelDistribution {
		segments = append(segments, TimeSegmentDistribution{TimeSegment: s.TimeSegment, Count: s.Count, Percentage: s.Percentage})
	}
	return TripReport{
		Date:                   r.Date,
		TotalTransactions:      r.TotalTransactions,
		OriginDistribution:     newStationDistributions(r.OriginDistribution),
		DirectionDistribution:  directions,
		TimeTravelDistribution: segments,
		Summary: TripSummary{
			TopOriginStation:       r.Summary.TopOriginStation,
			TopOriginCount:         r.Summary.TopOriginCount,
			TopOriginPercentage:    r.Summary.TopOriginPercentage,
			DominantDirection:      r.Summary.DominantDirection,
			DominantTimeSegment:    r.Summary.DominantTimeSegment,
			DominantTimePercentage: r.Summary.DominantTimePercentage,
		},
	}
}
