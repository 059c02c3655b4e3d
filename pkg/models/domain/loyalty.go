package domain

// LoyaltySegment buckets passengers by weekly visit frequency. Percentage is
// relative to the sum of the segment counts, not TotalPassengers.
type LoyaltySegment struct {
	Segment    string
	Count      int
	Percentage float64
	MinFreq    int
	MaxFreq    int
}

type OccupationLoyalty struct {
	Occupation   string
	AvgFrequency float64
	Count        int
}

type LoyaltySummary struct {
	HighLoyaltyCount           int
	HighLoyaltyPercentage      float64
	LoyalWorkersCount          int
	LoyalWorkersPercentage     float64
	MostLoyalOccupation        string
	MostLoyalOccupationAvgFreq float64
}

type LoyaltyReport struct {
	Date                string
	TotalPassengers     int
	LoyaltySegments     []LoyaltySegment
	LoyaltyByOccupation []OccupationLoyalty
	Summary             LoyaltySummary
}
