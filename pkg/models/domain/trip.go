package domain

type DirectionDistribution struct {
	Direction  string
	Count      int
	Percentage float64
}

type TimeSegmentDistribution struct {
	TimeSegment string
	Count       int
	Percentage  float64
}

type TripSummary struct {
	TopOriginStation       string
	TopOriginCount         int
	TopOriginPercentage    float64
	DominantDirection      string
	DominantTimeSegment    string
	DominantTimePercentage float64
}

// TripReport segments one day's journeys by origin station, direction and
// time of day. The IN/OUT split is an exact partition of TotalTransactions;
// the time segments are drawn independently.
type TripReport struct {
	Date                   string
	TotalTransactions      int
	OriginDistribution     []StationDistribution
	DirectionDistribution  []DirectionDistribution
	TimeTravelDistribution []TimeSegmentDistribution
	Summary                TripSummary
}
