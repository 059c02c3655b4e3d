package domain

type AgeDistribution struct {
	AgeRange   string
	Count      int
	Percentage float64
}

type OccupationDistribution struct {
	Occupation string
	Count      int
	Percentage float64
}

type GenderDistribution struct {
	Gender     string
	Count      int
	Percentage float64
}

type StationDistribution struct {
	Station    string
	Count      int
	Percentage float64
}

type DemographicsSummary struct {
	AverageAge              float64
	ProductiveAgePassengers int
	ProductiveAgePercentage float64
	WorkerPassengers        int
	WorkerPercentage        float64
	DominantOriginStation   string
}

// DemographicsReport profiles the passenger population for one day. Gender is
// an exact partition of TotalPassengers; the age, occupation and origin
// groups are drawn independently and only approximate it.
type DemographicsReport struct {
	Date                      string
	TotalPassengers           int
	AgeDistribution           []AgeDistribution
	OccupationDistribution    []OccupationDistribution
	GenderDistribution        []GenderDistribution
	OriginStationDistribution []StationDistribution
	Summary                   DemographicsSummary
}
