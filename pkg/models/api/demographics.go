package api

import "github.com/transit-tools/station-insights/pkg/models/domain"

type AgeDistribution struct {
	AgeRange   string  `json:"age_range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type OccupationDistribution struct {
	Occupation string  `json:"occupation"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type GenderDistribution struct {
	Gender     string  `json:"gender"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StationDistribution struct {
	Station    string  `json:"station"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DemographicsSummary struct {
	AverageAge              float64 `json:"average_age"`
	ProductiveAgePassengers int     `json:"productive_age_passengers"`
	ProductiveAgePercentage float64 `json:"productive_age_percentage"`
	WorkerPassengers        int     `json:"worker_passengers"`
	WorkerPercentage        float64 `json:"worker_percentage"`
	DominantOriginStation   string  `json:"dominant_origin_station"`
}

type DemographicsReport struct {
	Date                      string                   `json:"date"`
	TotalPassengers           int                      `json:"total_passengers"`
	AgeDistribution           []AgeDistribution        `json:"age_distribution"`
	OccupationDistribution    []OccupationDistribution `json:"occupation_distribution"`
	GenderDistribution        []GenderDistribution     `json:"gender_distribution"`
	OriginStationDistribution []StationDistribution    `json:"origin_station_distribution"`
	Summary                   DemographicsSummary      `json:"summary"`
}

func newStationDistributions(in []domain.StationDistribution) []StationDistribution {
	out := make([]StationDistribution, 0, len(in))
	for _, s := range in {
		out = append(out, StationDistribution{Station: s.Station, Count: s.Count, Percentage: s.Percentage})
	}
	return out
}

func NewDemographicsReport(r domain.DemographicsReport) DemographicsReport {
	ages := make([]AgeDistribution, 0, len(r.AgeDistribution))
	for _, a := range r.AgeDistribution {
		ages = append(ages, AgeDistribution{AgeRange: a.AgeRange, Count: a.Count, Percentage: a.Percentage})
	}
	occs := make([]OccupationDistribution, 0, len(r.OccupationDistribution))
	for _, o := range r.OccupationDistribution {
		occs = append(occs, OccupationDistribution{Occupation: o.Occupation, Count: o.Count, Percentage: o.Percentage})
	}
	genders := make([]GenderDistribution, 0, len(r.GenderDistribution))
	for _, g := range r.GenderDistribution {
		genders = append(genders, GenderDistribution{Gender: g.Gender, Count: g.Count, Percentage: g.Percentage})
	}
	return DemographicsReport{
		Date:                      r.Date,
		TotalPassengers:           r.TotalPassengers,
		AgeDistribution:           ages,
		OccupationDistribution:    occs,
		GenderDistribution:        genders,
		OriginStationDistribution: newStationDistributions(r.OriginStationDistribution),
		Summary: DemographicsSummary{
			AverageAge:              r.Summary.AverageAge,
			ProductiveAgePassengers: r.Summary.ProductiveAgePassengers,
			ProductiveAgePercentage: r.Summary.ProductiveAgePercentage,
			WorkerPassengers:        r.Summary.WorkerPassengers,
			WorkerPercentage:        r.Summary.WorkerPercentage,
			DominantOriginStation:   r.Summary.DominantOriginStation,
		},
	}
}
