package report

import (
	"strconv"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// bucketBase pairs a bucket label with the uniform range its daily baseline
// is drawn from.
type bucketBase struct {
	label     string
	low, high int
}

var ageRanges = []bucketBase{
	{"18-24", 300, 500},
	{"25-34", 800, 1200},
	{"35-44", 1000, 1500},
	{"45-54", 700, 1000},
	{"55+", 200, 400},
}

var occupations = []bucketBase{
	{"Karyawan Swasta", 1500, 2200},
	{"PNS/BUMN", 600, 900},
	{"Pelajar/Mahasiswa", 400, 700},
	{"Wiraswasta", 500, 800},
	{"Wisatawan", 100, 300},
}

var originStations = []bucketBase{
	{"Bekasi", 700, 1000},
	{"Cikarang", 400, 600},
	{"Depok", 500, 700},
	{"Bogor", 400, 600},
	{"Tangerang", 300, 500},
	{"Sudirman", 300, 500},
	{"Karet", 300, 500},
	{"Pasar Minggu", 100, 300},
	{"Tanah Abang", 200, 400},
}

// Salaried occupations counted as "workers" in summaries.
var workerOccupations = map[string]bool{
	"Karyawan Swasta": true,
	"PNS/BUMN":        true,
}

var productiveAgeRanges = map[string]bool{
	"25-34": true,
	"35-44": true,
}

// ageMidpoint reads the midpoint of a "lo-hi" range label. The open-ended
// "55+" bucket maps to 60.
func ageMidpoint(label string) float64 {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 60
	}
	lo, _ := strconv.Atoi(parts[0])
	hi, _ := strconv.Atoi(parts[1])
	return float64(lo+hi) / 2
}

// Demographics generates one day of passenger-profile distributions. Gender
// is an exact partition of the passenger total; the age, occupation and
// origin buckets are each drawn from their own base range and only
// approximate it.
func (g *Generator) Demographics(date string) domain.DemographicsReport {
	totalPassengers := g.rnd.UniformInt(3500, 5000)

	ages := make([]domain.AgeDistribution, 0, len(ageRanges))
	for _, b := range ageRanges {
		count := g.rnd.Jitter(g.rnd.UniformInt(b.low, b.high), 0.1)
		ages = append(ages, domain.AgeDistribution{
			AgeRange:   b.label,
			Count:      count,
			Percentage: percentOf(count, totalPassengers, 1),
		})
	}

	occs := make([]domain.OccupationDistribution, 0, len(occupations))
	for _, b := range occupations {
		count := g.rnd.Jitter(g.rnd.UniformInt(b.low, b.high), 0.15)
		occs = append(occs, domain.OccupationDistribution{
			Occupation: b.label,
			Count:      count,
			Percentage: percentOf(count, totalPassengers, 1),
		})
	}

	male := g.rnd.Jitter(int(float64(totalPassengers)*0.52), 0.05)
	female := totalPassengers - male
	genders := []domain.GenderDistribution{
		{Gender: "Pria", Count: male, Percentage: percentOf(male, totalPassengers, 1)},
		{Gender: "Wanita", Count: female, Percentage: percentOf(female, totalPassengers, 1)},
	}

	stations := make([]domain.StationDistribution, 0, len(originStations))
	for _, b := range originStations {
		count := g.rnd.Jitter(g.rnd.UniformInt(b.low, b.high), 0.2)
		stations = append(stations, domain.StationDistribution{
			Station:    b.label,
			Count:      count,
			Percentage: percentOf(count, totalPassengers, 1),
		})
	}

	// Unweighted mean of the range midpoints, not weighted by count.
	var midpointSum float64
	for _, b := range ageRanges {
		midpointSum += ageMidpoint(b.label)
	}
	averageAge := roundTo(midpointSum/float64(len(ageRanges)), 1)

	var productive int
	for _, a := range ages {
		if productiveAgeRanges[a.AgeRange] {
			productive += a.Count
		}
	}
	var workers int
	for _, o := range occs {
		if workerOccupations[o.Occupation] {
			workers += o.Count
		}
	}
	dominant := stations[0]
	for _, s := range stations[1:] {
		if s.Count > dominant.Count {
			dominant = s
		}
	}

	return domain.DemographicsReport{
		Date:                      reportDate(date),
		TotalPassengers:           totalPassengers,
		AgeDistribution:           ages,
		OccupationDistribution:    occs,
		GenderDistribution:        genders,
		OriginStationDistribution: stations,
		Summary: domain.DemographicsSummary{
			AverageAge:              averageAge,
			ProductiveAgePassengers: productive,
			ProductiveAgePercentage: percentOf(productive, totalPassengers, 1),
			WorkerPassengers:        workers,
			WorkerPercentage:        percentOf(workers, totalPassengers, 1),
			DominantOriginStation:   dominant.Station,
		},
	}
}
