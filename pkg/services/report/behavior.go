package report

import (
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// ageLoyaltyBase encodes the intended correlation pattern: loyalty rises with
// age up to the mid-40s, then drops for the 55+ bucket.
type ageLoyaltyBase struct {
	age      int
	baseFreq float64
}

var ageLoyaltyBases = []ageLoyaltyBase{
	{22, 6.5},
	{28, 7.2},
	{35, 8.5},
	{45, 9.0},
	{55, 7.0},
}

// zonePreferenceBase fixes each occupation's north/west traffic ratio. The
// two ratios always sum to 1.
type zonePreferenceBase struct {
	occupation string
	northRatio float64
	westRatio  float64
}

var zonePreferenceBases = []zonePreferenceBase{
	{"Karyawan Swasta", 0.52, 0.48},
	{"PNS/BUMN", 0.60, 0.40},
	{"Pelajar/Mahasiswa", 0.48, 0.52},
	{"Wiraswasta", 0.50, 0.50},
	{"Wisatawan", 0.35, 0.65},
}

const strongPreferenceThreshold = 0.55

// BehaviorCorrelation generates the cross-variable behavior patterns: age vs
// loyalty frequency, gender mix per hour, and occupation zone preference.
func (g *Generator) BehaviorCorrelation(date string) domain.BehaviorReport {
	correlation := make([]domain.AgeLoyaltyCorrelation, 0, len(ageLoyaltyBases))
	for _, b := range ageLoyaltyBases {
		correlation = append(correlation, domain.AgeLoyaltyCorrelation{
			Age:                 b.age,
			AvgLoyaltyFrequency: roundTo(b.baseFreq+g.rnd.UniformFloat(-1.0, 1.0), 1),
			Count:               g.rnd.Jitter(g.rnd.UniformInt(400, 800), 0.2),
		})
	}

	hourly := make([]domain.HourlyGenderSplit, 0, lastHour-firstHour+1)
	for hour := firstHour; hour <= lastHour; hour++ {
		base := g.rnd.UniformInt(50, 600)

		// Male share skews high in the morning, low in the evening rush.
		var maleShare float64
		switch {
		case hour <= 11:
			maleShare = 0.55
		case isEveningPeak(hour):
			maleShare = 0.45
		default:
			maleShare = 0.50
		}
		maleShare += g.rnd.UniformFloat(-0.05, 0.05)

		total := g.rnd.Jitter(base, 0.15)
		male := int(float64(total) * maleShare)
		female := total - male
		hourly = append(hourly, domain.HourlyGenderSplit{
			Hour:             hour,
			MaleCount:        male,
			FemaleCount:      female,
			MalePercentage:   percentOf(male, total, 1),
			FemalePercentage: percentOf(female, total, 1),
		})
	}

	preferences := make([]domain.OccupationZonePreference, 0, len(zonePreferenceBases))
	for _, b := range zonePreferenceBases {
		total := g.rnd.Jitter(g.rnd.UniformInt(200, 1000), 0.2)
		north := int(float64(total) * b.northRatio)
		west := total - north

		preference := "Neutral"
		if b.northRatio > strongPreferenceThreshold {
			preference = "North"
		} else if b.westRatio > strongPreferenceThreshold {
			preference = "West"
		}

		preferences = append(preferences, domain.OccupationZonePreference{
			Occupation: b.occupation,
			NorthCount: north,
			WestCount:  west,
			Preference: preference,
		})
	}

	// Two youngest buckets vs the buckets from 45 up, count-weighted.
	young := weightedAvgFrequency(correlation[:2])
	senior := weightedAvgFrequency(correlation[3:])
	insight := "Negatif/Netral"
	if senior > young {
		insight = "Positif"
	}

	var strongPreferences int
	for _, p := range preferences {
		if p.Preference != "Neutral" {
			strongPreferences++
		}
	}

	return domain.BehaviorReport{
		Date:                     reportDate(date),
		AgeLoyaltyCorrelation:    correlation,
		HourGenderDistribution:   hourly,
		OccupationZonePreference: preferences,
		Summary: domain.BehaviorSummary{
			AgeLoyaltyInsight:     insight,
			YoungAvgLoyalty:       roundTo(young, 1),
			SeniorAvgLoyalty:      roundTo(senior, 1),
			DominantGenderMorning: dominantGenderAt(hourly, 7),
			DominantGenderEvening: dominantGenderAt(hourly, 20),
			StrongZonePreferences: strongPreferences,
		},
	}
}

// dominantGenderAt reports the majority gender for a specific hour, located
// by hour value rather than slice position.
func dominantGenderAt(hours []domain.HourlyGenderSplit, hour int) string {
	for _, h := range hours {
		if h.Hour != hour {
			continue
		}
		if h.MalePercentage > 50 {
			return "Pria"
		}
		return "Wanita"
	}
	return ""
}
