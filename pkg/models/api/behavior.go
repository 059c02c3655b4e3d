package api

import "github.com/transit-tools/station-insights/pkg/models/domain"

type AgeLoyaltyCorrelation struct {
	Age                 int     `json:"age"`
	AvgLoyaltyFrequency float64 `json:"avg_loyalty_frequency"`
	Count               int     `json:"count"`
}

type HourlyGenderSplit struct {
	Hour             int     `json:"hour"`
	MaleCount        int     `json:"male_count"`
	FemaleCount      int     `json:"female_count"`
	MalePercentage   float64 `json:"male_percentage"`
	FemalePercentage float64 `json:"female_percentage"`
}

type OccupationZonePreference struct {
	Occupation string `json:"occupation"`
	NorthCount int    `json:"north_count"`
	WestCount  int    `json:"west_count"`
	Preference string `json:"preference"`
}

type BehaviorSummary struct {
	AgeLoyaltyInsight     string  `json:"age_loyalty_insight"`
	YoungAvgLoyalty       float64 `json:"young_avg_loyalty"`
	SeniorAvgLoyalty      float64 `json:"senior_avg_loyalty"`
	DominantGenderMorning string  `json:"dominant_gender_morning"`
	DominantGenderEvening string  `json:"dominant_gender_evening"`
	StrongZonePreferences int     `json:"strong_zone_preference_count"`
}

type BehaviorReport struct {
	Date                     string                     `json:"date"`
	AgeLoyaltyCorrelation    []AgeLoyaltyCorrelation    `json:"age_loyalty_correlation"`
	HourGenderDistribution   []HourlyGenderSplit        `json:"hour_gender_distribution"`
	OccupationZonePreference []OccupationZonePreference `json:"occupation_zone_preference"`
	Summary                  BehaviorSummary            `json:"summary"`
}

func NewBehaviorReport(r domain.BehaviorReport) BehaviorReport {
	correlation := make([]AgeLoyaltyCorrelation, 0, len(r.AgeLoyaltyCorrelation))
	for _, c := range r.AgeLoyaltyCorrelation {
		correlation = append(correlation, AgeLoyaltyCorrelation{
			Age: c.Age, AvgLoyaltyFrequency: c.AvgLoyaltyFrequency, Count: c.Count,
		})
	}
	hourly := make([]HourlyGenderSplit, 0, len(r.HourGenderDistribution))
	for _, h := range r.HourGenderDistribution {
		hourly = append(hourly, HourlyGenderSplit{
			Hour: h.Hour, MaleCount: h.MaleCount, FemaleCount: h.FemaleCount,
			MalePercentage: h.MalePercentage, FemalePercentage: h.FemalePercentage,
		})
	}
	preferences := make([]OccupationZonePreference, 0, len(r.OccupationZonePreference))
	for _, p := range r.OccupationZonePreference {
		preferences = append(preferences, OccupationZonePreference{
			Occupation: p.Occupation, NorthCount: p.NorthCount, WestCount: p.WestCount, Preference: p.Preference,
		})
	}
	return BehaviorReport{
		Date:                     r.Date,
		AgeLoyaltyCorrelation:    correlation,
		HourGenderDistribution:   hourly,
		OccupationZonePreference: preferences,
		Summary: BehaviorSummary{
			AgeLoyaltyInsight:     r.Summary.AgeLoyaltyInsight,
			YoungAvgLoyalty:       r.Summary.YoungAvgLoyalty,
			SeniorAvgLoyalty:      r.Summary.SeniorAvgLoyalty,
			DominantGenderMorning: r.Summary.DominantGenderMorning,
			DominantGenderEvening: r.Summary.DominantGenderEvening,
			StrongZonePreferences: r.Summary.StrongZonePreferences,
		},
	}
}
