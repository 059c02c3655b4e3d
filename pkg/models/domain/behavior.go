package domain

type AgeLoyaltyCorrelation struct {
	Age                 int
	AvgLoyaltyFrequency float64
	Count               int
}

// HourlyGenderSplit partitions one hour's traffic by gender. FemaleCount is
// the exact complement of MaleCount within the hour's total.
type HourlyGenderSplit struct {
	Hour             int
	MaleCount        int
	FemaleCount      int
	MalePercentage   float64
	FemalePercentage float64
}

// OccupationZonePreference splits an occupation's traffic between the North
// and West gate clusters. NorthCount + WestCount always equals the drawn
// total; Preference is North or West when the configured ratio exceeds 0.55,
// Neutral otherwise.
type OccupationZonePreference struct {
	Occupation string
	NorthCount int
	WestCount  int
	Preference string
}

type BehaviorSummary struct {
	AgeLoyaltyInsight     string
	YoungAvgLoyalty       float64
	SeniorAvgLoyalty      float64
	DominantGenderMorning string
	DominantGenderEvening string
	StrongZonePreferences int
}

type BehaviorReport struct {
	Date                     string
	AgeLoyaltyCorrelation    []AgeLoyaltyCorrelation
	HourGenderDistribution   []HourlyGenderSplit
	OccupationZonePreference []OccupationZonePreference
	Summary                  BehaviorSummary
}
