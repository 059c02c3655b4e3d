package insight

import (
	"fmt"
	"math"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// LocalizeBehavior relabels the behavior report and classifies the
// age-loyalty correlation and gender-by-time pattern.
func LocalizeBehavior(r domain.BehaviorReport) api.LocalizedBehaviorReport {
	// Unweighted bucket means, unlike the count-weighted summary figures:
	// under-30 buckets vs 45-and-up buckets.
	var youngSum, seniorSum float64
	var youngN, seniorN int
	for _, a := range r.AgeLoyaltyCorrelation {
		if a.Age < 30 {
			youngSum += a.AvgLoyaltyFrequency
			youngN++
		}
		if a.Age >= 45 {
			seniorSum += a.AvgLoyaltyFrequency
			seniorN++
		}
	}
	var youngAvg, seniorAvg float64
	if youngN > 0 {
		youngAvg = youngSum / float64(youngN)
	}
	if seniorN > 0 {
		seniorAvg = seniorSum / float64(seniorN)
	}
	korelasi := "Netral"
	if seniorAvg > youngAvg {
		korelasi = "Positif"
	} else if math.Abs(seniorAvg-youngAvg) > 0.5 {
		korelasi = "Negatif"
	}

	var morningMale, morningFemale, eveningMale, eveningFemale int
	for _, h := range r.HourGenderDistribution {
		if h.Hour >= 6 && h.Hour <= 11 {
			morningMale += h.MaleCount
			morningFemale += h.FemaleCount
		}
		if h.Hour >= 16 && h.Hour <= 19 {
			eveningMale += h.MaleCount
			eveningFemale += h.FemaleCount
		}
	}
	morningDominant := "Wanita"
	if morningMale > morningFemale {
		morningDominant = "Pria"
	}
	eveningDominant := "Pria"
	if eveningFemale > eveningMale {
		eveningDominant = "Wanita"
	}

	var strongPreferences int
	for _, p := range r.OccupationZonePreference {
		if p.Preference != "Neutral" {
			strongPreferences++
		}
	}

	correlation := make([]api.LocalizedAgeLoyalty, 0, len(r.AgeLoyaltyCorrelation))
	for _, a := range r.AgeLoyaltyCorrelation {
		correlation = append(correlation, api.LocalizedAgeLoyalty{
			Usia: a.Age, RataLoyal: a.AvgLoyaltyFrequency, Jumlah: a.Count,
		})
	}
	hourly := make([]api.LocalizedHourlyGender, 0, len(r.HourGenderDistribution))
	for _, h := range r.HourGenderDistribution {
		hourly = append(hourly, api.LocalizedHourlyGender{
			Jam: h.Hour, JumlahPria: h.MaleCount, JumlahWanita: h.FemaleCount,
			PersentasePria: h.MalePercentage, PersentaseWanita: h.FemalePercentage,
		})
	}
	preferences := make([]api.LocalizedZonePreference, 0, len(r.OccupationZonePreference))
	for _, p := range r.OccupationZonePreference {
		preferences = append(preferences, api.LocalizedZonePreference{
			Pekerjaan: p.Occupation, JumlahUtara: p.NorthCount, JumlahBarat: p.WestCount, Preferensi: p.Preference,
		})
	}

	return api.LocalizedBehaviorReport{
		Tanggal:                 r.Date,
		KorelasiUsiaLoyal:       correlation,
		DistribusiGenderPerJam:  hourly,
		PreferensiZonaPekerjaan: preferences,
		Ringkasan: api.LocalizedBehaviorSummary{
			InsightKorelasiUsiaLoyal: r.Summary.AgeLoyaltyInsight,
			RataLoyalMuda:            r.Summary.YoungAvgLoyalty,
			RataLoyalSenior:          r.Summary.SeniorAvgLoyalty,
			GenderDominanPagi:        r.Summary.DominantGenderMorning,
			GenderDominanSore:        r.Summary.DominantGenderEvening,
			JumlahPreferensiZonaKuat: r.Summary.StrongZonePreferences,
		},
		InsightAI: api.BehaviorInsight{
			KorelasiUsia:    korelasi,
			PolaGenderWaktu: fmt.Sprintf("Pagi dominan %s, sore dominan %s", morningDominant, eveningDominant),
			FasilitasWaktu: api.FacilityByTime{
				Pagi: "Quick service (coffee, breakfast grab)",
				Sore: "Retail & family-oriented (F&B, pharmacy, kids zone)",
			},
			AnalisisZona: api.ZoneAnalysis{
				Pola:        fmt.Sprintf("%d pekerjaan menunjukkan preferensi zona kuat", strongPreferences),
				Rekomendasi: "PNS/BUMN → North Zone (office services), Wisatawan → West Zone (retail & tourism)",
			},
			RekomendasiPromosi: api.PromotionByTime{
				Morning: fmt.Sprintf("Target %s dengan quick breakfast & coffee promo", morningDominant),
				Sore:    fmt.Sprintf("Target %s dengan family meal deals & retail discount", eveningDominant),
			},
		},
	}
}
