package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// LocalizeLoyalty relabels the loyalty report and picks the retention vs
// acquisition strategy from the high-tier share.
func LocalizeLoyalty(r domain.LoyaltyReport) api.LocalizedLoyaltyReport {
	var high, medium, low domain.LoyaltySegment
	for _, s := range r.LoyaltySegments {
		switch {
		case strings.Contains(s.Segment, "High"):
			high = s
		case strings.Contains(s.Segment, "Medium"):
			medium = s
		case strings.Contains(s.Segment, "Low"):
			low = s
		}
	}

	strategi := "Fokus akuisisi & upgrade"
	rekomendasiHigh := "Agresive acquisition campaign + upgrade program medium ke high"
	switch {
	case high.Percentage > 40:
		strategi = "Fokus retensi penumpang high loyalty"
		rekomendasiHigh = "Tiered membership program dengan exclusive benefits (priority access, discount)"
	case high.Percentage > 30:
		strategi = "Kombinasi retensi & akuisisi"
		rekomendasiHigh = "Loyalty rewards + first-time promo untuk low loyalty"
	}

	segments := make([]api.LocalizedLoyaltySegment, 0, len(r.LoyaltySegments))
	for _, s := range r.LoyaltySegments {
		segments = append(segments, api.LocalizedLoyaltySegment{
			Segmen: s.Segment, Jumlah: s.Count, Persentase: s.Percentage,
			FrekuensiMin: s.MinFreq, FrekuensiMax: s.MaxFreq,
		})
	}
	byOccupation := make([]api.LocalizedOccupationLoyalty, 0, len(r.LoyaltyByOccupation))
	for _, o := range r.LoyaltyByOccupation {
		var pctOfTotal float64
		if r.TotalPassengers > 0 {
			pctOfTotal = roundTo1(float64(o.Count) / float64(r.TotalPassengers) * 100)
		}
		byOccupation = append(byOccupation, api.LocalizedOccupationLoyalty{
			Pekerjaan:           o.Occupation,
			JumlahPenumpang:     o.Count,
			RataFrekuensi:       o.AvgFrequency,
			PersentaseDariTotal: pctOfTotal,
		})
	}

	return api.LocalizedLoyaltyReport{
		Tanggal:                   r.Date,
		TotalPenumpang:            r.TotalPassengers,
		SegmentasiLoyal:           segments,
		LoyalBerdasarkanPekerjaan: byOccupation,
		Ringkasan: api.LocalizedLoyaltySummary{
			PersentaseLoyalTinggi:   high.Percentage,
			PersentaseLoyalSedang:   medium.Percentage,
			PersentaseLoyalRendah:   low.Percentage,
			JumlahLoyalTinggi:       high.Count,
			JumlahLoyalSedang:       medium.Count,
			JumlahLoyalRendah:       low.Count,
			PekerjaanPalingLoyal:    r.Summary.MostLoyalOccupation,
			FrekuensiLoyalTertinggi: r.Summary.MostLoyalOccupationAvgFreq,
		},
		InsightAI: api.LoyaltyInsight{
			StrategiLoyal: strategi,
			ProfilLoyal: fmt.Sprintf("High: %.1f%% (%d penumpang), Medium: %.1f%% (%d penumpang), Low: %.1f%% (%d penumpang)",
				high.Percentage, high.Count, medium.Percentage, medium.Count, low.Percentage, low.Count),
			PekerjaanTertinggi: fmt.Sprintf("%s dengan rata-rata %.1fx/minggu",
				r.Summary.MostLoyalOccupation, r.Summary.MostLoyalOccupationAvgFreq),
			RekomendasiHigh: rekomendasiHigh,
			RekomendasiMedium: fmt.Sprintf("Upgrade program: Target %d penumpang Medium untuk naik ke High tier",
				medium.Count),
			RekomendasiLow: fmt.Sprintf("Acquisition campaign: Target %d penumpang Low dengan first-time promo & welcome discount",
				low.Count),
		},
		RekomendasiOperasional: []string{
			"1. Implement tiered membership: Bronze (Low), Silver (Medium), Gold (High)",
			"2. Gold members: Priority access, lounge access, 20% retail discount",
			"3. Silver members: 10% discount, double points promo",
			"4. Bronze members: Welcome discount, first 3 rides promo points",
		},
		RekomendasiStrategis: []string{
			fmt.Sprintf("Partnership B2B dengan perusahaan dominan (%s) untuk bulk loyalty program",
				r.Summary.MostLoyalOccupation),
			"Loyalty points redemption di station facilities (F&B, retail)",
			"Referral bonus: High loyalty members yang berhasil ajak teman dapat bonus points",
			"Seasonal campaign: Double points pada off-peak hours untuk mengurangi crowd peak",
		},
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
