package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

func TestLocalizeOperationalTrafficPattern(t *testing.T) {
	cases := []struct {
		name     string
		morning  float64
		evening  float64
		expected string
	}{
		{"morning heavy", 40.0, 30.0, "morning_peak"},
		{"evening heavy", 30.0, 40.0, "evening_peak"},
		{"flat", 30.0, 30.0, "neutral"},
		{"boundary not crossed", 35.0, 35.0, "neutral"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := LocalizeOperational(domain.OperationalReport{
				Summary: domain.OperationalSummary{
					MorningPeakPercentage: tc.morning,
					EveningPeakPercentage: tc.evening,
				},
			})
			assert.Equal(t, tc.expected, out.InsightAI.PolaTrafik)
		})
	}
}

func TestLocalizeOperationalPeakIntensity(t *testing.T) {
	cases := []struct {
		name     string
		morning  float64
		evening  float64
		expected string
	}{
		{"very high", 35.0, 31.0, "sangat_tinggi"},
		{"high", 26.0, 25.0, "tinggi"},
		{"moderate", 25.0, 25.0, "sedang"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := LocalizeOperational(domain.OperationalReport{
				Summary: domain.OperationalSummary{
					MorningPeakPercentage: tc.morning,
					EveningPeakPercentage: tc.evening,
				},
			})
			assert.Equal(t, tc.expected, out.InsightAI.IntensitasPeak)
		})
	}
}

func TestLocalizeOperationalGateBalance(t *testing.T) {
	unbalanced := LocalizeOperational(domain.OperationalReport{
		GateUtilization: []domain.GateUtilization{
			{GateID: "TAP-NORTH-001", UtilizationRate: 28.0},
			{GateID: "TAP-WEST-001", UtilizationRate: 10.0},
		},
	})
	assert.Equal(t, "tidak_seimbang", unbalanced.InsightAI.KeseimbanganGate)
	assert.Equal(t, "Re-allocate petugas dari gate sepi ke gate sibuk", unbalanced.InsightAI.RekomendasiGate)

	balanced := LocalizeOperational(domain.OperationalReport{
		GateUtilization: []domain.GateUtilization{
			{GateID: "TAP-NORTH-001", UtilizationRate: 14.0},
			{GateID: "TAP-WEST-001", UtilizationRate: 12.0},
		},
	})
	assert.Equal(t, "seimbang", balanced.InsightAI.KeseimbanganGate)
	assert.Equal(t, "Distribusi petugas sudah optimal", balanced.InsightAI.RekomendasiGate)
}

func TestLocalizeOperationalPreservesValues(t *testing.T) {
	in := domain.OperationalReport{
		Date:              "2025-03-01",
		TotalTransactions: 5000,
		TrafficPerHour: []domain.HourlyTraffic{
			{Hour: 7, Count: 500, Period: "Morning Peak"},
		},
		GateUtilization: []domain.GateUtilization{
			{GateID: "TAP-NORTH-001", Zone: "north", Count: 600, UtilizationRate: 12.0},
		},
		TrafficByZone: []domain.ZoneTraffic{
			{Zone: "TAP-NORTH", Count: 2600, Percentage: 52.0},
		},
		BalanceDirection: []domain.DirectionBalance{
			{Zone: "NORTH", Direction: "IN", Count: 1300, Percentage: 50.0},
		},
		Summary: domain.OperationalSummary{
			MorningPeakTransactions: 1500,
			MorningPeakPercentage:   30.0,
			BusiestGate:             "TAP-NORTH-001",
			BusiestZone:             "TAP-NORTH",
		},
	}
	out := LocalizeOperational(in)

	assert.Equal(t, "2025-03-01", out.Tanggal)
	assert.Equal(t, 5000, out.TotalTransaksi)
	require.Len(t, out.TrafikPerJam, 1)
	assert.Equal(t, 7, out.TrafikPerJam[0].Jam)
	assert.Equal(t, 500, out.TrafikPerJam[0].Jumlah)
	assert.Equal(t, "Morning Peak", out.TrafikPerJam[0].Periode)
	require.Len(t, out.PenggunaanGate, 1)
	assert.Equal(t, 12.0, out.PenggunaanGate[0].TingkatUtilisasi)
	require.Len(t, out.TrafikPerZona, 1)
	assert.Equal(t, 52.0, out.TrafikPerZona[0].Persentase)
	require.Len(t, out.KeseimbanganArah, 1)
	assert.Equal(t, "IN", out.KeseimbanganArah[0].Arah)
	assert.Equal(t, 1500, out.Ringkasan.TransaksiPagi)
	assert.Equal(t, "TAP-NORTH-001", out.Ringkasan.GateTersibuk)
	assert.Len(t, out.RekomendasiOperasi, 3)
	assert.Equal(t, strategicRecommendations, out.RekomendasiStrategis)
}

func TestLocalizeDemographicsGenderRatio(t *testing.T) {
	cases := []struct {
		name     string
		pria     float64
		wanita   float64
		expected string
	}{
		{"balanced", 52.0, 48.0, "Seimbang"},
		{"male dominant", 56.0, 44.0, "Pria Dominan"},
		{"female dominant", 44.0, 56.0, "Wanita Dominan"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := LocalizeDemographics(domain.DemographicsReport{
				GenderDistribution: []domain.GenderDistribution{
					{Gender: "Pria", Percentage: tc.pria},
					{Gender: "Wanita", Percentage: tc.wanita},
				},
			})
			assert.Contains(t, out.InsightAI.RasioDemografi, tc.expected)
		})
	}
}

func TestLocalizeDemographicsPriorityStations(t *testing.T) {
	out := LocalizeDemographics(domain.DemographicsReport{
		OriginStationDistribution: []domain.StationDistribution{
			{Station: "Bekasi", Count: 900},
			{Station: "Cikarang", Count: 500},
			{Station: "Depok", Count: 600},
			{Station: "Bogor", Count: 450},
		},
	})
	assert.Equal(t, "Bekasi, Depok, Cikarang", out.InsightAI.StasiunPrioritas)
}

func TestLocalizeDemographicsPreservesSummary(t *testing.T) {
	out := LocalizeDemographics(domain.DemographicsReport{
		Date:            "2025-03-01",
		TotalPassengers: 4000,
		Summary: domain.DemographicsSummary{
			AverageAge:              39.9,
			ProductiveAgePassengers: 2400,
			ProductiveAgePercentage: 60.0,
			WorkerPassengers:        2600,
			WorkerPercentage:        65.0,
			DominantOriginStation:   "Bekasi",
		},
	})
	assert.Equal(t, 39.9, out.Ringkasan.RataUsia)
	assert.Equal(t, 2400, out.Ringkasan.PenumpangUsiaProduktif)
	assert.Equal(t, "Bekasi", out.Ringkasan.StasiunAsalDominan)
	// 2400 productive vs 1600 non-productive is a 150% ratio.
	assert.Contains(t, out.InsightAI.AnalisisPeluang, "150%")
}

func TestLocalizeTripsPassengerType(t *testing.T) {
	commuter := LocalizeTrips(domain.TripReport{
		DirectionDistribution: []domain.DirectionDistribution{
			{Direction: "IN", Percentage: 51.0},
			{Direction: "OUT", Percentage: 49.0},
		},
	})
	assert.Equal(t, "Komuter harian (2-way)", commuter.InsightAI.TipePenumpang)

	oneWay := LocalizeTrips(domain.TripReport{
		DirectionDistribution: []domain.DirectionDistribution{
			{Direction: "IN", Percentage: 70.0},
			{Direction: "OUT", Percentage: 30.0},
		},
	})
	assert.Equal(t, "Pengguna sekali jalan", oneWay.InsightAI.TipePenumpang)
}

func TestLocalizeTripsTravelPatternUsesFirstSegment(t *testing.T) {
	out := LocalizeTrips(domain.TripReport{
		DirectionDistribution: []domain.DirectionDistribution{
			{Direction: "IN", Percentage: 51.0},
			{Direction: "OUT", Percentage: 49.0},
		},
		TimeTravelDistribution: []domain.TimeSegmentDistribution{
			{TimeSegment: "Morning (07:00-09:00)", Count: 1000},
			{TimeSegment: "Evening (16:00-19:00)", Count: 2000},
		},
	})
	// The narrative always names the first listed segment, even when another
	// segment carries more traffic.
	assert.Contains(t, out.InsightAI.PolaPerjalanan, "Morning (07:00-09:00)")

	empty := LocalizeTrips(domain.TripReport{})
	assert.Contains(t, empty.InsightAI.PolaPerjalanan, "N/A")
}

func TestLocalizeTripsOriginAnalysis(t *testing.T) {
	out := LocalizeTrips(domain.TripReport{
		OriginDistribution: []domain.StationDistribution{
			{Station: "Bekasi", Count: 900},
			{Station: "Cikarang", Count: 500},
			{Station: "Depok", Count: 600},
			{Station: "Bogor", Count: 100},
		},
	})
	assert.Contains(t, out.InsightAI.AnalisisOrigin, "Bekasi, Depok, Cikarang")
	assert.Contains(t, out.InsightAI.AnalisisOrigin, "2000 transaksi")
}

func TestLocalizeLoyaltyStrategy(t *testing.T) {
	cases := []struct {
		name     string
		highPct  float64
		expected string
	}{
		{"retention", 45.0, "Fokus retensi penumpang high loyalty"},
		{"mixed", 35.0, "Kombinasi retensi & akuisisi"},
		{"acquisition", 25.0, "Fokus akuisisi & upgrade"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := LocalizeLoyalty(domain.LoyaltyReport{
				LoyaltySegments: []domain.LoyaltySegment{
					{Segment: "High Loyalty (≥12x)", Percentage: tc.highPct},
					{Segment: "Medium Loyalty (7-11x)", Percentage: 30.0},
					{Segment: "Low Loyalty (<7x)", Percentage: 25.0},
				},
			})
			assert.Equal(t, tc.expected, out.InsightAI.StrategiLoyal)
		})
	}
}

func TestLocalizeLoyaltyOccupationShareOfTotal(t *testing.T) {
	out := LocalizeLoyalty(domain.LoyaltyReport{
		TotalPassengers: 4000,
		LoyaltyByOccupation: []domain.OccupationLoyalty{
			{Occupation: "Karyawan Swasta", AvgFrequency: 9.1, Count: 1800},
		},
	})
	require.Len(t, out.LoyalBerdasarkanPekerjaan, 1)
	assert.Equal(t, 45.0, out.LoyalBerdasarkanPekerjaan[0].PersentaseDariTotal)
	assert.Equal(t, 9.1, out.LoyalBerdasarkanPekerjaan[0].RataFrekuensi)

	zero := LocalizeLoyalty(domain.LoyaltyReport{
		LoyaltyByOccupation: []domain.OccupationLoyalty{{Occupation: "Wisatawan", Count: 100}},
	})
	assert.Equal(t, 0.0, zero.LoyalBerdasarkanPekerjaan[0].PersentaseDariTotal)
}

func TestLocalizeBehaviorCorrelation(t *testing.T) {
	cases := []struct {
		name     string
		buckets  []domain.AgeLoyaltyCorrelation
		expected string
	}{
		{
			"positive when seniors ride more",
			[]domain.AgeLoyaltyCorrelation{
				{Age: 22, AvgLoyaltyFrequency: 6.0},
				{Age: 28, AvgLoyaltyFrequency: 7.0},
				{Age: 45, AvgLoyaltyFrequency: 9.0},
				{Age: 55, AvgLoyaltyFrequency: 8.0},
			},
			"Positif",
		},
		{
			"negative on a large drop",
			[]domain.AgeLoyaltyCorrelation{
				{Age: 22, AvgLoyaltyFrequency: 9.0},
				{Age: 28, AvgLoyaltyFrequency: 9.0},
				{Age: 45, AvgLoyaltyFrequency: 6.0},
				{Age: 55, AvgLoyaltyFrequency: 6.0},
			},
			"Negatif",
		},
		{
			"neutral on a small drop",
			[]domain.AgeLoyaltyCorrelation{
				{Age: 22, AvgLoyaltyFrequency: 8.0},
				{Age: 28, AvgLoyaltyFrequency: 8.0},
				{Age: 45, AvgLoyaltyFrequency: 7.8},
				{Age: 55, AvgLoyaltyFrequency: 7.8},
			},
			"Netral",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := LocalizeBehavior(domain.BehaviorReport{AgeLoyaltyCorrelation: tc.buckets})
			assert.Equal(t, tc.expected, out.InsightAI.KorelasiUsia)
		})
	}
}

func TestLocalizeBehaviorGenderByTime(t *testing.T) {
	out := LocalizeBehavior(domain.BehaviorReport{
		HourGenderDistribution: []domain.HourlyGenderSplit{
			{Hour: 7, MaleCount: 300, FemaleCount: 200},
			{Hour: 17, MaleCount: 150, FemaleCount: 250},
		},
	})
	assert.Equal(t, "Pagi dominan Pria, sore dominan Wanita", out.InsightAI.PolaGenderWaktu)
}

func TestLocalizeBehaviorZonePattern(t *testing.T) {
	out := LocalizeBehavior(domain.BehaviorReport{
		OccupationZonePreference: []domain.OccupationZonePreference{
			{Occupation: "PNS/BUMN", Preference: "North"},
			{Occupation: "Wiraswasta", Preference: "Neutral"},
			{Occupation: "Wisatawan", Preference: "West"},
		},
	})
	assert.Equal(t, "2 pekerjaan menunjukkan preferensi zona kuat", out.InsightAI.AnalisisZona.Pola)
}

func TestLocalizeDashboardCards(t *testing.T) {
	out := Localize(domain.CompositeReport{
		Date: "2025-03-01",
		Dashboard: domain.DashboardSummary{
			TotalTransactions:        5200,
			TotalUniquePassengers:    4100,
			HighLoyaltyPercentage:    38.2,
			BusiestGate:              "TAP-NORTH-002",
			MorningPeakPercentage:    31.5,
			EveningPeakPercentage:    29.8,
			AverageAge:               39.9,
			DominantOriginStation:    "Bekasi",
			DominantOriginPercentage: 18.4,
		},
	})

	assert.Equal(t, "2025-03-01", out.Tanggal)
	assert.Equal(t, 5200, out.DashboardSummary.TotalTransaksi.Nilai)
	assert.Equal(t, 4100, out.DashboardSummary.TotalPenumpangUnik.Nilai)
	assert.Equal(t, "38.2%", out.DashboardSummary.HighLoyaltyPenumpang.Nilai)
	assert.Equal(t, "NORTH-002", out.DashboardSummary.GateTersibuk.Nilai)
	assert.Equal(t, "TAP-NORTH-002", out.DashboardSummary.GateTersibuk.GateIDFull)
	assert.Equal(t, "31.5%", out.DashboardSummary.MorningPeakTraffic.Nilai)
	assert.Equal(t, "29.8%", out.DashboardSummary.EveningPeakTraffic.Nilai)
	assert.Equal(t, "39.9 tahun", out.DashboardSummary.RataRataUsia.Nilai)
	assert.Equal(t, "Bekasi", out.DashboardSummary.StasiunAsalDominan.Nilai)
	assert.Equal(t, "18.4% dari total", out.DashboardSummary.StasiunAsalDominan.Delta)
	assert.Equal(t, "1️⃣ Operational Efficiency", out.Kategori.EfisiensiOperasional)
}
