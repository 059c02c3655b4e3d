// Package insight relabels the neutral category reports into the localized
// vocabulary the dashboard frontend consumes and attaches canned narrative
// blocks. It is pure string templating over already-computed reports; no
// numeric value is recomputed from scratch here.
package insight

import (
	"fmt"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// Shared peak-window recommendations shown on several report pages.
var strategicRecommendations = []string{
	"Morning: Prioritaskan penangan cepat (coffee grab, breakfast set) untuk komuter pagi",
	"Evening: Focus ke retail & family services (makan malam, grocery) untuk komuter sore",
	"Off-Peak: Gunakan flash sale & special promo untuk menarik trafik di jam sepi",
}

// Localize converts a composite report into the localized dashboard payload.
func Localize(report domain.CompositeReport) api.LocalizedComposite {
	return api.LocalizedComposite{
		Tanggal:          report.Date,
		DashboardSummary: dashboardSummary(report),
		Kategori: api.CategoryLabels{
			EfisiensiOperasional: "1️⃣ Operational Efficiency",
			Demografi:            "2️⃣ Profil Demografi",
			SegmentasiPerjalanan: "3️⃣ Segmentasi Perjalanan",
			SegmentasiLoyaltas:   "4️⃣ Segmentasi Loyaltas",
			KorelasiPerilaku:     "5️⃣ Behavior Correlation",
		},
		Data: api.LocalizedCategoryData{
			EfisiensiOperasional: LocalizeOperational(report.Operational),
			Demografi:            LocalizeDemographics(report.Demographics),
			SegmentasiPerjalanan: LocalizeTrips(report.Trips),
			SegmentasiLoyaltas:   LocalizeLoyalty(report.Loyalty),
			KorelasiPerilaku:     LocalizeBehavior(report.Behavior),
		},
	}
}

func dashboardSummary(report domain.CompositeReport) api.DashboardSummary {
	d := report.Dashboard
	return api.DashboardSummary{
		TotalTransaksi: api.DashboardCard{
			Nilai:     d.TotalTransactions,
			Label:     "Total Transaksi",
			Deskripsi: "Total tap-in dan tap-out hari ini",
			Delta:     "Harian",
		},
		TotalPenumpangUnik: api.DashboardCard{
			Nilai:     d.TotalUniquePassengers,
			Label:     "Total Penumpang Unik",
			Deskripsi: "Jumlah penumpang unik hari ini",
			Delta:     "Unik",
		},
		HighLoyaltyPenumpang: api.DashboardCard{
			Nilai:      fmt.Sprintf("%.1f%%", d.HighLoyaltyPercentage),
			Label:      "High Loyalty Penumpang",
			Deskripsi:  "Persentase penumpang loyal (frekuensi ≥12x/minggu)",
			Delta:      "≥12x/minggu",
			Persentase: d.HighLoyaltyPercentage,
		},
		GateTersibuk: api.DashboardCard{
			Nilai:      strings.TrimPrefix(d.BusiestGate, "TAP-"),
			Label:      "Gate Tersibuk",
			Deskripsi:  "Gate dengan penggunaan tertinggi hari ini",
			Delta:      "Highest Utilization",
			GateIDFull: d.BusiestGate,
		},
		MorningPeakTraffic: api.DashboardCard{
			Nilai:      fmt.Sprintf("%.1f%%", d.MorningPeakPercentage),
			Label:      "Morning Peak Traffic",
			Deskripsi:  "Persentase trafik jam sibuk pagi",
			Delta:      "07:00-09:00",
			Persentase: d.MorningPeakPercentage,
		},
		EveningPeakTraffic: api.DashboardCard{
			Nilai:      fmt.Sprintf("%.1f%%", d.EveningPeakPercentage),
			Label:      "Evening Peak Traffic",
			Deskripsi:  "Persentase trafik jam sibuk sore",
			Delta:      "16:00-19:00",
			Persentase: d.EveningPeakPercentage,
		},
		RataRataUsia: api.DashboardCard{
			Nilai:     fmt.Sprintf("%.1f tahun", d.AverageAge),
			Label:     "Rata-rata Usia",
			Deskripsi: "Usia rata-rata penumpang",
			Delta:     "Demografi",
			Usia:      d.AverageAge,
		},
		StasiunAsalDominan: api.DashboardCard{
			Nilai:      d.DominantOriginStation,
			Label:      "Stasiun Asal Dominan",
			Deskripsi:  "Stasiun asal dengan penumpang terbanyak",
			Delta:      fmt.Sprintf("%.1f%% dari total", d.DominantOriginPercentage),
			Persentase: d.DominantOriginPercentage,
			Stasiun:    d.DominantOriginStation,
		},
	}
}
