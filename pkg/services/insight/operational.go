package insight

import (
	"fmt"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// LocalizeOperational relabels the operational report and classifies the
// day's traffic pattern, peak intensity and gate balance.
func LocalizeOperational(r domain.OperationalReport) api.LocalizedOperationalReport {
	morningPct := r.Summary.MorningPeakPercentage
	eveningPct := r.Summary.EveningPeakPercentage
	avgUtil := r.Summary.AvgGateUtilizationRate

	polaTrafik := "neutral"
	if morningPct > 35 {
		polaTrafik = "morning_peak"
	} else if eveningPct > 35 {
		polaTrafik = "evening_peak"
	}

	var minUtil, maxUtil float64
	for i, g := range r.GateUtilization {
		if i == 0 || g.UtilizationRate < minUtil {
			minUtil = g.UtilizationRate
		}
		if i == 0 || g.UtilizationRate > maxUtil {
			maxUtil = g.UtilizationRate
		}
	}
	keseimbangan := "seimbang"
	rekomendasi := "Distribusi petugas sudah optimal"
	if maxUtil-minUtil > 15 {
		keseimbangan = "tidak_seimbang"
		rekomendasi = "Re-allocate petugas dari gate sepi ke gate sibuk"
	}

	intensitas := "sedang"
	switch totalPeak := morningPct + eveningPct; {
	case totalPeak > 65:
		intensitas = "sangat_tinggi"
	case totalPeak > 50:
		intensitas = "tinggi"
	}

	traffic := make([]api.LocalizedHourlyTraffic, 0, len(r.TrafficPerHour))
	for _, h := range r.TrafficPerHour {
		traffic = append(traffic, api.LocalizedHourlyTraffic{Jam: h.Hour, Jumlah: h.Count, Periode: h.Period})
	}
	gates := make([]api.LocalizedGateUtilization, 0, len(r.GateUtilization))
	for _, g := range r.GateUtilization {
		gates = append(gates, api.LocalizedGateUtilization{
			GateID: g.GateID, Zona: g.Zone, Jumlah: g.Count, TingkatUtilisasi: g.UtilizationRate,
		})
	}
	byZone := make([]api.LocalizedZoneTraffic, 0, len(r.TrafficByZone))
	for _, z := range r.TrafficByZone {
		byZone = append(byZone, api.LocalizedZoneTraffic{Zona: z.Zone, Jumlah: z.Count, Persentase: z.Percentage})
	}
	balance := make([]api.LocalizedDirectionBalance, 0, len(r.BalanceDirection))
	for _, b := range r.BalanceDirection {
		balance = append(balance, api.LocalizedDirectionBalance{
			Zona: b.Zone, Arah: b.Direction, Jumlah: b.Count, Persentase: b.Percentage,
		})
	}

	return api.LocalizedOperationalReport{
		Tanggal:          r.Date,
		TotalTransaksi:   r.TotalTransactions,
		TrafikPerJam:     traffic,
		PenggunaanGate:   gates,
		TrafikPerZona:    byZone,
		KeseimbanganArah: balance,
		Ringkasan: api.LocalizedOperationalSummary{
			TransaksiPagi:     r.Summary.MorningPeakTransactions,
			PersentasePagi:    morningPct,
			TransaksiSore:     r.Summary.EveningPeakTransactions,
			PersentaseSore:    eveningPct,
			RataUtilisasiGate: avgUtil,
			GateTersibuk:      r.Summary.BusiestGate,
			ZonaTersibuk:      r.Summary.BusiestZone,
		},
		InsightAI: api.OperationalInsight{
			PolaTrafik:       polaTrafik,
			IntensitasPeak:   intensitas,
			KeseimbanganGate: keseimbangan,
			RekomendasiGate:  rekomendasi,
			AnalisisDetail: fmt.Sprintf(
				"Trafik pagi %.1f%% dan sore %.1f%% dari total transaksi. Rata-rata utilisasi gate %.1f%%. %s",
				morningPct, eveningPct, avgUtil, rekomendasi),
		},
		RekomendasiOperasi: []string{
			"1. Shift petugas dari gate sepi (jam off-peak) ke gate sibuk untuk optimalisasi",
			"2. Tambah gate darurat saat peak hours untuk mengurangi antrean",
			"3. Implement queue system baris dengan kapasitas maksimal 200 orang per baris",
		},
		RekomendasiStrategis: strategicRecommendations,
	}
}
