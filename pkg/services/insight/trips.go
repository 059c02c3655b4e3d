package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// LocalizeTrips relabels the trip segmentation report and derives the
// commuter-pattern narrative.
func LocalizeTrips(r domain.TripReport) api.LocalizedTripReport {
	var inPct, outPct float64
	for _, d := range r.DirectionDistribution {
		switch d.Direction {
		case "IN":
			inPct = d.Percentage
		case "OUT":
			outPct = d.Percentage
		}
	}

	firstSegment := "N/A"
	if len(r.TimeTravelDistribution) > 0 {
		firstSegment = r.TimeTravelDistribution[0].TimeSegment
	}

	tipePenumpang := "Pengguna sekali jalan"
	if inPct > 40 && outPct > 40 {
		tipePenumpang = "Komuter harian (2-way)"
	}

	top := make([]domain.StationDistribution, len(r.OriginDistribution))
	copy(top, r.OriginDistribution)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 3 {
		top = top[:3]
	}
	names := make([]string, 0, len(top))
	var topCount int
	for _, s := range top {
		names = append(names, s.Station)
		topCount += s.Count
	}

	origins := make([]api.LocalizedStationDistribution, 0, len(r.OriginDistribution))
	for _, s := range r.OriginDistribution {
		origins = append(origins, api.LocalizedStationDistribution{Stasiun: s.Station, Jumlah: s.Count, Persentase: s.Percentage})
	}
	directions := make([]api.LocalizedDirectionDistribution, 0, len(r.DirectionDistribution))
	for _, d := range r.DirectionDistribution {
		directions = append(directions, api.LocalizedDirectionDistribution{Arah: d.Direction, Jumlah: d.Count, Persentase: d.Percentage})
	}
	segments := make([]api.LocalizedTimeSegment, 0, len(r.TimeTravelDistribution))
	for _, s := range r.TimeTravelDistribution {
		segments = append(segments, api.LocalizedTimeSegment{SegmenWaktu: s.TimeSegment, Jumlah: s.Count, Persentase: s.Percentage})
	}

	return api.LocalizedTripReport{
		Tanggal:                  r.Date,
		TotalTransaksi:           r.TotalTransactions,
		DistribusiStasiunAwal:    origins,
		DistribusiArah:           directions,
		DistribusiWaktuPerjalanan: segments,
		Ringkasan: api.LocalizedTripSummary{
			StasiunAsalTerbanyak:   r.Summary.TopOriginStation,
			JumlahStasiunAsal:      r.Summary.TopOriginCount,
			PersentaseStasiunAsal:  r.Summary.TopOriginPercentage,
			ArahDominan:            r.Summary.DominantDirection,
			SegmenWaktuDominan:     r.Summary.DominantTimeSegment,
			PersentaseWaktuDominan: r.Summary.DominantTimePercentage,
		},
		InsightAI: api.TripInsight{
			PolaPerjalanan: fmt.Sprintf("Pola perjalanan: %.1f%% IN, %.1f%% OUT. Waktu dominan: %s",
				inPct, outPct, firstSegment),
			TipePenumpang: tipePenumpang,
			RekomendasiKapasitas: "Kapasitas KRL saat peak: ~200-250 penumpang per 5 menit. " +
				"Pertimbangkan tambah 1-2 KRL saat peak hours",
			AnalisisOrigin: fmt.Sprintf("Top 3 stasiun asal: %s menyumbang %d transaksi",
				strings.Join(names, ", "), topCount),
		},
		RekomendasiOperasional: []string{
			"1. Increase KRL frequency saat peak hours (07:00-09:00 dan 16:00-19:00)",
			"2. Single-journey ticket promo untuk off-peak riders (10:00-16:00 dan 19:00-22:00)",
			"3. Coordinate dengan stasiun asal untuk thru-ticket promo",
			"4. Real-time crowding indicator di area tap-in untuk distribusi penumpang",
		},
		RekomendasiStrategis: strategicRecommendations,
	}
}
