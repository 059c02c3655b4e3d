package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

// LocalizeDemographics relabels the demographics report and derives the
// gender-ratio and priority-station narrative.
func LocalizeDemographics(r domain.DemographicsReport) api.LocalizedDemographicsReport {
	var priaPct, wanitaPct float64
	for _, g := range r.GenderDistribution {
		switch g.Gender {
		case "Pria":
			priaPct = g.Percentage
		case "Wanita":
			wanitaPct = g.Percentage
		}
	}
	rasioGender := "Seimbang"
	spread := priaPct - wanitaPct
	if spread < 0 {
		spread = -spread
	}
	if spread >= 10 {
		rasioGender = "Wanita Dominan"
		if priaPct > wanitaPct {
			rasioGender = "Pria Dominan"
		}
	}

	top := make([]domain.StationDistribution, len(r.OriginStationDistribution))
	copy(top, r.OriginStationDistribution)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 3 {
		top = top[:3]
	}
	names := make([]string, 0, len(top))
	for _, s := range top {
		names = append(names, s.Station)
	}

	nonProductive := r.TotalPassengers - r.Summary.ProductiveAgePassengers
	var rasioUsia float64
	if nonProductive > 0 {
		rasioUsia = float64(r.Summary.ProductiveAgePassengers) / float64(nonProductive) * 100
	}

	ages := make([]api.LocalizedAgeDistribution, 0, len(r.AgeDistribution))
	for _, a := range r.AgeDistribution {
		ages = append(ages, api.LocalizedAgeDistribution{RentangUsia: a.AgeRange, Jumlah: a.Count, Persentase: a.Percentage})
	}
	occs := make([]api.LocalizedOccupationDistribution, 0, len(r.OccupationDistribution))
	for _, o := range r.OccupationDistribution {
		occs = append(occs, api.LocalizedOccupationDistribution{Pekerjaan: o.Occupation, Jumlah: o.Count, Persentase: o.Percentage})
	}
	genders := make([]api.LocalizedGenderDistribution, 0, len(r.GenderDistribution))
	for _, g := range r.GenderDistribution {
		genders = append(genders, api.LocalizedGenderDistribution{Gender: g.Gender, Jumlah: g.Count, Persentase: g.Percentage})
	}
	stations := make([]api.LocalizedStationDistribution, 0, len(r.OriginStationDistribution))
	for _, s := range r.OriginStationDistribution {
		stations = append(stations, api.LocalizedStationDistribution{Stasiun: s.Station, Jumlah: s.Count, Persentase: s.Percentage})
	}

	return api.LocalizedDemographicsReport{
		Tanggal:               r.Date,
		TotalPenumpang:        r.TotalPassengers,
		DistribusiUsia:        ages,
		DistribusiPekerjaan:   occs,
		DistribusiGender:      genders,
		DistribusiStasiunAsal: stations,
		Ringkasan: api.LocalizedDemographicsSummary{
			RataUsia:                r.Summary.AverageAge,
			PenumpangUsiaProduktif:  r.Summary.ProductiveAgePassengers,
			PersentaseUsiaProduktif: r.Summary.ProductiveAgePercentage,
			PenumpangPekerja:        r.Summary.WorkerPassengers,
			PersentasePekerja:       r.Summary.WorkerPercentage,
			StasiunAsalDominan:      r.Summary.DominantOriginStation,
		},
		InsightAI: api.DemographicsInsight{
			ProfilPenumpang: fmt.Sprintf("Rata-rata %.1f tahun dengan %.0f%% usia produktif (25-45 tahun)",
				r.Summary.AverageAge, r.Summary.ProductiveAgePercentage),
			RasioDemografi: fmt.Sprintf("%s - %.0f%% pria vs %.0f%% wanita", rasioGender, priaPct, wanitaPct),
			StasiunPrioritas: strings.Join(names, ", "),
			AnalisisPeluang: fmt.Sprintf("Rasio usia produktif vs non-produktif %.0f%% menunjukkan potensi revenue yang tinggi",
				rasioUsia),
			TargetPromosiUtama: fmt.Sprintf(
				"1. F&B: %.0f%% (target: wanita pekerja & keluarga), 2. Retail: %.0f%% (target: pria pekerja), 3. Services: %.0f%% (target: PNS/BUMN)",
				wanitaPct, priaPct, r.Summary.WorkerPercentage),
			FasilitasPrioritas: "Toilet/musholla perlu dialokasi berdasarkan dominasi gender di setiap zona",
		},
		RekomendasiOperasional: []string{
			"1. Zone-based advertising: Promosikan F&B di area NORTH (wanita), retail di area WEST (pria)",
			"2. Partnership dengan perusahaan di 3 stasiun teratas: Bekasi, Cikarang, Depok",
			"3. Employee shuttle service untuk penumpang usia produktif pagi-sore",
			"4. Digital signage berbahasa Indonesia di zona utama",
		},
	}
}
