package api

// Localized view models for the combined endpoint. Field keys follow the
// Indonesian vocabulary the dashboard frontend consumes.

type LocalizedHourlyTraffic struct {
	Jam     int    `json:"jam"`
	Jumlah  int    `json:"jumlah"`
	Periode string `json:"periode"`
}

type LocalizedGateUtilization struct {
	GateID           string  `json:"gate_id"`
	Zona             string  `json:"zona"`
	Jumlah           int     `json:"jumlah"`
	TingkatUtilisasi float64 `json:"tingkat_utilisasi"`
}

type LocalizedZoneTraffic struct {
	Zona       string  `json:"zona"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedDirectionBalance struct {
	Zona       string  `json:"zona"`
	Arah       string  `json:"arah"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedOperationalSummary struct {
	TransaksiPagi     int     `json:"transaksi_pagi"`
	PersentasePagi    float64 `json:"persentase_pagi"`
	TransaksiSore     int     `json:"transaksi_sore"`
	PersentaseSore    float64 `json:"persentase_sore"`
	RataUtilisasiGate float64 `json:"rata_utilisasi_gate"`
	GateTersibuk      string  `json:"gate_tertersibuk"`
	ZonaTersibuk      string  `json:"zona_tertersibuk"`
}

type OperationalInsight struct {
	PolaTrafik       string `json:"pola_trafik"`
	IntensitasPeak   string `json:"intensitas_peak"`
	KeseimbanganGate string `json:"keseimbangan_gate"`
	RekomendasiGate  string `json:"rekomendasi_optimalisasi"`
	AnalisisDetail   string `json:"analisis_detail"`
}

type LocalizedOperationalReport struct {
	Tanggal              string                      `json:"tanggal"`
	TotalTransaksi       int                         `json:"total_transaksi"`
	TrafikPerJam         []LocalizedHourlyTraffic    `json:"trafik_per_jam"`
	PenggunaanGate       []LocalizedGateUtilization  `json:"penggunaan_gate"`
	TrafikPerZona        []LocalizedZoneTraffic      `json:"trafik_per_zona"`
	KeseimbanganArah     []LocalizedDirectionBalance `json:"keseimbangan_arah"`
	Ringkasan            LocalizedOperationalSummary `json:"ringkasan"`
	InsightAI            OperationalInsight          `json:"insight_ai"`
	RekomendasiOperasi   []string                    `json:"rekomendasi_operasi"`
	RekomendasiStrategis []string                    `json:"rekomendasi_strategis"`
}

type LocalizedAgeDistribution struct {
	RentangUsia string  `json:"rentang_usia"`
	Jumlah      int     `json:"jumlah"`
	Persentase  float64 `json:"persentase"`
}

type LocalizedOccupationDistribution struct {
	Pekerjaan  string  `json:"pekerjaan"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedGenderDistribution struct {
	Gender     string  `json:"gender"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedStationDistribution struct {
	Stasiun    string  `json:"stasiun"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedDemographicsSummary struct {
	RataUsia                float64 `json:"rata_usia"`
	PenumpangUsiaProduktif  int     `json:"penumpang_usia_produktif"`
	PersentaseUsiaProduktif float64 `json:"persentase_usia_produktif"`
	PenumpangPekerja        int     `json:"penumpang_pekerja"`
	PersentasePekerja       float64 `json:"persentase_pekerja"`
	StasiunAsalDominan      string  `json:"stasiun_asal_dominan"`
}

type DemographicsInsight struct {
	ProfilPenumpang    string `json:"profil_penumpang"`
	RasioDemografi     string `json:"rasio_demografi"`
	StasiunPrioritas   string `json:"stasiun_prioritas"`
	AnalisisPeluang    string `json:"analisis_peluang"`
	TargetPromosiUtama string `json:"target_promosi_utama"`
	FasilitasPrioritas string `json:"fasilitas_prioritas"`
}

type LocalizedDemographicsReport struct {
	Tanggal                string                            `json:"tanggal"`
	TotalPenumpang         int                               `json:"total_penumpang"`
	DistribusiUsia         []LocalizedAgeDistribution        `json:"distribusi_usia"`
	DistribusiPekerjaan    []LocalizedOccupationDistribution `json:"distribusi_pekerjaan"`
	DistribusiGender       []LocalizedGenderDistribution     `json:"distribusi_gender"`
	DistribusiStasiunAsal  []LocalizedStationDistribution    `json:"distribusi_stasiun_asal"`
	Ringkasan              LocalizedDemographicsSummary      `json:"ringkasan"`
	InsightAI              DemographicsInsight               `json:"insight_ai"`
	RekomendasiOperasional []string                          `json:"rekomendasi_operasional"`
}

type LocalizedDirectionDistribution struct {
	Arah       string  `json:"arah"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

type LocalizedTimeSegment struct {
	SegmenWaktu string  `json:"segmen_waktu"`
	Jumlah      int     `json:"jumlah"`
	Persentase  float64 `json:"persentase"`
}

type LocalizedTripSummary struct {
	StasiunAsalTerbanyak   string  `json:"stasiun_asal_terbanyak"`
	JumlahStasiunAsal      int     `json:"jumlah_stasiun_asal"`
	PersentaseStasiunAsal  float64 `json:"persentase_stasiun_asal"`
	ArahDominan            string  `json:"arah_dominan"`
	SegmenWaktuDominan     string  `json:"segmen_waktu_dominan"`
	PersentaseWaktuDominan float64 `json:"persentase_waktu_dominan"`
}

type TripInsight struct {
	PolaPerjalanan       string `json:"pola_perjalanan"`
	TipePenumpang        string `json:"tipe_penumpang"`
	RekomendasiKapasitas string `json:"rekomendasi_kapasitas"`
	AnalisisOrigin       string `json:"analisis_origin"`
}

type LocalizedTripReport struct {
	Tanggal                   string                           `json:"tanggal"`
	TotalTransaksi            int                              `json:"total_transaksi"`
	DistribusiStasiunAwal     []LocalizedStationDistribution   `json:"distribusi_stasiun_awal"`
	DistribusiArah            []LocalizedDirectionDistribution `json:"distribusi_arah"`
	DistribusiWaktuPerjalanan []LocalizedTimeSegment           `json:"distribusi_waktu_perjalanan"`
	Ringkasan                 LocalizedTripSummary             `json:"ringkasan"`
	InsightAI                 TripInsight                      `json:"insight_ai"`
	RekomendasiOperasional    []string                         `json:"rekomendasi_operasional"`
	RekomendasiStrategis      []string                         `json:"rekomendasi_strategis"`
}

type LocalizedLoyaltySegment struct {
	Segmen       string  `json:"segmen"`
	Jumlah       int     `json:"jumlah"`
	Persentase   float64 `json:"persentase"`
	FrekuensiMin int     `json:"frekuensi_min"`
	FrekuensiMax int     `json:"frekuensi_max"`
}

type LocalizedOccupationLoyalty struct {
	Pekerjaan           string  `json:"pekerjaan"`
	JumlahPenumpang     int     `json:"jumlah_penumpang"`
	RataFrekuensi       float64 `json:"rata_frekuensi"`
	PersentaseDariTotal float64 `json:"persentase_dari_total"`
}

type LocalizedLoyaltySummary struct {
	PersentaseLoyalTinggi   float64 `json:"persentase_loyal_tinggi"`
	PersentaseLoyalSedang   float64 `json:"persentase_loyal_sedang"`
	PersentaseLoyalRendah   float64 `json:"persentase_loyal_rendah"`
	JumlahLoyalTinggi       int     `json:"jumlah_loyal_tinggi"`
	JumlahLoyalSedang       int     `json:"jumlah_loyal_sedang"`
	JumlahLoyalRendah       int     `json:"jumlah_loyal_rendah"`
	PekerjaanPalingLoyal    string  `json:"pekerjaan_paling_loyal"`
	FrekuensiLoyalTertinggi float64 `json:"frekuensi_loyal_tertinggi"`
}

type LoyaltyInsight struct {
	StrategiLoyal      string `json:"strategi_loyal"`
	ProfilLoyal        string `json:"profil_loyal"`
	PekerjaanTertinggi string `json:"pekerjaan_tertinggi"`
	RekomendasiHigh    string `json:"rekomendasi_high"`
	RekomendasiMedium  string `json:"rekomendasi_medium"`
	RekomendasiLow     string `json:"rekomendasi_low"`
}

type LocalizedLoyaltyReport struct {
	Tanggal                   string                       `json:"tanggal"`
	TotalPenumpang            int                          `json:"total_penumpang"`
	SegmentasiLoyal           []LocalizedLoyaltySegment    `json:"segmentasi_loyal"`
	LoyalBerdasarkanPekerjaan []LocalizedOccupationLoyalty `json:"loyal_berdasarkan_pekerjaan"`
	Ringkasan                 LocalizedLoyaltySummary      `json:"ringkasan"`
	InsightAI                 LoyaltyInsight               `json:"insight_ai"`
	RekomendasiOperasional    []string                     `json:"rekomendasi_operasional"`
	RekomendasiStrategis      []string                     `json:"rekomendasi_strategis"`
}

type LocalizedAgeLoyalty struct {
	Usia      int     `json:"usia"`
	RataLoyal float64 `json:"rata_loyal"`
	Jumlah    int     `json:"jumlah"`
}

type LocalizedHourlyGender struct {
	Jam              int     `json:"jam"`
	JumlahPria       int     `json:"jumlah_pria"`
	JumlahWanita     int     `json:"jumlah_wanita"`
	PersentasePria   float64 `json:"persentase_pria"`
	PersentaseWanita float64 `json:"persentase_wanita"`
}

type LocalizedZonePreference struct {
	Pekerjaan   string `json:"pekerjaan"`
	JumlahUtara int    `json:"jumlah_utara"`
	JumlahBarat int    `json:"jumlah_barat"`
	Preferensi  string `json:"preferensi"`
}

type LocalizedBehaviorSummary struct {
	InsightKorelasiUsiaLoyal string  `json:"insight_korelasi_usia_loyal"`
	RataLoyalMuda            float64 `json:"rata_loyal_muda"`
	RataLoyalSenior          float64 `json:"rata_loyal_senior"`
	GenderDominanPagi        string  `json:"gender_dominan_pagi"`
	GenderDominanSore        string  `json:"gender_dominan_sore"`
	JumlahPreferensiZonaKuat int     `json:"jumlah_preferensi_zona_kuat"`
}

type FacilityByTime struct {
	Pagi string `json:"pagi"`
	Sore string `json:"sore"`
}

type ZoneAnalysis struct {
	Pola        string `json:"pola"`
	Rekomendasi string `json:"rekomendasi"`
}

type PromotionByTime struct {
	Morning string `json:"morning"`
	Sore    string `json:"sore"`
}

type BehaviorInsight struct {
	KorelasiUsia       string          `json:"korelasi_usia"`
	PolaGenderWaktu    string          `json:"pola_gender_waktu"`
	FasilitasWaktu     FacilityByTime  `json:"fasilitas_waktu"`
	AnalisisZona       ZoneAnalysis    `json:"analisis_zona"`
	RekomendasiPromosi PromotionByTime `json:"rekomendasi_promosi"`
}

type LocalizedBehaviorReport struct {
	Tanggal                 string                    `json:"tanggal"`
	KorelasiUsiaLoyal       []LocalizedAgeLoyalty     `json:"korelasi_usia_loyal"`
	DistribusiGenderPerJam  []LocalizedHourlyGender   `json:"distribusi_gender_per_jam"`
	PreferensiZonaPekerjaan []LocalizedZonePreference `json:"preferensi_zona_pekerjaan"`
	Ringkasan               LocalizedBehaviorSummary  `json:"ringkasan"`
	InsightAI               BehaviorInsight           `json:"insight_ai"`
}

// DashboardCard is one headline tile on the main dashboard. The optional
// fields vary per card.
type DashboardCard struct {
	Nilai      interface{} `json:"nilai"`
	Label      string      `json:"label"`
	Deskripsi  string      `json:"deskripsi"`
	Delta      string      `json:"delta"`
	Persentase float64     `json:"persentase,omitempty"`
	GateIDFull string      `json:"gate_id_full,omitempty"`
	Usia       float64     `json:"usia,omitempty"`
	Stasiun    string      `json:"stasiun,omitempty"`
}

type DashboardSummary struct {
	TotalTransaksi       DashboardCard `json:"total_transaksi"`
	TotalPenumpangUnik   DashboardCard `json:"total_penumpang_unik"`
	HighLoyaltyPenumpang DashboardCard `json:"high_loyalty_penumpang"`
	GateTersibuk         DashboardCard `json:"gate_tersibuk"`
	MorningPeakTraffic   DashboardCard `json:"morning_peak_traffic"`
	EveningPeakTraffic   DashboardCard `json:"evening_peak_traffic"`
	RataRataUsia         DashboardCard `json:"rata_rata_usia"`
	StasiunAsalDominan   DashboardCard `json:"stasiun_asal_dominan"`
}

type CategoryLabels struct {
	EfisiensiOperasional string `json:"efisiensi_operasional"`
	Demografi            string `json:"demografi"`
	SegmentasiPerjalanan string `json:"segmentasi_perjalanan"`
	SegmentasiLoyaltas   string `json:"segmentasi_loyaltas"`
	KorelasiPerilaku     string `json:"korelasi_perilaku"`
}

type LocalizedCategoryData struct {
	EfisiensiOperasional LocalizedOperationalReport  `json:"efisiensi_operasional"`
	Demografi            LocalizedDemographicsReport `json:"demografi"`
	SegmentasiPerjalanan LocalizedTripReport         `json:"segmentasi_perjalanan"`
	SegmentasiLoyaltas   LocalizedLoyaltyReport      `json:"segmentasi_loyaltas"`
	KorelasiPerilaku     LocalizedBehaviorReport     `json:"korelasi_perilaku"`
}

type LocalizedComposite struct {
	Tanggal          string                `json:"tanggal"`
	DashboardSummary DashboardSummary      `json:"dashboard_summary"`
	Kategori         CategoryLabels        `json:"kategori"`
	Data             LocalizedCategoryData `json:"data"`
}
