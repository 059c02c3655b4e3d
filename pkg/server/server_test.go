package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/transit-tools/station-insights/pkg/handlers/analytics"
	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) OperationalEfficiency(date string) domain.OperationalReport {
	args := m.Called(date)
	return args.Get(0).(domain.OperationalReport)
}

func (m *mockReportService) Demographics(date string) domain.DemographicsReport {
	args := m.Called(date)
	return args.Get(0).(domain.DemographicsReport)
}

func (m *mockReportService) TripSegmentation(date string) domain.TripReport {
	args := m.Called(date)
	return args.Get(0).(domain.TripReport)
}

func (m *mockReportService) LoyaltySegmentation(date string) domain.LoyaltyReport {
	args := m.Called(date)
	return args.Get(0).(domain.LoyaltyReport)
}

func (m *mockReportService) BehaviorCorrelation(date string) domain.BehaviorReport {
	args := m.Called(date)
	return args.Get(0).(domain.BehaviorReport)
}

func (m *mockReportService) AllData(date string) domain.CompositeReport {
	args := m.Called(date)
	return args.Get(0).(domain.CompositeReport)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	mockReports := new(mockReportService)
	router := ConfigureRouter(logger, analytics.NewHandler(mockReports))
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "OperationalEfficiency",
			path: "/api/v1/operational-efficiency?date=2025-03-01",
			setupMocks: func() {
				mockReports.On("OperationalEfficiency", "2025-03-01").
					Return(domain.OperationalReport{
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
					})
			},
			expectedStatus: http.StatusOK,
			expected: api.OperationalReport{
				Date:              "2025-03-01",
				TotalTransactions: 5000,
				TrafficPerHour: []api.HourlyTraffic{
					{Hour: 7, Count: 500, Period: "Morning Peak"},
				},
				GateUtilization: []api.GateUtilization{
					{GateID: "TAP-NORTH-001", Zone: "north", Count: 600, UtilizationRate: 12.0},
				},
				TrafficByZone: []api.ZoneTraffic{
					{Zone: "TAP-NORTH", Count: 2600, Percentage: 52.0},
				},
				BalanceDirection: []api.DirectionBalance{
					{Zone: "NORTH", Direction: "IN", Count: 1300, Percentage: 50.0},
				},
				Summary: api.OperationalSummary{
					MorningPeakTransactions: 1500,
					MorningPeakPercentage:   30.0,
					BusiestGate:             "TAP-NORTH-001",
					BusiestZone:             "TAP-NORTH",
				},
			},
			parseResponse: unmarshalResponse[api.OperationalReport](),
		},
		{
			name: "Demographics",
			path: "/api/v1/demografi",
			setupMocks: func() {
				mockReports.On("Demographics", "").
					Return(domain.DemographicsReport{
						Date:            "2025-03-02",
						TotalPassengers: 4000,
						GenderDistribution: []domain.GenderDistribution{
							{Gender: "Pria", Count: 2080, Percentage: 52.0},
							{Gender: "Wanita", Count: 1920, Percentage: 48.0},
						},
						Summary: domain.DemographicsSummary{
							AverageAge:            39.9,
							DominantOriginStation: "Bekasi",
						},
					})
			},
			expectedStatus: http.StatusOK,
			expected: api.DemographicsReport{
				Date:                      "2025-03-02",
				TotalPassengers:           4000,
				AgeDistribution:           []api.AgeDistribution{},
				OccupationDistribution:    []api.OccupationDistribution{},
				GenderDistribution: []api.GenderDistribution{
					{Gender: "Pria", Count: 2080, Percentage: 52.0},
					{Gender: "Wanita", Count: 1920, Percentage: 48.0},
				},
				OriginStationDistribution: []api.StationDistribution{},
				Summary: api.DemographicsSummary{
					AverageAge:            39.9,
					DominantOriginStation: "Bekasi",
				},
			},
			parseResponse: unmarshalResponse[api.DemographicsReport](),
		},
		{
			name: "TripSegmentation",
			path: "/api/v1/segmentasi-perjalanan",
			setupMocks: func() {
				mockReports.On("TripSegmentation", "").
					Return(domain.TripReport{
						Date:              "2025-03-02",
						TotalTransactions: 5200,
						DirectionDistribution: []domain.DirectionDistribution{
							{Direction: "IN", Count: 2652, Percentage: 51.0},
							{Direction: "OUT", Count: 2548, Percentage: 49.0},
						},
						Summary: domain.TripSummary{DominantDirection: "IN"},
					})
			},
			expectedStatus: http.StatusOK,
			expected: api.TripReport{
				Date:               "2025-03-02",
				TotalTransactions:  5200,
				OriginDistribution: []api.StationDistribution{},
				DirectionDistribution: []api.DirectionDistribution{
					{Direction: "IN", Count: 2652, Percentage: 51.0},
					{Direction: "OUT", Count: 2548, Percentage: 49.0},
				},
				TimeTravelDistribution: []api.TimeSegmentDistribution{},
				Summary:                api.TripSummary{DominantDirection: "IN"},
			},
			parseResponse: unmarshalResponse[api.TripReport](),
		},
		{
			name: "LoyaltySegmentation",
			path: "/api/v1/segmentasi-loyaltas",
			setupMocks: func() {
				mockReports.On("LoyaltySegmentation", "").
					Return(domain.LoyaltyReport{
						Date:            "2025-03-02",
						TotalPassengers: 4100,
						LoyaltySegments: []domain.LoyaltySegment{
							{Segment: "High Loyalty (≥12x)", Count: 1500, Percentage: 38.5, MinFreq: 12, MaxFreq: 14},
						},
						Summary: domain.LoyaltySummary{MostLoyalOccupation: "PNS/BUMN"},
					})
			},
			expectedStatus: http.StatusOK,
			expected: api.LoyaltyReport{
				Date:            "2025-03-02",
				TotalPassengers: 4100,
				LoyaltySegments: []api.LoyaltySegment{
					{Segment: "High Loyalty (≥12x)", Count: 1500, Percentage: 38.5, MinFreq: 12, MaxFreq: 14},
				},
				LoyaltyByOccupation: []api.OccupationLoyalty{},
				Summary:             api.LoyaltySummary{MostLoyalOccupation: "PNS/BUMN"},
			},
			parseResponse: unmarshalResponse[api.LoyaltyReport](),
		},
		{
			name: "BehaviorCorrelation",
			path: "/api/v1/behavior-correlation",
			setupMocks: func() {
				mockReports.On("BehaviorCorrelation", "").
					Return(domain.BehaviorReport{
						Date: "2025-03-02",
						AgeLoyaltyCorrelation: []domain.AgeLoyaltyCorrelation{
							{Age: 22, AvgLoyaltyFrequency: 6.5, Count: 500},
						},
						Summary: domain.BehaviorSummary{AgeLoyaltyInsight: "Positif"},
					})
			},
			expectedStatus: http.StatusOK,
			expected: api.BehaviorReport{
				Date: "2025-03-02",
				AgeLoyaltyCorrelation: []api.AgeLoyaltyCorrelation{
					{Age: 22, AvgLoyaltyFrequency: 6.5, Count: 500},
				},
				HourGenderDistribution:   []api.HourlyGenderSplit{},
				OccupationZonePreference: []api.OccupationZonePreference{},
				Summary:                  api.BehaviorSummary{AgeLoyaltyInsight: "Positif"},
			},
			parseResponse: unmarshalResponse[api.BehaviorReport](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}

	mockReports.AssertExpectations(t)
}

func TestWebAPI_AllData(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	mockReports := new(mockReportService)
	mockReports.On("AllData", "2025-03-01").
		Return(domain.CompositeReport{
			Date: "2025-03-01",
			Dashboard: domain.DashboardSummary{
				TotalTransactions:     5200,
				BusiestGate:           "TAP-NORTH-002",
				DominantOriginStation: "Bekasi",
			},
		})

	router := ConfigureRouter(logger, analytics.NewHandler(mockReports))
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/all-data?date=2025-03-01")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload api.LocalizedComposite
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "2025-03-01", payload.Tanggal)
	assert.Equal(t, float64(5200), payload.DashboardSummary.TotalTransaksi.Nilai)
	assert.Equal(t, "NORTH-002", payload.DashboardSummary.GateTersibuk.Nilai)
	assert.Equal(t, "TAP-NORTH-002", payload.DashboardSummary.GateTersibuk.GateIDFull)
	assert.Equal(t, "1️⃣ Operational Efficiency", payload.Kategori.EfisiensiOperasional)
	assert.Equal(t, "Bekasi", payload.DashboardSummary.StasiunAsalDominan.Nilai)

	mockReports.AssertExpectations(t)
}

func TestWebAPI_Health(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))
	router := ConfigureRouter(logger, analytics.NewHandler(new(mockReportService)))
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health api.Health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "station-insights", health.Service)
	assert.Equal(t, "1.0.0", health.Version)
	assert.NotEmpty(t, health.Timestamp)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
