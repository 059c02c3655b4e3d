package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/transit-tools/station-insights/pkg/models/api"
	"github.com/transit-tools/station-insights/pkg/models/domain"
	"github.com/transit-tools/station-insights/pkg/services/insight"
)

const (
	serviceName    = "station-insights"
	serviceVersion = "1.0.0"
)

// ReportService produces the category reports served by this handler.
type ReportService interface {
	OperationalEfficiency(date string) domain.OperationalReport
	Demographics(date string) domain.DemographicsReport
	TripSegmentation(date string) domain.TripReport
	LoyaltySegmentation(date string) domain.LoyaltyReport
	BehaviorCorrelation(date string) domain.BehaviorReport
	AllData(date string) domain.CompositeReport
}

type Handler struct {
	reports ReportService
}

func NewHandler(reports ReportService) *Handler {
	return &Handler{reports: reports}
}

// targetDate extracts the optional date query parameter. The value is an
// opaque label: never parsed, never rejected.
func targetDate(r *http.Request) string {
	return r.URL.Query().Get("date")
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func (h *Handler) OperationalEfficiency(w http.ResponseWriter, r *http.Request) {
	report := h.reports.OperationalEfficiency(targetDate(r))
	h.writeJSON(w, r, api.NewOperationalReport(report))
}

func (h *Handler) Demographics(w http.ResponseWriter, r *http.Request) {
	report := h.reports.Demographics(targetDate(r))
	h.writeJSON(w, r, api.NewDemographicsReport(report))
}

func (h *Handler) TripSegmentation(w http.ResponseWriter, r *http.Request) {
	report := h.reports.TripSegmentation(targetDate(r))
	h.writeJSON(w, r, api.NewTripReport(report))
}

func (h *Handler) LoyaltySegmentation(w http.ResponseWriter, r *http.Request) {
	report := h.reports.LoyaltySegmentation(targetDate(r))
	h.writeJSON(w, r, api.NewLoyaltyReport(report))
}

func (h *Handler) BehaviorCorrelation(w http.ResponseWriter, r *http.Request) {
	report := h.reports.BehaviorCorrelation(targetDate(r))
	h.writeJSON(w, r, api.NewBehaviorReport(report))
}

func (h *Handler) AllData(w http.ResponseWriter, r *http.Request) {
	composite := h.reports.AllData(targetDate(r))
	h.writeJSON(w, r, insight.Localize(composite))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, api.Health{
		Status:    "ok",
		Service:   serviceName,
		Version:   serviceVersion,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
