// FilePath: api/resources/api.resource.alerts.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/aggregate"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/models"
)

// AlertHandlers encapsulates the alert-related HTTP handlers
type AlertHandlers struct {
	fleet *fleet.FleetService
}

// @Summary List alerts
// @Description Get the demo alerts, filterable by severity, type and hive
// @Tags alerts
// @Produce json
// @Param severity query string false "Severity filter (low|medium|high)"
// @Param type query string false "Type filter (temp|humidity|queen)"
// @Param hiveId query string false "Hive filter"
// @Param sort query string false "Set to severity to sort highest first"
// @Success 200 {array} models.Alert
// @Router /alerts [get]
func (h *AlertHandlers) ListAlerts(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	locale := requestLocale(r, h.fleet)

	var filters models.AlertFilters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid filter parameters", err).WithRequestID(requestID))
		return
	}

	alerts := h.fleet.Alerts(r.Context(), locale)
	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if filters.Match(a) {
			filtered = append(filtered, a)
		}
	}

	if r.URL.Query().Get("sort") == "severity" {
		fleet.SortAlertsBySeverity(filtered)
	}

	respondWithJSON(w, http.StatusOK, filtered)
}

// @Summary Resolve an alert
// @Description Mark a demo alert as resolved; the flag persists across reads
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 204
// @Failure 404 {object} errors.APIError
// @Router /alerts/{id}/resolve [post]
func (h *AlertHandlers) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if err := h.fleet.ResolveAlert(r.Context(), vars["id"]); err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Get a hive's alert summary
// @Description Count the hive's alerts by severity; zero-filled when none match
// @Tags hives
// @Produce json
// @Param id path string true "Hive ID"
// @Success 200 {object} models.AlertSummary
// @Router /hives/{id}/alerts/summary [get]
func (h *AlertHandlers) GetHiveAlertSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locale := requestLocale(r, h.fleet)

	alerts := h.fleet.Alerts(r.Context(), locale)
	respondWithJSON(w, http.StatusOK, aggregate.AlertSummary(alerts, vars["id"]))
}

// @Summary Get a hive's risk level
// @Description Highest alert severity present for the hive, none when alert-free
// @Tags hives
// @Produce json
// @Param id path string true "Hive ID"
// @Success 200 {object} map[string]any
// @Router /hives/{id}/risk [get]
func (h *AlertHandlers) GetHiveRisk(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locale := requestLocale(r, h.fleet)

	alerts := h.fleet.Alerts(r.Context(), locale)
	respondWithJSON(w, http.StatusOK, map[string]any{
		"hiveId":    vars["id"],
		"riskLevel": aggregate.RiskLevel(alerts, vars["id"]),
	})
}
