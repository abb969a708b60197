// FilePath: api/resources/api.resource.analytics.go
package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/aggregate"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/models"
)

// AnalyticsHandlers encapsulates the analytics HTTP handlers
type AnalyticsHandlers struct {
	fleet *fleet.FleetService
}

const defaultTopHives = 4

// @Summary Get the hives with most alerts
// @Description Rank hives by alert count, descending, stable on ties
// @Tags analytics
// @Produce json
// @Param n query int false "Number of rows (default 4)"
// @Success 200 {array} models.HiveAlertCount
// @Router /analytics/top-hives [get]
func (h *AnalyticsHandlers) GetTopHives(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	locale := requestLocale(r, h.fleet)

	var params models.TopHivesParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid parameters", err).WithRequestID(requestID))
		return
	}
	if params.N <= 0 {
		params.N = defaultTopHives
	}

	alerts := h.fleet.Alerts(r.Context(), locale)
	respondWithJSON(w, http.StatusOK, aggregate.TopHivesByAlerts(alerts, params.N))
}

// @Summary Get the analytics overview
// @Description Totals over the merged fleet plus the demo alert count
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]int
// @Router /analytics/overview [get]
func (h *AnalyticsHandlers) GetOverview(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r, h.fleet)

	f := h.fleet.Fleet(r.Context(), locale)
	alerts := h.fleet.Alerts(r.Context(), locale)

	respondWithJSON(w, http.StatusOK, map[string]int{
		"apiaries": len(f.Apiaries),
		"hives":    len(f.Hives),
		"alerts":   len(alerts),
	})
}
