// FilePath: api/resources/api.resource.map.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/aggregate"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/models"
)

// MapHandlers encapsulates the map-view HTTP handlers
type MapHandlers struct {
	fleet *fleet.FleetService
}

// @Summary Get hives grouped by apiary
// @Description Partition the merged hive list for map display, tagged demo/local/mixed
// @Tags map
// @Produce json
// @Success 200 {array} models.ApiaryGroup
// @Router /map/groups [get]
func (h *MapHandlers) GetGroups(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r, h.fleet)
	hives := h.fleet.Fleet(r.Context(), locale).Hives
	respondWithJSON(w, http.StatusOK, aggregate.GroupByApiary(hives))
}

// @Summary Take the pending map highlight
// @Description Return the cross-page handoff record and clear it; 404 when none is pending
// @Tags map
// @Produce json
// @Success 200 {object} models.MapHighlight
// @Failure 404 {object} errors.APIError
// @Router /map/highlight [get]
func (h *MapHandlers) TakeHighlight(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	if rec := h.fleet.TakeMapHighlight(r.Context()); rec != nil {
		respondWithJSON(w, http.StatusOK, rec)
		return
	}
	respondWithError(w, errors.NewNotFoundError("no pending highlight", nil).WithRequestID(requestID))
}

// @Summary Set the map highlight
// @Description Store a handoff record for the next map view load
// @Tags map
// @Accept json
// @Success 204
// @Failure 400 {object} errors.APIError
// @Router /map/highlight [post]
func (h *MapHandlers) SetHighlight(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var rec models.MapHighlight
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if rec.HiveID == "" {
		respondWithError(w, errors.NewValidationError("hiveId is required", nil).WithRequestID(requestID))
		return
	}

	if err := h.fleet.SetMapHighlight(r.Context(), rec); err != nil {
		respondWithError(w, errors.NewStorageError("failed to store highlight", err).WithRequestID(requestID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
