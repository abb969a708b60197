// FilePath: api/resources/api.resource.fleet.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/aggregate"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/models"
)

// FleetHandlers encapsulates the fleet-related HTTP handlers
type FleetHandlers struct {
	fleet *fleet.FleetService
}

// @Summary Get the merged fleet
// @Description Get the locale-projected demo fleet merged with locally created entities
// @Tags fleet
// @Produce json
// @Param lang query string false "Locale override (en|es)"
// @Success 200 {object} demo.Fleet
// @Router /fleet [get]
func (h *FleetHandlers) GetFleet(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r, h.fleet)
	respondWithJSON(w, http.StatusOK, h.fleet.Fleet(r.Context(), locale))
}

// @Summary List apiaries
// @Description Get all apiaries in the merged fleet
// @Tags apiaries
// @Produce json
// @Success 200 {array} models.Apiary
// @Router /apiaries [get]
func (h *FleetHandlers) ListApiaries(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r, h.fleet)
	respondWithJSON(w, http.StatusOK, h.fleet.Fleet(r.Context(), locale).Apiaries)
}

// @Summary Create a new apiary
// @Description Store a new locally created apiary and make it the active one
// @Tags apiaries
// @Accept json
// @Produce json
// @Param apiary body models.Apiary true "Apiary details"
// @Success 201 {object} models.Apiary
// @Failure 400 {object} errors.APIError
// @Router /apiaries [post]
func (h *FleetHandlers) CreateApiary(w http.ResponseWriter, r *http.Request) {
	var apiary models.Apiary
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&apiary); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.fleet.CreateApiary(r.Context(), &apiary); err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, apiary)
}

// @Summary Get an apiary by ID
// @Tags apiaries
// @Produce json
// @Param id path string true "Apiary ID"
// @Success 200 {object} models.Apiary
// @Failure 404 {object} errors.APIError
// @Router /apiaries/{id} [get]
func (h *FleetHandlers) GetApiary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)
	locale := requestLocale(r, h.fleet)

	apiary, err := h.fleet.Apiary(r.Context(), locale, vars["id"])
	if err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, apiary)
}

// @Summary Get the active apiary
// @Description Get the persisted active-apiary record new hives default to
// @Tags apiaries
// @Produce json
// @Success 200 {object} models.ActiveApiary
// @Failure 404 {object} errors.APIError
// @Router /apiaries/active [get]
func (h *FleetHandlers) GetActiveApiary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	if rec := h.fleet.ActiveApiary(r.Context()); rec != nil {
		respondWithJSON(w, http.StatusOK, rec)
		return
	}
	respondWithError(w, errors.NewNotFoundError("no active apiary", nil).WithRequestID(requestID))
}

// @Summary Get an apiary's derived health
// @Description Classify the apiary from its hives: critical > attention > healthy
// @Tags apiaries
// @Produce json
// @Param id path string true "Apiary ID"
// @Success 200 {object} map[string]any
// @Router /apiaries/{id}/health [get]
func (h *FleetHandlers) GetApiaryHealth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locale := requestLocale(r, h.fleet)

	hives := h.fleet.ApiaryHives(r.Context(), locale, vars["id"])
	respondWithJSON(w, http.StatusOK, map[string]any{
		"apiaryId":  vars["id"],
		"status":    aggregate.ClassifyApiary(hives),
		"hiveCount": len(hives),
	})
}

// @Summary Get an apiary's KPI gauges
// @Description Deterministic synthetic gauges derived from the hive count
// @Tags apiaries
// @Produce json
// @Param id path string true "Apiary ID"
// @Success 200 {array} models.KPI
// @Router /apiaries/{id}/kpis [get]
func (h *FleetHandlers) GetApiaryKPIs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locale := requestLocale(r, h.fleet)

	hives := h.fleet.ApiaryHives(r.Context(), locale, vars["id"])
	respondWithJSON(w, http.StatusOK, aggregate.BuildKPIs(len(hives), locale))
}

// @Summary Get an apiary's advanced gauges
// @Description Randomized demo gauges, fresh values on every request
// @Tags apiaries
// @Produce json
// @Param id path string true "Apiary ID"
// @Success 200 {object} models.AdvancedGauges
// @Router /apiaries/{id}/gauges [get]
func (h *FleetHandlers) GetApiaryGauges(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, aggregate.BuildAdvancedGauges())
}

// @Summary List hives
// @Description Get all hives in the merged fleet
// @Tags hives
// @Produce json
// @Success 200 {array} models.Hive
// @Router /hives [get]
func (h *FleetHandlers) ListHives(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r, h.fleet)
	respondWithJSON(w, http.StatusOK, h.fleet.Fleet(r.Context(), locale).Hives)
}

// @Summary Create a new hive
// @Description Store a new locally created hive under an existing apiary
// @Tags hives
// @Accept json
// @Produce json
// @Param hive body models.Hive true "Hive details"
// @Success 201 {object} models.Hive
// @Failure 400 {object} errors.APIError
// @Router /hives [post]
func (h *FleetHandlers) CreateHive(w http.ResponseWriter, r *http.Request) {
	var hive models.Hive
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&hive); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.fleet.CreateHive(r.Context(), &hive); err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, hive)
}

// @Summary Get a hive by ID
// @Tags hives
// @Produce json
// @Param id path string true "Hive ID"
// @Success 200 {object} models.Hive
// @Failure 404 {object} errors.APIError
// @Router /hives/{id} [get]
func (h *FleetHandlers) GetHive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)
	locale := requestLocale(r, h.fleet)

	hive, err := h.fleet.Hive(r.Context(), locale, vars["id"])
	if err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, hive)
}

// respondWithAPIError maps a service error onto the wire, defaulting to
// an internal error for anything untyped.
func respondWithAPIError(w http.ResponseWriter, err error, requestID string) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError("unexpected error", err).WithRequestID(requestID))
}
