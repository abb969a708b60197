// FilePath: api/resources/api.resource.locale.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
)

// LocaleHandlers encapsulates the locale HTTP handlers
type LocaleHandlers struct {
	fleet *fleet.FleetService
}

type localePayload struct {
	Locale string `json:"locale"`
}

// @Summary Get the active locale
// @Description The resolved locale for this request plus the raw stored preference
// @Tags locale
// @Produce json
// @Success 200 {object} map[string]string
// @Router /locale [get]
func (h *LocaleHandlers) GetLocale(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"locale": string(requestLocale(r, h.fleet)),
		"stored": h.fleet.LocalePreference(r.Context()),
	})
}

// @Summary Set the locale preference
// @Description Persist the language toggle; only en and es are accepted
// @Tags locale
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /locale [put]
func (h *LocaleHandlers) SetLocale(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var payload localePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	locale, err := h.fleet.SetLocale(r.Context(), payload.Locale)
	if err != nil {
		respondWithAPIError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"locale": string(locale)})
}
