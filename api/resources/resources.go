// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/analysis"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/i18n"
)

// queryDecoder decodes query strings into filter structs. Unknown keys
// are ignored so presentation-layer extras never break a request.
var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// Resources holds all HTTP resource handlers
type Resources struct {
	Fleet       *FleetHandlers
	Alerts      *AlertHandlers
	Analytics   *AnalyticsHandlers
	Map         *MapHandlers
	Locale      *LocaleHandlers
	Analysis    *AnalysisHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *fleet.FleetService, jobs *analysis.Service) *Resources {
	return &Resources{
		Fleet:       &FleetHandlers{fleet: svc},
		Alerts:      &AlertHandlers{fleet: svc},
		Analytics:   &AnalyticsHandlers{fleet: svc},
		Map:         &MapHandlers{fleet: svc},
		Locale:      &LocaleHandlers{fleet: svc},
		Analysis:    &AnalysisHandlers{jobs: jobs},
		HealthCheck: handleHealth,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}

// requestLocale resolves the locale for one request: explicit ?lang=
// override, then the persisted preference, then Accept-Language.
func requestLocale(r *http.Request, svc *fleet.FleetService) i18n.Locale {
	return svc.Locale(r.Context(), r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

// respondWithJSON writes a JSON response body with the given status.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		nuts.L.Errorf("[API] Failed to encode response: %v", err)
	}
}

// respondWithError writes a structured APIError response.
func respondWithError(w http.ResponseWriter, apiErr *errors.APIError) {
	nuts.L.Warnf("[API] %s", apiErr.Error())
	respondWithJSON(w, apiErr.Code, apiErr)
}
