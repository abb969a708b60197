// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/honeyroute/honeyroute/api/resources"
	"github.com/honeyroute/honeyroute/internal/analysis"
	"github.com/honeyroute/honeyroute/internal/fleet"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *fleet.FleetService, jobs *analysis.Service) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc, jobs),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Analysis stub at the root, matching the original backend contract.
	r.router.HandleFunc("/analysis", r.resources.Analysis.StartAnalysis).Methods(http.MethodPost)
	r.router.HandleFunc("/analysis/{jobId}", r.resources.Analysis.GetAnalysis).Methods(http.MethodGet)

	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// Merged fleet
	api.HandleFunc("/fleet", r.resources.Fleet.GetFleet).Methods(http.MethodGet)

	// Apiaries
	apiaries := api.PathPrefix("/apiaries").Subrouter()
	apiaries.HandleFunc("", r.resources.Fleet.ListApiaries).Methods(http.MethodGet)
	apiaries.HandleFunc("", r.resources.Fleet.CreateApiary).Methods(http.MethodPost)
	apiaries.HandleFunc("/active", r.resources.Fleet.GetActiveApiary).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id}", r.resources.Fleet.GetApiary).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id}/health", r.resources.Fleet.GetApiaryHealth).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id}/kpis", r.resources.Fleet.GetApiaryKPIs).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id}/gauges", r.resources.Fleet.GetApiaryGauges).Methods(http.MethodGet)

	// Hives
	hives := api.PathPrefix("/hives").Subrouter()
	hives.HandleFunc("", r.resources.Fleet.ListHives).Methods(http.MethodGet)
	hives.HandleFunc("", r.resources.Fleet.CreateHive).Methods(http.MethodPost)
	hives.HandleFunc("/{id}", r.resources.Fleet.GetHive).Methods(http.MethodGet)
	hives.HandleFunc("/{id}/alerts/summary", r.resources.Alerts.GetHiveAlertSummary).Methods(http.MethodGet)
	hives.HandleFunc("/{id}/risk", r.resources.Alerts.GetHiveRisk).Methods(http.MethodGet)

	// Alerts
	alerts := api.PathPrefix("/alerts").Subrouter()
	alerts.HandleFunc("", r.resources.Alerts.ListAlerts).Methods(http.MethodGet)
	alerts.HandleFunc("/{id}/resolve", r.resources.Alerts.ResolveAlert).Methods(http.MethodPost)

	// Analytics
	api.HandleFunc("/analytics/top-hives", r.resources.Analytics.GetTopHives).Methods(http.MethodGet)
	api.HandleFunc("/analytics/overview", r.resources.Analytics.GetOverview).Methods(http.MethodGet)

	// Map
	api.HandleFunc("/map/groups", r.resources.Map.GetGroups).Methods(http.MethodGet)
	api.HandleFunc("/map/highlight", r.resources.Map.TakeHighlight).Methods(http.MethodGet)
	api.HandleFunc("/map/highlight", r.resources.Map.SetHighlight).Methods(http.MethodPost)

	// Locale
	api.HandleFunc("/locale", r.resources.Locale.GetLocale).Methods(http.MethodGet)
	api.HandleFunc("/locale", r.resources.Locale.SetLocale).Methods(http.MethodPut)

	// Analysis history for the in-app history screen
	api.HandleFunc("/analysis", r.resources.Analysis.ListRecent).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
