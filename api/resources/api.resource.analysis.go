// FilePath: api/resources/api.resource.analysis.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/honeyroute/honeyroute/internal/analysis"
)

// AnalysisHandlers encapsulates the stub analysis backend handlers.
// The contract here is fixed: clients poll GET after POST, and an
// unknown job id answers with a 200 {"status":"error"} body rather
// than a 404, because that is what the original backend did.
type AnalysisHandlers struct {
	jobs *analysis.Service
}

// @Summary Start an analysis job
// @Description Create a stub job; it completes immediately with a medium risk level
// @Tags analysis
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Router /analysis [post]
func (h *AnalysisHandlers) StartAnalysis(w http.ResponseWriter, r *http.Request) {
	job := h.jobs.StartJob()
	respondWithJSON(w, http.StatusCreated, map[string]string{"jobId": job.ID})
}

// @Summary Get an analysis job
// @Description Get the stored job record; unknown ids yield {"status":"error"}
// @Tags analysis
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} analysis.Job
// @Router /analysis/{jobId} [get]
func (h *AnalysisHandlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	job, ok := h.jobs.Job(vars["jobId"])
	if !ok {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": string(analysis.StatusError)})
		return
	}

	respondWithJSON(w, http.StatusOK, job)
}

// @Summary List recent analysis jobs
// @Description Most recently created jobs still retained, newest first
// @Tags analysis
// @Produce json
// @Success 200 {array} analysis.Job
// @Router /analysis [get]
func (h *AnalysisHandlers) ListRecent(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.jobs.RecentJobs())
}
