// FilePath: internal/analysis/analysis.go

// Package analysis implements the stub image-analysis backend: a created
// job completes instantly with a canned medium risk. Jobs are held in a
// TTL cache so abandoned ids age out on their own.
package analysis

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/internal/models"
)

type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusDone       JobStatus = "done"
	StatusError      JobStatus = "error"
)

type Job struct {
	ID        string           `json:"jobId"`
	Status    JobStatus        `json:"status"`
	RiskLevel models.RiskLevel `json:"riskLevel,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Service owns the job store.
type Service struct {
	jobs *cache.Cache

	mu     sync.Mutex
	recent []string // newest first, capped
}

const recentCap = 20

// NewService creates the stub service. Jobs expire after ttl.
func NewService(ttl time.Duration) *Service {
	return &Service{
		jobs: cache.New(ttl, ttl/2),
	}
}

// StartJob creates a job that is already done with a medium risk level.
// Uploaded payloads are ignored; this backend simulates analysis, it
// does not perform it.
func (s *Service) StartJob() *Job {
	job := &Job{
		ID:        nuts.NID("anl", 12),
		Status:    StatusDone,
		RiskLevel: models.RiskMedium,
		CreatedAt: time.Now(),
	}
	s.jobs.SetDefault(job.ID, job)

	s.mu.Lock()
	s.recent = append([]string{job.ID}, s.recent...)
	if len(s.recent) > recentCap {
		s.recent = s.recent[:recentCap]
	}
	s.mu.Unlock()

	nuts.L.Infof("[Analysis] Created stub job %s", job.ID)
	return job
}

// Job returns the stored job record, or false for unknown/expired ids.
func (s *Service) Job(id string) (*Job, bool) {
	v, ok := s.jobs.Get(id)
	if !ok {
		return nil, false
	}
	job, ok := v.(*Job)
	return job, ok
}

// RecentJobs lists the most recently created jobs still in the cache,
// newest first.
func (s *Service) RecentJobs() []*Job {
	s.mu.Lock()
	ids := make([]string, len(s.recent))
	copy(ids, s.recent)
	s.mu.Unlock()

	out := make([]*Job, 0, len(ids))
	for _, id := range ids {
		if job, ok := s.Job(id); ok {
			out = append(out, job)
		}
	}
	return out
}
