// FilePath: internal/analysis/analysis_test.go
package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeyroute/honeyroute/internal/models"
)

func TestStartJobCompletesImmediately(t *testing.T) {
	t.Parallel()
	svc := NewService(time.Hour)

	job := svc.StartJob()
	require.NotNil(t, job)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, StatusDone, job.Status)
	assert.Equal(t, models.RiskMedium, job.RiskLevel)

	got, ok := svc.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, StatusDone, got.Status)
}

func TestJobUnknownID(t *testing.T) {
	t.Parallel()
	svc := NewService(time.Hour)

	_, ok := svc.Job("anl_nosuchjob")
	assert.False(t, ok)
}

func TestRecentJobsNewestFirst(t *testing.T) {
	t.Parallel()
	svc := NewService(time.Hour)

	first := svc.StartJob()
	second := svc.StartJob()
	third := svc.StartJob()

	recent := svc.RecentJobs()
	require.Len(t, recent, 3)
	assert.Equal(t, third.ID, recent[0].ID)
	assert.Equal(t, second.ID, recent[1].ID)
	assert.Equal(t, first.ID, recent[2].ID)
}

func TestRecentJobsCapped(t *testing.T) {
	t.Parallel()
	svc := NewService(time.Hour)

	for i := 0; i < recentCap+5; i++ {
		svc.StartJob()
	}
	assert.Len(t, svc.RecentJobs(), recentCap)
}

func TestJobsExpire(t *testing.T) {
	t.Parallel()
	svc := NewService(20 * time.Millisecond)

	job := svc.StartJob()
	_, ok := svc.Job(job.ID)
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = svc.Job(job.ID)
	assert.False(t, ok)
	assert.Empty(t, svc.RecentJobs())
}
