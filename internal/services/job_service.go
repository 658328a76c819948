package services

import (
	"github.com/sjperalta/frequencia-api/internal/jobs"
)

type JobService struct {
	worker *jobs.Worker
}

func NewJobService(worker *jobs.Worker) *JobService {
	return &JobService{
		worker: worker,
	}
}

// GetStatus reports the background worker counters and the last run of each named job
func (s *JobService) GetStatus() jobs.WorkerStats {
	return s.worker.GetStats()
}
