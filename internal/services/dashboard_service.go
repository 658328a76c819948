package services

import (
	"context"
	"sync"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
)

// DashboardRefreshInterval is how often the background worker recomputes the counters
const DashboardRefreshInterval = 15 * time.Minute

// DashboardService serves the home screen counters from an in-memory cache
type DashboardService struct {
	repo repository.StatsRepository
	loc  *time.Location
	ttl  time.Duration
	now  func() time.Time

	mu     sync.RWMutex
	cached *models.DashboardStats
}

func NewDashboardService(repo repository.StatsRepository, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{
		repo: repo,
		loc:  loc,
		ttl:  DashboardRefreshInterval,
		now:  time.Now,
	}
}

// Get returns the cached counters, computing them when the cache is empty or stale
func (s *DashboardService) Get(ctx context.Context) (*models.DashboardStats, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil && s.now().Sub(cached.AtualizadoEm) < s.ttl {
		out := *cached
		return &out, nil
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the counters and replaces the cache
func (s *DashboardService) Refresh(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, fromRepo(err)
	}
	now := s.now().In(s.loc)
	stats.MesAtual = models.MesLabel(int(now.Month())) + " / " + now.Format("2006")
	stats.AtualizadoEm = now

	s.mu.Lock()
	s.cached = stats
	s.mu.Unlock()

	out := *stats
	return &out, nil
}

// Invalidate drops the cache so the next Get recomputes
func (s *DashboardService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// RefreshJob adapts Refresh to the background worker's job signature
func (s *DashboardService) RefreshJob(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	return err
}
