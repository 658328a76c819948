package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sjperalta/frequencia-api/pkg/logger"
)

// ErrStopped is returned when a job is submitted after Shutdown
var ErrStopped = errors.New("worker stopped")

// Job represents a background task
type Job func(ctx context.Context) error

// Worker runs named background jobs: queued jobs on a fixed pool, bounded
// fire-and-forget jobs, and jobs scheduled at fixed intervals.
type Worker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	queue    chan namedJob
	asyncSem chan struct{}
	stop     chan struct{}

	mu      sync.RWMutex
	stopped bool
	stats   WorkerStats
}

type namedJob struct {
	name string
	run  Job
}

// WorkerStats holds statistics about the worker.
// CompletedJobs counts every finished job; FailedJobs is a subset of it.
type WorkerStats struct {
	ActiveJobs    int              `json:"active_jobs"`
	CompletedJobs int64            `json:"completed_jobs"`
	FailedJobs    int64            `json:"failed_jobs"`
	QueueLength   int              `json:"queue_length"`
	MaxConcurrent int              `json:"max_concurrent"`
	LastRun       map[string]int64 `json:"last_run,omitempty"`
}

// NewWorker creates a worker with numWorkers queue processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:      ctx,
		cancel:   cancel,
		queue:    make(chan namedJob, 100),
		asyncSem: make(chan struct{}, asyncLimit),
		stop:     make(chan struct{}),
		stats: WorkerStats{
			MaxConcurrent: asyncLimit,
			LastRun:       make(map[string]int64),
		},
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue hands a job to the pool. When the queue is full the job runs inline.
func (w *Worker) Enqueue(name string, job Job) error {
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return ErrStopped
	}
	select {
	case w.queue <- namedJob{name: name, run: job}:
		w.mu.RUnlock()
		return nil
	default:
	}
	w.mu.RUnlock()

	logger.Warn("job queue full, running inline", slog.String("job", name))
	w.run(name, job)
	return nil
}

// EnqueueAsync runs a job in its own goroutine, bounded by a semaphore
func (w *Worker) EnqueueAsync(name string, job Job) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrStopped
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		select {
		case w.asyncSem <- struct{}{}:
		case <-w.ctx.Done():
			return
		}
		defer func() { <-w.asyncSem }()
		w.run(name, job)
	}()
	return nil
}

// ScheduleEvery runs a job at fixed intervals, first after one interval
func (w *Worker) ScheduleEvery(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, false, job)
}

// ScheduleEveryImmediate runs a job once at startup, then at fixed intervals
func (w *Worker) ScheduleEveryImmediate(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, true, job)
}

func (w *Worker) schedule(name string, interval time.Duration, immediate bool, job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if immediate {
			w.run(name, job)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.stop:
				return
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run(name, job)
			}
		}
	}()
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case j, ok := <-w.queue:
			if !ok {
				return
			}
			w.run(j.name, j.run)
		}
	}
}

// run executes one job with panic recovery and bookkeeping
func (w *Worker) run(name string, job Job) {
	w.trackStart()
	start := time.Now()
	failed := false

	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panic", slog.String("job", name), slog.Any("panic", r))
			failed = true
		}
		w.trackEnd(name, failed)
	}()

	if err := job(w.ctx); err != nil {
		logger.Error("job failed", slog.String("job", name), slog.String("error", err.Error()))
		failed = true
		return
	}
	logger.Debug("job completed", slog.String("job", name), slog.Duration("elapsed", time.Since(start)))
}

// Shutdown stops accepting jobs and waits for running ones, up to ctx's deadline
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stop)
	close(w.queue)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		// queued jobs drain before the context is cancelled
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.cancel()
		return nil
	case <-ctx.Done():
		w.cancel()
		return fmt.Errorf("worker shutdown: %w", ctx.Err())
	}
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns a snapshot of the worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.LastRun = make(map[string]int64, len(w.stats.LastRun))
	for k, v := range w.stats.LastRun {
		stats.LastRun[k] = v
	}
	return stats
}

func (w *Worker) trackStart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackEnd(name string, failed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
	if failed {
		w.stats.FailedJobs++
	}
	w.stats.LastRun[name] = time.Now().Unix()
}
