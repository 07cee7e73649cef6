package scheduler

import (
	"sync"
	"time"

	"github.com/coursecast/coursecast/internal/worker"
)

// Scheduler runs jobs on fixed intervals by enqueueing them to a worker pool.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The ticker goroutine
// starts immediately and blocks while the pool queue is full, so a slow pool
// backpressures the schedule instead of piling up work.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for the ticker goroutines to exit.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
