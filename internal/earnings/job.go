package earnings

import (
	"context"
	"time"

	"github.com/coursecast/coursecast/internal/logger"
)

// ReconcileJob refreshes the denormalized earnings and purchase counters
// from the ledger. Safe to run on any interval.
type ReconcileJob struct {
	service Service
}

// NewReconcileJob creates a new reconcile job
func NewReconcileJob(service Service) *ReconcileJob {
	return &ReconcileJob{service: service}
}

// Process runs a single reconciliation pass
func (j *ReconcileJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	if err := j.service.ReconcileCounters(ctx); err != nil {
		log.Error("Earnings reconcile job failed", "error", err)
		return err
	}

	log.Info("Earnings reconcile job completed", "duration", time.Since(start))
	return nil
}
