package royalty

import (
	"context"
	"time"

	"github.com/coursecast/coursecast/internal/logger"
)

// DistributionJob distributes the previous calendar month's pool when
// run. Scheduled monthly; re-runs are harmless because distribution
// replaces rather than appends.
type DistributionJob struct {
	service Service
	now     func() time.Time
}

// NewDistributionJob creates a new distribution job
func NewDistributionJob(service Service) *DistributionJob {
	return &DistributionJob{service: service, now: time.Now}
}

// Process executes the distribution for the previous month
func (j *DistributionJob) Process(ctx context.Context) error {
	month := PreviousMonth(j.now())
	log := logger.FromContext(ctx)

	start := time.Now()
	result, err := j.service.DistributeMonth(ctx, month)
	if err != nil {
		log.Error("Royalty distribution job failed", "month", month, "error", err)
		return err
	}

	log.Info("Royalty distribution job completed",
		"month", month, "paidCents", result.PaidCents, "duration", time.Since(start))
	return nil
}
