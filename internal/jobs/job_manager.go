package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"storefront/internal/core/ports"
)

const (
	DefaultOrphanReportSchedule = "0 */15 * * * *"
	DefaultOrphanReportMinAge   = time.Hour
	DefaultOrphanReportBatch    = 100
)

type Config struct {
	OrphanReportEnabled  bool
	OrphanReportSchedule string
	OrphanReportMinAge   time.Duration
	OrphanReportBatch    int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orphanedPaymentReportJob *OrphanedPaymentReportJob
	logger                   *zap.Logger
}

// NewJobManager creates the enabled jobs. Zero config values fall back to the defaults.
func NewJobManager(
	cfg Config,
	stalePayments StalePaymentLister,
	gateway ports.PaymentGateway,
	logger *zap.Logger,
) *JobManager {
	jm := &JobManager{logger: logger}

	if cfg.OrphanReportEnabled {
		schedule := cfg.OrphanReportSchedule
		if schedule == "" {
			schedule = DefaultOrphanReportSchedule
		}
		minAge := cfg.OrphanReportMinAge
		if minAge <= 0 {
			minAge = DefaultOrphanReportMinAge
		}
		batch := cfg.OrphanReportBatch
		if batch <= 0 {
			batch = DefaultOrphanReportBatch
		}
		jm.orphanedPaymentReportJob = NewOrphanedPaymentReportJob(stalePayments, gateway, schedule, minAge, batch, logger)
	}

	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.orphanedPaymentReportJob == nil {
		jm.logger.Info("No scheduled jobs enabled")
		return nil
	}

	if err := jm.orphanedPaymentReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned payment report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orphanedPaymentReportJob != nil {
		jm.orphanedPaymentReportJob.Stop()
	}
}
