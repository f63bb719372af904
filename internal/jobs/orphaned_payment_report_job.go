package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
)

type StalePaymentLister interface {
	Handle(ctx context.Context, query queries.ListStalePaymentsQuery) ([]queries.StalePaymentResponse, error)
}

// OrphanReport summarises one run.
type OrphanReport struct {
	Checked  int
	Orphaned []string
	Failed   int
}

// OrphanedPaymentReportJob asks PayPay about every payment still waiting for
// shipment and older than minAge, and logs a warning for each one PayPay does
// not know.
type OrphanedPaymentReportJob struct {
	payments  StalePaymentLister
	gateway   ports.PaymentGateway
	schedule  string
	minAge    time.Duration
	batchSize int

	cron   *cron.Cron
	logger *zap.Logger
	now    func() time.Time
}

func NewOrphanedPaymentReportJob(
	payments StalePaymentLister,
	gateway ports.PaymentGateway,
	schedule string,
	minAge time.Duration,
	batchSize int,
	logger *zap.Logger,
) *OrphanedPaymentReportJob {
	return &OrphanedPaymentReportJob{
		payments:  payments,
		gateway:   gateway,
		schedule:  schedule,
		minAge:    minAge,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "orphaned_payment_report_job")),
		now:       time.Now,
	}
}

func (j *OrphanedPaymentReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Orphaned payment report failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphaned payment report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running report to finish.
func (j *OrphanedPaymentReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphaned payment report job stopped")
}

// RunOnce checks one batch. A gateway failure for a single payment is logged
// and counted, and the batch continues.
func (j *OrphanedPaymentReportJob) RunOnce(ctx context.Context) (OrphanReport, error) {
	query, err := queries.NewListStalePaymentsQuery(j.now().Add(-j.minAge), j.batchSize)
	if err != nil {
		return OrphanReport{}, err
	}

	stale, err := j.payments.Handle(ctx, query)
	if err != nil {
		return OrphanReport{}, err
	}

	report := OrphanReport{Checked: len(stale)}
	for _, p := range stale {
		details, err := j.gateway.GetPaymentDetails(ctx, p.MerchantPaymentID)
		if err != nil {
			report.Failed++
			j.logger.Warn("Could not check payment with gateway",
				zap.String("merchant_payment_id", p.MerchantPaymentID),
				zap.Error(err))
			continue
		}
		if details == nil {
			report.Orphaned = append(report.Orphaned, p.MerchantPaymentID)
			j.logger.Warn("Payment unknown to gateway",
				zap.Int64("payment_id", p.PaymentID),
				zap.String("merchant_payment_id", p.MerchantPaymentID),
				zap.Time("created_at", p.CreatedAt))
		}
	}

	if report.Checked > 0 {
		j.logger.Info("Orphaned payment report finished",
			zap.Int("checked", report.Checked),
			zap.Int("orphaned", len(report.Orphaned)),
			zap.Int("failed", report.Failed))
	}
	return report, nil
}
