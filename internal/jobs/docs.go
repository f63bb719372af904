// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(cfg, staleHandler, gateway, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrphanedPaymentReportJob looks for orders whose database rows were committed
// but whose QR code PayPay never created, which happens when the gateway call
// fails after checkout commits. It only reports them; nothing is changed.
// The job is disabled unless Config.OrphanReportEnabled is set.
package jobs
