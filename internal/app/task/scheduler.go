package task

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron instance and the jobs registered on it.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	logger = logger.With("system", "cron")
	c := cron.New(
		// Outermost first. Logging sits closest to the job so it sees its name.
		cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
		),
	)
	return &Scheduler{cron: c, logger: logger}
}

// Register adds job on spec, which accepts standard five-field cron lines
// and descriptors such as "@every 6h".
func (s *Scheduler) Register(spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("register %s: %w", jobName(job), err)
	}
	s.logger.Info("job registered", "job_name", jobName(job), "schedule", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.logger.Info("cron scheduler started")
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopped")
}
