package jobs

import (
	"context"
	"time"

	"vcg-backend/internal/config"
	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository"
	"vcg-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	positions    repository.PositionRepository
	applications repository.ApplicationRepository
	email        service.EmailService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(positions repository.PositionRepository, applications repository.ApplicationRepository, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		positions:    positions,
		applications: applications,
		email:        email,
		config:       cfg,
	}
}

// Config exposes the scheduler section for job registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// DeactivateExpiredPositions flips active off for listings whose deadline has
// passed. The deadline stays advisory for applicants: an application against
// a deactivated title is still accepted.
func (jr *JobRunner) DeactivateExpiredPositions() {
	jr.runWithRecovery("DeactivateExpiredPositions", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := jr.positions.DeactivateExpired(ctx)
		if err != nil {
			logger.Error("Failed to deactivate expired positions", "error", err)
			return
		}
		if n > 0 {
			logger.Info("Deactivated expired positions", "count", n)
		}
	})
}

// SendPendingDigest mails the admin a summary of applications still waiting
// for review.
func (jr *JobRunner) SendPendingDigest() {
	jr.runWithRecovery("SendPendingDigest", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		pending, err := jr.applications.ListByStatus(ctx, domain.ApplicationStatusPending)
		if err != nil {
			logger.Error("Failed to list pending applications", "error", err)
			return
		}
		if len(pending) == 0 {
			return
		}
		if err := jr.email.SendPendingDigest(ctx, pending); err != nil {
			logger.Error("Failed to send pending digest", "error", err)
		}
	})
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.DeactivateExpiredPositions()
}

// RunAllWeeklyJobs runs all weekly jobs (for manual execution)
func (jr *JobRunner) RunAllWeeklyJobs() {
	jr.SendPendingDigest()
}
