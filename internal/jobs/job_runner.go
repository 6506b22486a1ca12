package jobs

import (
	"context"
	"time"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

// JobRunner coordinates scheduled maintenance work.
type JobRunner struct {
	store  repository.Store
	config *config.Config
}

func NewJobRunner(store repository.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{store: store, config: cfg}
}

// Config exposes the loaded configuration to the scheduler.
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

// SnapshotClubStats computes per-club membership and activity counts and
// stores them under today's date, replacing an earlier snapshot for the same
// day if one exists.
func (jr *JobRunner) SnapshotClubStats() {
	jr.runWithRecovery("SnapshotClubStats", func() {
		ctx := context.Background()

		stats, err := jr.store.Clubs().Stats(ctx)
		if err != nil {
			logger.Error("Failed to compute club stats", "error", err)
			return
		}

		takenOn := time.Now().UTC().Format("2006-01-02")
		if err := jr.store.Clubs().SaveStatsSnapshot(ctx, takenOn, stats); err != nil {
			logger.Error("Failed to save club stats snapshot", "taken_on", takenOn, "error", err)
			return
		}

		logger.Info("Saved club stats snapshot", "taken_on", takenOn, "clubs", len(stats))
	})
}
