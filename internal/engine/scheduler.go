package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/watch-price-tracker/internal/metrics"
	"github.com/donaldgifford/watch-price-tracker/internal/store"
)

// JobCleanup is the job name recorded in job_runs for retention cleanup.
const JobCleanup = "cleanup"

const defaultStaleJobTimeout = 2 * time.Hour

// Scheduler runs retention cleanup on a cron schedule. Every run takes a
// scheduler lock so only one replica executes it, and is recorded in job_runs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
	holder string

	retention       time.Duration
	staleJobTimeout time.Duration
	cleanupEntryID  cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
// A zero staleJobTimeout uses the default of two hours.
func NewScheduler(
	eng *Engine,
	s store.Store,
	cleanupInterval time.Duration,
	retention time.Duration,
	staleJobTimeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if staleJobTimeout <= 0 {
		staleJobTimeout = defaultStaleJobTimeout
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}

	sched := &Scheduler{
		cron:            cron.New(),
		engine:          eng,
		store:           s,
		log:             log,
		holder:          fmt.Sprintf("%s-%d", host, os.Getpid()),
		retention:       retention,
		staleJobTimeout: staleJobTimeout,
	}

	id, err := sched.cron.AddFunc("@every "+cleanupInterval.String(), sched.runCleanup)
	if err != nil {
		return nil, fmt.Errorf("scheduling cleanup: %w", err)
	}
	sched.cleanupEntryID = id

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next cleanup time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	entry := s.cron.Entry(s.cleanupEntryID)
	if !entry.Next.IsZero() {
		metrics.SchedulerNextCleanupTimestamp.Set(float64(entry.Next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs left 'running' by a crashed process,
// and fails uploads that never finished. Called once at startup.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, s.staleJobTimeout)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
	} else if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}

	n, err = s.store.RecoverStaleUploads(ctx, s.staleJobTimeout)
	if err != nil {
		s.log.Error("recovering stale uploads failed", "error", err)
	} else if n > 0 {
		s.log.Warn("marked interrupted uploads as failed", "count", n)
	}
}

// RunCleanup runs the retention cleanup job now.
func (s *Scheduler) RunCleanup(ctx context.Context) error {
	return s.runJob(ctx, JobCleanup, s.staleJobTimeout, func(ctx context.Context) (int, error) {
		return s.engine.Cleanup(ctx, s.retention)
	})
}

func (s *Scheduler) runCleanup() {
	defer s.SyncNextRunTimestamps()

	s.log.Info("scheduled cleanup starting")
	if err := s.RunCleanup(context.Background()); err != nil {
		s.log.Error("scheduled cleanup failed", "error", err)
	}
}

// runJob wraps fn with the scheduler lock and a job_runs record. A run that
// cannot take the lock is skipped without error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	ok, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !ok {
		s.log.Info("job locked by another holder, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Error("releasing scheduler lock failed", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("recording job run for %s: %w", name, err)
	}

	rows, jobErr := fn(ctx)

	status, errText := "succeeded", ""
	if jobErr != nil {
		status, errText = "failed", jobErr.Error()
	}
	if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}
