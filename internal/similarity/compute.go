package similarity

import (
	"context"
	"fmt"
	"time"

	"github.com/courseloop/veritas/internal/infra/redis"
	"github.com/courseloop/veritas/internal/metrics"
	"github.com/courseloop/veritas/internal/models"
	"github.com/courseloop/veritas/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportJob computes one assignment's similarity report on the worker pool.
type ReportJob struct {
	AssignmentID    string
	AssignmentTitle string
	Engine          *Engine
	SubmissionsRepo *repository.SubmissionsRepository
	ReportsRepo     *repository.ReportsRepository
	RedisClient     *redis.Client
	Timeout         time.Duration
	Done            func()
}

// runContext bounds one computation when a timeout is configured, so a stuck
// storage call cannot hold a worker forever.
func (j *ReportJob) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if j.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, j.Timeout)
}

// Execute runs the report computation and releases the caller's slot when
// finished, whatever the outcome.
func (j *ReportJob) Execute(ctx context.Context) error {
	defer func() {
		if j.Done != nil {
			j.Done()
		}
	}()

	runCtx, cancel := j.runContext(ctx)
	defer cancel()

	err := ComputeReport(runCtx, j.AssignmentID, j.AssignmentTitle, j.Engine, j.SubmissionsRepo, j.ReportsRepo, j.RedisClient)
	if err != nil {
		metrics.ReportCount.WithLabelValues("failed").Inc()
		if statusErr := UpdateStatus(ctx, j.RedisClient, j.AssignmentID, models.StepFailed); statusErr != nil {
			log.Warn().Err(statusErr).Str("assignmentId", j.AssignmentID).Msg("Failed to update failed status")
		}
		return err
	}

	metrics.ReportCount.WithLabelValues("completed").Inc()
	return nil
}

// ComputeReport loads an assignment's submissions, runs the engine over
// them, and persists the resulting report. The engine itself never fails;
// errors here come only from storage.
func ComputeReport(
	ctx context.Context,
	assignmentID string,
	assignmentTitle string,
	engine *Engine,
	submissionsRepo *repository.SubmissionsRepository,
	reportsRepo *repository.ReportsRepository,
	redisClient *redis.Client,
) error {
	started := time.Now()

	if err := UpdateStatus(ctx, redisClient, assignmentID, models.StepFiltering); err != nil {
		log.Warn().Err(err).Str("assignmentId", assignmentID).Msg("Failed to update filtering status")
	}

	submissions, err := submissionsRepo.GetSubmissionsByAssignmentID(ctx, assignmentID)
	if err != nil {
		log.Error().Err(err).Str("assignmentId", assignmentID).Msg("Failed to load submissions")
		return fmt.Errorf("failed to load submissions: %w", err)
	}

	if assignmentTitle == "" && len(submissions) > 0 {
		assignmentTitle = submissions[0].AssignmentTitle
	}

	if err := UpdateStatus(ctx, redisClient, assignmentID, models.StepScoring); err != nil {
		log.Warn().Err(err).Str("assignmentId", assignmentID).Msg("Failed to update scoring status")
	}

	report := engine.CheckSubmissions(submissions, assignmentID, assignmentTitle)
	metrics.PairsCompared.Add(float64(PairCount(report.TotalSubmissionsChecked)))

	if err := reportsRepo.InsertReport(ctx, &report); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	if err := UpdateStatus(ctx, redisClient, assignmentID, models.StepCompleted); err != nil {
		log.Warn().Err(err).Str("assignmentId", assignmentID).Msg("Failed to update completed status")
	}

	metrics.ReportDuration.Observe(time.Since(started).Seconds())

	log.Info().
		Str("assignmentId", assignmentID).
		Int("submissions", len(submissions)).
		Int("checked", report.TotalSubmissionsChecked).
		Int("matches", report.FlaggedCount()).
		Int("highSeverity", report.HighSeverityCount()).
		Dur("elapsed", time.Since(started)).
		Msg("Similarity report computed")

	return nil
}
