package similarity

import (
	"context"
	"fmt"
	"time"

	"github.com/courseloop/veritas/internal/infra/redis"
	"github.com/courseloop/veritas/internal/models"
	"github.com/rs/zerolog/log"
)

const statusTTL = 12 * time.Hour

func statusKey(assignmentID string) string {
	return "similarity_report_status:" + assignmentID
}

// UpdateStatus records the current computation step for an assignment in
// Redis so the API can answer status polls without touching MongoDB.
func UpdateStatus(ctx context.Context, redisClient *redis.Client, assignmentID string, step models.Step) error {
	validSteps := map[models.Step]bool{
		models.StepIdle:      true,
		models.StepInitiated: true,
		models.StepFiltering: true,
		models.StepScoring:   true,
		models.StepCompleted: true,
		models.StepFailed:    true,
	}
	if !validSteps[step] {
		return fmt.Errorf("unknown step: %s", step)
	}

	if err := redisClient.Set(ctx, statusKey(assignmentID), string(step), statusTTL).Err(); err != nil {
		log.Error().Err(err).
			Str("step", string(step)).
			Str("assignmentId", assignmentID).
			Msg("Failed to update status in Redis")
		return fmt.Errorf("failed to update status in Redis: %w", err)
	}

	return nil
}

// GetStatus reads the current computation step for an assignment, returning
// StepIdle when nothing has been recorded.
func GetStatus(ctx context.Context, redisClient *redis.Client, assignmentID string) (models.Step, error) {
	value, err := redisClient.Get(ctx, statusKey(assignmentID)).Result()
	if err != nil {
		if redis.IsNil(err) {
			return models.StepIdle, nil
		}
		return "", fmt.Errorf("failed to read status from Redis: %w", err)
	}
	return models.Step(value), nil
}
