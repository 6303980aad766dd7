package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// RetryHandler retries message processing with exponential backoff and parks
// messages that keep failing on a dead-letter list.
type RetryHandler struct {
	client        *redis.Client
	deadLetterKey string
}

func NewRetryHandler(client *redis.Client, deadLetterKey string) *RetryHandler {
	return &RetryHandler{
		client:        client,
		deadLetterKey: deadLetterKey,
	}
}

// RetryWithBackoff runs fn up to maxAttempts times. After the final failure
// the original message is appended to the dead-letter list so it is never
// silently lost.
func (h *RetryHandler) RetryWithBackoff(ctx context.Context, fn func() error, messageID string, fields map[string]interface{}) error {
	backoff := initialBackoff

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		log.Warn().
			Err(lastErr).
			Str("message_id", messageID).
			Int("attempt", attempt).
			Msg("Message processing failed")

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	if err := h.sendToDeadLetter(ctx, messageID, fields, lastErr); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("Failed to park message on dead-letter list")
	}

	return fmt.Errorf("message %s failed after %d attempts: %w", messageID, maxAttempts, lastErr)
}

func (h *RetryHandler) sendToDeadLetter(ctx context.Context, messageID string, fields map[string]interface{}, cause error) error {
	entry := map[string]interface{}{
		"message_id": messageID,
		"fields":     fields,
		"error":      cause.Error(),
		"failed_at":  time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal dead-letter entry: %w", err)
	}

	if err := h.client.RPush(ctx, h.deadLetterKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push dead-letter entry: %w", err)
	}

	log.Info().
		Str("message_id", messageID).
		Str("dead_letter_key", h.deadLetterKey).
		Msg("Message parked on dead-letter list")

	return nil
}
