package ingest

import (
	"context"
	"fmt"

	"github.com/courseloop/veritas/internal/metrics"
	"github.com/courseloop/veritas/internal/models"
	"github.com/courseloop/veritas/internal/repository"
	"github.com/rs/zerolog/log"
)

// Service stores incoming submissions so the similarity engine can pick them
// up at report time. Submission text is kept verbatim; normalization happens
// inside the engine.
type Service struct {
	submissionsRepo *repository.SubmissionsRepository
}

func NewService(submissionsRepo *repository.SubmissionsRepository) *Service {
	return &Service{
		submissionsRepo: submissionsRepo,
	}
}

// ProcessSubmission validates and persists one submission from the stream.
func (s *Service) ProcessSubmission(ctx context.Context, submission *models.Submission) error {
	if err := validateSubmission(submission); err != nil {
		metrics.SubmissionsIngested.WithLabelValues("invalid").Inc()
		return err
	}

	if err := s.submissionsRepo.InsertSubmission(ctx, submission); err != nil {
		metrics.SubmissionsIngested.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to store submission: %w", err)
	}

	metrics.SubmissionsIngested.WithLabelValues("stored").Inc()
	log.Debug().
		Str("assignmentId", submission.AssignmentID).
		Str("studentId", submission.StudentID).
		Msg("Submission stored")

	return nil
}

func validateSubmission(submission *models.Submission) error {
	if submission.StudentID == "" {
		return fmt.Errorf("studentId is required")
	}
	if submission.AssignmentID == "" {
		return fmt.Errorf("assignmentId is required")
	}
	return nil
}
