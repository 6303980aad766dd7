package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/courseloop/veritas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const submissionsCollection = "submissions"

type SubmissionsRepository struct {
	mongoRepo *MongoRepository
}

func NewSubmissionsRepository(mongoRepo *MongoRepository) *SubmissionsRepository {
	return &SubmissionsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *SubmissionsRepository) InsertSubmission(ctx context.Context, submission *models.Submission) error {
	submission.CreatedAt = time.Now()
	if err := r.mongoRepo.InsertOne(ctx, submissionsCollection, submission); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// GetSubmissionsByAssignmentID returns submissions in insertion order, which
// fixes the pair-generation (and therefore tie-break) order of the report.
func (r *SubmissionsRepository) GetSubmissionsByAssignmentID(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	filter := bson.M{"assignmentId": assignmentID}

	cursor, err := r.mongoRepo.FindMany(ctx, submissionsCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}

	return submissions, nil
}

func (r *SubmissionsRepository) CountSubmissionsByAssignmentID(ctx context.Context, assignmentID string) (int64, error) {
	filter := bson.M{"assignmentId": assignmentID}

	count, err := r.mongoRepo.CountDocuments(ctx, submissionsCollection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}
