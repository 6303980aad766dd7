package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/courseloop/veritas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reportsCollection = "similarity_reports"

type ReportsRepository struct {
	mongoRepo *MongoRepository
}

func NewReportsRepository(mongoRepo *MongoRepository) *ReportsRepository {
	return &ReportsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ReportsRepository) InsertReport(ctx context.Context, report *models.Report) error {
	report.CreatedAt = time.Now()

	if err := r.mongoRepo.InsertOne(ctx, reportsCollection, report); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

func (r *ReportsRepository) GetLatestReportByAssignmentID(ctx context.Context, assignmentID string) (*models.Report, error) {
	filter := bson.M{"assignmentId": assignmentID}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var report models.Report
	err := r.mongoRepo.FindOne(ctx, reportsCollection, filter, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return &report, nil
}
