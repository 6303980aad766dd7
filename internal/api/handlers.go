package api

import (
	"net/http"

	"github.com/courseloop/veritas/internal/config"
	"github.com/courseloop/veritas/internal/infra/redis"
	"github.com/courseloop/veritas/internal/models"
	"github.com/courseloop/veritas/internal/repository"
	"github.com/courseloop/veritas/internal/similarity"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler holds dependencies for handlers
type Handler struct {
	cfg             *config.Config
	engine          *similarity.Engine
	submissionsRepo *repository.SubmissionsRepository
	reportsRepo     *repository.ReportsRepository
	workerPool      *similarity.WorkerPool
	redisClient     *redis.Client
	computeSem      chan struct{} // Semaphore for bounded concurrency
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	engine *similarity.Engine,
	submissionsRepo *repository.SubmissionsRepository,
	reportsRepo *repository.ReportsRepository,
	workerPool *similarity.WorkerPool,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		cfg:             cfg,
		engine:          engine,
		submissionsRepo: submissionsRepo,
		reportsRepo:     reportsRepo,
		workerPool:      workerPool,
		redisClient:     redisClient,
		computeSem:      make(chan struct{}, cfg.MaxConcurrentReports),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// CheckAssignment enqueues a similarity run over all submissions stored for
// one assignment and answers 202 immediately.
func (h *Handler) CheckAssignment(c *gin.Context) {
	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()
	count, err := h.submissionsRepo.CountSubmissionsByAssignmentID(ctx, req.AssignmentID)
	if err != nil {
		log.Error().Err(err).Str("assignmentId", req.AssignmentID).Msg("Failed to check submissions")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to check submissions",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if count == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No submissions found for assignmentId",
			Code:  "ASSIGNMENT_NOT_FOUND",
		})
		return
	}

	// Acquire semaphore (bounded concurrency)
	select {
	case h.computeSem <- struct{}{}:
	case <-ctx.Done():
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
			Error: "Request cancelled",
			Code:  "REQUEST_TIMEOUT",
		})
		return
	}

	if err := similarity.UpdateStatus(ctx, h.redisClient, req.AssignmentID, models.StepInitiated); err != nil {
		log.Warn().Err(err).Str("assignmentId", req.AssignmentID).Msg("Failed to update initiated status")
	}

	job := &similarity.ReportJob{
		AssignmentID:    req.AssignmentID,
		AssignmentTitle: req.AssignmentTitle,
		Engine:          h.engine,
		SubmissionsRepo: h.submissionsRepo,
		ReportsRepo:     h.reportsRepo,
		RedisClient:     h.redisClient,
		Timeout:         h.cfg.ComputationTimeout,
		Done:            func() { <-h.computeSem },
	}

	if err := h.workerPool.Submit(job); err != nil {
		<-h.computeSem
		log.Error().Err(err).Str("assignmentId", req.AssignmentID).Msg("Failed to submit report job")
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Service is shutting down",
			Code:  "UNAVAILABLE",
		})
		return
	}

	c.JSON(http.StatusAccepted, models.CheckResponse{
		Step:         models.StepInitiated,
		AssignmentID: req.AssignmentID,
	})
}

// GetReport returns the most recent report for an assignment.
func (h *Handler) GetReport(c *gin.Context) {
	assignmentID := c.Param("assignmentId")

	report, err := h.reportsRepo.GetLatestReportByAssignmentID(c.Request.Context(), assignmentID)
	if err != nil {
		log.Error().Err(err).Str("assignmentId", assignmentID).Msg("Failed to load report")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load report",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No report found for assignmentId",
			Code:  "REPORT_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":              report,
		"flaggedCount":        report.FlaggedCount(),
		"highSeverityCount":   report.HighSeverityCount(),
		"mediumSeverityCount": report.MediumSeverityCount(),
		"lowSeverityCount":    report.LowSeverityCount(),
	})
}

// GetStatus returns the current computation step for an assignment.
func (h *Handler) GetStatus(c *gin.Context) {
	assignmentID := c.Param("assignmentId")

	step, err := similarity.GetStatus(c.Request.Context(), h.redisClient, assignmentID)
	if err != nil {
		log.Error().Err(err).Str("assignmentId", assignmentID).Msg("Failed to read status")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to read status",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		AssignmentID: assignmentID,
		Step:         step,
	})
}
