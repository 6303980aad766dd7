package api

import (
	"github.com/courseloop/veritas/internal/config"
	"github.com/courseloop/veritas/internal/infra/redis"
	"github.com/courseloop/veritas/internal/repository"
	"github.com/courseloop/veritas/internal/similarity"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	engine *similarity.Engine,
	submissionsRepo *repository.SubmissionsRepository,
	reportsRepo *repository.ReportsRepository,
	workerPool *similarity.WorkerPool,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	handler := NewHandler(cfg, engine, submissionsRepo, reportsRepo, workerPool, redisClient)

	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	router.Use(MetricsMiddleware())
	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/reports", handler.CheckAssignment)
		api.GET("/reports/:assignmentId", handler.GetReport)
		api.GET("/reports/:assignmentId/status", handler.GetStatus)
	}

	return router
}
