package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/api/middleware"
	"github.com/linskybing/client-intake/internal/api/routes"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/internal/config/db"
	"github.com/linskybing/client-intake/internal/cron"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/storage"
)

// @title Client Intake API
// @version 1.0
// @description Questionnaire submissions, wizard sessions and admin export.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Postgres for submissions (migrated on connect), redis for wizard drafts
	db.Init()
	db.InitRedis()

	var store application.ObjectStore
	if config.MinioEnabled() {
		minioStore, err := storage.NewMinioStore(config.MinioEndpoint, config.MinioAccessKey, config.MinioSecretKey, config.MinioBucket, config.MinioUseSSL)
		if err != nil {
			log.Fatalf("Failed to init minio: %v", err)
		}
		if err := minioStore.EnsureBucket(context.Background()); err != nil {
			log.Printf("Warning: export archive disabled: %v", err)
		} else {
			store = minioStore
		}
	} else {
		log.Println("MINIO_ENDPOINT not set, exports will not be archived")
	}

	repos := repository.NewRepositories(db.DB, db.Redis, config.DraftTTL)
	services := application.New(repos, store)

	// Background tasks
	cron.StartCleanupTask(context.Background(), services.Audit, config.AuditRetention, config.AuditCleanupInterval)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
