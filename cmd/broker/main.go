package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/paasops/glusterfs-broker/internal/api"
	"github.com/paasops/glusterfs-broker/internal/config"
	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/gluster"
	"github.com/paasops/glusterfs-broker/internal/middleware"
	"github.com/paasops/glusterfs-broker/internal/repository/postgres"
	"github.com/paasops/glusterfs-broker/internal/service"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	db, err := config.NewDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	if err := postgres.Migrate(db); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connection established")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewPostgresRepository(db)

	// Initialize the cluster side: transport, session, gateway, invoker,
	// provisioner
	glusterCfg := config.DefaultGlusterConfig()
	plans := loadPlanCatalog()

	sender := gluster.NewHTTPSender(30 * time.Second)
	sessions := gluster.NewSessionManager(sender, glusterCfg, appLogger)
	client := gluster.NewClient(sender, glusterCfg)
	invoker := gluster.NewInvoker(sessions, appLogger)
	provisioner := gluster.NewProvisioner(invoker, client, plans, repo.Instance(), glusterCfg.RoleName, appLogger)

	// Initialize services
	instanceService := service.NewInstanceService(repo, provisioner, appLogger)
	bindingService := service.NewBindingService(repo, provisioner, appLogger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)

	// Initialize server
	server := api.NewServer(
		api.NewInstanceHandler(instanceService, cfg.DashboardBaseURL),
		api.NewBindingHandler(bindingService, repo.Instance()),
		authMiddleware,
		rateLimitMiddleware,
	)

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/v2")
	server.SetupRoutes(apiGroup, cfg.GlobalRateLimit)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

func loadPlanCatalog() *domain.PlanCatalog {
	configs := config.DefaultPlanConfigs()
	plans := make([]domain.Plan, len(configs))
	for i, c := range configs {
		plans[i] = domain.Plan{ID: c.ID, QuotaBytes: c.QuotaBytes}
	}
	return domain.NewPlanCatalog(plans)
}
