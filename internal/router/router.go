package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/handler"
	"workspace-listing-api/internal/metrics"
	"workspace-listing-api/internal/middleware"
	"workspace-listing-api/internal/repository"
	"workspace-listing-api/internal/service"
)

// Config holds all dependencies needed to set up the router
type Config struct {
	DB                   *gorm.DB
	Logger               *zap.Logger
	BasePath             string
	Metrics              *metrics.Metrics
	IdentityCookieName   string
	IdentityCookieMaxAge time.Duration
	DefaultPageSize      int
}

// Setup creates the Gin engine with all routes and middleware registered
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.IdentityCookieName == "" {
		cfg.IdentityCookieName = "spacehub_user_id"
	}
	if cfg.IdentityCookieMaxAge <= 0 {
		cfg.IdentityCookieMaxAge = 365 * 24 * time.Hour
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(cfg.DB)
	workspaceRepo := repository.NewWorkspaceRepository(cfg.DB)
	startupPostRepo := repository.NewStartupPostRepository(cfg.DB)
	engagementRepo := repository.NewEngagementRepository(cfg.DB)

	// Initialize services
	engagementService := service.NewEngagementService(engagementRepo, workspaceRepo, startupPostRepo, cfg.Metrics, cfg.Logger)
	listingService := service.NewListingService(workspaceRepo, startupPostRepo, locationRepo, engagementRepo, cfg.Logger)

	// Initialize handlers, one engagement/comment pair per subject kind
	workspaceEngagement := handler.NewEngagementHandler(engagementService, domain.SubjectTypeWorkspace, cfg.IdentityCookieName, cfg.IdentityCookieMaxAge)
	startupPostEngagement := handler.NewEngagementHandler(engagementService, domain.SubjectTypeStartupPost, cfg.IdentityCookieName, cfg.IdentityCookieMaxAge)
	workspaceComments := handler.NewCommentHandler(engagementService, domain.SubjectTypeWorkspace, cfg.IdentityCookieName, cfg.IdentityCookieMaxAge)
	startupPostComments := handler.NewCommentHandler(engagementService, domain.SubjectTypeStartupPost, cfg.IdentityCookieName, cfg.IdentityCookieMaxAge)
	workspaceHandler := handler.NewWorkspaceHandler(listingService, cfg.DefaultPageSize)
	startupPostHandler := handler.NewStartupPostHandler(listingService, cfg.DefaultPageSize)

	// Health and metrics live at the root and under the base path so both
	// the ingress and in-cluster probes can reach them
	registerOps(r.Group(""), cfg)
	if cfg.BasePath != "" {
		registerOps(r.Group(cfg.BasePath), cfg)
	}

	api := r.Group(cfg.BasePath)
	{
		engagement := api.Group("/engagement")
		{
			engagement.GET("/workspaces/:subjectId", workspaceEngagement.GetStatus)
			engagement.POST("/workspaces/:subjectId", workspaceEngagement.Toggle)
			engagement.GET("/startup-posts/:subjectId", startupPostEngagement.GetStatus)
			engagement.POST("/startup-posts/:subjectId", startupPostEngagement.Toggle)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/workspaces/:subjectId", workspaceComments.GetComments)
			comments.POST("/workspaces/:subjectId", workspaceComments.CreateComment)
			comments.GET("/startup-posts/:subjectId", startupPostComments.GetComments)
			comments.POST("/startup-posts/:subjectId", startupPostComments.CreateComment)
		}

		api.GET("/locations/:locationId/workspaces", workspaceHandler.ListByLocation)
		api.GET("/startup-posts", startupPostHandler.List)

		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// registerOps registers the health check and prometheus endpoints on a group
func registerOps(group *gin.RouterGroup, cfg Config) {
	group.GET("/health", func(c *gin.Context) {
		status := "ok"
		dbStatus := "connected"
		if cfg.DB == nil || !pingable(cfg.DB) {
			// 앱은 살아있지만 DB 연결은 아직일 수 있음
			dbStatus = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
		})
	})

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func pingable(db *gorm.DB) bool {
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
