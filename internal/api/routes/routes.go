package routes

import (
	"fmt"

	"gotnext-backend/internal/api/handlers"
	"gotnext-backend/internal/api/middleware"
	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/config"
	"gotnext-backend/internal/logger"
	"gotnext-backend/internal/repository"
	"gotnext-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	// Initialize services
	rosterService := service.NewRosterService(sessionRepo, signupRepo, membershipRepo, profileRepo)
	sessionService := service.NewSessionService(sessionRepo, signupRepo, membershipRepo, teamRepo, profileRepo, inviteRepo, validator, cfg.MaxRepeatCount)
	teamService := service.NewTeamService(teamRepo, membershipRepo, validator)
	inviteService := service.NewInviteService(inviteRepo, membershipRepo, validator, cfg.InviteTTL())

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler, err := handlers.NewHealthHandler(db, Version)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize health handler: %w", err)
	}
	rosterHandler := handlers.NewRosterHandler(rosterService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	teamHandler := handlers.NewTeamHandler(teamService)
	inviteHandler := handlers.NewInviteHandler(inviteService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}))
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.PUT("/:id/members/:userId", teamHandler.UpdateMemberRole)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)

			teams.POST("/:id/sessions", sessionHandler.ScheduleSessions)

			teams.POST("/:id/invites", inviteHandler.CreateInvite)
			teams.POST("/:id/invites/shareable", inviteHandler.CreateShareableInvite)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("/upcoming", sessionHandler.ListUpcoming)

			sessions.POST("/:id/join", rosterHandler.Join)
			sessions.POST("/:id/leave", rosterHandler.Leave)
			sessions.POST("/:id/signups", rosterHandler.AddPlayer)
			sessions.PUT("/:id/signups/:userId", rosterHandler.SetStatus)
			sessions.DELETE("/:id/signups/:userId", rosterHandler.RemovePlayer)
		}

		invites := v1.Group("/invites")
		{
			invites.DELETE("/:id", inviteHandler.CancelInvite)
			invites.POST("/:token/accept", inviteHandler.AcceptInvite)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}
