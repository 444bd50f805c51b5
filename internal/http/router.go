package http

import (
	"time"

	"github.com/collabmatch/backend/internal/config"
	"github.com/collabmatch/backend/internal/http/handlers"
	"github.com/collabmatch/backend/internal/middleware"
	"github.com/collabmatch/backend/internal/rbac"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	campaignHandler *handlers.CampaignHandler,
	applicationHandler *handlers.ApplicationHandler,
	metaHandler *handlers.MetaHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	api.Get("/meta/categories", metaHandler.GetCategories)
	api.Get("/meta/company-sizes", metaHandler.GetCompanySizes)
	api.Get("/meta/audience-sizes", metaHandler.GetAudienceSizes)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", userHandler.GetMe)
	protected.Post("/me/ping", userHandler.Ping)

	// Profiles
	protected.Post("/profile", middleware.RequirePermission(rbac.PermCreateProfile), profileHandler.CreateProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
	protected.Get("/profile", profileHandler.MyProfile)
	protected.Get("/profiles/:id", profileHandler.GetProfile)
	protected.Get("/companies", profileHandler.ListCompanies)
	protected.Get("/influencers", profileHandler.ListInfluencers)

	// Campaigns
	protected.Post("/campaigns", middleware.RequirePermission(rbac.PermCreateCampaign), campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", middleware.RequirePermission(rbac.PermEditCampaign), campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", middleware.RequirePermission(rbac.PermEditCampaign), campaignHandler.UpdateCampaign)
	protected.Get("/campaigns/:id/influencers", middleware.RequirePermission(rbac.PermEditCampaign), campaignHandler.MatchingInfluencers)
	protected.Post("/campaigns/:id/comments", middleware.RequirePermission(rbac.PermComment), campaignHandler.AddComment)
	protected.Post("/campaigns/:id/like", middleware.RequirePermission(rbac.PermLikeCampaign), campaignHandler.ToggleLike)

	// Applications
	protected.Post("/campaigns/:id/apply", middleware.RequirePermission(rbac.PermApply), applicationHandler.Apply)
	protected.Get("/campaigns/:id/applications", middleware.RequirePermission(rbac.PermViewApplications), applicationHandler.CampaignApplications)
	protected.Get("/applications/my", middleware.RequirePermission(rbac.PermApply), applicationHandler.MyApplications)
	protected.Post("/applications/:id/responses", middleware.RequirePermission(rbac.PermRespond), applicationHandler.Respond)
	protected.Get("/applications/:id/responses", applicationHandler.Thread)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
