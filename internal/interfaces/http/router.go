package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/infrastructure/config"
	"github.com/katalon/insights/internal/interfaces/http/handlers"
	"github.com/katalon/insights/internal/interfaces/http/middleware"
	"github.com/katalon/insights/internal/interfaces/http/routes"
	"github.com/katalon/insights/internal/shared/logger"
)

// Dependencies are the infrastructure pieces the router is built on.
type Dependencies struct {
	Source     conversation.Source
	Tickets    ticket.Repository
	TicketIDs  ticket.IDGenerator
	StatsCache analyticsUsecases.StatsCache
	// Redis backs the write rate limiter. Nil disables it.
	Redis *redis.Client
}

// Router represents the HTTP router configuration
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	log         logger.Interface
	hdlrs       *allHandlers
	rateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(deps Dependencies, cfg *config.Config, log logger.Interface) *Router {
	r := &Router{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		hdlrs:  newHandlers(newUseCases(deps, cfg, log), log),
	}

	if deps.Redis != nil && cfg.Server.WriteRateLimit > 0 {
		r.rateLimiter = middleware.NewRateLimiter(deps.Redis, cfg.Server.WriteRateLimit, time.Minute, log.Named("ratelimit"))
	}

	return r
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", handlers.HealthCheck)

	api := r.engine.Group("/api")

	routes.SetupConversationRoutes(api, &routes.ConversationRouteConfig{
		ConversationHandler: r.hdlrs.conversationHandler,
		FeedbackHandler:     r.hdlrs.feedbackHandler,
	})

	ticketRoutes := &routes.TicketRouteConfig{TicketHandler: r.hdlrs.ticketHandler}
	if r.rateLimiter != nil {
		ticketRoutes.WriteLimit = r.rateLimiter.Limit()
	}
	routes.SetupTicketRoutes(api, ticketRoutes)

	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler:  r.hdlrs.dashboardHandler,
		NavigationHandler: r.hdlrs.navigationHandler,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
