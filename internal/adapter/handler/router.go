package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meetsync-team/meetsync/internal/infrastructure/http/middleware"
	"github.com/meetsync-team/meetsync/pkg/config"
	"github.com/meetsync-team/meetsync/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	jwtManager          *jwt.Manager
	authHandler         *Auth
	meetingHandler      *Meeting
	taskHandler         *Task
	teamHandler         *Team
	notificationHandler *Notification
	analyticsHandler    *Analytics
	syncHandler         *Sync
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	jwtManager *jwt.Manager,
	authHandler *Auth,
	meetingHandler *Meeting,
	taskHandler *Task,
	teamHandler *Team,
	notificationHandler *Notification,
	analyticsHandler *Analytics,
	syncHandler *Sync,
) *Router {
	return &Router{
		cfg:                 cfg,
		jwtManager:          jwtManager,
		authHandler:         authHandler,
		meetingHandler:      meetingHandler,
		taskHandler:         taskHandler,
		teamHandler:         teamHandler,
		notificationHandler: notificationHandler,
		analyticsHandler:    analyticsHandler,
		syncHandler:         syncHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	authRequired := middleware.EchoAuth(rt.jwtManager)

	rt.setupAuthRoutes(v1, authRequired)
	rt.setupMeetingRoutes(v1, authRequired)
	rt.setupTaskRoutes(v1, authRequired)
	rt.setupTeamRoutes(v1, authRequired)
	rt.setupNotificationRoutes(v1, authRequired)
	rt.setupAnalyticsRoutes(v1, authRequired)
	rt.setupSyncRoutes(v1, authRequired)
}

func (rt *Router) setupAuthRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	authGroup := g.Group("/auth")
	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.GET("/me", rt.authHandler.Me, authRequired)
	authGroup.PUT("/me/preferences", rt.authHandler.UpdatePreferences, authRequired)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	meetings := g.Group("/meetings", authRequired)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)
}

func (rt *Router) setupTaskRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	tasks := g.Group("/tasks", authRequired)
	tasks.GET("", rt.taskHandler.List)
	tasks.POST("/auto-assign", rt.taskHandler.AutoAssign)
	tasks.PUT("/:id/status", rt.taskHandler.UpdateStatus)
	tasks.PUT("/:id/assignee", rt.taskHandler.Reassign)
}

func (rt *Router) setupTeamRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	teams := g.Group("/teams", authRequired)
	teams.POST("", rt.teamHandler.Create)
	teams.GET("", rt.teamHandler.List)
	teams.GET("/:id", rt.teamHandler.Get)
	teams.POST("/:id/members", rt.teamHandler.Invite)
	teams.POST("/:id/accept", rt.teamHandler.AcceptInvite)
}

func (rt *Router) setupNotificationRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	notifications := g.Group("/notifications", authRequired)
	notifications.GET("", rt.notificationHandler.List)
	notifications.PUT("/:id/read", rt.notificationHandler.MarkRead)
}

func (rt *Router) setupAnalyticsRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	analytics := g.Group("/analytics", authRequired)
	analytics.GET("/summary", rt.analyticsHandler.Summary)
}

func (rt *Router) setupSyncRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	syncGroup := g.Group("/sync", authRequired)
	syncGroup.GET("", rt.syncHandler.Snapshot)
	syncGroup.GET("/stream", rt.syncHandler.Stream)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
