package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	rescheduleHandler *api.RescheduleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, appointmentHandler, rescheduleHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	rescheduleHandler *api.RescheduleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: availabilityHandler.Day},
				{Method: http.MethodGet, Path: "/batch", Handler: availabilityHandler.Batch},
			})
		}

		staffOnly := authMiddleware.RequireRoleAtLeast(middleware.RoleStaff)

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointmentHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: rescheduleHandler.Request},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: appointmentHandler.Approve, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: appointmentHandler.Reject, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: appointmentHandler.Complete, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		reschedules := apiGroup.Group("/reschedules")
		{
			addRoutes(reschedules, []route{
				{Method: http.MethodGet, Path: "", Handler: rescheduleHandler.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: rescheduleHandler.Approve, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: rescheduleHandler.Reject, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
