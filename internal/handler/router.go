package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seat-hold-ticketing/internal/handler/api"
	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/pkg/config"
)

const (
	rateScopeHold    = "hold"
	rateScopeConfirm = "confirm"
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
	holdHandler *api.HoldHandler,
	eventHandler *api.EventHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, holdHandler, eventHandler, bookingHandler, adminHandler, authMiddleware, rateLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	holdHandler *api.HoldHandler,
	eventHandler *api.EventHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		events := apiGroup.Group("/events/:eventId")
		addRoutes(events, []route{
			{Method: http.MethodGet, Path: "/seats", Handler: eventHandler.Seats},
			{Method: http.MethodPost, Path: "/holds", Handler: holdHandler.Hold, Mw: []gin.HandlerFunc{rateLimit.Limit(rateScopeHold)}},
			{Method: http.MethodPost, Path: "/confirm", Handler: holdHandler.Confirm, Mw: []gin.HandlerFunc{rateLimit.Limit(rateScopeConfirm)}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodGet, Path: "/:id/qr", Handler: bookingHandler.QR},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/holds/sweep-expired", Handler: adminHandler.SweepExpired},
			{Method: http.MethodPost, Path: "/payments", Handler: adminHandler.DecidePayment},
		})
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
		default:
			g.Handle(r.Method, r.Path, h)
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
