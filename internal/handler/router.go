package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"toaigo/internal/domain/user"
	"toaigo/internal/handler/api"
	"toaigo/internal/handler/middleware"
	"toaigo/internal/pkg/config"
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
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	merchantHandler *api.MerchantHandler,
	bookingHandler *api.BookingHandler,
	financialsHandler *api.FinancialsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, userHandler, merchantHandler, bookingHandler, financialsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	merchantHandler *api.MerchantHandler,
	bookingHandler *api.BookingHandler,
	financialsHandler *api.FinancialsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The user list is public: it feeds the pick-a-user login screen.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/users", Handler: userHandler.List},
		})

		merchants := apiGroup.Group("/merchants")
		{
			addRoutes(merchants, []route{
				{Method: http.MethodGet, Path: "", Handler: merchantHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: merchantHandler.Get},
			})

			merchantScoped := merchants.Group("")
			merchantScoped.Use(authMiddleware.RequireAuth())
			addRoutes(merchantScoped, []route{
				{Method: http.MethodPut, Path: "/:id/services", Handler: merchantHandler.ReplaceServices,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleMerchant)}},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: merchantHandler.Bookings,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleMerchant, user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id/financials", Handler: financialsHandler.Merchant,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleMerchant, user.RoleAdmin)}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleMerchant, user.RoleAdmin)}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/financials", Handler: financialsHandler.Platform,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
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
