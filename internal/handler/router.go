package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/handler/api"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	animalHandler *api.AnimalHandler,
	transferHandler *api.TransferHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, animalHandler, transferHandler, notificationHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	animalHandler *api.AnimalHandler,
	transferHandler *api.TransferHandler,
	notificationHandler *api.NotificationHandler,
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
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		shelterOnly := authMiddleware.RequireRoleAtLeast(user.RoleShelter)

		animals := apiGroup.Group("/animals")
		animals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(animals, []route{
				{Method: http.MethodPost, Path: "", Handler: animalHandler.CreateAnimal, Mw: []gin.HandlerFunc{shelterOnly}},
				{Method: http.MethodGet, Path: "", Handler: animalHandler.ListAnimals, Mw: []gin.HandlerFunc{shelterOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: animalHandler.GetAnimal},
				{Method: http.MethodPost, Path: "/:id/transfer", Handler: transferHandler.InitiateTransfer, Mw: []gin.HandlerFunc{shelterOnly}},
			})
		}

		transfers := apiGroup.Group("/transfers")
		transfers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(transfers, []route{
				{Method: http.MethodGet, Path: "", Handler: transferHandler.ListTransfers, Mw: []gin.HandlerFunc{shelterOnly}},
				{Method: http.MethodPost, Path: "/claim", Handler: transferHandler.ClaimTransfer},
				{Method: http.MethodGet, Path: "/:id", Handler: transferHandler.GetTransfer, Mw: []gin.HandlerFunc{shelterOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: transferHandler.CancelTransfer, Mw: []gin.HandlerFunc{shelterOnly}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListNotifications},
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
