package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gutwise/backend/internal/api"
	"github.com/gutwise/backend/internal/middleware"
	"github.com/gutwise/backend/internal/service"
)

// Deps carries everything the router needs to assemble the handler set.
type Deps struct {
	Session  *service.Session
	Gateway  service.AIGateway
	Research *service.ResearchService
	Redis    *redis.Client
	Logger   *zap.Logger
	Origins  []string
}

// SetupRouter configures the application routes. AI-backed endpoints share
// one rate limiter; everything else is unguarded.
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS(deps.Origins))

	aiGuard := middleware.NewAIRateLimiter(deps.Redis, deps.Logger).Middleware()

	v1 := router.Group("/api/v1")

	api.NewProfileHandler(deps.Session).RegisterRoutes(v1, aiGuard)
	api.NewRecipeHandler(deps.Session, deps.Gateway).RegisterRoutes(v1, aiGuard)
	api.NewMealPlanHandler(deps.Session).RegisterRoutes(v1)
	api.NewShoppingHandler(deps.Session).RegisterRoutes(v1)
	api.NewJournalHandler(deps.Session).RegisterRoutes(v1)
	api.NewResearchHandler(deps.Research).RegisterRoutes(v1, aiGuard)
	api.NewViewHandler(deps.Session).RegisterRoutes(v1)
	api.NewDashboardHandler(deps.Session).RegisterRoutes(v1, aiGuard)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
