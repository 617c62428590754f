package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/auctionpulse/internal/middleware"
)

// requestTimeout bounds every request, bus round trips included.
const requestTimeout = 10 * time.Second

// RouterConfig carries the HTTP-level settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, Metrics, CORS, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API v1 routes (/api/v1); user routes require a bearer token.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
		cors.New(corsCfg),
		middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Ops ──────────────────────────────────────
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.POST("/users", handler.Register)
		v1.POST("/login", handler.Login)

		v1.GET("/regions", handler.GetRegions)
		v1.GET("/region/:region/realms", handler.GetRealms)
		v1.GET("/region/:region/realm/:realm/auctions", handler.GetAuctions)
		v1.GET("/region/:region/realm/:realm/owners", handler.GetOwners)
		v1.POST("/region/:region/realm/:realm/price-list", handler.GetPriceList)
		v1.POST("/region/:region/realm/:realm/price-list-history", handler.GetPriceListHistory)
		v1.GET("/items", handler.QueryItems)
	}

	user := v1.Group("/user", middleware.Auth(handler.auth))
	{
		user.GET("", handler.GetUser)

		user.GET("/preferences", handler.GetPreference)
		user.POST("/preferences", handler.CreatePreference)
		user.PUT("/preferences", handler.UpdatePreference)

		user.GET("/pricelists/region/:region/realm/:realm", handler.ListPricelists)
		user.POST("/pricelists", handler.CreatePricelist)
		user.PUT("/pricelists/:id", handler.UpdatePricelist)
		user.DELETE("/pricelists/:id", handler.DeletePricelist)
	}

	return router
}
