package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"assetpulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, CORS).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the asset routes under /assets.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(),
	)

	// Bound every request by the store clients' expected latency; there is
	// no application-level retry or cancellation beyond this.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	assets := router.Group("/assets")
	{
		assets.GET("/", handler.ListAllAssets)
		assets.GET("/crypto", handler.ListCryptoAssets)
		assets.GET("/stock", handler.ListStockAssets)
		assets.GET("/comparison", handler.GetComparison)
		assets.GET("/:asset_type/latest", handler.GetLatestAssets)
		assets.GET("/:asset_type/top-movers", handler.GetTopMovers)
		assets.GET("/:asset_type/:symbol/prices", handler.GetPriceSeries)
	}

	return router
}
