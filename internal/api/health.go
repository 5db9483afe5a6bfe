package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on Postgres and Redis connectivity).
type HealthHandler struct {
	dbPing    func() error                    // Postgres connectivity check
	cachePing func(ctx context.Context) error // Redis connectivity check
}

// NewHealthHandler constructs a HealthHandler with the provided probes.
//
// Parameters:
//   - dbPing: typically db.Ping from *sql.DB; may be nil to skip.
//   - cachePing: typically a wrapper over the Redis client's Ping; may be nil to skip.
func NewHealthHandler(dbPing func() error, cachePing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing, cachePing: cachePing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if both stores are reachable, 503 otherwise.
//     Both probes run concurrently and share a 3 second budget.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		if h.dbPing != nil {
			g.Go(func() error { return h.dbPing() })
		}
		if h.cachePing != nil {
			g.Go(func() error { return h.cachePing(gctx) })
		}

		if err := g.Wait(); err != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
