package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS is a Gin middleware that allows cross-origin requests from any origin.
//
// The API is consumed by Grafana dashboards that may be served from a
// different host, so the policy is intentionally permissive: all origins,
// read methods, and common headers are allowed. Preflight OPTIONS requests
// are answered directly with 204.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.CORS())
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
