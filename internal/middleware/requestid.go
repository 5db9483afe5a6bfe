package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request identifier is stored under.
const RequestIDKey = "request_id"

// RequestIDHeader is the header the identifier is read from and echoed on.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier so a slow series query or
// a degraded snapshot read can be traced from the access log to the client.
//
// An identifier supplied by the caller (a dashboard proxy, typically) is
// kept; otherwise a new UUID v4 is generated. Either way it is stored in the
// gin context under RequestIDKey and echoed in the response headers.
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
//	logger.L().Info().Any("request_id", rid).Msg("serving price series")
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
