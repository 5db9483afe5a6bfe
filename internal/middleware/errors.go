package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetpulse/internal/domain/dto"
	"assetpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Lets the request proceed through the handler chain.
//   - If any handler attached errors and no response was written with an
//     error status yet, responds with 500 and the last attached error.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}

// AbortWithError writes a standardized JSON error response with the given
// status code and aborts the handler chain.
//
// Parameters:
//   - c (*gin.Context): The request context.
//   - status (int): HTTP status code to respond with.
//   - message (string): Human-readable error message.
//   - err (error): Optional underlying error included as details (may be nil).
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
