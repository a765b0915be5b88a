package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nishanthjadav/financial-backend/internal/domain/dto"
	"github.com/nishanthjadav/financial-backend/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context via c.Error() into a standardized JSON response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If a handler already wrote a response, does nothing.
//   - Otherwise the last attached error is logged and returned as a
//     500 with the dto.ErrorResponse envelope.
//
// Handlers that can classify their failures should respond directly (or use
// AbortWithError); this is the safety net for everything else.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the request chain and writes a standardized error
// response with the given status code.
//
// Parameters:
//   - c (*gin.Context): Request context.
//   - status (int): HTTP status code to return.
//   - message (string): Human-readable summary for the response body.
//   - err (error): Underlying cause; may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
