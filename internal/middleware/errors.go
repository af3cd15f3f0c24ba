package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/logger"
)

// ErrorHandler is a safety net for handlers that attach errors to the gin
// context (c.Error) without writing a response themselves. After the chain
// runs, any collected error that left the response unwritten becomes a
// standardized 500 JSON body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes a standardized JSON error response with the given
// status and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
