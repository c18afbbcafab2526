package middleware

import (
	"github.com/gin-gonic/gin"

	"warga-registry-svc/pkg/logger"
	"warga-registry-svc/pkg/response"
)

// ErrorHandler recovers from panics and answers with the internal-error
// envelope. Panic details are logged, never returned to the client.
func ErrorHandler(writer *response.Writer, log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		writer.InternalError(c)
		c.Abort()
	})
}

// NoRouteHandler answers unknown paths with the fixed 404 envelope
func NoRouteHandler(writer *response.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		writer.RouteNotFound(c)
	}
}

// NoMethodHandler answers unsupported methods with the fixed 405 envelope
func NoMethodHandler(writer *response.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		writer.MethodNotAllowed(c)
	}
}
