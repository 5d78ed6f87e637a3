package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware turns panics into a 500 response
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

// handlePanic handles panic recovery
func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := GetRequestID(c)

	h.logger.WithContext(c.Request.Context()).Error("Recovered from panic",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.ByteString("stack", debug.Stack()))

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	err.RequestID = requestID
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method

	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// GetRequestID returns the request id set by RequestIDMiddleware
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if s, ok := requestID.(string); ok {
			return s
		}
	}
	return ""
}

// RequestIDMiddleware adds a unique request ID to each request and its context
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID))
		c.Next()
	}
}

// TimeoutMiddleware bounds each request with a deadline. Handlers that hit the
// deadline without writing a response get a 408.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		err := domain.NewAppError("TIMEOUT", "Request timeout", http.StatusRequestTimeout, ctx.Err())
		err.RequestID = GetRequestID(c)
		err.Path = c.Request.URL.Path
		err.Method = c.Request.Method

		h.logger.WithContext(ctx).Warn("Request timed out",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Duration("timeout", timeout))

		c.AbortWithStatusJSON(http.StatusRequestTimeout, domain.NewErrorResponse(err))
	}
}
