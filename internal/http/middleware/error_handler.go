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
	"github.com/gorilla/websocket"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.Named("ErrorHandler"),
	}
}

// ErrorHandlerMiddleware provides centralized error handling for all requests
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

// handlePanic handles panic recovery
func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := h.getRequestID(c)
	userID := h.getUserID(c)

	h.logger.Error("Panic recovered",
		zap.String("request_id", requestID),
		zap.String("user_id", userID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("error", recovered),
		zap.String("stack", string(debug.Stack())))

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	h.annotate(c, err)

	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// annotate fills the request details of err
func (h *ErrorHandler) annotate(c *gin.Context, err *domain.AppError) {
	err.RequestID = h.getRequestID(c)
	err.UserID = h.getUserID(c)
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method
}

// getRequestID gets or generates a request ID
func (h *ErrorHandler) getRequestID(c *gin.Context) string {
	if requestID := c.GetString(ContextRequestID); requestID != "" {
		return requestID
	}
	return uuid.NewString()
}

// getUserID gets the user ID from context
func (h *ErrorHandler) getUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID))
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. Handlers that give up on an
// expired context without answering get a 408. Websocket upgrades are left
// unbounded.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if websocket.IsWebSocketUpgrade(c.Request) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		err := domain.NewAppError("TIMEOUT", "Request timeout", http.StatusRequestTimeout, ctx.Err())
		h.annotate(c, err)

		h.logger.Warn("Request timed out",
			zap.String("request_id", err.RequestID),
			zap.String("user_id", err.UserID),
			zap.String("path", err.Path),
			zap.String("method", err.Method))

		c.AbortWithStatusJSON(http.StatusRequestTimeout, domain.NewErrorResponse(err))
	}
}

// RespondError writes err as an error envelope with its HTTP status
func RespondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}
	appErr.RequestID = c.GetString(ContextRequestID)
	appErr.UserID = c.GetString(ContextUserID)
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, domain.NewErrorResponse(appErr))
}
