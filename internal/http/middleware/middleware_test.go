package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(h *ErrorHandler, handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(h.RequestIDMiddleware(), h.ErrorHandlerMiddleware())
	router.GET("/test", handlers...)
	return router
}

func serve(router *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) *domain.AppError {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestRequestIDPropagates(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := newTestRouter(h, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	rec := serve(router, http.Header{"X-Request-Id": {"req-123"}})
	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = serve(router, nil)
	assert.Len(t, rec.Body.String(), 36)
}

func TestPanicRecovery(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := newTestRouter(h, func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(router, http.Header{"X-Request-Id": {"req-1"}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	appErr := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.Equal(t, "req-1", appErr.RequestID)
	assert.Equal(t, "/test", appErr.Path)
}

func TestTimeoutMiddleware(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := gin.New()
	router.Use(h.TimeoutMiddleware(10 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	rec := serve(router, nil)
	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.Equal(t, "TIMEOUT", decode(t, rec).Code)
}

func TestRespondErrorWrapsPlainErrors(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		RespondError(c, assert.AnError)
	})

	rec := serve(router, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Code)
}

func TestJWTMiddlewares(t *testing.T) {
	jwtService := auth.NewJWTService(&config.JWTConfig{Secret: "secret", Expiry: time.Hour})
	userID := uuid.MustParse("8f8e3c1a-2b7d-4b8e-9a55-0c1d2e3f4a5b")
	token, err := jwtService.IssueToken(userID)
	require.NoError(t, err)
	expired, err := auth.NewJWTService(&config.JWTConfig{Secret: "secret", Expiry: -time.Minute}).IssueToken(userID)
	require.NoError(t, err)

	echo := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	}

	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{name: "Required_Missing", middleware: JWTMiddleware(jwtService), wantStatus: http.StatusUnauthorized, wantCode: domain.ErrCodeTokenMissing},
		{name: "Required_Bad_Scheme", middleware: JWTMiddleware(jwtService), header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: domain.ErrCodeTokenInvalid},
		{name: "Required_Valid", middleware: JWTMiddleware(jwtService), header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: userID.String()},
		{name: "Required_Expired", middleware: JWTMiddleware(jwtService), header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantCode: domain.ErrCodeTokenExpired},
		{name: "Optional_Missing", middleware: OptionalJWTMiddleware(jwtService), wantStatus: http.StatusOK, wantBody: ""},
		{name: "Optional_Invalid", middleware: OptionalJWTMiddleware(jwtService), header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantCode: domain.ErrCodeTokenInvalid},
		{name: "Optional_Valid", middleware: OptionalJWTMiddleware(jwtService), header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", tt.middleware, echo)

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			rec := serve(router, header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Code)
			} else {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
