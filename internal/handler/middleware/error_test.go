//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"seckill-service/internal/handler/httperr"
	"seckill-service/internal/handler/middleware"
	"seckill-service/internal/pkg/config"
	"seckill-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := gin.New()
	router.Use(middleware.CustomRecovery(logger))
	router.Use(middleware.ErrorHandler())

	router.GET("/panic", func(*gin.Context) { panic("boom") })
	router.GET("/busy", func(c *gin.Context) {
		httperr.AbortWithRetry(c, http.StatusServiceUnavailable, errors.New("queue full"), "Too many orders", 2500*time.Millisecond, nil)
	})
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("no body written"))
	})
	return router
}

func TestErrorMiddleware(t *testing.T) {
	router := newErrorRouter()

	t.Run("panic becomes a 500 with the standard body", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("retry hint is rounded up to whole seconds", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/busy", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Too many orders")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "3"})
	})

	t.Run("private error without a body is a generic 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{
		AllowOrigins:  []string{"http://shop.example"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		AllowHeaders:  []string{"Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg.CORS, slog.New(slog.NewTextHandler(io.Discard, nil))))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://shop.example")
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	for _, h := range []string{"content-length", "location", "retry-after", "x-request-id"} {
		assert.Contains(t, exposed, h)
	}
}
