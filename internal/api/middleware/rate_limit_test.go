package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shiftboard-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit, windowSec int) *RateLimiter {
	cfg := &config.Config{
		RateLimitRequests:   limit,
		RateLimitWindowSec:  windowSec,
		RateLimitCleanupSec: 3600,
	}
	return NewRateLimiter(cfg)
}

func performRequest(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := newTestLimiter(3, 60)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := performRequest(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := newTestLimiter(2, 60)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, performRequest(router).Code)
	assert.Equal(t, http.StatusOK, performRequest(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, performRequest(router).Code)
}

func TestRateLimiterSeparatesClients(t *testing.T) {
	rl := newTestLimiter(1, 60)
	defer rl.Stop()

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := newTestLimiter(1, 60)
	defer rl.Stop()

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	// Age the recorded request past the window.
	rl.mu.Lock()
	rl.requests["10.0.0.1"] = []time.Time{time.Now().Add(-2 * time.Minute)}
	rl.mu.Unlock()

	assert.True(t, rl.allow("10.0.0.1"))
}
