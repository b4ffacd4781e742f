package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/middleware"
)

func newLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.Use(middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RedisClient: rdb,
		Limit:       limit,
		Window:      time.Minute,
	}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r, mr
}

func get(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	r, _ := newLimitedRouter(t, 5)

	for i := 0; i < 5; i++ {
		w := get(r, "10.0.0.1")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := get(r, "10.0.0.1")
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_OverLimit(t *testing.T) {
	r, _ := newLimitedRouter(t, 2)

	require.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
	require.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)

	w := get(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// A different client keeps its own window.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2").Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)

	require.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
	require.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1").Code)

	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
}

func TestRateLimiter_RedisDownFailsOpen(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()

	// With Redis gone, requests pass through unthrottled.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.168.1.9:1234"

	assert.Equal(t, "192.168.1.9:1234", middleware.ClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.ClientIP(c))
}
