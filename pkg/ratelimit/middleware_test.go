package ratelimit

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/api/v1/login", RateLimitTypeAuth},
		{"/api/v1/book", RateLimitTypeBooking},
		{"/api/v1/cancel", RateLimitTypeBooking},
		{"/api/v1/payment/:id", RateLimitTypeBooking},
		{"/api/v1/admin/reset_tickets", RateLimitTypeAdmin},
		{"/api/v1/admin/set_tickets", RateLimitTypeAdmin},
		{"/api/v1/admin/add_user", RateLimitTypeAdmin},
		{"/api/v1/dashboard", RateLimitTypeDefault},
		{"/api/v1/request", RateLimitTypeDefault},
		{"/health", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getRateLimitType(tt.path), "path %s", tt.path)
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		return c, w
	}

	c, _ := newCtx()
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c, _ = newCtx()
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getClientIP(c))

	c, _ = newCtx()
	c.Request.Header.Set("X-Forwarded-For", "not-an-ip")
	c.Request.RemoteAddr = "192.0.2.9:4455"
	assert.Equal(t, "192.0.2.9", getClientIP(c))
}

func TestIsAllowed_DisabledAlwaysAllows(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		Enabled:         false,
		WindowDuration:  time.Minute,
		DefaultRequests: 5,
	})

	result, err := limiter.IsAllowed(context.Background(), "192.0.2.1", RateLimitTypeDefault)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 5, result.Limit)
	assert.Equal(t, 5, result.Remaining)
}

func TestIsAllowed_WhitelistedIPBypasses(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 5,
		WhitelistedIPs:  []string{"192.0.2.1"},
	})

	result, err := limiter.IsAllowed(context.Background(), "192.0.2.1", RateLimitTypeDefault)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
}
