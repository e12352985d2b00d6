package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchAnyArgs accepts any script arguments; the sliding-window script takes
// the current timestamp, which a test cannot pin down exactly. The mock still
// requires the expectation to carry the same number of arguments, hence the
// placeholder values at the call sites.
func matchAnyArgs(expected, actual []interface{}) error {
	return nil
}

func newMockedLimiter(limit int) (*RateLimiter, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: limit,
	})
	return limiter, mock
}

func TestParseLimitResult(t *testing.T) {
	// An admitted request filling the last free slot and a rejected request
	// at a full window both report a count equal to the limit; only the flag
	// tells them apart.
	admitted, err := parseLimitResult([]interface{}{int64(1), int64(3), int64(0)}, 3, 1700000060)
	require.NoError(t, err)
	assert.True(t, admitted.Allowed)
	assert.Equal(t, 0, admitted.Remaining)

	rejected, err := parseLimitResult([]interface{}{int64(0), int64(3), int64(0)}, 3, 1700000060)
	require.NoError(t, err)
	assert.False(t, rejected.Allowed)
	assert.Equal(t, 0, rejected.Remaining)

	_, err = parseLimitResult([]interface{}{int64(1), int64(1)}, 3, 1700000060)
	assert.Error(t, err)

	_, err = parseLimitResult("not-a-list", 3, 1700000060)
	assert.Error(t, err)
}

func TestIsAllowed_DeniesOverLimitRequests(t *testing.T) {
	const limit = 3
	limiter, mock := newMockedLimiter(limit)
	key := fmt.Sprintf("seatwise:ratelimit:%s:%s", "192.0.2.50", RateLimitTypeDefault)

	for i := 1; i <= limit; i++ {
		mock.CustomMatch(matchAnyArgs).
			ExpectEval(slidingWindowScript, []string{key}, 0, 0, limit, 60).
			SetVal([]interface{}{int64(1), int64(i), int64(limit - i)})
	}
	for i := 0; i < 7; i++ {
		mock.CustomMatch(matchAnyArgs).
			ExpectEval(slidingWindowScript, []string{key}, 0, 0, limit, 60).
			SetVal([]interface{}{int64(0), int64(limit), int64(0)})
	}

	denied := 0
	for i := 0; i < 10; i++ {
		result, err := limiter.IsAllowed(context.Background(), "192.0.2.50", RateLimitTypeDefault)
		require.NoError(t, err)
		if !result.Allowed {
			denied++
		}
	}

	assert.Equal(t, 7, denied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMiddleware_RejectsWithTooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter, mock := newMockedLimiter(3)
	key := fmt.Sprintf("seatwise:ratelimit:%s:%s", "192.0.2.50", RateLimitTypeDefault)
	mock.CustomMatch(matchAnyArgs).
		ExpectEval(slidingWindowScript, []string{key}, 0, 0, 3, 60).
		SetVal([]interface{}{int64(0), int64(3), int64(0)})

	router := gin.New()
	router.Use(Middleware(limiter))
	router.GET("/dashboard", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.RemoteAddr = "192.0.2.50:4455"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
