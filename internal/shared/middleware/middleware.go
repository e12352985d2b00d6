package middleware

import (
	"errors"
	"time"

	"seatwise/internal/sessions"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/utils/response"
	"seatwise/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionAuth resolves the session cookie against the store and puts the
// typed session into the request context. Browser-style requests without a
// valid session are sent back to the login page.
func SessionAuth(store sessions.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || token == "" {
			response.RedirectToLogin(c)
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, sessions.ErrNotFound) {
				logger.GetDefault().Error("session lookup failed", "error", err)
			}
			response.RedirectToLogin(c)
			return
		}

		c.Set(sessions.ContextKey, sess)
		c.Next()
	}
}

// RequireAdmin rejects sessions without the admin flag. Must run after
// SessionAuth. Non-admins are sent back to the login page, the same way the
// auth gate handles missing sessions.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.FromContext(c)
		if !ok || !sess.IsAdmin {
			if ok {
				logger.GetDefault().LogAuthFailure(c.Request.Context(), "non-admin on admin route", c.ClientIP())
			}
			response.RedirectToLogin(c)
			return
		}

		c.Next()
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.GetDefault().LogHTTPRequest(c, time.Since(start))
	}
}
