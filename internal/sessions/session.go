package sessions

import (
	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key the auth middleware stores the session
// under.
const ContextKey = "session"

// Session is the typed per-request identity established at login. Handlers
// receive it through the gin context instead of reading ambient state.
type Session struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// FromContext returns the session placed in the gin context by the auth
// middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(ContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*Session)
	if !ok {
		return nil, false
	}
	return sess, true
}
