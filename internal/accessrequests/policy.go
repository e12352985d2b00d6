package accessrequests

import (
	"seatwise/internal/sessions"
)

// ReplyPolicy decides which sessions may answer a pending access request.
type ReplyPolicy interface {
	CanReply(sess *sessions.Session) bool
	Name() string
}

type allowAnyAuthenticated struct{}

// AllowAnyAuthenticated lets any logged-in user grant requests.
func AllowAnyAuthenticated() ReplyPolicy {
	return allowAnyAuthenticated{}
}

func (allowAnyAuthenticated) CanReply(sess *sessions.Session) bool {
	return sess != nil
}

func (allowAnyAuthenticated) Name() string {
	return "any"
}

type adminOnly struct{}

// AdminOnly restricts granting requests to administrators.
func AdminOnly() ReplyPolicy {
	return adminOnly{}
}

func (adminOnly) CanReply(sess *sessions.Session) bool {
	return sess != nil && sess.IsAdmin
}

func (adminOnly) Name() string {
	return "admin"
}

// PolicyFromName maps a config value to a policy. Anything other than
// "admin" keeps the open behavior where any logged-in user may grant.
func PolicyFromName(name string) ReplyPolicy {
	switch name {
	case "admin":
		return AdminOnly()
	default:
		return AllowAnyAuthenticated()
	}
}
