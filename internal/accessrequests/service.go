package accessrequests

import (
	"context"
	"errors"
	"log/slog"

	"seatwise/internal/notifications"
	"seatwise/internal/sessions"
	"seatwise/pkg/logger"
)

var (
	ErrReplyForbidden   = errors.New("session is not allowed to grant requests")
	ErrNoPendingRequest = errors.New("no pending request for user")
)

// Service interface defines the contract for access request business logic
type Service interface {
	Request(ctx context.Context, username, timestamp string) (*AccessRequest, error)
	Reply(ctx context.Context, sess *sessions.Session, username string) (*AccessRequest, error)
	ListRequests(ctx context.Context) ([]AccessRequest, error)
}

type service struct {
	repo     Repository
	policy   ReplyPolicy
	notifier notifications.Producer
}

// NewService creates a new access request service. notifier may be nil when
// notifications are disabled.
func NewService(repo Repository, policy ReplyPolicy, notifier notifications.Producer) Service {
	return &service{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
	}
}

func (s *service) Request(ctx context.Context, username, timestamp string) (*AccessRequest, error) {
	request := &AccessRequest{
		Username:  username,
		Timestamp: timestamp,
		Status:    StatusPending,
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.EventAccessRequested, username, username)

	return request, nil
}

// Reply grants the oldest pending request for the named user. Who may grant
// is decided by the configured policy.
func (s *service) Reply(ctx context.Context, sess *sessions.Session, username string) (*AccessRequest, error) {
	if !s.policy.CanReply(sess) {
		return nil, ErrReplyForbidden
	}

	request, err := s.repo.OldestPending(ctx, username)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, ErrNoPendingRequest
		}
		return nil, err
	}

	if err := s.repo.MarkGranted(ctx, request); err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			// Another reply raced us to this request.
			return nil, ErrNoPendingRequest
		}
		return nil, err
	}

	s.publish(ctx, notifications.EventAccessGranted, username, sess.Username)

	return request, nil
}

func (s *service) ListRequests(ctx context.Context) ([]AccessRequest, error) {
	return s.repo.ListRequests(ctx)
}

func (s *service) publish(ctx context.Context, eventType notifications.EventType, username, requester string) {
	if s.notifier == nil {
		return
	}

	event := notifications.NewEvent(eventType, username)
	event.Requester = requester

	if err := s.notifier.Publish(ctx, event); err != nil {
		logger.GetDefault().Warn("failed to publish access request notification",
			slog.String("type", string(eventType)),
			slog.String("username", username),
			slog.Any("error", err),
		)
	}
}
