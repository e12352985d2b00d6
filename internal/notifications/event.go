package notifications

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
	EventAccessRequested  EventType = "access.requested"
	EventAccessGranted    EventType = "access.granted"
)

// Event is the payload published to the notification topic for every
// state change a user would care about.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Username   string    `json:"username"`
	BookingID  string    `json:"booking_id,omitempty"`
	Seats      []string  `json:"seats,omitempty"`
	Requester  string    `json:"requester,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, username string) *Event {
	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Username:   username,
		OccurredAt: time.Now().UTC(),
	}
}
