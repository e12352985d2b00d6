package bookings

import "seatwise/internal/seatpool"

// DashboardResponse is the role-specific dashboard payload. Pool is nil for
// administrators, who review bookings rather than pick seats.
type DashboardResponse struct {
	Role     string                 `json:"role"`
	Pool     *seatpool.PoolResponse `json:"pool,omitempty"`
	Bookings []Booking              `json:"bookings"`
}

type BookingResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Seats    []string `json:"seats"`
}

// ToResponse converts a booking to its API shape.
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:       b.ID.String(),
		Username: b.Username,
		Seats:    b.Blocks(),
	}
}
