package seatpool

type PoolResponse struct {
	ID         string         `json:"id"`
	TotalSeats int            `json:"total_seats"`
	Seats      []SeatResponse `json:"seats"`
}

type SeatResponse struct {
	Block    string  `json:"block"`
	IsBooked bool    `json:"is_booked"`
	BookedBy *string `json:"booked_by,omitempty"`
}

// ToResponse converts a pool to its API shape.
func (p *SeatPool) ToResponse() PoolResponse {
	resp := PoolResponse{
		ID:         p.ID.String(),
		TotalSeats: p.TotalSeats,
		Seats:      make([]SeatResponse, 0, len(p.Seats)),
	}
	for _, seat := range p.Seats {
		resp.Seats = append(resp.Seats, SeatResponse{
			Block:    seat.Block,
			IsBooked: seat.IsBooked,
			BookedBy: seat.BookedBy,
		})
	}
	return resp
}
